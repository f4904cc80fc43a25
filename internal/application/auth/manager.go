// Package auth contiene el gestor de sesión: estado de login, rol y ciclo
// de vida del token, persistidos en una superficie clave-valor durable
// para sobrevivir a los reinicios.
package auth

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/arjunaprint/printdesk-core/internal/application/ports"
	"github.com/arjunaprint/printdesk-core/internal/application/store"
	"github.com/arjunaprint/printdesk-core/internal/domain"
	"github.com/arjunaprint/printdesk-core/internal/domain/entity"
	"github.com/arjunaprint/printdesk-core/pkg/jwt"
	"github.com/arjunaprint/printdesk-core/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

// Claves bajo las que se persiste la sesión. Cada campo se guarda por
// separado; la presencia parcial se trata como "sin sesión".
const (
	keyLoggedIn = "isLoggedIn"
	keyRole     = "userRole"
	keyToken    = "authToken"
	keyProfile  = "userData"
)

// JWTConfig configuración de los tokens de demostración.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Manager gestiona la sesión activa. Una instancia por proceso; el modo
// (mock o live) se fija en la construcción.
type Manager struct {
	mock    bool
	users   *store.UserStore
	gw      ports.UserGateway
	kv      ports.KeyValueStore
	jwtCfg  JWTConfig
	log     *logger.Logger
	session entity.Session
}

// NewManager construye el gestor. users respalda tanto el login de demo
// (colección semilla) como las operaciones proxy de usuarios; kv es la
// superficie durable donde la sesión sobrevive a los reinicios.
func NewManager(mock bool, users *store.UserStore, gw ports.UserGateway, kv ports.KeyValueStore, jwtCfg JWTConfig, log *logger.Logger) *Manager {
	if log == nil {
		log = logger.Nop()
	}
	return &Manager{mock: mock, users: users, gw: gw, kv: kv, jwtCfg: jwtCfg, log: log}
}

// Session devuelve una copia del estado de sesión actual.
func (m *Manager) Session() entity.Session {
	return m.session
}

// LoginResult resultado estructurado de Login. Los fallos de
// autenticación se reportan aquí, nunca como pánico ni error suelto.
type LoginResult struct {
	Success bool
	Message string
	Role    string
	Token   string
	User    *entity.User
}

// Login autentica con email y credencial. En modo demo compara contra la
// colección semilla (bcrypt, solo cuentas Active) y emite un token local;
// en modo live delega en el endpoint de autenticación del gateway. En
// ambos casos un login correcto persiste la sesión completa en el KV.
func (m *Manager) Login(ctx context.Context, email, password string) LoginResult {
	if m.mock {
		return m.loginMock(email, password)
	}
	return m.loginLive(ctx, email, password)
}

func (m *Manager) loginMock(email, password string) LoginResult {
	var match *entity.User
	for _, u := range m.users.Backing() {
		if u.Email == email {
			candidate := u
			match = &candidate
			break
		}
	}
	if match == nil || bcrypt.CompareHashAndPassword([]byte(match.PasswordHash), []byte(password)) != nil {
		m.session.Clear()
		return LoginResult{Success: false, Message: domain.ErrInvalidCredentials.Error()}
	}
	if match.Status != entity.StatusActive {
		m.session.Clear()
		return LoginResult{Success: false, Message: domain.ErrInactiveAccount.Error()}
	}

	token, err := jwt.Generate(m.jwtCfg.Secret, match.Email, match.Role, m.jwtCfg.Issuer, m.jwtCfg.ExpMinutes)
	if err != nil {
		m.session.Clear()
		return LoginResult{Success: false, Message: "no se pudo emitir el token de demo: " + err.Error()}
	}

	m.establish(match.Role, token, match)
	return LoginResult{Success: true, Message: "login correcto", Role: match.Role, Token: token, User: match}
}

func (m *Manager) loginLive(ctx context.Context, email, password string) LoginResult {
	res, err := m.gw.Login(ctx, email, password)
	if err != nil {
		m.session.Clear()
		msg := "error al iniciar sesión"
		if errors.Is(err, domain.ErrInvalidCredentials) || errors.Is(err, domain.ErrUnauthorized) {
			msg = domain.ErrInvalidCredentials.Error()
		}
		m.log.Warn().Err(err).Str("email", email).Msg("auth: login remoto fallido")
		return LoginResult{Success: false, Message: msg}
	}
	if res == nil || res.Token == "" {
		m.session.Clear()
		return LoginResult{Success: false, Message: "login rechazado por el servicio"}
	}

	user := res.User.ToEntity()
	m.establish(res.Role(), res.Token, &user)
	return LoginResult{Success: true, Message: "login correcto", Role: res.Role(), Token: res.Token, User: &user}
}

// establish fija el estado en memoria y persiste las cuatro claves.
func (m *Manager) establish(role, token string, user *entity.User) {
	m.session = entity.Session{
		IsAuthenticated: true,
		Role:            role,
		Token:           token,
		Profile:         user,
	}
	_ = m.kv.Set(keyLoggedIn, "true")
	_ = m.kv.Set(keyRole, role)
	_ = m.kv.Set(keyToken, token)
	if user != nil {
		if raw, err := json.Marshal(user); err == nil {
			_ = m.kv.Set(keyProfile, string(raw))
		}
	}
}

// Logout limpia el estado en memoria y borra todas las claves
// persistidas. No necesita llamada remota para tener éxito.
func (m *Manager) Logout() {
	m.session.Clear()
	_ = m.kv.Delete(keyLoggedIn)
	_ = m.kv.Delete(keyRole)
	_ = m.kv.Delete(keyToken)
	_ = m.kv.Delete(keyProfile)
}

// RestoreSession se llama una vez al arrancar. Restaura la sesión solo si
// la tripleta (flag, rol, token) está completa; cualquier ausencia parcial
// o token de demo inválido se trata como "sin sesión". Nunca devuelve
// error.
func (m *Manager) RestoreSession() {
	logged, ok1, err1 := m.kv.Get(keyLoggedIn)
	role, ok2, err2 := m.kv.Get(keyRole)
	token, ok3, err3 := m.kv.Get(keyToken)
	if err1 != nil || err2 != nil || err3 != nil {
		m.log.Warn().Msg("auth: fallo leyendo la sesión persistida, se asume sin sesión")
		return
	}
	if !ok1 || !ok2 || !ok3 || logged != "true" || role == "" || token == "" {
		return
	}

	// En modo demo el token lo emitimos nosotros: un token que no valida
	// (caducado, manipulado) invalida la restauración.
	if m.mock {
		if _, tokenRole, err := jwt.Parse(m.jwtCfg.Secret, token); err != nil || tokenRole != role {
			m.log.Debug().Err(err).Msg("auth: token de demo persistido inválido")
			return
		}
	}

	var profile *entity.User
	if raw, ok, err := m.kv.Get(keyProfile); err == nil && ok && raw != "" {
		var u entity.User
		if json.Unmarshal([]byte(raw), &u) == nil {
			profile = &u
		}
	}

	m.session = entity.Session{
		IsAuthenticated: true,
		Role:            role,
		Token:           token,
		Profile:         profile,
	}
}

// FetchAllUsers proxy al store de usuarios. En modo demo oculta las
// cuentas Admin: la pantalla de gestión solo lista al personal.
func (m *Manager) FetchAllUsers(ctx context.Context, page, perPage int, search string) ([]entity.User, error) {
	if err := m.users.FetchAll(ctx, page, perPage, search); err != nil {
		return nil, err
	}
	users := m.users.Users()
	if !m.mock {
		return users, nil
	}
	visible := make([]entity.User, 0, len(users))
	for _, u := range users {
		if u.Role != entity.RoleAdmin {
			visible = append(visible, u)
		}
	}
	return visible, nil
}

// AddUser proxy al store de usuarios.
func (m *Manager) AddUser(ctx context.Context, u entity.User, password string) (*entity.User, error) {
	return m.users.Create(ctx, u, password)
}

// DeleteUser proxy al store de usuarios.
func (m *Manager) DeleteUser(ctx context.Context, id int) error {
	return m.users.Delete(ctx, id)
}
