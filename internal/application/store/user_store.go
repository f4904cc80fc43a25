package store

import (
	"context"
	"fmt"

	"github.com/arjunaprint/printdesk-core/internal/application/ports"
	"github.com/arjunaprint/printdesk-core/internal/domain/entity"
	"github.com/arjunaprint/printdesk-core/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

// UserStore es el dueño de la colección de usuarios.
type UserStore struct {
	cfg Config
	gw  ports.UserGateway
	log *logger.Logger
	now clock

	backing    []entity.User // colección completa, solo modo mock
	users      []entity.User // página cargada
	pagination entity.Pagination
}

// NewUserStore construye el store. En modo mock seedUsers es la colección
// de respaldo; en modo live se ignora y gw es obligatorio.
func NewUserStore(cfg Config, gw ports.UserGateway, seedUsers []entity.User, log *logger.Logger) *UserStore {
	if log == nil {
		log = logger.Nop()
	}
	s := &UserStore{cfg: cfg, gw: gw, log: log, now: systemClock}
	if cfg.Mock {
		s.backing = append(s.backing, seedUsers...)
	}
	return s
}

// Users devuelve una copia de la página cargada.
func (s *UserStore) Users() []entity.User {
	return append([]entity.User(nil), s.users...)
}

// Pagination devuelve el cursor de la última carga.
func (s *UserStore) Pagination() entity.Pagination {
	return s.pagination
}

// Backing devuelve una copia de la colección semilla completa (modo mock).
// Lo usa el gestor de sesión para validar credenciales de demo sin pasar
// por la paginación.
func (s *UserStore) Backing() []entity.User {
	return append([]entity.User(nil), s.backing...)
}

// FetchAll carga una página de usuarios, con filtro opcional por nombre o
// email. Los fallos de lectura se degradan a colección vacía.
func (s *UserStore) FetchAll(ctx context.Context, page, perPage int, search string) error {
	page, perPage = s.cfg.normalizePage(page, perPage)

	if s.cfg.Mock {
		filtered := make([]entity.User, 0, len(s.backing))
		for _, u := range s.backing {
			if containsFold(u.Name, search) || containsFold(u.Email, search) {
				filtered = append(filtered, u)
			}
		}
		s.pagination = entity.PageOf(len(filtered), page, perPage)
		from, to := s.pagination.Slice()
		s.users = append([]entity.User(nil), filtered[from:to]...)
		return nil
	}

	users, pg, err := s.gw.List(ctx, ports.ListQuery{Page: page, PerPage: perPage, Search: search})
	if err != nil {
		s.log.Warn().Err(err).Msg("usuarios: fallo al listar, colección vacía")
		s.users = nil
		s.pagination = entity.PageOf(0, 1, perPage)
		return nil
	}
	s.users = users
	s.pagination = pg
	return nil
}

// Create da de alta un usuario. Mock: asigna id, estado Active, fecha de
// alta de hoy y guarda el bcrypt de la credencial. Live: solo si el
// gateway confirma se antepone el usuario devuelto.
func (s *UserStore) Create(ctx context.Context, u entity.User, password string) (*entity.User, error) {
	if s.cfg.Mock {
		u.ID = s.nextID()
		u.Status = entity.StatusActive
		u.JoinDate = s.now().Format("2006-01-02")
		if password != "" {
			h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
			if err != nil {
				return nil, fmt.Errorf("crear usuario: %w", err)
			}
			u.PasswordHash = string(h)
		}
		s.backing = append([]entity.User{u}, s.backing...)
		s.users = append([]entity.User{u}, s.users...)
		s.pagination.Total++
		return &u, nil
	}

	created, err := s.gw.Create(ctx, u, password)
	if err != nil {
		return nil, fmt.Errorf("crear usuario: %w", err)
	}
	s.users = append([]entity.User{*created}, s.users...)
	return created, nil
}

// Delete elimina por id. Live: solo tras confirmación remota.
func (s *UserStore) Delete(ctx context.Context, id int) error {
	if s.cfg.Mock {
		s.backing = removeUser(s.backing, id)
		s.users = removeUser(s.users, id)
		if s.pagination.Total > 0 {
			s.pagination.Total--
		}
		return nil
	}

	if err := s.gw.Delete(ctx, id); err != nil {
		return fmt.Errorf("eliminar usuario %d: %w", id, err)
	}
	s.users = removeUser(s.users, id)
	return nil
}

func (s *UserStore) nextID() int {
	maxID := 0
	for _, u := range s.backing {
		if u.ID > maxID {
			maxID = u.ID
		}
	}
	return maxID + 1
}

func removeUser(users []entity.User, id int) []entity.User {
	out := users[:0]
	for _, u := range users {
		if u.ID != id {
			out = append(out, u)
		}
	}
	return out
}
