package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/arjunaprint/printdesk-core/internal/application/dto"
	"github.com/arjunaprint/printdesk-core/internal/application/ports"
	"github.com/arjunaprint/printdesk-core/internal/domain"
	"github.com/arjunaprint/printdesk-core/internal/domain/entity"
)

// Verificar en tiempo de compilación que implementa el puerto.
var _ ports.UserGateway = (*UserGateway)(nil)

// UserGateway transporte remoto de usuarios y autenticación.
type UserGateway struct {
	c *Client
}

// NewUserGateway construye el gateway sobre el cliente base.
func NewUserGateway(c *Client) *UserGateway {
	return &UserGateway{c: c}
}

// List pide una página de usuarios: GET /user?page&per_page&search.
func (g *UserGateway) List(ctx context.Context, q ports.ListQuery) ([]entity.User, entity.Pagination, error) {
	var resp dto.UserListResponse
	if err := g.c.do(ctx, http.MethodGet, "/user", listQueryValues(q), nil, &resp); err != nil {
		return nil, entity.Pagination{}, err
	}
	if resp.Status != dto.StatusSuccess {
		return nil, entity.Pagination{}, fmt.Errorf("listar usuarios: %s: %w", resp.Message, domain.ErrInvalidResponse)
	}
	users := make([]entity.User, 0, len(resp.Data))
	for _, w := range resp.Data {
		users = append(users, w.ToEntity())
	}
	return users, resp.Pagination.ToEntity(), nil
}

// Create da de alta un usuario: POST /user. La credencial viaja en claro
// solo aquí; el backend la almacena hasheada.
func (g *UserGateway) Create(ctx context.Context, u entity.User, password string) (*entity.User, error) {
	payload := dto.CreateUserRequest{
		Name:     u.Name,
		Email:    u.Email,
		Password: password,
		Role:     u.Role,
	}
	var resp dto.UserResponse
	if err := g.c.do(ctx, http.MethodPost, "/user", nil, payload, &resp); err != nil {
		return nil, err
	}
	if resp.Status != dto.StatusSuccess || resp.Data == nil {
		return nil, fmt.Errorf("crear usuario: %s: %w", resp.Message, domain.ErrInvalidResponse)
	}
	created := resp.Data.ToEntity()
	return &created, nil
}

// Delete elimina un usuario: DELETE /user/{id}.
func (g *UserGateway) Delete(ctx context.Context, id int) error {
	return g.c.do(ctx, http.MethodDelete, fmt.Sprintf("/user/%d", id), nil, nil, nil)
}

// Login autentica contra POST /login. A diferencia del resto de
// endpoints, el backend responde {success, data, message} y las
// credenciales rechazadas llegan con success=false (no como fallo de
// transporte), así que se decodifica el cuerpo incluso en non-2xx.
func (g *UserGateway) Login(ctx context.Context, email, password string) (*dto.LoginResult, error) {
	status, raw, err := g.c.request(ctx, http.MethodPost, "/login", nil, dto.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	var envelope dto.LoginEnvelope
	if jsonErr := json.Unmarshal(raw, &envelope); jsonErr != nil {
		if status < 200 || status >= 300 {
			return nil, fmt.Errorf("login: HTTP %d: %w", status, domain.ErrTransport)
		}
		return nil, fmt.Errorf("login: %v: %w", jsonErr, domain.ErrInvalidResponse)
	}

	if !envelope.Success || envelope.Data == nil || envelope.Data.Token == "" {
		msg := envelope.Message
		if msg == "" {
			msg = fmt.Sprintf("HTTP %d", status)
		}
		return nil, fmt.Errorf("login: %s: %w", msg, domain.ErrInvalidCredentials)
	}

	return &dto.LoginResult{
		Token: envelope.Data.Token,
		User:  envelope.Data.User,
		Roles: envelope.Data.Roles,
	}, nil
}
