package http

import (
	"sync"

	"github.com/arjunaprint/printdesk-core/internal/application/dto"
	"github.com/arjunaprint/printdesk-core/internal/application/store"
	"github.com/arjunaprint/printdesk-core/internal/domain/entity"
	"github.com/gofiber/fiber/v2"
)

// UserHandler maneja la gestión de usuarios (protegido, solo Admin).
type UserHandler struct {
	store *store.UserStore
	mu    *sync.Mutex
}

// NewUserHandler construye el handler.
func NewUserHandler(s *store.UserStore, mu *sync.Mutex) *UserHandler {
	return &UserHandler{store: s, mu: mu}
}

// List responde GET /api/user?page&per_page&search.
func (h *UserHandler) List(c *fiber.Ctx) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	page := c.QueryInt("page", 1)
	perPage := c.QueryInt("per_page", 10)
	search := c.Query("search")
	if err := h.store.FetchAll(c.Context(), page, perPage, search); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Status: "error", Message: err.Error()})
	}

	users := h.store.Users()
	data := make([]dto.UserWire, 0, len(users))
	for _, u := range users {
		data = append(data, dto.UserWireFrom(u))
	}
	return c.JSON(dto.UserListResponse{
		Status:     dto.StatusSuccess,
		Data:       data,
		Pagination: dto.WirePaginationFrom(h.store.Pagination()),
	})
}

// Create responde POST /api/user.
func (h *UserHandler) Create(c *fiber.Ctx) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Status: "error", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Status: "error", Message: "email y contraseña son obligatorios"})
	}
	role := in.Role
	if role == "" {
		role = entity.RoleStaff
	}
	created, err := h.store.Create(c.Context(), entity.User{
		Name:  in.Name,
		Email: in.Email,
		Role:  role,
	}, in.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Status: "error", Message: err.Error()})
	}
	wire := dto.UserWireFrom(*created)
	return c.Status(fiber.StatusCreated).JSON(dto.UserResponse{Status: dto.StatusSuccess, Data: &wire})
}

// Delete responde DELETE /api/user/:id.
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Status: "error", Message: "id inválido"})
	}
	if err := h.store.Delete(c.Context(), id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Status: "error", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"status": dto.StatusSuccess, "message": "usuario eliminado"})
}
