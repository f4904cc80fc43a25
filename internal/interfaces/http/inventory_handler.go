package http

import (
	"errors"
	"sync"

	"github.com/arjunaprint/printdesk-core/internal/application/dto"
	"github.com/arjunaprint/printdesk-core/internal/application/store"
	"github.com/arjunaprint/printdesk-core/internal/domain"
	"github.com/gofiber/fiber/v2"
)

// InventoryHandler maneja las peticiones de inventario (protegido).
type InventoryHandler struct {
	store *store.InventoryStore
	mu    *sync.Mutex
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(s *store.InventoryStore, mu *sync.Mutex) *InventoryHandler {
	return &InventoryHandler{store: s, mu: mu}
}

// List responde GET /api/inventory?page&per_page&search.
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	page := c.QueryInt("page", 1)
	perPage := c.QueryInt("per_page", 10)
	search := c.Query("search")
	if err := h.store.FetchAll(c.Context(), page, perPage, search); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Status: "error", Message: err.Error()})
	}

	items := h.store.Items()
	data := make([]dto.InventoryItemWire, 0, len(items))
	for _, it := range items {
		data = append(data, dto.InventoryItemWireFrom(it))
	}
	return c.JSON(dto.InventoryListResponse{
		Status:     dto.StatusSuccess,
		Data:       data,
		Pagination: dto.WirePaginationFrom(h.store.Pagination()),
	})
}

// Create responde POST /api/inventory.
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	var in dto.InventoryItemWire
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Status: "error", Message: "cuerpo inválido"})
	}
	created, err := h.store.Create(c.Context(), in.ToEntity())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Status: "error", Message: err.Error()})
	}
	wire := dto.InventoryItemWireFrom(*created)
	return c.Status(fiber.StatusCreated).JSON(dto.InventoryItemResponse{Status: dto.StatusSuccess, Data: &wire})
}

// Update responde PUT /api/inventory/:id.
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Status: "error", Message: "id inválido"})
	}
	var in dto.InventoryItemWire
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Status: "error", Message: "cuerpo inválido"})
	}
	item := in.ToEntity()
	item.ID = id
	updated, err := h.store.Update(c.Context(), item)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Status: "error", Message: "artículo no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Status: "error", Message: err.Error()})
	}
	wire := dto.InventoryItemWireFrom(*updated)
	return c.JSON(dto.InventoryItemResponse{Status: dto.StatusSuccess, Data: &wire})
}

// Delete responde DELETE /api/inventory/:id con envoltorio solo de estado.
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Status: "error", Message: "id inválido"})
	}
	if err := h.store.Delete(c.Context(), id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Status: "error", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"status": dto.StatusSuccess, "message": "artículo eliminado"})
}
