package http

import (
	"errors"
	"sync"

	"github.com/arjunaprint/printdesk-core/internal/application/dto"
	"github.com/arjunaprint/printdesk-core/internal/application/store"
	"github.com/arjunaprint/printdesk-core/internal/domain"
	"github.com/arjunaprint/printdesk-core/internal/domain/entity"
	"github.com/gofiber/fiber/v2"
)

// InvoiceHandler maneja las peticiones de facturas (protegido). Tras
// crear una factura descuenta el stock de las líneas resolubles, igual
// que hace el core en modo mock.
type InvoiceHandler struct {
	store     *store.InvoiceStore
	inventory *store.InventoryStore
	mu        *sync.Mutex
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(s *store.InvoiceStore, inv *store.InventoryStore, mu *sync.Mutex) *InvoiceHandler {
	return &InvoiceHandler{store: s, inventory: inv, mu: mu}
}

// List responde GET /api/invoice?page&per_page&search.
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	page := c.QueryInt("page", 1)
	perPage := c.QueryInt("per_page", 10)
	search := c.Query("search")
	if err := h.store.FetchAll(c.Context(), page, perPage, search); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Status: "error", Message: err.Error()})
	}

	invoices := h.store.Invoices()
	data := make([]dto.InvoiceWire, 0, len(invoices))
	for _, inv := range invoices {
		data = append(data, dto.InvoiceWireFrom(inv))
	}
	return c.JSON(dto.InvoiceListResponse{
		Status:     dto.StatusSuccess,
		Data:       data,
		Pagination: dto.WirePaginationFrom(h.store.Pagination()),
	})
}

// GetByID responde GET /api/invoice/:id.
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Status: "error", Message: "id inválido"})
	}
	inv := h.store.GetByID(c.Context(), id)
	if inv == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Status: "error", Message: "factura no encontrada"})
	}
	wire := dto.InvoiceWireFrom(*inv)
	return c.JSON(dto.InvoiceResponse{Status: dto.StatusSuccess, Data: &wire})
}

// Create responde POST /api/invoice y descuenta stock de las líneas.
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	var in dto.InvoiceWire
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Status: "error", Message: "cuerpo inválido"})
	}
	created, err := h.store.Create(c.Context(), in.ToEntity())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Status: "error", Message: err.Error()})
	}
	h.inventory.ReduceStockFromInvoice(*created)

	wire := dto.InvoiceWireFrom(*created)
	return c.Status(fiber.StatusCreated).JSON(dto.InvoiceResponse{Status: dto.StatusSuccess, Data: &wire})
}

// Update responde PUT /api/invoice/:id.
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Status: "error", Message: "id inválido"})
	}
	var in dto.InvoiceWire
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Status: "error", Message: "cuerpo inválido"})
	}
	inv := in.ToEntity()
	inv.ID = id
	updated, err := h.store.Update(c.Context(), inv)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Status: "error", Message: "factura no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Status: "error", Message: err.Error()})
	}
	wire := dto.InvoiceWireFrom(*updated)
	return c.JSON(dto.InvoiceResponse{Status: dto.StatusSuccess, Data: &wire})
}

// UpdateStatus responde PATCH /api/invoice/:id. Solo se admite la
// transición a Paid; no hay camino de vuelta a Pending.
func (h *InvoiceHandler) UpdateStatus(c *fiber.Ctx) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Status: "error", Message: "id inválido"})
	}
	var in dto.InvoiceStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Status: "error", Message: "cuerpo inválido"})
	}
	if in.Status != entity.InvoiceStatusPaid {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Status: "error", Message: "transición de estado no permitida"})
	}
	if _, err := h.store.MarkAsPaid(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Status: "error", Message: "factura no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Status: "error", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"status": dto.StatusSuccess, "message": "factura marcada como pagada"})
}

// Delete responde DELETE /api/invoice/:id.
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Status: "error", Message: "id inválido"})
	}
	if err := h.store.Delete(c.Context(), id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Status: "error", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"status": dto.StatusSuccess, "message": "factura eliminada"})
}
