package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/arjunaprint/printdesk-core/internal/application/dto"
	"github.com/arjunaprint/printdesk-core/internal/application/ports"
	"github.com/arjunaprint/printdesk-core/internal/domain"
	"github.com/arjunaprint/printdesk-core/internal/domain/entity"
)

// Verificar en tiempo de compilación que implementa el puerto.
var _ ports.InvoiceGateway = (*InvoiceGateway)(nil)

// InvoiceGateway transporte remoto de facturas.
type InvoiceGateway struct {
	c *Client
}

// NewInvoiceGateway construye el gateway sobre el cliente base.
func NewInvoiceGateway(c *Client) *InvoiceGateway {
	return &InvoiceGateway{c: c}
}

// List pide una página de facturas: GET /invoice?page&per_page&search.
func (g *InvoiceGateway) List(ctx context.Context, q ports.ListQuery) ([]entity.Invoice, entity.Pagination, error) {
	var resp dto.InvoiceListResponse
	if err := g.c.do(ctx, http.MethodGet, "/invoice", listQueryValues(q), nil, &resp); err != nil {
		return nil, entity.Pagination{}, err
	}
	if resp.Status != dto.StatusSuccess {
		return nil, entity.Pagination{}, fmt.Errorf("listar facturas: %s: %w", resp.Message, domain.ErrInvalidResponse)
	}
	invoices := make([]entity.Invoice, 0, len(resp.Data))
	for _, w := range resp.Data {
		invoices = append(invoices, w.ToEntity())
	}
	return invoices, resp.Pagination.ToEntity(), nil
}

// GetByID consulta una factura: GET /invoice/{id}.
func (g *InvoiceGateway) GetByID(ctx context.Context, id int) (*entity.Invoice, error) {
	var resp dto.InvoiceResponse
	if err := g.c.do(ctx, http.MethodGet, fmt.Sprintf("/invoice/%d", id), nil, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Status != dto.StatusSuccess || resp.Data == nil {
		return nil, fmt.Errorf("consultar factura %d: %s: %w", id, resp.Message, domain.ErrInvalidResponse)
	}
	inv := resp.Data.ToEntity()
	return &inv, nil
}

// Create da de alta una factura: POST /invoice.
func (g *InvoiceGateway) Create(ctx context.Context, inv entity.Invoice) (*entity.Invoice, error) {
	var resp dto.InvoiceResponse
	payload := dto.InvoiceWireFrom(inv)
	if err := g.c.do(ctx, http.MethodPost, "/invoice", nil, payload, &resp); err != nil {
		return nil, err
	}
	if resp.Status != dto.StatusSuccess || resp.Data == nil {
		return nil, fmt.Errorf("crear factura: %s: %w", resp.Message, domain.ErrInvalidResponse)
	}
	created := resp.Data.ToEntity()
	return &created, nil
}

// Update actualiza una factura completa: PUT /invoice/{id}.
func (g *InvoiceGateway) Update(ctx context.Context, inv entity.Invoice) (*entity.Invoice, error) {
	var resp dto.InvoiceResponse
	payload := dto.InvoiceWireFrom(inv)
	if err := g.c.do(ctx, http.MethodPut, fmt.Sprintf("/invoice/%d", inv.ID), nil, payload, &resp); err != nil {
		return nil, err
	}
	if resp.Status != dto.StatusSuccess || resp.Data == nil {
		return nil, fmt.Errorf("actualizar factura %d: %s: %w", inv.ID, resp.Message, domain.ErrInvalidResponse)
	}
	updated := resp.Data.ToEntity()
	return &updated, nil
}

// UpdateStatus cambia solo el estado: PATCH /invoice/{id}.
func (g *InvoiceGateway) UpdateStatus(ctx context.Context, id int, status string) error {
	payload := dto.InvoiceStatusRequest{Status: status}
	return g.c.do(ctx, http.MethodPatch, fmt.Sprintf("/invoice/%d", id), nil, payload, nil)
}

// Delete elimina una factura: DELETE /invoice/{id}.
func (g *InvoiceGateway) Delete(ctx context.Context, id int) error {
	return g.c.do(ctx, http.MethodDelete, fmt.Sprintf("/invoice/%d", id), nil, nil, nil)
}
