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
var _ ports.InventoryGateway = (*InventoryGateway)(nil)

// InventoryGateway transporte remoto de artículos de inventario.
type InventoryGateway struct {
	c *Client
}

// NewInventoryGateway construye el gateway sobre el cliente base.
func NewInventoryGateway(c *Client) *InventoryGateway {
	return &InventoryGateway{c: c}
}

// List pide una página de artículos: GET /inventory?page&per_page&search.
func (g *InventoryGateway) List(ctx context.Context, q ports.ListQuery) ([]entity.InventoryItem, entity.Pagination, error) {
	var resp dto.InventoryListResponse
	if err := g.c.do(ctx, http.MethodGet, "/inventory", listQueryValues(q), nil, &resp); err != nil {
		return nil, entity.Pagination{}, err
	}
	if resp.Status != dto.StatusSuccess {
		return nil, entity.Pagination{}, fmt.Errorf("listar inventario: %s: %w", resp.Message, domain.ErrInvalidResponse)
	}
	items := make([]entity.InventoryItem, 0, len(resp.Data))
	for _, w := range resp.Data {
		items = append(items, w.ToEntity())
	}
	return items, resp.Pagination.ToEntity(), nil
}

// Create da de alta un artículo: POST /inventory.
func (g *InventoryGateway) Create(ctx context.Context, item entity.InventoryItem) (*entity.InventoryItem, error) {
	var resp dto.InventoryItemResponse
	payload := dto.InventoryItemWireFrom(item)
	if err := g.c.do(ctx, http.MethodPost, "/inventory", nil, payload, &resp); err != nil {
		return nil, err
	}
	if resp.Status != dto.StatusSuccess || resp.Data == nil {
		return nil, fmt.Errorf("crear inventario: %s: %w", resp.Message, domain.ErrInvalidResponse)
	}
	created := resp.Data.ToEntity()
	return &created, nil
}

// Update actualiza un artículo: PUT /inventory/{id}.
func (g *InventoryGateway) Update(ctx context.Context, item entity.InventoryItem) (*entity.InventoryItem, error) {
	var resp dto.InventoryItemResponse
	payload := dto.InventoryItemWireFrom(item)
	path := fmt.Sprintf("/inventory/%d", item.ID)
	if err := g.c.do(ctx, http.MethodPut, path, nil, payload, &resp); err != nil {
		return nil, err
	}
	if resp.Status != dto.StatusSuccess || resp.Data == nil {
		return nil, fmt.Errorf("actualizar inventario: %s: %w", resp.Message, domain.ErrInvalidResponse)
	}
	updated := resp.Data.ToEntity()
	return &updated, nil
}

// Delete elimina un artículo: DELETE /inventory/{id}. La respuesta es un
// envoltorio solo de estado.
func (g *InventoryGateway) Delete(ctx context.Context, id int) error {
	return g.c.do(ctx, http.MethodDelete, fmt.Sprintf("/inventory/%d", id), nil, nil, nil)
}
