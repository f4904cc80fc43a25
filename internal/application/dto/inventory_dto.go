package dto

import (
	"github.com/arjunaprint/printdesk-core/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// InventoryItemWire forma de cable de un artículo de inventario.
type InventoryItemWire struct {
	ID                int             `json:"id"`
	Code              string          `json:"code"`
	Name              string          `json:"name"`
	Price             decimal.Decimal `json:"price"`
	Stock             decimal.Decimal `json:"stock"`
	Unit              string          `json:"unit"`
	LowStockThreshold decimal.Decimal `json:"low_stock_threshold"`
}

// ToEntity normaliza la forma de cable al modelo de dominio.
func (w InventoryItemWire) ToEntity() entity.InventoryItem {
	return entity.InventoryItem{
		ID:                w.ID,
		Code:              w.Code,
		Name:              w.Name,
		UnitPrice:         w.Price,
		Stock:             w.Stock,
		Unit:              w.Unit,
		LowStockThreshold: w.LowStockThreshold,
	}
}

// InventoryItemWireFrom construye la forma de cable desde el dominio.
func InventoryItemWireFrom(i entity.InventoryItem) InventoryItemWire {
	return InventoryItemWire{
		ID:                i.ID,
		Code:              i.Code,
		Name:              i.Name,
		Price:             i.UnitPrice,
		Stock:             i.Stock,
		Unit:              i.Unit,
		LowStockThreshold: i.LowStockThreshold,
	}
}

// InventoryListResponse respuesta de GET /inventory.
type InventoryListResponse struct {
	Status     string              `json:"status"`
	Data       []InventoryItemWire `json:"data"`
	Pagination WirePagination      `json:"pagination"`
	Message    string              `json:"message"`
}

// InventoryItemResponse respuesta de POST/PUT /inventory.
type InventoryItemResponse struct {
	Status  string             `json:"status"`
	Data    *InventoryItemWire `json:"data"`
	Message string             `json:"message"`
}
