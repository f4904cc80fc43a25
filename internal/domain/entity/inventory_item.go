package entity

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// InventoryItem representa un artículo de inventario del taller.
// El ID lo asigna la colección al crear (entero creciente); el Code se
// deriva de él con el formato ITM-NNN.
type InventoryItem struct {
	ID                int             `json:"id"`
	Code              string          `json:"code"`
	Name              string          `json:"name"`
	UnitPrice         decimal.Decimal `json:"price"`
	Stock             decimal.Decimal `json:"stock"`
	Unit              string          `json:"unit"`
	LowStockThreshold decimal.Decimal `json:"lowStockThreshold"`
}

// IsLowStock indica si el artículo está en o por debajo de su umbral.
func (i InventoryItem) IsLowStock() bool {
	return i.Stock.LessThanOrEqual(i.LowStockThreshold)
}

// ItemCode formatea un código de artículo: ITM-001, ITM-002, ...
func ItemCode(n int) string {
	return fmt.Sprintf("ITM-%03d", n)
}
