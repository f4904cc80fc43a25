package entity

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Estados de factura. La transición Pending→Paid es de un solo sentido:
// no existe camino de vuelta a Pending.
const (
	InvoiceStatusPending = "Pending"
	InvoiceStatusPaid    = "Paid"
)

// ItemRef es una instantánea {id, nombre} de un InventoryItem tomada al
// crear la factura. Es un valor copiado, nunca un puntero vivo a la
// colección de inventario: la factura conserva lo vendido aunque el
// artículo cambie o desaparezca después.
type ItemRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// LineItem es una línea de detalle de la factura.
type LineItem struct {
	ItemRef   ItemRef         `json:"selectedItem"`
	Quantity  decimal.Decimal `json:"quantity"` // > 0; admite fracciones (metros, resmas)
	UnitPrice decimal.Decimal `json:"unitPrice"`
	LineTotal decimal.Decimal `json:"total"` // Quantity × UnitPrice
}

// Invoice representa la cabecera de una factura con sus líneas.
type Invoice struct {
	ID            int             `json:"id"`
	InvoiceNumber string          `json:"invoiceNumber"` // INV-<año>-NNN
	CustomerName  string          `json:"customerName"`
	IssueDate     string          `json:"issueDate"` // YYYY-MM-DD
	DueDate       string          `json:"dueDate"`
	Status        string          `json:"status"`
	Discount      decimal.Decimal `json:"discount"`
	TaxEnabled    bool            `json:"taxEnabled"`
	DownPayment   decimal.Decimal `json:"dp"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	Items         []LineItem      `json:"items"`
}

// Outstanding devuelve el saldo pendiente (total − abono). Una factura
// Paid siempre devuelve cero.
func (inv Invoice) Outstanding() decimal.Decimal {
	if inv.Status == InvoiceStatusPaid {
		return decimal.Zero
	}
	return inv.TotalAmount.Sub(inv.DownPayment)
}

// InvoiceNumberFor formatea un número de factura: INV-2025-001, ...
func InvoiceNumberFor(year, n int) string {
	return fmt.Sprintf("INV-%d-%03d", year, n)
}
