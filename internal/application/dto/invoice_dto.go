package dto

import (
	"github.com/arjunaprint/printdesk-core/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// LineItemWire línea de factura en el cable. El artículo viaja como la
// instantánea {inventory_id, item_name} tomada al crear la factura.
type LineItemWire struct {
	InventoryID int             `json:"inventory_id"`
	ItemName    string          `json:"item_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Total       decimal.Decimal `json:"total"`
}

// InvoiceWire forma de cable de una factura completa.
type InvoiceWire struct {
	ID            int             `json:"id"`
	InvoiceNumber string          `json:"invoice_number"`
	CustomerName  string          `json:"customer_name"`
	IssueDate     string          `json:"issue_date"`
	DueDate       string          `json:"due_date"`
	Status        string          `json:"status"`
	Discount      decimal.Decimal `json:"discount"`
	TaxEnabled    bool            `json:"tax_enabled"`
	DownPayment   decimal.Decimal `json:"down_payment"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Items         []LineItemWire  `json:"items"`
}

// ToEntity normaliza la forma de cable al modelo de dominio.
func (w InvoiceWire) ToEntity() entity.Invoice {
	items := make([]entity.LineItem, 0, len(w.Items))
	for _, it := range w.Items {
		items = append(items, entity.LineItem{
			ItemRef:   entity.ItemRef{ID: it.InventoryID, Name: it.ItemName},
			Quantity:  it.Quantity,
			UnitPrice: it.Price,
			LineTotal: it.Total,
		})
	}
	return entity.Invoice{
		ID:            w.ID,
		InvoiceNumber: w.InvoiceNumber,
		CustomerName:  w.CustomerName,
		IssueDate:     w.IssueDate,
		DueDate:       w.DueDate,
		Status:        w.Status,
		Discount:      w.Discount,
		TaxEnabled:    w.TaxEnabled,
		DownPayment:   w.DownPayment,
		TotalAmount:   w.TotalAmount,
		Items:         items,
	}
}

// InvoiceWireFrom construye la forma de cable desde el dominio.
func InvoiceWireFrom(inv entity.Invoice) InvoiceWire {
	items := make([]LineItemWire, 0, len(inv.Items))
	for _, it := range inv.Items {
		items = append(items, LineItemWire{
			InventoryID: it.ItemRef.ID,
			ItemName:    it.ItemRef.Name,
			Quantity:    it.Quantity,
			Price:       it.UnitPrice,
			Total:       it.LineTotal,
		})
	}
	return InvoiceWire{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		CustomerName:  inv.CustomerName,
		IssueDate:     inv.IssueDate,
		DueDate:       inv.DueDate,
		Status:        inv.Status,
		Discount:      inv.Discount,
		TaxEnabled:    inv.TaxEnabled,
		DownPayment:   inv.DownPayment,
		TotalAmount:   inv.TotalAmount,
		Items:         items,
	}
}

// InvoiceStatusRequest cuerpo de PATCH /invoice/{id}.
type InvoiceStatusRequest struct {
	Status string `json:"status"`
}

// InvoiceListResponse respuesta de GET /invoice.
type InvoiceListResponse struct {
	Status     string         `json:"status"`
	Data       []InvoiceWire  `json:"data"`
	Pagination WirePagination `json:"pagination"`
	Message    string         `json:"message"`
}

// InvoiceResponse respuesta de GET/POST/PUT /invoice/{id}.
type InvoiceResponse struct {
	Status  string       `json:"status"`
	Data    *InvoiceWire `json:"data"`
	Message string       `json:"message"`
}
