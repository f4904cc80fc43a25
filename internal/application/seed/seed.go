// Package seed contiene los datos de demostración del modo mock: el
// catálogo del taller de impresión, unas facturas de ejemplo y los
// usuarios con los que se puede iniciar sesión sin backend.
package seed

import (
	"time"

	"github.com/arjunaprint/printdesk-core/internal/domain/entity"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// Credenciales de demostración (solo modo mock).
const (
	AdminEmail    = "admin@graficasarjuna.com"
	AdminPassword = "password123"
	StaffEmail    = "lucia@graficasarjuna.com"
	StaffPassword = "password456"
	// Cuenta inactiva: debe rechazar el login aunque la credencial coincida.
	InactiveEmail    = "carlos@graficasarjuna.com"
	InactivePassword = "password789"
)

func d(s string) decimal.Decimal {
	v, _ := decimal.NewFromString(s)
	return v
}

// hash calcula el bcrypt de la credencial de demo. MinCost porque son
// cuentas ficticias reconstruidas en cada arranque.
func hash(password string) string {
	h, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return string(h)
}

// Users devuelve los usuarios semilla. Los hashes se generan al vuelo
// para no fijar costes de bcrypt en el fuente.
func Users() []entity.User {
	return []entity.User{
		{
			ID: 1, Name: "Amalia Serrano", Email: AdminEmail,
			PasswordHash: hash(AdminPassword),
			Role:         entity.RoleAdmin, Status: entity.StatusActive,
			JoinDate: "2025-01-15",
		},
		{
			ID: 2, Name: "Lucía Benítez", Email: StaffEmail,
			PasswordHash: hash(StaffPassword),
			Role:         entity.RoleStaff, Status: entity.StatusActive,
			JoinDate: "2025-02-20",
		},
		{
			ID: 3, Name: "Carlos Urrea", Email: InactiveEmail,
			PasswordHash: hash(InactivePassword),
			Role:         entity.RoleStaff, Status: entity.StatusInactive,
			JoinDate: "2025-03-10",
		},
	}
}

// InventoryItems devuelve el catálogo semilla del taller. Trece artículos
// para que la paginación por defecto (10) tenga más de una página.
func InventoryItems() []entity.InventoryItem {
	items := []entity.InventoryItem{
		{ID: 1, Name: "Lona Flex 280gr", UnitPrice: d("25000"), Stock: d("150"), Unit: "metro", LowStockThreshold: d("50")},
		{ID: 2, Name: "Vinilo Adhesivo A3+", UnitPrice: d("15000"), Stock: d("8"), Unit: "pliego", LowStockThreshold: d("20")},
		{ID: 3, Name: "Tarjetas de Presentación (caja)", UnitPrice: d("50000"), Stock: d("50"), Unit: "caja", LowStockThreshold: d("10")},
		{ID: 4, Name: "Volantes A5 Papel Esmaltado (resma)", UnitPrice: d("450000"), Stock: d("3"), Unit: "resma", LowStockThreshold: d("5")},
		{ID: 5, Name: "Pendón Araña 60x160", UnitPrice: d("120000"), Stock: d("25"), Unit: "unidad", LowStockThreshold: d("10")},
		{ID: 6, Name: "Papel Bond 90gr (resma)", UnitPrice: d("28000"), Stock: d("60"), Unit: "resma", LowStockThreshold: d("15")},
		{ID: 7, Name: "Vinilo Microperforado", UnitPrice: d("35000"), Stock: d("40"), Unit: "metro", LowStockThreshold: d("12")},
		{ID: 8, Name: "Plastificado Mate (pliego)", UnitPrice: d("4500"), Stock: d("500"), Unit: "pliego", LowStockThreshold: d("100")},
		{ID: 9, Name: "Tinta Ecosolvente Cian (litro)", UnitPrice: d("180000"), Stock: d("4"), Unit: "litro", LowStockThreshold: d("3")},
		{ID: 10, Name: "Tinta Ecosolvente Magenta (litro)", UnitPrice: d("180000"), Stock: d("2"), Unit: "litro", LowStockThreshold: d("3")},
		{ID: 11, Name: "Argollas para Pendón (bolsa)", UnitPrice: d("12000"), Stock: d("80"), Unit: "bolsa", LowStockThreshold: d("20")},
		{ID: 12, Name: "Papel Fotográfico A4 (paquete)", UnitPrice: d("32000"), Stock: d("35"), Unit: "paquete", LowStockThreshold: d("10")},
		{ID: 13, Name: "Papel Bond A4 75gr (resma)", UnitPrice: d("55000"), Stock: d("90"), Unit: "resma", LowStockThreshold: d("25")},
	}
	for i := range items {
		items[i].Code = entity.ItemCode(items[i].ID)
	}
	return items
}

// Invoices devuelve facturas semilla con fechas relativas al día actual,
// para que el dashboard de demo siempre tenga datos en "este mes" y en
// "mes pasado".
func Invoices(now time.Time) []entity.Invoice {
	day := func(offsetDays int) string {
		return now.AddDate(0, 0, offsetDays).Format("2006-01-02")
	}
	lastMonth := func(dayOfMonth int) string {
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return first.AddDate(0, -1, dayOfMonth-1).Format("2006-01-02")
	}
	year := now.Year()
	return []entity.Invoice{
		{
			ID:            1,
			InvoiceNumber: entity.InvoiceNumberFor(year, 20),
			CustomerName:  "Comercial El Progreso",
			IssueDate:     day(-2),
			DueDate:       day(13),
			Status:        entity.InvoiceStatusPaid,
			DownPayment:   d("1200000"),
			TotalAmount:   d("1200000"),
			Items: []entity.LineItem{
				{
					ItemRef:   entity.ItemRef{ID: 5, Name: "Pendón Araña 60x160"},
					Quantity:  d("10"),
					UnitPrice: d("120000"),
					LineTotal: d("1200000"),
				},
			},
		},
		{
			ID:            2,
			InvoiceNumber: entity.InvoiceNumberFor(year, 19),
			CustomerName:  "Colegio Nueva Esperanza",
			IssueDate:     day(-5),
			DueDate:       day(10),
			Status:        entity.InvoiceStatusPending,
			DownPayment:   d("200000"),
			TotalAmount:   d("550000"),
			Items: []entity.LineItem{
				{
					ItemRef:   entity.ItemRef{ID: 13, Name: "Papel Bond A4 75gr (resma)"},
					Quantity:  d("10"),
					UnitPrice: d("55000"),
					LineTotal: d("550000"),
				},
			},
		},
		{
			ID:            3,
			InvoiceNumber: entity.InvoiceNumberFor(year, 18),
			CustomerName:  "Café del Parque",
			IssueDate:     lastMonth(15),
			DueDate:       lastMonth(28),
			Status:        entity.InvoiceStatusPaid,
			DownPayment:   d("500000"),
			TotalAmount:   d("500000"),
			Items: []entity.LineItem{
				{
					ItemRef:   entity.ItemRef{ID: 3, Name: "Tarjetas de Presentación (caja)"},
					Quantity:  d("10"),
					UnitPrice: d("50000"),
					LineTotal: d("500000"),
				},
			},
		},
	}
}
