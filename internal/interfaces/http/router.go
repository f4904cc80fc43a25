// Package http expone el backend de desarrollo: una API Fiber que sirve
// exactamente las formas request/response que el gateway espera, para
// poder ejercitar el modo live sin backend real. El estado vive en los
// mismos stores del core operando en modo mock.
package http

import (
	"sync"

	"github.com/arjunaprint/printdesk-core/internal/application/store"
	"github.com/arjunaprint/printdesk-core/internal/domain/entity"
	"github.com/gofiber/fiber/v2"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Inventory  *store.InventoryStore
	Invoices   *store.InvoiceStore
	Users      *store.UserStore
	Statistics *store.StatisticsStore
	SeedUsers  []entity.User
	JWTSecret  string
	JWTIssuer  string
	JWTExpMin  int
}

// Router registra las rutas de la API de desarrollo. Los stores no son
// seguros para uso concurrente, así que todas las rutas comparten un
// mutex.
func Router(app *fiber.App, deps RouterDeps) {
	var mu sync.Mutex
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.SeedUsers, deps.JWTSecret, deps.JWTIssuer, deps.JWTExpMin)
	api.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	inventoryHandler := NewInventoryHandler(deps.Inventory, &mu)
	inventory := protected.Group("/inventory")
	inventory.Get("/", inventoryHandler.List)
	inventory.Post("/", inventoryHandler.Create)
	inventory.Put("/:id", inventoryHandler.Update)
	inventory.Delete("/:id", inventoryHandler.Delete)

	invoiceHandler := NewInvoiceHandler(deps.Invoices, deps.Inventory, &mu)
	invoices := protected.Group("/invoice")
	invoices.Get("/", invoiceHandler.List)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Patch("/:id", invoiceHandler.UpdateStatus)
	invoices.Delete("/:id", invoiceHandler.Delete)

	// Gestión de usuarios: solo Admin
	userHandler := NewUserHandler(deps.Users, &mu)
	users := protected.Group("/user", RequireRole(entity.RoleAdmin))
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Delete("/:id", userHandler.Delete)

	statsHandler := NewStatisticsHandler(deps.Statistics, &mu)
	stats := protected.Group("/statistics")
	stats.Get("/invoice-summary", statsHandler.Summary)
	stats.Get("/invoice-report", statsHandler.Report)
}
