// mockapi es el backend de desarrollo: sirve las mismas formas
// request/response que espera el Remote Access Gateway, con estado en
// memoria sembrado desde los datos de demostración. Permite ejercitar el
// modo live del core sin backend real.
package main

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/arjunaprint/printdesk-core/internal/application/seed"
	"github.com/arjunaprint/printdesk-core/internal/application/store"
	httpRouter "github.com/arjunaprint/printdesk-core/internal/interfaces/http"
	"github.com/arjunaprint/printdesk-core/pkg/config"
	"github.com/arjunaprint/printdesk-core/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando backend de desarrollo")

	// El estado del servidor son los propios stores del core en modo mock.
	storeCfg := store.Config{Mock: true, PerPage: cfg.Store.PerPage, TaxPercent: cfg.Store.TaxPercent}
	inventoryStore := store.NewInventoryStore(storeCfg, nil, seed.InventoryItems(), log)
	invoiceStore := store.NewInvoiceStore(storeCfg, nil, seed.Invoices(time.Now()), log)
	userStore := store.NewUserStore(storeCfg, nil, seed.Users(), log)
	statsStore := store.NewStatisticsStore(storeCfg, nil, invoiceStore, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name + "-mockapi",
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		Inventory:  inventoryStore,
		Invoices:   invoiceStore,
		Users:      userStore,
		Statistics: statsStore,
		SeedUsers:  seed.Users(),
		JWTSecret:  cfg.JWT.Secret,
		JWTIssuer:  cfg.JWT.Issuer,
		JWTExpMin:  cfg.JWT.Expiration,
	})

	if err := app.Listen(":8080"); err != nil {
		log.Fatal().Err(err).Msg("servidor detenido")
	}
}
