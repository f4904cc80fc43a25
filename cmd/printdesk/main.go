// printdesk arranca el core completo y recorre un flujo de demostración:
// restaurar sesión, iniciar sesión, cargar inventario y facturas, crear
// una factura con descuento de stock y consultar el reporte.
package main

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/arjunaprint/printdesk-core/internal/application/auth"
	"github.com/arjunaprint/printdesk-core/internal/application/dto"
	"github.com/arjunaprint/printdesk-core/internal/application/nav"
	"github.com/arjunaprint/printdesk-core/internal/application/ports"
	"github.com/arjunaprint/printdesk-core/internal/application/seed"
	"github.com/arjunaprint/printdesk-core/internal/application/store"
	"github.com/arjunaprint/printdesk-core/internal/domain/entity"
	"github.com/arjunaprint/printdesk-core/internal/infrastructure/localdb"
	"github.com/arjunaprint/printdesk-core/internal/infrastructure/rest"
	"github.com/arjunaprint/printdesk-core/pkg/config"
	"github.com/arjunaprint/printdesk-core/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "debug"})
	log.Info().
		Str("env", cfg.App.Env).
		Str("mode", cfg.App.Mode).
		Msg("iniciando printdesk")

	kv, err := localdb.Open(cfg.Session.DBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento de sesión")
	}
	defer kv.Close()

	// Gateways remotos: solo se usan en modo live, pero el cableado es el
	// mismo en ambos modos.
	client := rest.NewClient(cfg.API.BaseURL, time.Duration(cfg.API.TimeoutSeconds)*time.Second, rest.TokenFromKV(kv), log)
	var (
		inventoryGW ports.InventoryGateway  = rest.NewInventoryGateway(client)
		invoiceGW   ports.InvoiceGateway    = rest.NewInvoiceGateway(client)
		userGW      ports.UserGateway       = rest.NewUserGateway(client)
		statsGW     ports.StatisticsGateway = rest.NewStatisticsGateway(client)
	)

	mock := cfg.App.IsMock()
	storeCfg := store.Config{Mock: mock, PerPage: cfg.Store.PerPage, TaxPercent: cfg.Store.TaxPercent}
	inventoryStore := store.NewInventoryStore(storeCfg, inventoryGW, seed.InventoryItems(), log)
	invoiceStore := store.NewInvoiceStore(storeCfg, invoiceGW, seed.Invoices(time.Now()), log)
	userStore := store.NewUserStore(storeCfg, userGW, seed.Users(), log)
	statsStore := store.NewStatisticsStore(storeCfg, statsGW, invoiceStore, log)

	manager := auth.NewManager(mock, userStore, userGW, kv, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log)

	ctx := context.Background()

	// Arranque: intentar restaurar la sesión persistida.
	manager.RestoreSession()
	if s := manager.Session(); s.IsAuthenticated {
		log.Info().Str("role", s.Role).Msg("sesión restaurada")
	} else {
		res := manager.Login(ctx, seed.AdminEmail, seed.AdminPassword)
		if !res.Success {
			log.Fatal().Str("reason", res.Message).Msg("login fallido")
		}
		log.Info().Str("role", res.Role).Msg("sesión iniciada")
	}

	// El guard decide cada transición de ruta contra la sesión actual.
	decision := nav.Evaluate(nav.RouteUsers, manager.Session(), nav.RouteDashboard)
	log.Info().
		Str("route", nav.RouteUsers).
		Str("target", decision.Target).
		Str("reason", decision.Reason).
		Msg("guard de navegación evaluado")

	// Inventario: primera página y artículos bajo mínimo.
	_ = inventoryStore.FetchAll(ctx, 1, cfg.Store.PerPage, "")
	for _, it := range inventoryStore.LowStockItems() {
		log.Warn().Str("code", it.Code).Str("name", it.Name).
			Str("stock", it.Stock.String()).Msg("stock bajo mínimo")
	}

	// Nueva factura con una línea resoluble; el stock se descuenta como
	// efecto consultivo.
	_ = invoiceStore.FetchAll(ctx, 1, cfg.Store.PerPage, "")
	items := inventoryStore.Items()
	if len(items) > 0 {
		line := entity.LineItem{
			ItemRef:   entity.ItemRef{ID: items[0].ID, Name: items[0].Name},
			Quantity:  decimal.NewFromInt(5),
			UnitPrice: items[0].UnitPrice,
		}
		created, err := invoiceStore.Create(ctx, entity.Invoice{
			CustomerName: "Cliente de mostrador",
			IssueDate:    time.Now().Format("2006-01-02"),
			DueDate:      time.Now().AddDate(0, 0, 15).Format("2006-01-02"),
			Items:        []entity.LineItem{line},
		})
		if err != nil {
			log.Error().Err(err).Msg("crear factura")
		} else {
			inventoryStore.ReduceStockFromInvoice(*created)
			log.Info().Str("number", created.InvoiceNumber).
				Str("total", created.TotalAmount.String()).Msg("factura creada")
		}
	}

	if rep := statsStore.Report(ctx, dto.PeriodThisMonth); rep != nil {
		log.Info().
			Str("income", rep.TotalIncome.String()).
			Str("receivable", rep.TotalReceivable.String()).
			Str("top", rep.TopProduct).
			Msg("reporte del mes")
	}
}
