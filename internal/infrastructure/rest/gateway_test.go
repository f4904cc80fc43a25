package rest_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arjunaprint/printdesk-core/internal/application/dto"
	"github.com/arjunaprint/printdesk-core/internal/application/ports"
	"github.com/arjunaprint/printdesk-core/internal/domain"
	"github.com/arjunaprint/printdesk-core/internal/domain/entity"
	"github.com/arjunaprint/printdesk-core/internal/infrastructure/rest"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*rest.Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return rest.NewClient(srv.URL, 5*time.Second, rest.StaticToken("tok-de-test"), nil), srv
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

// ──────────────────────────────────────────────────────────────────────────────
// Inventario
// ──────────────────────────────────────────────────────────────────────────────

// El listado envía la query esperada, inyecta el bearer y normaliza el
// envoltorio {status, data, pagination}.
func TestInventoryGateway_List(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/inventory", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "5", r.URL.Query().Get("per_page"))
		assert.Equal(t, "lona", r.URL.Query().Get("search"))
		assert.Equal(t, "Bearer tok-de-test", r.Header.Get("Authorization"))

		writeJSON(t, w, http.StatusOK, dto.InventoryListResponse{
			Status: dto.StatusSuccess,
			Data: []dto.InventoryItemWire{
				{ID: 1, Code: "ITM-001", Name: "Lona Flex 280gr", Price: decimal.NewFromInt(25000), Stock: decimal.NewFromInt(150), Unit: "metro", LowStockThreshold: decimal.NewFromInt(50)},
			},
			Pagination: dto.WirePagination{CurrentPage: 2, PerPage: 5, Total: 6, LastPage: 2, From: 6, To: 6, HasMorePages: false},
		})
	})

	gw := rest.NewInventoryGateway(c)
	items, pg, err := gw.List(context.Background(), ports.ListQuery{Page: 2, PerPage: 5, Search: "lona"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Lona Flex 280gr", items[0].Name)
	assert.True(t, items[0].UnitPrice.Equal(decimal.NewFromInt(25000)))
	assert.Equal(t, 6, pg.Total)
	assert.Equal(t, 2, pg.CurrentPage)
	assert.False(t, pg.HasMore)
}

// Un envoltorio con status distinto de success es respuesta inválida
// aunque el HTTP sea 200.
func TestInventoryGateway_ListEnvoltorioNoExitoso(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, dto.InventoryListResponse{Status: "error", Message: "algo salió mal"})
	})

	gw := rest.NewInventoryGateway(c)
	_, _, err := gw.List(context.Background(), ports.ListQuery{})
	assert.ErrorIs(t, err, domain.ErrInvalidResponse)
}

func TestInventoryGateway_Create(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/inventory", r.URL.Path)

		var payload dto.InventoryItemWire
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "Vinilo Mate", payload.Name)

		payload.ID = 14
		payload.Code = "ITM-014"
		writeJSON(t, w, http.StatusCreated, dto.InventoryItemResponse{Status: dto.StatusSuccess, Data: &payload})
	})

	gw := rest.NewInventoryGateway(c)
	created, err := gw.Create(context.Background(), entity.InventoryItem{Name: "Vinilo Mate", UnitPrice: decimal.NewFromInt(12000)})
	require.NoError(t, err)
	assert.Equal(t, 14, created.ID)
	assert.Equal(t, "ITM-014", created.Code)
}

func TestInventoryGateway_Delete(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/inventory/7", r.URL.Path)
		writeJSON(t, w, http.StatusOK, dto.ErrorResponse{Status: dto.StatusSuccess})
	})

	gw := rest.NewInventoryGateway(c)
	assert.NoError(t, gw.Delete(context.Background(), 7))
}

// ──────────────────────────────────────────────────────────────────────────────
// Taxonomía de errores HTTP
// ──────────────────────────────────────────────────────────────────────────────

func TestClient_TraduccionDeEstados(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"401 es no autorizado", http.StatusUnauthorized, domain.ErrUnauthorized},
		{"403 es no autorizado", http.StatusForbidden, domain.ErrUnauthorized},
		{"404 es no encontrado", http.StatusNotFound, domain.ErrNotFound},
		{"500 es fallo de transporte", http.StatusInternalServerError, domain.ErrTransport},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(t, w, tc.status, dto.ErrorResponse{Status: "error", Message: "falló"})
			})
			gw := rest.NewInventoryGateway(c)
			_, _, err := gw.List(context.Background(), ports.ListQuery{})
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// Un servidor caído es fallo de transporte, no pánico.
func TestClient_ServidorCaido(t *testing.T) {
	c, srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	srv.Close()

	gw := rest.NewInventoryGateway(c)
	_, _, err := gw.List(context.Background(), ports.ListQuery{})
	assert.ErrorIs(t, err, domain.ErrTransport)
}

// Sin token no viaja cabecera Authorization.
func TestClient_SinToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, dto.InventoryListResponse{Status: dto.StatusSuccess})
	}))
	t.Cleanup(srv.Close)

	c := rest.NewClient(srv.URL, 5*time.Second, rest.StaticToken(""), nil)
	gw := rest.NewInventoryGateway(c)
	_, _, err := gw.List(context.Background(), ports.ListQuery{})
	assert.NoError(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Facturas
// ──────────────────────────────────────────────────────────────────────────────

// El cambio de estado viaja como PATCH con solo el campo status.
func TestInvoiceGateway_UpdateStatus(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/invoice/2", r.URL.Path)

		var payload dto.InvoiceStatusRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, entity.InvoiceStatusPaid, payload.Status)

		writeJSON(t, w, http.StatusOK, dto.ErrorResponse{Status: dto.StatusSuccess})
	})

	gw := rest.NewInvoiceGateway(c)
	assert.NoError(t, gw.UpdateStatus(context.Background(), 2, entity.InvoiceStatusPaid))
}

func TestInvoiceGateway_GetByID(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/invoice/3", r.URL.Path)
		writeJSON(t, w, http.StatusOK, dto.InvoiceResponse{
			Status: dto.StatusSuccess,
			Data: &dto.InvoiceWire{
				ID:            3,
				InvoiceNumber: "INV-2025-018",
				CustomerName:  "Café del Parque",
				Status:        entity.InvoiceStatusPaid,
				TotalAmount:   decimal.NewFromInt(500000),
			},
		})
	})

	gw := rest.NewInvoiceGateway(c)
	inv, err := gw.GetByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Café del Parque", inv.CustomerName)
	assert.True(t, inv.TotalAmount.Equal(decimal.NewFromInt(500000)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Autenticación
// ──────────────────────────────────────────────────────────────────────────────

func TestUserGateway_LoginCorrecto(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/login", r.URL.Path)

		var payload dto.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "admin@graficasarjuna.com", payload.Email)

		writeJSON(t, w, http.StatusOK, dto.LoginEnvelope{
			Success: true,
			Data: &dto.LoginData{
				Token: "token-emitido",
				User:  dto.UserWire{ID: 1, Name: "Amalia Serrano", Role: entity.RoleAdmin},
				Roles: []string{entity.RoleAdmin},
			},
		})
	})

	gw := rest.NewUserGateway(c)
	res, err := gw.Login(context.Background(), "admin@graficasarjuna.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "token-emitido", res.Token)
	assert.Equal(t, entity.RoleAdmin, res.Role())
}

// Las credenciales rechazadas llegan con success=false en un 401: el
// cuerpo se decodifica igualmente y el fallo es de credenciales, no de
// transporte.
func TestUserGateway_LoginRechazado(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, dto.LoginEnvelope{
			Success: false,
			Message: "credenciales inválidas",
		})
	})

	gw := rest.NewUserGateway(c)
	_, err := gw.Login(context.Background(), "admin@graficasarjuna.com", "mala")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.NotErrorIs(t, err, domain.ErrTransport)
}

// ──────────────────────────────────────────────────────────────────────────────
// Estadísticas
// ──────────────────────────────────────────────────────────────────────────────

func TestStatisticsGateway_Report(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/statistics/invoice-report", r.URL.Path)
		assert.Equal(t, dto.PeriodLastMonth, r.URL.Query().Get("period"))

		writeJSON(t, w, http.StatusOK, dto.StatisticsReportResponse{
			Status: dto.StatusSuccess,
			Data: &dto.StatisticsReport{
				Period:       dto.PeriodLastMonth,
				TotalIncome:  decimal.NewFromInt(500000),
				TopProduct:   "Tarjetas de Presentación (caja)",
				InvoiceCount: 1,
			},
		})
	})

	gw := rest.NewStatisticsGateway(c)
	rep, err := gw.Report(context.Background(), dto.PeriodLastMonth)
	require.NoError(t, err)
	assert.Equal(t, 1, rep.InvoiceCount)
	assert.True(t, rep.TotalIncome.Equal(decimal.NewFromInt(500000)))
}
