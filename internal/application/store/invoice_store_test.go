package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arjunaprint/printdesk-core/internal/application/ports"
	"github.com/arjunaprint/printdesk-core/internal/application/seed"
	"github.com/arjunaprint/printdesk-core/internal/application/store"
	"github.com/arjunaprint/printdesk-core/internal/domain"
	"github.com/arjunaprint/printdesk-core/internal/domain/entity"
)

// Fecha fija para que las pruebas no dependan del reloj de pared.
var fixedNow = time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

type fakeInvoiceGateway struct {
	invoices []entity.Invoice
	pg       entity.Pagination
	created  *entity.Invoice
	err      error
}

func (f *fakeInvoiceGateway) List(ctx context.Context, q ports.ListQuery) ([]entity.Invoice, entity.Pagination, error) {
	return f.invoices, f.pg, f.err
}
func (f *fakeInvoiceGateway) GetByID(ctx context.Context, id int) (*entity.Invoice, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.invoices {
		if f.invoices[i].ID == id {
			return &f.invoices[i], nil
		}
	}
	return nil, domain.ErrNotFound
}
func (f *fakeInvoiceGateway) Create(ctx context.Context, inv entity.Invoice) (*entity.Invoice, error) {
	return f.created, f.err
}
func (f *fakeInvoiceGateway) Update(ctx context.Context, inv entity.Invoice) (*entity.Invoice, error) {
	return f.created, f.err
}
func (f *fakeInvoiceGateway) UpdateStatus(ctx context.Context, id int, status string) error {
	return f.err
}
func (f *fakeInvoiceGateway) Delete(ctx context.Context, id int) error { return f.err }

func newMockInvoiceStore(t *testing.T) *store.InvoiceStore {
	t.Helper()
	s := store.NewInvoiceStore(mockCfg(), nil, seed.Invoices(fixedNow), nil)
	s.SetClock(fixedClock)
	return s
}

// ──────────────────────────────────────────────────────────────────────────────
// Modo mock
// ──────────────────────────────────────────────────────────────────────────────

func TestInvoiceStore_ListarYBuscarEnMock(t *testing.T) {
	s := newMockInvoiceStore(t)
	ctx := context.Background()

	require.NoError(t, s.FetchAll(ctx, 1, 10, ""))
	assert.Len(t, s.Invoices(), 3)

	// Filtro por cliente, sin distinguir mayúsculas.
	require.NoError(t, s.FetchAll(ctx, 1, 10, "colegio"))
	got := s.Invoices()
	require.Len(t, got, 1)
	assert.Equal(t, "Colegio Nueva Esperanza", got[0].CustomerName)

	// Filtro por número de factura.
	require.NoError(t, s.FetchAll(ctx, 1, 10, "INV-2025-018"))
	got = s.Invoices()
	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].ID)
}

// Al crear se completan estado, número, totales de línea y total general.
func TestInvoiceStore_CrearEnMock(t *testing.T) {
	s := newMockInvoiceStore(t)
	ctx := context.Background()
	require.NoError(t, s.FetchAll(ctx, 1, 10, ""))

	created, err := s.Create(ctx, entity.Invoice{
		CustomerName: "Panadería La Espiga",
		IssueDate:    "2025-06-15",
		DueDate:      "2025-06-30",
		Items: []entity.LineItem{
			{ItemRef: entity.ItemRef{ID: 1, Name: "Lona Flex 280gr"}, Quantity: dec(t, "4"), UnitPrice: dec(t, "25000")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 4, created.ID)
	assert.Equal(t, entity.InvoiceStatusPending, created.Status)
	assert.Equal(t, "INV-2025-021", created.InvoiceNumber, "sigue al mayor sufijo de la semilla (020)")
	assert.True(t, created.Items[0].LineTotal.Equal(dec(t, "100000")))
	assert.True(t, created.TotalAmount.Equal(dec(t, "100000")))

	require.NoError(t, s.FetchAll(ctx, 1, 10, ""))
	assert.Len(t, s.Invoices(), 4)
	assert.Equal(t, created.ID, s.Invoices()[0].ID)
}

// Total con descuento e IVA: (2000 − 500) × 1.19 = 1785.
func TestInvoiceStore_CalculoDeTotal(t *testing.T) {
	s := newMockInvoiceStore(t)
	items := []entity.LineItem{
		{ItemRef: entity.ItemRef{ID: 1}, Quantity: dec(t, "2"), UnitPrice: dec(t, "1000")},
	}

	total := s.ComputeTotal(items, dec(t, "500"), true)
	assert.True(t, total.Equal(dec(t, "1785")), "got %s", total)

	// Sin IVA.
	total = s.ComputeTotal(items, dec(t, "500"), false)
	assert.True(t, total.Equal(dec(t, "1500")))

	// Un descuento mayor que el subtotal no produce totales negativos.
	total = s.ComputeTotal(items, dec(t, "9999"), true)
	assert.True(t, total.IsZero())
}

func TestInvoiceStore_MarcarComoPagada(t *testing.T) {
	s := newMockInvoiceStore(t)
	ctx := context.Background()
	require.NoError(t, s.FetchAll(ctx, 1, 10, ""))

	// La factura 2 está Pending con abono parcial.
	paid, err := s.MarkAsPaid(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusPaid, paid.Status)
	assert.True(t, paid.DownPayment.Equal(paid.TotalAmount), "el abono se iguala al total")
	assert.True(t, paid.Outstanding().IsZero())

	// Idempotente: pagar dos veces no cambia nada.
	again, err := s.MarkAsPaid(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, paid.DownPayment.String(), again.DownPayment.String())

	// Sobre un id inexistente es NotFound.
	_, err = s.MarkAsPaid(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInvoiceStore_EliminarEnMock(t *testing.T) {
	s := newMockInvoiceStore(t)
	ctx := context.Background()
	require.NoError(t, s.FetchAll(ctx, 1, 10, ""))

	require.NoError(t, s.Delete(ctx, 1))
	require.NoError(t, s.FetchAll(ctx, 1, 10, ""))
	assert.Len(t, s.Invoices(), 2)
	assert.Nil(t, s.GetByID(ctx, 1))
}

// El siguiente número usa el año del reloj y el mayor sufijo conocido.
func TestInvoiceStore_SiguienteNumero(t *testing.T) {
	s := newMockInvoiceStore(t)
	assert.Equal(t, "INV-2025-021", s.NextInvoiceNumber())

	// Sin facturas arranca en 001.
	empty := store.NewInvoiceStore(mockCfg(), nil, nil, nil)
	empty.SetClock(fixedClock)
	assert.Equal(t, "INV-2025-001", empty.NextInvoiceNumber())
}

// ──────────────────────────────────────────────────────────────────────────────
// Modo live
// ──────────────────────────────────────────────────────────────────────────────

// Un rechazo del gateway no deja facturas fantasma en el estado local.
func TestInvoiceStore_CrearEnLiveConFalloNoMuta(t *testing.T) {
	gw := &fakeInvoiceGateway{
		invoices: seed.Invoices(fixedNow),
		pg:       entity.PageOf(3, 1, 10),
	}
	s := store.NewInvoiceStore(store.Config{PerPage: 10, TaxPercent: 19}, gw, nil, nil)
	ctx := context.Background()
	require.NoError(t, s.FetchAll(ctx, 1, 10, ""))

	gw.err = domain.ErrTransport
	_, err := s.Create(ctx, entity.Invoice{CustomerName: "Nadie"})
	assert.ErrorIs(t, err, domain.ErrTransport)
	assert.Len(t, s.Invoices(), 3)
}

// Marcar como pagada en live exige confirmación remota previa.
func TestInvoiceStore_MarcarComoPagadaEnLiveConFallo(t *testing.T) {
	gw := &fakeInvoiceGateway{
		invoices: seed.Invoices(fixedNow),
		pg:       entity.PageOf(3, 1, 10),
	}
	s := store.NewInvoiceStore(store.Config{PerPage: 10, TaxPercent: 19}, gw, nil, nil)
	ctx := context.Background()
	require.NoError(t, s.FetchAll(ctx, 1, 10, ""))

	gw.err = domain.ErrUnauthorized
	_, err := s.MarkAsPaid(ctx, 2)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	inv := s.GetByID(ctx, 2)
	require.NotNil(t, inv)
	assert.Equal(t, entity.InvoiceStatusPending, inv.Status, "sin confirmación no hay transición")
}

// En live GetByID cae al gateway cuando la factura no está en la página.
func TestInvoiceStore_ConsultaPorIDEnLive(t *testing.T) {
	gw := &fakeInvoiceGateway{invoices: seed.Invoices(fixedNow)}
	s := store.NewInvoiceStore(store.Config{PerPage: 10, TaxPercent: 19}, gw, nil, nil)

	inv := s.GetByID(context.Background(), 3)
	require.NotNil(t, inv)
	assert.Equal(t, "Café del Parque", inv.CustomerName)
}
