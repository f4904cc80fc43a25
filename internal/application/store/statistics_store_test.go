package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arjunaprint/printdesk-core/internal/application/dto"
	"github.com/arjunaprint/printdesk-core/internal/application/store"
	"github.com/arjunaprint/printdesk-core/internal/domain"
)

type fakeStatisticsGateway struct {
	summary *dto.StatisticsSummary
	report  *dto.StatisticsReport
	err     error
}

func (f *fakeStatisticsGateway) Summary(ctx context.Context) (*dto.StatisticsSummary, error) {
	return f.summary, f.err
}
func (f *fakeStatisticsGateway) Report(ctx context.Context, period string) (*dto.StatisticsReport, error) {
	return f.report, f.err
}

func newMockStatisticsStore(t *testing.T) *store.StatisticsStore {
	t.Helper()
	invoices := newMockInvoiceStore(t)
	s := store.NewStatisticsStore(mockCfg(), nil, invoices, nil)
	s.SetClock(fixedClock)
	return s
}

// Ingresos solo de facturas Paid; cartera solo del saldo de las Pending.
func TestStatisticsStore_ResumenEnMock(t *testing.T) {
	s := newMockStatisticsStore(t)

	sum := s.Summary(context.Background())
	require.NotNil(t, sum)
	assert.True(t, sum.TotalIncome.Equal(dec(t, "1700000")), "1200000 + 500000 pagadas")
	assert.True(t, sum.TotalReceivable.Equal(dec(t, "350000")), "550000 - 200000 de abono")

	// Empate de cantidades: el orden lo decide el nombre.
	require.Len(t, sum.TopProducts, 3)
	assert.Equal(t, "Papel Bond A4 75gr (resma)", sum.TopProducts[0].Name)
}

func TestStatisticsStore_ReportePorPeriodo(t *testing.T) {
	s := newMockStatisticsStore(t)
	ctx := context.Background()

	rep := s.Report(ctx, dto.PeriodThisMonth)
	require.NotNil(t, rep)
	assert.Equal(t, 2, rep.InvoiceCount)
	assert.True(t, rep.TotalIncome.Equal(dec(t, "1200000")))
	assert.True(t, rep.TotalReceivable.Equal(dec(t, "350000")))

	rep = s.Report(ctx, dto.PeriodLastMonth)
	require.NotNil(t, rep)
	assert.Equal(t, 1, rep.InvoiceCount)
	assert.True(t, rep.TotalIncome.Equal(dec(t, "500000")))
	assert.True(t, rep.TotalReceivable.IsZero())
	assert.Equal(t, "Tarjetas de Presentación (caja)", rep.TopProduct)

	rep = s.Report(ctx, dto.PeriodThisYear)
	require.NotNil(t, rep)
	assert.Equal(t, 3, rep.InvoiceCount)
	assert.True(t, rep.TotalIncome.Equal(dec(t, "1700000")))
}

// Un período desconocido se trata como el mes en curso.
func TestStatisticsStore_PeriodoDesconocido(t *testing.T) {
	s := newMockStatisticsStore(t)

	rep := s.Report(context.Background(), "trimestre")
	require.NotNil(t, rep)
	assert.Equal(t, 2, rep.InvoiceCount)
}

// ──────────────────────────────────────────────────────────────────────────────
// Modo live
// ──────────────────────────────────────────────────────────────────────────────

func TestStatisticsStore_ResumenEnLive(t *testing.T) {
	gw := &fakeStatisticsGateway{
		summary: &dto.StatisticsSummary{TotalIncome: dec(t, "42000")},
	}
	s := store.NewStatisticsStore(store.Config{}, gw, nil, nil)

	sum := s.Summary(context.Background())
	require.NotNil(t, sum)
	assert.True(t, sum.TotalIncome.Equal(dec(t, "42000")))
}

// Las lecturas degradan a nil, nunca propagan el error.
func TestStatisticsStore_FalloEnLive(t *testing.T) {
	gw := &fakeStatisticsGateway{err: domain.ErrTransport}
	s := store.NewStatisticsStore(store.Config{}, gw, nil, nil)

	assert.Nil(t, s.Summary(context.Background()))
	assert.Nil(t, s.Report(context.Background(), dto.PeriodThisMonth))
}
