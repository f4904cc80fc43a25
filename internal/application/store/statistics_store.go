package store

import (
	"context"
	"sort"
	"time"

	"github.com/arjunaprint/printdesk-core/internal/application/dto"
	"github.com/arjunaprint/printdesk-core/internal/application/ports"
	"github.com/arjunaprint/printdesk-core/internal/domain/entity"
	"github.com/arjunaprint/printdesk-core/pkg/logger"
	"github.com/shopspring/decimal"
)

// StatisticsStore calcula los agregados de facturación del dashboard y de
// los reportes. En modo mock los computa sobre una instantánea de la
// colección del InvoiceStore, como hacía el dashboard cliente; en modo
// live delega en el gateway de estadísticas. Son operaciones de lectura:
// los fallos se degradan a nil, nunca se propagan.
type StatisticsStore struct {
	cfg      Config
	gw       ports.StatisticsGateway
	invoices *InvoiceStore
	log      *logger.Logger
	now      clock
}

// NewStatisticsStore construye el store. invoices aporta la instantánea
// local en modo mock; gw es obligatorio en modo live.
func NewStatisticsStore(cfg Config, gw ports.StatisticsGateway, invoices *InvoiceStore, log *logger.Logger) *StatisticsStore {
	if log == nil {
		log = logger.Nop()
	}
	return &StatisticsStore{cfg: cfg, gw: gw, invoices: invoices, log: log, now: systemClock}
}

// Summary devuelve el resumen del dashboard: ingresos cobrados, cartera
// pendiente y productos más vendidos.
func (s *StatisticsStore) Summary(ctx context.Context) *dto.StatisticsSummary {
	if s.cfg.Mock {
		return summarize(s.invoices.snapshotAll())
	}

	sum, err := s.gw.Summary(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("estadísticas: fallo al consultar resumen")
		return nil
	}
	return sum
}

// Report devuelve el reporte del período indicado (thisMonth, lastMonth o
// thisYear). Un período desconocido se trata como thisMonth.
func (s *StatisticsStore) Report(ctx context.Context, period string) *dto.StatisticsReport {
	if s.cfg.Mock {
		return s.report(period)
	}

	rep, err := s.gw.Report(ctx, period)
	if err != nil {
		s.log.Warn().Err(err).Str("period", period).Msg("estadísticas: fallo al consultar reporte")
		return nil
	}
	return rep
}

func (s *StatisticsStore) report(period string) *dto.StatisticsReport {
	from, to := periodRange(s.now(), period)
	selected := make([]entity.Invoice, 0)
	for _, inv := range s.invoices.snapshotAll() {
		issued, err := time.Parse("2006-01-02", inv.IssueDate)
		if err != nil {
			continue
		}
		if !issued.Before(from) && issued.Before(to) {
			selected = append(selected, inv)
		}
	}

	sum := summarize(selected)
	top := ""
	if len(sum.TopProducts) > 0 {
		top = sum.TopProducts[0].Name
	}
	return &dto.StatisticsReport{
		Period:          period,
		TotalIncome:     sum.TotalIncome,
		TotalReceivable: sum.TotalReceivable,
		TopProduct:      top,
		ProductSales:    sum.TopProducts,
		InvoiceCount:    len(selected),
	}
}

// periodRange traduce el período a un intervalo [from, to).
func periodRange(now time.Time, period string) (time.Time, time.Time) {
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	switch period {
	case dto.PeriodLastMonth:
		return firstOfMonth.AddDate(0, -1, 0), firstOfMonth
	case dto.PeriodThisYear:
		firstOfYear := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
		return firstOfYear, firstOfYear.AddDate(1, 0, 0)
	default: // thisMonth
		return firstOfMonth, firstOfMonth.AddDate(0, 1, 0)
	}
}

// summarize agrega ingresos, cartera y ventas por producto.
func summarize(invoices []entity.Invoice) *dto.StatisticsSummary {
	income := decimal.Zero
	receivable := decimal.Zero
	byProduct := map[string]*dto.ProductSales{}

	for _, inv := range invoices {
		if inv.Status == entity.InvoiceStatusPaid {
			income = income.Add(inv.TotalAmount)
		} else {
			receivable = receivable.Add(inv.Outstanding())
		}
		for _, line := range inv.Items {
			name := line.ItemRef.Name
			if name == "" {
				continue
			}
			ps, ok := byProduct[name]
			if !ok {
				ps = &dto.ProductSales{Name: name}
				byProduct[name] = ps
			}
			ps.Quantity = ps.Quantity.Add(line.Quantity)
			ps.Total = ps.Total.Add(line.LineTotal)
		}
	}

	top := make([]dto.ProductSales, 0, len(byProduct))
	for _, ps := range byProduct {
		top = append(top, *ps)
	}
	sort.Slice(top, func(i, j int) bool {
		if !top[i].Quantity.Equal(top[j].Quantity) {
			return top[i].Quantity.GreaterThan(top[j].Quantity)
		}
		return top[i].Name < top[j].Name
	})

	return &dto.StatisticsSummary{
		TotalIncome:     income,
		TotalReceivable: receivable,
		TopProducts:     top,
	}
}
