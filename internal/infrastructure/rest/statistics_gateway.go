package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/arjunaprint/printdesk-core/internal/application/dto"
	"github.com/arjunaprint/printdesk-core/internal/application/ports"
	"github.com/arjunaprint/printdesk-core/internal/domain"
)

// Verificar en tiempo de compilación que implementa el puerto.
var _ ports.StatisticsGateway = (*StatisticsGateway)(nil)

// StatisticsGateway transporte remoto de estadísticas de facturación.
type StatisticsGateway struct {
	c *Client
}

// NewStatisticsGateway construye el gateway sobre el cliente base.
func NewStatisticsGateway(c *Client) *StatisticsGateway {
	return &StatisticsGateway{c: c}
}

// Summary pide el resumen del dashboard: GET /statistics/invoice-summary.
func (g *StatisticsGateway) Summary(ctx context.Context) (*dto.StatisticsSummary, error) {
	var resp dto.StatisticsSummaryResponse
	if err := g.c.do(ctx, http.MethodGet, "/statistics/invoice-summary", nil, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Status != dto.StatusSuccess || resp.Data == nil {
		return nil, fmt.Errorf("resumen de estadísticas: %s: %w", resp.Message, domain.ErrInvalidResponse)
	}
	return resp.Data, nil
}

// Report pide el reporte de un período:
// GET /statistics/invoice-report?period=thisMonth|lastMonth|thisYear.
func (g *StatisticsGateway) Report(ctx context.Context, period string) (*dto.StatisticsReport, error) {
	q := url.Values{}
	if period != "" {
		q.Set("period", period)
	}
	var resp dto.StatisticsReportResponse
	if err := g.c.do(ctx, http.MethodGet, "/statistics/invoice-report", q, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Status != dto.StatusSuccess || resp.Data == nil {
		return nil, fmt.Errorf("reporte de estadísticas: %s: %w", resp.Message, domain.ErrInvalidResponse)
	}
	return resp.Data, nil
}
