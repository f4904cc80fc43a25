package http

import (
	"sync"

	"github.com/arjunaprint/printdesk-core/internal/application/dto"
	"github.com/arjunaprint/printdesk-core/internal/application/store"
	"github.com/gofiber/fiber/v2"
)

// StatisticsHandler maneja las estadísticas de facturación (protegido).
type StatisticsHandler struct {
	store *store.StatisticsStore
	mu    *sync.Mutex
}

// NewStatisticsHandler construye el handler.
func NewStatisticsHandler(s *store.StatisticsStore, mu *sync.Mutex) *StatisticsHandler {
	return &StatisticsHandler{store: s, mu: mu}
}

// Summary responde GET /api/statistics/invoice-summary.
func (h *StatisticsHandler) Summary(c *fiber.Ctx) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	sum := h.store.Summary(c.Context())
	if sum == nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Status: "error", Message: "resumen no disponible"})
	}
	return c.JSON(dto.StatisticsSummaryResponse{Status: dto.StatusSuccess, Data: sum})
}

// Report responde GET /api/statistics/invoice-report?period=...
func (h *StatisticsHandler) Report(c *fiber.Ctx) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	period := c.Query("period", dto.PeriodThisMonth)
	rep := h.store.Report(c.Context(), period)
	if rep == nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Status: "error", Message: "reporte no disponible"})
	}
	return c.JSON(dto.StatisticsReportResponse{Status: dto.StatusSuccess, Data: rep})
}
