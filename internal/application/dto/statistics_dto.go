package dto

import "github.com/shopspring/decimal"

// Períodos aceptados por el reporte de estadísticas.
const (
	PeriodThisMonth = "thisMonth"
	PeriodLastMonth = "lastMonth"
	PeriodThisYear  = "thisYear"
)

// ProductSales ventas acumuladas de un producto.
type ProductSales struct {
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	Total    decimal.Decimal `json:"total"`
}

// StatisticsSummary resumen para el dashboard.
// Respuesta de GET /statistics/invoice-summary.
type StatisticsSummary struct {
	TotalIncome     decimal.Decimal `json:"total_income"`     // suma de facturas Paid
	TotalReceivable decimal.Decimal `json:"total_receivable"` // saldo pendiente de facturas Pending
	TopProducts     []ProductSales  `json:"top_products"`
}

// StatisticsReport reporte detallado por período.
// Respuesta de GET /statistics/invoice-report?period=...
type StatisticsReport struct {
	Period          string          `json:"period"`
	TotalIncome     decimal.Decimal `json:"total_income"`
	TotalReceivable decimal.Decimal `json:"total_receivable"`
	TopProduct      string          `json:"top_product"`
	ProductSales    []ProductSales  `json:"product_sales"`
	InvoiceCount    int             `json:"invoice_count"`
}

// StatisticsSummaryResponse envoltorio de GET /statistics/invoice-summary.
type StatisticsSummaryResponse struct {
	Status  string             `json:"status"`
	Data    *StatisticsSummary `json:"data"`
	Message string             `json:"message"`
}

// StatisticsReportResponse envoltorio de GET /statistics/invoice-report.
type StatisticsReportResponse struct {
	Status  string            `json:"status"`
	Data    *StatisticsReport `json:"data"`
	Message string            `json:"message"`
}
