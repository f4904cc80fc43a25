package dto

import "github.com/arjunaprint/printdesk-core/internal/domain/entity"

// Envoltorios de las respuestas del backend. Los listados llegan como
// {status, data, pagination, message} y las mutaciones como
// {status, data, message}; el estado "success" marca la operación válida.

// StatusSuccess valor del campo status en respuestas correctas.
const StatusSuccess = "success"

// WirePagination es el cursor de paginación tal y como viaja por el cable.
type WirePagination struct {
	CurrentPage  int  `json:"current_page"`
	PerPage      int  `json:"per_page"`
	Total        int  `json:"total"`
	LastPage     int  `json:"last_page"`
	From         int  `json:"from"`
	To           int  `json:"to"`
	HasMorePages bool `json:"has_more_pages"`
}

// ToEntity convierte el cursor de cable al modelo de dominio.
func (w WirePagination) ToEntity() entity.Pagination {
	return entity.Pagination{
		CurrentPage: w.CurrentPage,
		PerPage:     w.PerPage,
		Total:       w.Total,
		LastPage:    w.LastPage,
		From:        w.From,
		To:          w.To,
		HasMore:     w.HasMorePages,
	}
}

// WirePaginationFrom construye el cursor de cable desde el dominio (lo usa
// el backend de desarrollo).
func WirePaginationFrom(p entity.Pagination) WirePagination {
	return WirePagination{
		CurrentPage:  p.CurrentPage,
		PerPage:      p.PerPage,
		Total:        p.Total,
		LastPage:     p.LastPage,
		From:         p.From,
		To:           p.To,
		HasMorePages: p.HasMore,
	}
}

// ErrorResponse cuerpo de error HTTP del backend.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
