package entity

// Pagination es el cursor de paginación de una colección. Se recalcula en
// cada fetch; las acciones de UI nunca lo mutan directamente.
type Pagination struct {
	CurrentPage int
	PerPage     int
	Total       int
	LastPage    int
	From        int // índice 1-based del primer elemento visible, 0 si vacío
	To          int
	HasMore     bool
}

// PageOf calcula el cursor para una colección de total elementos vista en
// la página page con perPage por página. Es la misma aritmética que usa el
// backend, aplicada aquí sobre colecciones locales en modo demo.
func PageOf(total, page, perPage int) Pagination {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}
	lastPage := (total + perPage - 1) / perPage
	if lastPage < 1 {
		lastPage = 1
	}
	start := (page - 1) * perPage
	end := start + perPage
	if end > total {
		end = total
	}
	from := 0
	if start < total {
		from = start + 1
	}
	to := 0
	if start < total {
		to = end
	}
	return Pagination{
		CurrentPage: page,
		PerPage:     perPage,
		Total:       total,
		LastPage:    lastPage,
		From:        from,
		To:          to,
		HasMore:     end < total,
	}
}

// Slice devuelve los límites [from, to) para recortar la colección local
// según el cursor ya calculado con PageOf.
func (p Pagination) Slice() (int, int) {
	if p.From == 0 {
		return 0, 0
	}
	return p.From - 1, p.To
}
