// Package store contiene los entity stores del core: colecciones en
// memoria con un interruptor de modo inyectado en la construcción. En
// modo mock todas las operaciones son síncronas sobre los datos semilla;
// en modo live delegan en el gateway remoto y solo concilian el estado
// local cuando la llamada remota tiene éxito.
package store

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
)

// Config ajustes compartidos por los stores. Mock se decide una sola vez
// al construir cada store; las operaciones nunca consultan el entorno.
type Config struct {
	Mock       bool
	PerPage    int
	TaxPercent int
}

// normalizePage aplica los valores por defecto de paginación.
func (c Config) normalizePage(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = c.PerPage
	}
	if perPage < 1 {
		perPage = 10
	}
	return page, perPage
}

// containsFold indica si needle aparece en haystack con plegado de
// mayúsculas según Unicode (los nombres del catálogo llevan tildes y
// eñes). Un needle vacío coincide siempre.
func containsFold(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	folder := cases.Fold()
	return strings.Contains(folder.String(haystack), folder.String(needle))
}

// clock permite fijar el reloj en tests.
type clock func() time.Time

func systemClock() time.Time { return time.Now() }
