package store

import "time"

// SetClock fija el reloj de la numeración de facturas en pruebas.
func (s *InvoiceStore) SetClock(fn func() time.Time) { s.now = fn }

// SetClock fija el reloj de los reportes por período en pruebas.
func (s *StatisticsStore) SetClock(fn func() time.Time) { s.now = fn }
