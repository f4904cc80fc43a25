package store

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/arjunaprint/printdesk-core/internal/application/ports"
	"github.com/arjunaprint/printdesk-core/internal/domain"
	"github.com/arjunaprint/printdesk-core/internal/domain/entity"
	"github.com/arjunaprint/printdesk-core/pkg/logger"
	"github.com/shopspring/decimal"
)

// InvoiceStore es el dueño de la colección de facturas.
type InvoiceStore struct {
	cfg Config
	gw  ports.InvoiceGateway
	log *logger.Logger
	now clock

	backing    []entity.Invoice // colección completa, solo modo mock
	invoices   []entity.Invoice // página cargada
	pagination entity.Pagination
}

// NewInvoiceStore construye el store. En modo mock seedInvoices es la
// colección de respaldo; en modo live se ignora y gw es obligatorio.
func NewInvoiceStore(cfg Config, gw ports.InvoiceGateway, seedInvoices []entity.Invoice, log *logger.Logger) *InvoiceStore {
	if log == nil {
		log = logger.Nop()
	}
	s := &InvoiceStore{cfg: cfg, gw: gw, log: log, now: systemClock}
	if cfg.Mock {
		s.backing = append(s.backing, seedInvoices...)
	}
	return s
}

// Invoices devuelve una copia de la página cargada.
func (s *InvoiceStore) Invoices() []entity.Invoice {
	return append([]entity.Invoice(nil), s.invoices...)
}

// Pagination devuelve el cursor de la última carga.
func (s *InvoiceStore) Pagination() entity.Pagination {
	return s.pagination
}

// snapshotAll devuelve una copia de la colección más completa disponible:
// el respaldo semilla en mock, la página cargada en live. Las lecturas
// entre stores siempre reciben instantáneas, nunca referencias vivas.
func (s *InvoiceStore) snapshotAll() []entity.Invoice {
	if s.cfg.Mock {
		return append([]entity.Invoice(nil), s.backing...)
	}
	return append([]entity.Invoice(nil), s.invoices...)
}

// FetchAll carga una página de facturas, con filtro opcional por número o
// cliente. Los fallos de lectura se degradan a colección vacía.
func (s *InvoiceStore) FetchAll(ctx context.Context, page, perPage int, search string) error {
	page, perPage = s.cfg.normalizePage(page, perPage)

	if s.cfg.Mock {
		filtered := make([]entity.Invoice, 0, len(s.backing))
		for _, inv := range s.backing {
			if containsFold(inv.InvoiceNumber, search) || containsFold(inv.CustomerName, search) {
				filtered = append(filtered, inv)
			}
		}
		s.pagination = entity.PageOf(len(filtered), page, perPage)
		from, to := s.pagination.Slice()
		s.invoices = append([]entity.Invoice(nil), filtered[from:to]...)
		return nil
	}

	invoices, pg, err := s.gw.List(ctx, ports.ListQuery{Page: page, PerPage: perPage, Search: search})
	if err != nil {
		s.log.Warn().Err(err).Msg("facturas: fallo al listar, colección vacía")
		s.invoices = nil
		s.pagination = entity.PageOf(0, 1, perPage)
		return nil
	}
	s.invoices = invoices
	s.pagination = pg
	return nil
}

// GetByID busca primero en la página cargada; en modo live cae al gateway
// si no está. Los fallos de lectura remota se degradan a nil.
func (s *InvoiceStore) GetByID(ctx context.Context, id int) *entity.Invoice {
	for i := range s.invoices {
		if s.invoices[i].ID == id {
			inv := s.invoices[i]
			return &inv
		}
	}
	if s.cfg.Mock {
		for i := range s.backing {
			if s.backing[i].ID == id {
				inv := s.backing[i]
				return &inv
			}
		}
		return nil
	}
	inv, err := s.gw.GetByID(ctx, id)
	if err != nil {
		s.log.Warn().Err(err).Int("id", id).Msg("facturas: fallo al consultar por id")
		return nil
	}
	return inv
}

// Create da de alta una factura. Calcula los totales de línea y el total
// general antes de despachar; el estado por defecto es Pending. Live:
// solo si el gateway confirma se antepone la factura devuelta.
func (s *InvoiceStore) Create(ctx context.Context, inv entity.Invoice) (*entity.Invoice, error) {
	if inv.Status == "" {
		inv.Status = entity.InvoiceStatusPending
	}
	s.fillTotals(&inv)

	if s.cfg.Mock {
		inv.ID = s.nextID()
		if inv.InvoiceNumber == "" {
			inv.InvoiceNumber = s.NextInvoiceNumber()
		}
		s.backing = append([]entity.Invoice{inv}, s.backing...)
		s.invoices = append([]entity.Invoice{inv}, s.invoices...)
		s.pagination.Total++
		return &inv, nil
	}

	created, err := s.gw.Create(ctx, inv)
	if err != nil {
		return nil, fmt.Errorf("crear factura: %w", err)
	}
	s.invoices = append([]entity.Invoice{*created}, s.invoices...)
	return created, nil
}

// Update reemplaza la factura por id, recalculando totales.
func (s *InvoiceStore) Update(ctx context.Context, inv entity.Invoice) (*entity.Invoice, error) {
	s.fillTotals(&inv)

	if s.cfg.Mock {
		if !replaceInvoice(s.backing, inv) {
			return nil, domain.ErrNotFound
		}
		replaceInvoice(s.invoices, inv)
		return &inv, nil
	}

	updated, err := s.gw.Update(ctx, inv)
	if err != nil {
		return nil, fmt.Errorf("actualizar factura %d: %w", inv.ID, err)
	}
	replaceInvoice(s.invoices, *updated)
	return updated, nil
}

// Delete elimina por id. Live: solo tras confirmación remota.
func (s *InvoiceStore) Delete(ctx context.Context, id int) error {
	if s.cfg.Mock {
		s.backing = removeInvoice(s.backing, id)
		s.invoices = removeInvoice(s.invoices, id)
		if s.pagination.Total > 0 {
			s.pagination.Total--
		}
		return nil
	}

	if err := s.gw.Delete(ctx, id); err != nil {
		return fmt.Errorf("eliminar factura %d: %w", id, err)
	}
	s.invoices = removeInvoice(s.invoices, id)
	return nil
}

// MarkAsPaid marca la factura como pagada: estado Paid, saldo pendiente a
// cero y abono igualado al total. Es idempotente: sobre una factura ya
// pagada no cambia nada. No valida que el total almacenado sea correcto.
func (s *InvoiceStore) MarkAsPaid(ctx context.Context, id int) (*entity.Invoice, error) {
	inv := s.findLocal(id)
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if inv.Status == entity.InvoiceStatusPaid {
		return inv, nil
	}

	if !s.cfg.Mock {
		if err := s.gw.UpdateStatus(ctx, id, entity.InvoiceStatusPaid); err != nil {
			return nil, fmt.Errorf("marcar factura %d como pagada: %w", id, err)
		}
	}

	inv.Status = entity.InvoiceStatusPaid
	inv.DownPayment = inv.TotalAmount
	replaceInvoice(s.invoices, *inv)
	if s.cfg.Mock {
		replaceInvoice(s.backing, *inv)
	}
	return inv, nil
}

// NextInvoiceNumber calcula el siguiente número INV-<año>-NNN a partir
// del mayor sufijo numérico de la página cargada (y, en mock, de la
// colección de respaldo). Con datos paginados en servidor esto no
// garantiza unicidad contra la colección completa.
func (s *InvoiceStore) NextInvoiceNumber() string {
	year := s.now().Year()
	maxNum := 0
	scan := s.invoices
	if s.cfg.Mock {
		scan = s.backing
	}
	for _, inv := range scan {
		parts := strings.Split(inv.InvoiceNumber, "-")
		if len(parts) != 3 {
			continue
		}
		if n, err := strconv.Atoi(parts[2]); err == nil && n > maxNum {
			maxNum = n
		}
	}
	return entity.InvoiceNumberFor(year, maxNum+1)
}

// ComputeTotal calcula el total: suma de líneas menos descuento, más IVA
// si la factura lo lleva. Nunca devuelve un total negativo.
func (s *InvoiceStore) ComputeTotal(items []entity.LineItem, discount decimal.Decimal, taxEnabled bool) decimal.Decimal {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.Quantity.Mul(it.UnitPrice))
	}
	base := subtotal.Sub(discount)
	if base.IsNegative() {
		base = decimal.Zero
	}
	if taxEnabled {
		rate := decimal.NewFromInt(int64(s.cfg.TaxPercent)).Div(decimal.NewFromInt(100))
		base = base.Add(base.Mul(rate))
	}
	return base
}

// fillTotals recalcula los totales de línea y el total general.
func (s *InvoiceStore) fillTotals(inv *entity.Invoice) {
	for i := range inv.Items {
		inv.Items[i].LineTotal = inv.Items[i].Quantity.Mul(inv.Items[i].UnitPrice)
	}
	inv.TotalAmount = s.ComputeTotal(inv.Items, inv.Discount, inv.TaxEnabled)
}

func (s *InvoiceStore) findLocal(id int) *entity.Invoice {
	for i := range s.invoices {
		if s.invoices[i].ID == id {
			inv := s.invoices[i]
			return &inv
		}
	}
	if s.cfg.Mock {
		for i := range s.backing {
			if s.backing[i].ID == id {
				inv := s.backing[i]
				return &inv
			}
		}
	}
	return nil
}

func (s *InvoiceStore) nextID() int {
	maxID := 0
	for _, inv := range s.backing {
		if inv.ID > maxID {
			maxID = inv.ID
		}
	}
	return maxID + 1
}

func replaceInvoice(invoices []entity.Invoice, inv entity.Invoice) bool {
	for i := range invoices {
		if invoices[i].ID == inv.ID {
			invoices[i] = inv
			return true
		}
	}
	return false
}

func removeInvoice(invoices []entity.Invoice, id int) []entity.Invoice {
	out := invoices[:0]
	for _, inv := range invoices {
		if inv.ID != id {
			out = append(out, inv)
		}
	}
	return out
}
