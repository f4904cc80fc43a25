package store

import (
	"context"
	"fmt"

	"github.com/arjunaprint/printdesk-core/internal/application/ports"
	"github.com/arjunaprint/printdesk-core/internal/domain"
	"github.com/arjunaprint/printdesk-core/internal/domain/entity"
	"github.com/arjunaprint/printdesk-core/pkg/logger"
	"github.com/shopspring/decimal"
)

// InventoryStore es el dueño de la colección de artículos de inventario.
// Mantiene la página cargada, su cursor de paginación y, en modo mock, la
// colección semilla completa que hace de backend.
type InventoryStore struct {
	cfg Config
	gw  ports.InventoryGateway
	log *logger.Logger

	backing    []entity.InventoryItem // colección completa, solo modo mock
	items      []entity.InventoryItem // página cargada
	pagination entity.Pagination
}

// NewInventoryStore construye el store. En modo mock seedItems es la
// colección de respaldo; en modo live se ignora y gw es obligatorio.
func NewInventoryStore(cfg Config, gw ports.InventoryGateway, seedItems []entity.InventoryItem, log *logger.Logger) *InventoryStore {
	if log == nil {
		log = logger.Nop()
	}
	s := &InventoryStore{cfg: cfg, gw: gw, log: log}
	if cfg.Mock {
		s.backing = append(s.backing, seedItems...)
	}
	return s
}

// Items devuelve una copia de la página cargada. Los llamantes nunca
// reciben referencias vivas a la colección interna.
func (s *InventoryStore) Items() []entity.InventoryItem {
	return append([]entity.InventoryItem(nil), s.items...)
}

// Pagination devuelve el cursor de la última carga.
func (s *InventoryStore) Pagination() entity.Pagination {
	return s.pagination
}

// FetchAll carga una página de artículos, con filtro opcional por código
// o nombre. Los fallos de lectura se degradan a colección vacía: la UI ve
// "sin datos", no una excepción.
func (s *InventoryStore) FetchAll(ctx context.Context, page, perPage int, search string) error {
	page, perPage = s.cfg.normalizePage(page, perPage)

	if s.cfg.Mock {
		filtered := make([]entity.InventoryItem, 0, len(s.backing))
		for _, it := range s.backing {
			if containsFold(it.Code, search) || containsFold(it.Name, search) {
				filtered = append(filtered, it)
			}
		}
		s.pagination = entity.PageOf(len(filtered), page, perPage)
		from, to := s.pagination.Slice()
		s.items = append([]entity.InventoryItem(nil), filtered[from:to]...)
		return nil
	}

	items, pg, err := s.gw.List(ctx, ports.ListQuery{Page: page, PerPage: perPage, Search: search})
	if err != nil {
		s.log.Warn().Err(err).Msg("inventario: fallo al listar, colección vacía")
		s.items = nil
		s.pagination = entity.PageOf(0, 1, perPage)
		return nil
	}
	s.items = items
	s.pagination = pg
	return nil
}

// GetByID busca en la página cargada. Devuelve nil si no está.
func (s *InventoryStore) GetByID(id int) *entity.InventoryItem {
	for i := range s.items {
		if s.items[i].ID == id {
			item := s.items[i]
			return &item
		}
	}
	return nil
}

// Create da de alta un artículo. Mock: asigna ID y código y lo antepone a
// la colección. Live: solo si el gateway confirma se antepone el artículo
// devuelto; si falla, el estado local queda intacto y el error se
// propaga sin cambios.
func (s *InventoryStore) Create(ctx context.Context, item entity.InventoryItem) (*entity.InventoryItem, error) {
	if s.cfg.Mock {
		item.ID = s.nextID()
		if item.Code == "" {
			item.Code = entity.ItemCode(item.ID)
		}
		s.backing = append([]entity.InventoryItem{item}, s.backing...)
		s.items = append([]entity.InventoryItem{item}, s.items...)
		s.pagination.Total++
		return &item, nil
	}

	created, err := s.gw.Create(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("crear artículo: %w", err)
	}
	s.items = append([]entity.InventoryItem{*created}, s.items...)
	return created, nil
}

// Update reemplaza el artículo por id. Mock: mutación local directa.
// Live: concilia solo tras confirmación remota.
func (s *InventoryStore) Update(ctx context.Context, item entity.InventoryItem) (*entity.InventoryItem, error) {
	if s.cfg.Mock {
		if !replaceItem(s.backing, item) {
			return nil, domain.ErrNotFound
		}
		replaceItem(s.items, item)
		return &item, nil
	}

	updated, err := s.gw.Update(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("actualizar artículo %d: %w", item.ID, err)
	}
	replaceItem(s.items, *updated)
	return updated, nil
}

// Delete elimina por id. Live: solo tras confirmación remota.
func (s *InventoryStore) Delete(ctx context.Context, id int) error {
	if s.cfg.Mock {
		s.backing = removeItem(s.backing, id)
		s.items = removeItem(s.items, id)
		if s.pagination.Total > 0 {
			s.pagination.Total--
		}
		return nil
	}

	if err := s.gw.Delete(ctx, id); err != nil {
		return fmt.Errorf("eliminar artículo %d: %w", id, err)
	}
	s.items = removeItem(s.items, id)
	return nil
}

// LowStockItems devuelve los artículos cargados con stock en o por debajo
// de su umbral. Se recalcula en cada llamada, nunca se guarda aparte.
func (s *InventoryStore) LowStockItems() []entity.InventoryItem {
	low := make([]entity.InventoryItem, 0)
	for _, it := range s.items {
		if it.IsLowStock() {
			low = append(low, it)
		}
	}
	return low
}

// NextItemCode calcula el siguiente código a partir del mayor id de la
// página cargada. Con datos paginados en servidor esto no garantiza
// unicidad contra la colección completa; en modo live el identificador
// definitivo debe asignarlo el backend.
func (s *InventoryStore) NextItemCode() string {
	maxID := 0
	for _, it := range s.items {
		if it.ID > maxID {
			maxID = it.ID
		}
	}
	return entity.ItemCode(maxID + 1)
}

// ReduceStockFromInvoice descuenta del stock las cantidades de las líneas
// de la factura. Es una operación consultiva de mejor esfuerzo: las
// líneas cuya referencia no se resuelva se omiten en silencio, el stock
// nunca baja de cero y no hay transacción entre stores.
func (s *InventoryStore) ReduceStockFromInvoice(inv entity.Invoice) {
	for _, line := range inv.Items {
		ref := line.ItemRef
		if ref.ID == 0 {
			continue
		}
		applied := s.reduceInSlice(s.items, ref.ID, line.Quantity)
		if s.cfg.Mock {
			applied = s.reduceInSlice(s.backing, ref.ID, line.Quantity) || applied
		}
		if !applied {
			s.log.Debug().Int("item_id", ref.ID).Str("item", ref.Name).
				Msg("inventario: referencia no resuelta al descontar stock")
		}
	}
}

func (s *InventoryStore) reduceInSlice(items []entity.InventoryItem, id int, qty decimal.Decimal) bool {
	for i := range items {
		if items[i].ID == id {
			next := items[i].Stock.Sub(qty)
			if next.IsNegative() {
				next = decimal.Zero
			}
			items[i].Stock = next
			return true
		}
	}
	return false
}

func (s *InventoryStore) nextID() int {
	maxID := 0
	for _, it := range s.backing {
		if it.ID > maxID {
			maxID = it.ID
		}
	}
	return maxID + 1
}

func replaceItem(items []entity.InventoryItem, item entity.InventoryItem) bool {
	for i := range items {
		if items[i].ID == item.ID {
			items[i] = item
			return true
		}
	}
	return false
}

func removeItem(items []entity.InventoryItem, id int) []entity.InventoryItem {
	out := items[:0]
	for _, it := range items {
		if it.ID != id {
			out = append(out, it)
		}
	}
	return out
}
