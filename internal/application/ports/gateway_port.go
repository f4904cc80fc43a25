package ports

import (
	"context"

	"github.com/arjunaprint/printdesk-core/internal/application/dto"
	"github.com/arjunaprint/printdesk-core/internal/domain/entity"
)

// ListQuery parámetros de un listado paginado con búsqueda opcional.
type ListQuery struct {
	Page    int
	PerPage int
	Search  string
}

// Puertos del Remote Access Gateway: un adaptador fino por entidad que
// traduce llamadas de aplicación a las formas request/response del
// backend. En modo mock los stores no tocan estos puertos.

// InventoryGateway transporte remoto de artículos de inventario.
type InventoryGateway interface {
	List(ctx context.Context, q ListQuery) ([]entity.InventoryItem, entity.Pagination, error)
	Create(ctx context.Context, item entity.InventoryItem) (*entity.InventoryItem, error)
	Update(ctx context.Context, item entity.InventoryItem) (*entity.InventoryItem, error)
	Delete(ctx context.Context, id int) error
}

// InvoiceGateway transporte remoto de facturas.
type InvoiceGateway interface {
	List(ctx context.Context, q ListQuery) ([]entity.Invoice, entity.Pagination, error)
	GetByID(ctx context.Context, id int) (*entity.Invoice, error)
	Create(ctx context.Context, inv entity.Invoice) (*entity.Invoice, error)
	Update(ctx context.Context, inv entity.Invoice) (*entity.Invoice, error)
	UpdateStatus(ctx context.Context, id int, status string) error
	Delete(ctx context.Context, id int) error
}

// UserGateway transporte remoto de usuarios, incluida la autenticación.
type UserGateway interface {
	List(ctx context.Context, q ListQuery) ([]entity.User, entity.Pagination, error)
	Create(ctx context.Context, u entity.User, password string) (*entity.User, error)
	Delete(ctx context.Context, id int) error
	Login(ctx context.Context, email, password string) (*dto.LoginResult, error)
}

// StatisticsGateway transporte remoto de estadísticas de facturación.
type StatisticsGateway interface {
	Summary(ctx context.Context) (*dto.StatisticsSummary, error)
	Report(ctx context.Context, period string) (*dto.StatisticsReport, error)
}
