package purchase

import (
	"context"

	"fabrica/internal/core/id"
	"fabrica/internal/domain"
)

// Repository defines the interface for purchase persistence.
type Repository interface {
	domain.CatalogRepository[*Purchase]

	// GetForUpdate retrieves a purchase with a row lock; receipt takes
	// it so the delivered flag flips exactly once.
	GetForUpdate(ctx context.Context, id id.ID) (*Purchase, error)

	// ListBySupplier returns purchases placed with a supplier.
	ListBySupplier(ctx context.Context, supplierID id.ID, filter domain.ListFilter) (domain.ListResult[*Purchase], error)
}
