package order

import (
	"context"

	"fabrica/internal/core/id"
	"fabrica/internal/domain"
)

// Repository defines the interface for order persistence.
type Repository interface {
	domain.CatalogRepository[*Order]

	// GetForUpdate retrieves an order with a row lock; delivery takes it
	// so the delivered flag flips exactly once.
	GetForUpdate(ctx context.Context, id id.ID) (*Order, error)

	// ListByOfferedProduct returns orders placed against a batch.
	ListByOfferedProduct(ctx context.Context, offeredProductID id.ID, filter domain.ListFilter) (domain.ListResult[*Order], error)
}
