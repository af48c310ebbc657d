package offered

import (
	"context"

	"fabrica/internal/core/id"
	"fabrica/internal/domain"
)

// Repository defines the interface for offered product persistence.
type Repository interface {
	domain.CatalogRepository[*Product]

	// GetForUpdate retrieves a batch with a row lock. Order settlement
	// locks the batch before checking and decrementing its quantity.
	GetForUpdate(ctx context.Context, id id.ID) (*Product, error)

	// ApplyQuantityDelta atomically adjusts quantity by delta (negative
	// on delivery). The update is guarded against going below zero.
	ApplyQuantityDelta(ctx context.Context, id id.ID, delta int64, actor id.ID) error
}
