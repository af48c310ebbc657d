package product

import (
	"context"

	"fabrica/internal/core/id"
	"fabrica/internal/domain"
)

// Repository defines the interface for Product persistence.
type Repository interface {
	domain.CatalogRepository[*Product]

	// GetName returns just the product name; production runs use it to
	// label new batches without loading the full row.
	GetName(ctx context.Context, id id.ID) (string, error)
}
