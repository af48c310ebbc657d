package price

import (
	"context"

	"fabrica/internal/core/id"
	"fabrica/internal/domain"
)

// Repository defines the interface for Price persistence.
type Repository interface {
	domain.CatalogRepository[*Price]

	// GetByProductID returns the active price for a product.
	GetByProductID(ctx context.Context, productID id.ID) (*Price, error)
}
