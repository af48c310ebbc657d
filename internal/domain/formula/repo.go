package formula

import (
	"context"

	"fabrica/internal/core/id"
	"fabrica/internal/domain"
)

// Repository defines the interface for formula line persistence.
type Repository interface {
	domain.CatalogRepository[*Line]

	// ListActiveByProduct returns the active formula lines for a product,
	// ordered by raw material ID so concurrent checkers lock rows in a
	// stable order.
	ListActiveByProduct(ctx context.Context, productID id.ID) ([]*Line, error)

	// ExistsForPair reports whether an active line already links the
	// product to the raw material.
	ExistsForPair(ctx context.Context, productID, rawMaterialID id.ID) (bool, error)
}
