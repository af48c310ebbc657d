package backlog

import (
	"context"

	"fabrica/internal/core/id"
	"fabrica/internal/domain"
)

// Repository defines the interface for backlog persistence.
type Repository interface {
	domain.CatalogRepository[*Entry]

	// ListActiveByProduct returns active entries for a product ordered
	// by creation time, oldest first. Rows are locked so concurrent
	// production runs drain the queue one at a time.
	ListActiveByProduct(ctx context.Context, productID id.ID) ([]*Entry, error)
}
