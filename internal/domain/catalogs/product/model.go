// Package product provides the product catalog. A product is the recipe
// subject: it owns formula lines and is the source of offered-product
// batches, but carries no stock of its own.
package product

import (
	"context"

	"fabrica/internal/core/entity"
)

// Product represents a producible good.
type Product struct {
	entity.Catalog

	// Description is free-form text
	Description *string `db:"description" json:"description,omitempty"`
}

// New creates a Product with required fields.
func New(code, name string) *Product {
	return &Product{
		Catalog: entity.NewCatalog(code, name),
	}
}

// Validate implements entity.Validatable.
func (p *Product) Validate(ctx context.Context) error {
	return p.Catalog.Validate(ctx)
}
