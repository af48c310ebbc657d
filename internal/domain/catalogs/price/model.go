// Package price provides the per-product sale price catalog. Every
// product that can be ordered has exactly one active price row; order
// settlement reads it to compute the total.
package price

import (
	"context"

	"fabrica/internal/core/apperror"
	"fabrica/internal/core/entity"
	"fabrica/internal/core/id"
	"fabrica/internal/core/types"
)

// Price assigns a sale price to a product.
type Price struct {
	entity.Base

	ProductID id.ID       `db:"product_id" json:"productId"`
	Price     types.Money `db:"price" json:"price"`
}

// New creates a Price for a product.
func New(productID id.ID, amount types.Money) *Price {
	return &Price{
		Base:      entity.NewBase(),
		ProductID: productID,
		Price:     amount,
	}
}

// Validate implements entity.Validatable.
func (p *Price) Validate(ctx context.Context) error {
	if id.IsNil(p.ProductID) {
		return apperror.NewValidation("product is required").
			WithDetail("field", "productId")
	}

	if p.Price.IsNegative() {
		return apperror.NewValidation("price cannot be negative").
			WithDetail("field", "price")
	}

	return nil
}
