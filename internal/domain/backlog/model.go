// Package backlog tracks unmet demand. When an order cannot be filled
// from produced stock, the shortfall is recorded here; subsequent
// production runs drain entries oldest first.
package backlog

import (
	"context"

	"fabrica/internal/core/apperror"
	"fabrica/internal/core/entity"
	"fabrica/internal/core/id"
)

// Entry is one recorded shortfall for a product. RequiredQuantity is
// the number of units still owed; a fully drained entry is deactivated.
type Entry struct {
	entity.Base

	ProductID        id.ID `db:"product_id" json:"productId"`
	RequiredQuantity int64 `db:"required_quantity" json:"requiredQuantity"`
}

// NewEntry creates a backlog entry for a product shortfall.
func NewEntry(productID id.ID, required int64) *Entry {
	return &Entry{
		Base:             entity.NewBase(),
		ProductID:        productID,
		RequiredQuantity: required,
	}
}

// Validate implements entity.Validatable.
func (e *Entry) Validate(ctx context.Context) error {
	if id.IsNil(e.ProductID) {
		return apperror.NewValidation("product is required").
			WithDetail("field", "productId")
	}

	if e.RequiredQuantity <= 0 {
		return apperror.NewValidation("required quantity must be positive").
			WithDetail("field", "requiredQuantity")
	}

	return nil
}
