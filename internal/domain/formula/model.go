// Package formula manages bills of material: per-product lists of raw
// material requirements, and the checker that decides whether a
// production run can be supplied from stock.
package formula

import (
	"context"

	"fabrica/internal/core/apperror"
	"fabrica/internal/core/entity"
	"fabrica/internal/core/id"
)

// Line is one bill-of-material row: producing one unit of the product
// consumes RequiredQuantity units of the raw material. A product holds
// at most one line per raw material.
type Line struct {
	entity.Base

	ProductID        id.ID `db:"product_id" json:"productId"`
	RawMaterialID    id.ID `db:"raw_material_id" json:"rawMaterialId"`
	RequiredQuantity int64 `db:"required_quantity" json:"requiredQuantity"`
}

// NewLine creates a formula line.
func NewLine(productID, rawMaterialID id.ID, required int64) *Line {
	return &Line{
		Base:             entity.NewBase(),
		ProductID:        productID,
		RawMaterialID:    rawMaterialID,
		RequiredQuantity: required,
	}
}

// Validate implements entity.Validatable.
func (l *Line) Validate(ctx context.Context) error {
	if id.IsNil(l.ProductID) {
		return apperror.NewValidation("product is required").
			WithDetail("field", "productId")
	}

	if id.IsNil(l.RawMaterialID) {
		return apperror.NewValidation("raw material is required").
			WithDetail("field", "rawMaterialId")
	}

	if l.RequiredQuantity <= 0 {
		return apperror.NewValidation("required quantity must be positive").
			WithDetail("field", "requiredQuantity")
	}

	return nil
}
