// Package offered manages produced stock: finished units of a product
// placed in a warehouse and available for order fulfillment.
package offered

import (
	"context"

	"fabrica/internal/core/apperror"
	"fabrica/internal/core/entity"
	"fabrica/internal/core/id"
)

// Product is a batch of finished units. Code is derived from the
// production date; Quantity is what is still available for orders.
type Product struct {
	entity.Catalog

	Quantity    int64 `db:"quantity" json:"quantity"`
	WarehouseID id.ID `db:"warehouse_id" json:"warehouseId"`
	ProductID   id.ID `db:"product_id" json:"productId"`
}

// New creates an offered product batch.
func New(code, name string, productID, warehouseID id.ID, quantity int64) *Product {
	return &Product{
		Catalog:     entity.NewCatalog(code, name),
		Quantity:    quantity,
		WarehouseID: warehouseID,
		ProductID:   productID,
	}
}

// Validate implements entity.Validatable.
func (p *Product) Validate(ctx context.Context) error {
	if err := p.Catalog.Validate(ctx); err != nil {
		return err
	}

	if p.Quantity < 0 {
		return apperror.NewValidation("quantity cannot be negative").
			WithDetail("field", "quantity")
	}

	if id.IsNil(p.ProductID) {
		return apperror.NewValidation("product is required").
			WithDetail("field", "productId")
	}

	if id.IsNil(p.WarehouseID) {
		return apperror.NewValidation("warehouse is required").
			WithDetail("field", "warehouseId")
	}

	return nil
}
