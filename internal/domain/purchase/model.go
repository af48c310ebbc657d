// Package purchase manages raw material procurement: purchases placed
// with suppliers and the receipt transition that credits raw material
// stock.
package purchase

import (
	"context"
	"time"

	"fabrica/internal/core/apperror"
	"fabrica/internal/core/entity"
	"fabrica/internal/core/id"
)

// Purchase is an order of raw material units from a supplier.
type Purchase struct {
	entity.Base

	SupplierID    id.ID      `db:"supplier_id" json:"supplierId"`
	RawMaterialID id.ID      `db:"raw_material_id" json:"rawMaterialId"`
	Quantity      int64      `db:"quantity" json:"quantity"`
	IsDelivered   bool       `db:"is_delivered" json:"isDelivered"`
	OrderDate     time.Time  `db:"order_date" json:"orderDate"`
	DeliveryDate  *time.Time `db:"delivery_date" json:"deliveryDate,omitempty"`
}

// New creates a pending purchase.
func New(supplierID, rawMaterialID id.ID, quantity int64, orderDate time.Time) *Purchase {
	return &Purchase{
		Base:          entity.NewBase(),
		SupplierID:    supplierID,
		RawMaterialID: rawMaterialID,
		Quantity:      quantity,
		OrderDate:     orderDate,
	}
}

// Validate implements entity.Validatable.
func (p *Purchase) Validate(ctx context.Context) error {
	if id.IsNil(p.SupplierID) {
		return apperror.NewValidation("supplier is required").
			WithDetail("field", "supplierId")
	}

	if id.IsNil(p.RawMaterialID) {
		return apperror.NewValidation("raw material is required").
			WithDetail("field", "rawMaterialId")
	}

	if p.Quantity <= 0 {
		return apperror.NewInvalidQuantity(p.Quantity)
	}

	return nil
}

// Patch carries partial updates; nil fields are left unchanged.
type Patch struct {
	Quantity    *int64
	IsDelivered *bool
}
