// Package order manages customer orders against offered product
// batches: price settlement on creation, discount rules and the
// one-way delivery transition that decrements batch stock.
package order

import (
	"context"
	"time"

	"fabrica/internal/core/apperror"
	"fabrica/internal/core/entity"
	"fabrica/internal/core/id"
	"fabrica/internal/core/types"
)

// Order is a customer order for units of an offered batch. Total is
// settled at creation time from the product price and the discount.
type Order struct {
	entity.Base

	OfferedProductID id.ID       `db:"offered_product_id" json:"offeredProductId"`
	Quantity         types.Money `db:"quantity" json:"quantity"`
	Discount         types.Money `db:"discount" json:"discount"`
	Total            types.Money `db:"total" json:"total"`
	IsDelivered      bool        `db:"is_delivered" json:"isDelivered"`
	OrderDate        time.Time   `db:"order_date" json:"orderDate"`
	DeliveryDate     *time.Time  `db:"delivery_date" json:"deliveryDate,omitempty"`
}

// New creates an Order; total is filled in by settlement.
func New(offeredProductID id.ID, quantity, discount types.Money, orderDate time.Time) *Order {
	return &Order{
		Base:             entity.NewBase(),
		OfferedProductID: offeredProductID,
		Quantity:         quantity,
		Discount:         discount,
		OrderDate:        orderDate,
	}
}

// Validate implements entity.Validatable.
func (o *Order) Validate(ctx context.Context) error {
	if id.IsNil(o.OfferedProductID) {
		return apperror.NewValidation("offered product is required").
			WithDetail("field", "offeredProductId")
	}

	if !o.Quantity.IsPositive() {
		return apperror.NewInvalidQuantity(o.Quantity.IntPart())
	}

	if o.Discount.IsNegative() {
		return apperror.NewValidation("discount cannot be negative").
			WithDetail("field", "discount")
	}

	return nil
}

// Patch carries partial updates; nil fields are left unchanged.
type Patch struct {
	Quantity    *types.Money
	Discount    *types.Money
	IsDelivered *bool
}
