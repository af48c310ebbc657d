package dto

import (
	"time"

	"fabrica/internal/core/id"
	"fabrica/internal/core/types"
	"fabrica/internal/domain/order"
)

// CreateOrderRequest is the request body for placing an order.
type CreateOrderRequest struct {
	OfferedProductID id.ID        `json:"offeredProductId" binding:"required"`
	Quantity         types.Money  `json:"quantity" binding:"required"`
	Discount         *types.Money `json:"discount"`
}

// ToInput converts the DTO to a service-level input.
func (r *CreateOrderRequest) ToInput() order.CreateInput {
	discount := types.Zero()
	if r.Discount != nil {
		discount = *r.Discount
	}
	return order.CreateInput{
		OfferedProductID: r.OfferedProductID,
		Quantity:         r.Quantity,
		Discount:         discount,
	}
}

// UpdateOrderRequest is the request body for patching an order.
// Omitted fields are left unchanged.
type UpdateOrderRequest struct {
	Quantity    *types.Money `json:"quantity"`
	Discount    *types.Money `json:"discount"`
	IsDelivered *bool        `json:"isDelivered"`
}

// ToPatch converts the DTO to a domain patch.
func (r *UpdateOrderRequest) ToPatch() order.Patch {
	return order.Patch{
		Quantity:    r.Quantity,
		Discount:    r.Discount,
		IsDelivered: r.IsDelivered,
	}
}

// OrderResponse is the response body for an order.
type OrderResponse struct {
	BaseResponse
	OfferedProductID string      `json:"offeredProductId"`
	Quantity         types.Money `json:"quantity"`
	Discount         types.Money `json:"discount"`
	Total            types.Money `json:"total"`
	IsDelivered      bool        `json:"isDelivered"`
	OrderDate        time.Time   `json:"orderDate"`
	DeliveryDate     *time.Time  `json:"deliveryDate,omitempty"`
}

// FromOrder creates a response DTO from a domain entity.
func FromOrder(o *order.Order) *OrderResponse {
	return &OrderResponse{
		BaseResponse:     FromBase(o.Base),
		OfferedProductID: o.OfferedProductID.String(),
		Quantity:         o.Quantity,
		Discount:         o.Discount,
		Total:            o.Total,
		IsDelivered:      o.IsDelivered,
		OrderDate:        o.OrderDate,
		DeliveryDate:     o.DeliveryDate,
	}
}
