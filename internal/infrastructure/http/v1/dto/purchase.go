package dto

import (
	"time"

	"fabrica/internal/core/id"
	"fabrica/internal/domain/purchase"
)

// CreatePurchaseRequest is the request body for placing a purchase.
type CreatePurchaseRequest struct {
	SupplierID    id.ID `json:"supplierId" binding:"required"`
	RawMaterialID id.ID `json:"rawMaterialId" binding:"required"`
	Quantity      int64 `json:"quantity" binding:"required,min=1"`
}

// UpdatePurchaseRequest is the request body for patching a purchase.
// Omitted fields are left unchanged.
type UpdatePurchaseRequest struct {
	Quantity    *int64 `json:"quantity"`
	IsDelivered *bool  `json:"isDelivered"`
}

// ToPatch converts the DTO to a domain patch.
func (r *UpdatePurchaseRequest) ToPatch() purchase.Patch {
	return purchase.Patch{
		Quantity:    r.Quantity,
		IsDelivered: r.IsDelivered,
	}
}

// PurchaseResponse is the response body for a purchase.
type PurchaseResponse struct {
	BaseResponse
	SupplierID    string     `json:"supplierId"`
	RawMaterialID string     `json:"rawMaterialId"`
	Quantity      int64      `json:"quantity"`
	IsDelivered   bool       `json:"isDelivered"`
	OrderDate     time.Time  `json:"orderDate"`
	DeliveryDate  *time.Time `json:"deliveryDate,omitempty"`
}

// FromPurchase creates a response DTO from a domain entity.
func FromPurchase(p *purchase.Purchase) *PurchaseResponse {
	return &PurchaseResponse{
		BaseResponse:  FromBase(p.Base),
		SupplierID:    p.SupplierID.String(),
		RawMaterialID: p.RawMaterialID.String(),
		Quantity:      p.Quantity,
		IsDelivered:   p.IsDelivered,
		OrderDate:     p.OrderDate,
		DeliveryDate:  p.DeliveryDate,
	}
}
