package dto

import (
	"fabrica/internal/core/id"
	"fabrica/internal/domain/offered"
)

// ProduceRequest is the request body for running production.
type ProduceRequest struct {
	ProductID   id.ID `json:"productId" binding:"required"`
	WarehouseID id.ID `json:"warehouseId" binding:"required"`
	Quantity    int64 `json:"quantity" binding:"required,min=1"`
}

// CheckRequirementsRequest is the request body for a dry-run
// requirement check.
type CheckRequirementsRequest struct {
	ProductID id.ID `json:"productId" binding:"required"`
	Quantity  int64 `json:"quantity" binding:"required,min=1"`
}

// UpdateOfferedProductRequest is the request body for editing a batch.
type UpdateOfferedProductRequest struct {
	Code        string `json:"code" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Quantity    int64  `json:"quantity" binding:"min=0"`
	WarehouseID id.ID  `json:"warehouseId" binding:"required"`
	IsActive    bool   `json:"isActive"`
	Version     int    `json:"version" binding:"required,min=1"`
}

// ApplyTo applies the update DTO to an existing entity.
func (r *UpdateOfferedProductRequest) ApplyTo(p *offered.Product) {
	p.Code = r.Code
	p.Name = r.Name
	p.Quantity = r.Quantity
	p.WarehouseID = r.WarehouseID
	p.IsActive = r.IsActive
	p.Version = r.Version
}

// OfferedProductResponse is the response body for an offered batch.
type OfferedProductResponse struct {
	BaseResponse
	Code        string `json:"code"`
	Name        string `json:"name"`
	Quantity    int64  `json:"quantity"`
	WarehouseID string `json:"warehouseId"`
	ProductID   string `json:"productId"`
}

// FromOfferedProduct creates a response DTO from a domain entity.
func FromOfferedProduct(p *offered.Product) *OfferedProductResponse {
	return &OfferedProductResponse{
		BaseResponse: FromBase(p.Base),
		Code:         p.Code,
		Name:         p.Name,
		Quantity:     p.Quantity,
		WarehouseID:  p.WarehouseID.String(),
		ProductID:    p.ProductID.String(),
	}
}

// ProduceResponse is the result of a successful production run.
type ProduceResponse struct {
	Batch *OfferedProductResponse `json:"batch"`
}
