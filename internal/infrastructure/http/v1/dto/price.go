package dto

import (
	"fabrica/internal/core/id"
	"fabrica/internal/core/types"
	"fabrica/internal/domain/catalogs/price"
)

// CreatePriceRequest is the request body for assigning a product price.
type CreatePriceRequest struct {
	ProductID id.ID       `json:"productId" binding:"required"`
	Price     types.Money `json:"price" binding:"required"`
}

// ToEntity converts the DTO to a domain entity.
func (r *CreatePriceRequest) ToEntity() *price.Price {
	return price.New(r.ProductID, r.Price)
}

// UpdatePriceRequest is the request body for updating a product price.
type UpdatePriceRequest struct {
	ProductID id.ID       `json:"productId" binding:"required"`
	Price     types.Money `json:"price" binding:"required"`
	IsActive  bool        `json:"isActive"`
	Version   int         `json:"version" binding:"required,min=1"`
}

// ApplyTo applies the update DTO to an existing entity.
func (r *UpdatePriceRequest) ApplyTo(p *price.Price) {
	p.ProductID = r.ProductID
	p.Price = r.Price
	p.IsActive = r.IsActive
	p.Version = r.Version
}

// PriceResponse is the response body for a price.
type PriceResponse struct {
	BaseResponse
	ProductID string      `json:"productId"`
	Price     types.Money `json:"price"`
}

// FromPrice creates a response DTO from a domain entity.
func FromPrice(p *price.Price) *PriceResponse {
	return &PriceResponse{
		BaseResponse: FromBase(p.Base),
		ProductID:    p.ProductID.String(),
		Price:        p.Price,
	}
}
