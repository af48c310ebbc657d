package dto

import (
	"fabrica/internal/domain/catalogs/product"
)

// CreateProductRequest is the request body for creating a product.
type CreateProductRequest struct {
	Code        string  `json:"code"`
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

// ToEntity converts the DTO to a domain entity.
func (r *CreateProductRequest) ToEntity() *product.Product {
	p := product.New(r.Code, r.Name)
	p.Description = r.Description
	return p
}

// UpdateProductRequest is the request body for updating a product.
type UpdateProductRequest struct {
	Code        string  `json:"code"`
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description,omitempty"`
	IsActive    bool    `json:"isActive"`
	Version     int     `json:"version" binding:"required,min=1"`
}

// ApplyTo applies the update DTO to an existing entity.
func (r *UpdateProductRequest) ApplyTo(p *product.Product) {
	p.Code = r.Code
	p.Name = r.Name
	p.Description = r.Description
	p.IsActive = r.IsActive
	p.Version = r.Version
}

// ProductResponse is the response body for a product.
type ProductResponse struct {
	BaseResponse
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// FromProduct creates a response DTO from a domain entity.
func FromProduct(p *product.Product) *ProductResponse {
	return &ProductResponse{
		BaseResponse: FromBase(p.Base),
		Code:         p.Code,
		Name:         p.Name,
		Description:  p.Description,
	}
}
