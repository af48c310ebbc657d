package dto

import (
	"fabrica/internal/domain/catalogs/supplier"
)

// CreateSupplierRequest is the request body for creating a supplier.
type CreateSupplierRequest struct {
	Code    string `json:"code"`
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`
}

// ToEntity converts the DTO to a domain entity.
func (r *CreateSupplierRequest) ToEntity() *supplier.Supplier {
	return supplier.New(r.Code, r.Name, r.Address)
}

// UpdateSupplierRequest is the request body for updating a supplier.
type UpdateSupplierRequest struct {
	Code     string `json:"code"`
	Name     string `json:"name" binding:"required"`
	Address  string `json:"address" binding:"required"`
	IsActive bool   `json:"isActive"`
	Version  int    `json:"version" binding:"required,min=1"`
}

// ApplyTo applies the update DTO to an existing entity.
func (r *UpdateSupplierRequest) ApplyTo(s *supplier.Supplier) {
	s.Code = r.Code
	s.Name = r.Name
	s.Address = r.Address
	s.IsActive = r.IsActive
	s.Version = r.Version
}

// SupplierResponse is the response body for a supplier.
type SupplierResponse struct {
	BaseResponse
	Code    string `json:"code"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// FromSupplier creates a response DTO from a domain entity.
func FromSupplier(s *supplier.Supplier) *SupplierResponse {
	return &SupplierResponse{
		BaseResponse: FromBase(s.Base),
		Code:         s.Code,
		Name:         s.Name,
		Address:      s.Address,
	}
}
