package dto

import (
	"fabrica/internal/core/id"
	"fabrica/internal/domain/catalogs/rawmaterial"
)

// CreateRawMaterialRequest is the request body for creating a raw material.
type CreateRawMaterialRequest struct {
	Code              string `json:"code"`
	Name              string `json:"name" binding:"required"`
	AvailableQuantity int64  `json:"availableQuantity" binding:"min=0"`
	WarehouseID       id.ID  `json:"warehouseId" binding:"required"`
}

// ToEntity converts the DTO to a domain entity.
func (r *CreateRawMaterialRequest) ToEntity() *rawmaterial.RawMaterial {
	return rawmaterial.New(r.Code, r.Name, r.WarehouseID, r.AvailableQuantity)
}

// UpdateRawMaterialRequest is the request body for updating a raw material.
type UpdateRawMaterialRequest struct {
	Code              string `json:"code"`
	Name              string `json:"name" binding:"required"`
	AvailableQuantity int64  `json:"availableQuantity" binding:"min=0"`
	WarehouseID       id.ID  `json:"warehouseId" binding:"required"`
	IsActive          bool   `json:"isActive"`
	Version           int    `json:"version" binding:"required,min=1"`
}

// ApplyTo applies the update DTO to an existing entity.
func (r *UpdateRawMaterialRequest) ApplyTo(m *rawmaterial.RawMaterial) {
	m.Code = r.Code
	m.Name = r.Name
	m.AvailableQuantity = r.AvailableQuantity
	m.WarehouseID = r.WarehouseID
	m.IsActive = r.IsActive
	m.Version = r.Version
}

// RawMaterialResponse is the response body for a raw material.
type RawMaterialResponse struct {
	BaseResponse
	Code              string `json:"code"`
	Name              string `json:"name"`
	AvailableQuantity int64  `json:"availableQuantity"`
	WarehouseID       string `json:"warehouseId"`
}

// FromRawMaterial creates a response DTO from a domain entity.
func FromRawMaterial(m *rawmaterial.RawMaterial) *RawMaterialResponse {
	return &RawMaterialResponse{
		BaseResponse:      FromBase(m.Base),
		Code:              m.Code,
		Name:              m.Name,
		AvailableQuantity: m.AvailableQuantity,
		WarehouseID:       m.WarehouseID.String(),
	}
}
