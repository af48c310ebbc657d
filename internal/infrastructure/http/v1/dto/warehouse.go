package dto

import (
	"fabrica/internal/domain/catalogs/warehouse"
)

// CreateWarehouseRequest is the request body for creating a warehouse.
type CreateWarehouseRequest struct {
	Code    string         `json:"code"`
	Name    string         `json:"name" binding:"required"`
	Type    warehouse.Type `json:"type" binding:"required"`
	Address *string        `json:"address"`
}

// ToEntity converts the DTO to a domain entity.
func (r *CreateWarehouseRequest) ToEntity() *warehouse.Warehouse {
	wh := warehouse.New(r.Code, r.Name, r.Type)
	wh.Address = r.Address
	return wh
}

// UpdateWarehouseRequest is the request body for updating a warehouse.
type UpdateWarehouseRequest struct {
	Code     string         `json:"code"`
	Name     string         `json:"name" binding:"required"`
	Type     warehouse.Type `json:"type" binding:"required"`
	Address  *string        `json:"address,omitempty"`
	IsActive bool           `json:"isActive"`
	Version  int            `json:"version" binding:"required,min=1"`
}

// ApplyTo applies the update DTO to an existing entity.
func (r *UpdateWarehouseRequest) ApplyTo(wh *warehouse.Warehouse) {
	wh.Code = r.Code
	wh.Name = r.Name
	wh.Type = r.Type
	wh.Address = r.Address
	wh.IsActive = r.IsActive
	wh.Version = r.Version
}

// WarehouseResponse is the response body for a warehouse.
type WarehouseResponse struct {
	BaseResponse
	Code    string         `json:"code"`
	Name    string         `json:"name"`
	Type    warehouse.Type `json:"type"`
	Address *string        `json:"address,omitempty"`
}

// FromWarehouse creates a response DTO from a domain entity.
func FromWarehouse(wh *warehouse.Warehouse) *WarehouseResponse {
	return &WarehouseResponse{
		BaseResponse: FromBase(wh.Base),
		Code:         wh.Code,
		Name:         wh.Name,
		Type:         wh.Type,
		Address:      wh.Address,
	}
}
