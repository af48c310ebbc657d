package dto

import (
	"fabrica/internal/core/id"
	"fabrica/internal/domain/backlog"
)

// CreateBacklogEntryRequest is the request body for recording a
// backlog entry by hand.
type CreateBacklogEntryRequest struct {
	ProductID        id.ID `json:"productId" binding:"required"`
	RequiredQuantity int64 `json:"requiredQuantity" binding:"required,min=1"`
}

// ToEntity converts the DTO to a domain entity.
func (r *CreateBacklogEntryRequest) ToEntity() *backlog.Entry {
	return backlog.NewEntry(r.ProductID, r.RequiredQuantity)
}

// UpdateBacklogEntryRequest is the request body for updating a
// backlog entry.
type UpdateBacklogEntryRequest struct {
	RequiredQuantity int64 `json:"requiredQuantity" binding:"required,min=1"`
	IsActive         bool  `json:"isActive"`
	Version          int   `json:"version" binding:"required,min=1"`
}

// ApplyTo applies the update DTO to an existing entity.
func (r *UpdateBacklogEntryRequest) ApplyTo(e *backlog.Entry) {
	e.RequiredQuantity = r.RequiredQuantity
	e.IsActive = r.IsActive
	e.Version = r.Version
}

// BacklogEntryResponse is the response body for a backlog entry.
type BacklogEntryResponse struct {
	BaseResponse
	ProductID        string `json:"productId"`
	RequiredQuantity int64  `json:"requiredQuantity"`
}

// FromBacklogEntry creates a response DTO from a domain entity.
func FromBacklogEntry(e *backlog.Entry) *BacklogEntryResponse {
	return &BacklogEntryResponse{
		BaseResponse:     FromBase(e.Base),
		ProductID:        e.ProductID.String(),
		RequiredQuantity: e.RequiredQuantity,
	}
}
