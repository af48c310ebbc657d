package dto

import (
	"fabrica/internal/core/id"
	"fabrica/internal/domain/formula"
)

// CreateFormulaLineRequest is the request body for adding a
// bill-of-material line to a product.
type CreateFormulaLineRequest struct {
	ProductID        id.ID `json:"productId" binding:"required"`
	RawMaterialID    id.ID `json:"rawMaterialId" binding:"required"`
	RequiredQuantity int64 `json:"requiredQuantity" binding:"required,min=1"`
}

// ToEntity converts the DTO to a domain entity.
func (r *CreateFormulaLineRequest) ToEntity() *formula.Line {
	return formula.NewLine(r.ProductID, r.RawMaterialID, r.RequiredQuantity)
}

// UpdateFormulaLineRequest is the request body for updating a line.
type UpdateFormulaLineRequest struct {
	ProductID        id.ID `json:"productId" binding:"required"`
	RawMaterialID    id.ID `json:"rawMaterialId" binding:"required"`
	RequiredQuantity int64 `json:"requiredQuantity" binding:"required,min=1"`
	IsActive         bool  `json:"isActive"`
	Version          int   `json:"version" binding:"required,min=1"`
}

// ApplyTo applies the update DTO to an existing entity.
func (r *UpdateFormulaLineRequest) ApplyTo(l *formula.Line) {
	l.ProductID = r.ProductID
	l.RawMaterialID = r.RawMaterialID
	l.RequiredQuantity = r.RequiredQuantity
	l.IsActive = r.IsActive
	l.Version = r.Version
}

// FormulaLineResponse is the response body for a formula line.
type FormulaLineResponse struct {
	BaseResponse
	ProductID        string `json:"productId"`
	RawMaterialID    string `json:"rawMaterialId"`
	RequiredQuantity int64  `json:"requiredQuantity"`
}

// FromFormulaLine creates a response DTO from a domain entity.
func FromFormulaLine(l *formula.Line) *FormulaLineResponse {
	return &FormulaLineResponse{
		BaseResponse:     FromBase(l.Base),
		ProductID:        l.ProductID.String(),
		RawMaterialID:    l.RawMaterialID.String(),
		RequiredQuantity: l.RequiredQuantity,
	}
}

// ShortfallResponse is one missing raw material in a requirement check.
type ShortfallResponse struct {
	RawMaterialID string `json:"rawMaterialId"`
	Name          string `json:"name"`
	Required      int64  `json:"required"`
	Available     int64  `json:"available"`
	Missing       int64  `json:"missing"`
}

// CheckResultResponse is the outcome of a requirement check.
type CheckResultResponse struct {
	Satisfied  bool                `json:"satisfied"`
	Shortfalls []ShortfallResponse `json:"shortfalls,omitempty"`
}

// FromCheckResult creates a response DTO from a checker result.
func FromCheckResult(res formula.CheckResult) *CheckResultResponse {
	out := &CheckResultResponse{Satisfied: res.Satisfied}
	for _, sf := range res.Shortfalls {
		out.Shortfalls = append(out.Shortfalls, ShortfallResponse{
			RawMaterialID: sf.RawMaterialID.String(),
			Name:          sf.Name,
			Required:      sf.Required,
			Available:     sf.Available,
			Missing:       sf.Missing,
		})
	}
	return out
}
