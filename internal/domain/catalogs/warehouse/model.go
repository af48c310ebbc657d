// Package warehouse provides the warehouse catalog: physical locations
// where raw materials are stored and offered-product batches are kept.
package warehouse

import (
	"context"

	"fabrica/internal/core/apperror"
	"fabrica/internal/core/entity"
)

// Type defines the warehouse category.
type Type string

const (
	TypeMain       Type = "main"
	TypeProduction Type = "production"
	TypeRetail     Type = "retail"
	TypeTransit    Type = "transit"
)

// Warehouse represents a storage location.
type Warehouse struct {
	entity.Catalog

	// Type defines the warehouse category
	Type Type `db:"type" json:"type"`

	// Address is the physical address
	Address *string `db:"address" json:"address,omitempty"`
}

// New creates a Warehouse with required fields.
func New(code, name string, whType Type) *Warehouse {
	return &Warehouse{
		Catalog: entity.NewCatalog(code, name),
		Type:    whType,
	}
}

// Validate implements entity.Validatable.
func (w *Warehouse) Validate(ctx context.Context) error {
	if err := w.Catalog.Validate(ctx); err != nil {
		return err
	}

	if !isValidType(w.Type) {
		return apperror.NewValidation("invalid warehouse type").
			WithDetail("field", "type").
			WithDetail("value", string(w.Type))
	}

	return nil
}

func isValidType(t Type) bool {
	switch t {
	case TypeMain, TypeProduction, TypeRetail, TypeTransit:
		return true
	}
	return false
}
