package entity

import (
	"context"

	"fabrica/internal/core/apperror"
)

// Catalog is the base type for reference data: products, raw materials,
// warehouses, suppliers.
type Catalog struct {
	Base

	// Code is a human-readable identifier (unique where the table enforces it)
	Code string `db:"code" json:"code"`

	// Name is the display name
	Name string `db:"name" json:"name"`
}

// NewCatalog creates a Catalog with a generated ID.
func NewCatalog(code, name string) Catalog {
	return Catalog{
		Base: NewBase(),
		Code: code,
		Name: name,
	}
}

// Validate implements Validatable.
func (c *Catalog) Validate(ctx context.Context) error {
	if c.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}
	return nil
}
