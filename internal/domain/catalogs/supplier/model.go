// Package supplier provides the supplier catalog: the vendors raw
// materials are purchased from.
package supplier

import (
	"context"

	"fabrica/internal/core/apperror"
	"fabrica/internal/core/entity"
)

// Supplier represents a raw-material vendor.
type Supplier struct {
	entity.Catalog

	// Address is the supplier's contact address
	Address string `db:"address" json:"address"`
}

// New creates a Supplier with required fields.
func New(code, name, address string) *Supplier {
	return &Supplier{
		Catalog: entity.NewCatalog(code, name),
		Address: address,
	}
}

// Validate implements entity.Validatable.
func (s *Supplier) Validate(ctx context.Context) error {
	if err := s.Catalog.Validate(ctx); err != nil {
		return err
	}

	if s.Address == "" {
		return apperror.NewValidation("address is required").
			WithDetail("field", "address")
	}

	return nil
}
