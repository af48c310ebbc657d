// Package rawmaterial provides the raw-material catalog and the raw side
// of the quantity ledger. Available quantity is consumed by production
// runs and credited by purchase receipts; it never goes negative.
package rawmaterial

import (
	"context"

	"fabrica/internal/core/apperror"
	"fabrica/internal/core/entity"
	"fabrica/internal/core/id"
)

// RawMaterial represents a stocked production input.
type RawMaterial struct {
	entity.Catalog

	// AvailableQuantity is the units currently in stock
	AvailableQuantity int64 `db:"available_quantity" json:"availableQuantity"`

	// WarehouseID references the owning warehouse
	WarehouseID id.ID `db:"warehouse_id" json:"warehouseId"`
}

// New creates a RawMaterial with required fields.
func New(code, name string, warehouseID id.ID, quantity int64) *RawMaterial {
	return &RawMaterial{
		Catalog:           entity.NewCatalog(code, name),
		AvailableQuantity: quantity,
		WarehouseID:       warehouseID,
	}
}

// Validate implements entity.Validatable.
func (m *RawMaterial) Validate(ctx context.Context) error {
	if err := m.Catalog.Validate(ctx); err != nil {
		return err
	}

	if m.Code == "" {
		return apperror.NewValidation("code is required").
			WithDetail("field", "code")
	}

	if m.AvailableQuantity < 0 {
		return apperror.NewValidation("available quantity cannot be negative").
			WithDetail("field", "availableQuantity")
	}

	if id.IsNil(m.WarehouseID) {
		return apperror.NewValidation("warehouse is required").
			WithDetail("field", "warehouseId")
	}

	return nil
}
