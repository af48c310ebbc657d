package rawmaterial

import (
	"context"

	"fabrica/internal/core/id"
	"fabrica/internal/domain"
)

// Repository defines the interface for RawMaterial persistence.
type Repository interface {
	domain.CatalogRepository[*RawMaterial]

	// GetForUpdate retrieves a raw material with a row lock. Must be
	// called within a transaction; the requirement checker locks every
	// formula line's material before deciding whether to consume.
	GetForUpdate(ctx context.Context, id id.ID) (*RawMaterial, error)

	// ApplyQuantityDelta atomically adjusts available_quantity by delta
	// (negative to consume). The update is guarded so the resulting
	// quantity can never drop below zero.
	ApplyQuantityDelta(ctx context.Context, id id.ID, delta int64, actor id.ID) error
}
