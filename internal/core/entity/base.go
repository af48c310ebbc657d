// Package entity provides the base types shared by all business entities.
package entity

import (
	"context"
	"time"

	"fabrica/internal/core/id"
)

// Validatable is implemented by entities that support self-validation.
// Validation checks internal invariants without database access.
type Validatable interface {
	Validate(ctx context.Context) error
}

// Auditable is implemented by entities carrying audit fields.
// The acting user is passed explicitly by services on every mutation.
type Auditable interface {
	StampCreated(actor id.ID)
	StampUpdated(actor id.ID)
}

// Base contains the fields common to every persisted entity:
// identity, active flag, optimistic-lock version and audit fields.
type Base struct {
	// ID is the primary key (UUIDv7)
	ID id.ID `db:"id" json:"id"`

	// IsActive marks the entity as usable; false acts as a soft delete
	IsActive bool `db:"is_active" json:"isActive"`

	// Version for optimistic locking (incremented on each update)
	Version int `db:"version" json:"version"`

	// Audit fields
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
	CreatedBy id.ID     `db:"created_by" json:"createdBy"`
	UpdatedBy id.ID     `db:"updated_by" json:"updatedBy"`
}

// NewBase creates a Base with a generated ID and fresh timestamps.
func NewBase() Base {
	now := time.Now().UTC()
	return Base{
		ID:        id.New(),
		IsActive:  true,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// StampCreated records the creating user.
func (b *Base) StampCreated(actor id.ID) {
	b.CreatedBy = actor
	b.UpdatedBy = id.Nil()
}

// StampUpdated records the updating user and refreshes updated_at.
func (b *Base) StampUpdated(actor id.ID) {
	b.UpdatedBy = actor
	b.UpdatedAt = time.Now().UTC()
}

// Deactivate clears the active flag (soft delete).
func (b *Base) Deactivate() {
	b.IsActive = false
}

// GetID returns the entity's primary key.
func (b *Base) GetID() id.ID {
	return b.ID
}
