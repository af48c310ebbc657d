// Package id provides UUIDv7 identifiers for all entities.
// Time-ordered UUIDs sort by creation time, which the backlog ledger
// relies on for its oldest-first processing order.
package id

import (
	"github.com/google/uuid"
)

// ID identifies any entity in the system.
type ID = uuid.UUID

// New generates a new UUIDv7.
func New() ID {
	v7, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails if the entropy source is broken; fall back to V4.
		return uuid.New()
	}
	return v7
}

// Parse converts a string to an ID.
func Parse(s string) (ID, error) {
	return uuid.Parse(s)
}

// MustParse converts a string to an ID, panicking on error.
// Only for constants and tests.
func MustParse(s string) ID {
	return uuid.MustParse(s)
}

// Nil returns the zero-value ID.
func Nil() ID {
	return uuid.Nil
}

// IsNil reports whether id is the zero value.
func IsNil(id ID) bool {
	return id == uuid.Nil
}
