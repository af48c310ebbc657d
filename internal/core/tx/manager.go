// Package tx defines the transaction management contract used by domain
// services, decoupling them from the PostgreSQL implementation.
package tx

import (
	"context"
)

// Manager handles BEGIN, COMMIT and ROLLBACK around a unit of work.
//
// Domain services depend on this interface; the implementation lives in
// infrastructure/storage/postgres. Nested calls reuse the transaction
// already present in the context.
type Manager interface {
	// RunInTransaction executes fn within a database transaction.
	// If fn returns an error the transaction is rolled back,
	// otherwise it is committed.
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
