package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"fabrica/internal/core/apperror"
)

// PostgreSQL error codes.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// MapError converts pgx errors on writes to AppErrors. Unique
// violations become Duplicate, foreign key violations Conflict and
// CHECK violations (the non-negative quantity guards) InvalidQuantity.
func MapError(err error, entity string) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgUniqueViolation:
		return apperror.NewDuplicate(entity, constraintField(pgErr)).WithCause(err)
	case pgForeignKeyViolation:
		return apperror.NewConflict("operation violates a reference to another record").
			WithDetail("entity", entity).
			WithDetail("constraint", pgErr.ConstraintName).
			WithCause(err)
	case pgCheckViolation:
		return apperror.NewValidation("value violates a database constraint").
			WithDetail("entity", entity).
			WithDetail("constraint", pgErr.ConstraintName).
			WithCause(err)
	}

	return err
}

func constraintField(pgErr *pgconn.PgError) string {
	if pgErr.ConstraintName != "" {
		return pgErr.ConstraintName
	}
	return "key"
}
