package production_repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"fabrica/internal/core/apperror"
	"fabrica/internal/core/id"
	"fabrica/internal/domain/offered"
	"fabrica/internal/infrastructure/storage/postgres"
	"fabrica/internal/infrastructure/storage/postgres/catalog_repo"
)

const offeredTable = "prod_offered_products"

// OfferedRepo implements offered.Repository.
type OfferedRepo struct {
	*catalog_repo.BaseCatalogRepo[*offered.Product]
}

// NewOfferedRepo creates a new offered product repository.
func NewOfferedRepo(txManager *postgres.TxManager) *OfferedRepo {
	return &OfferedRepo{
		BaseCatalogRepo: catalog_repo.NewBaseCatalogRepo(
			txManager,
			offeredTable,
			postgres.ExtractDBColumns[offered.Product](),
			[]string{"name", "code"},
			func() *offered.Product { return &offered.Product{} },
		),
	}
}

// ApplyQuantityDelta atomically adjusts a batch's quantity. The guard
// keeps the result non-negative so delivery can never over-decrement.
func (r *OfferedRepo) ApplyQuantityDelta(ctx context.Context, batchID id.ID, delta int64, actor id.ID) error {
	sql, args, err := r.Builder().
		Update(offeredTable).
		Set("quantity", squirrel.Expr("quantity + ?", delta)).
		Set("version", squirrel.Expr("version + 1")).
		Set("updated_at", squirrel.Expr("now()")).
		Set("updated_by", actor).
		Where(squirrel.Eq{"id": batchID}).
		Where(squirrel.Expr("quantity + ? >= 0", delta)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build quantity update: %w", err)
	}

	result, err := r.Querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		if mapped := postgres.MapError(err, offeredTable); mapped != err {
			return mapped
		}
		return fmt.Errorf("apply quantity delta: %w", err)
	}

	if result.RowsAffected() == 0 {
		available, availErr := r.currentQuantity(ctx, batchID)
		if availErr != nil {
			return availErr
		}
		return apperror.NewInsufficientStock(batchID, -delta, available)
	}

	return nil
}

func (r *OfferedRepo) currentQuantity(ctx context.Context, batchID id.ID) (int64, error) {
	sql, args, err := r.Builder().
		Select("quantity").
		From(offeredTable).
		Where(squirrel.Eq{"id": batchID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var available int64
	err = r.Querier(ctx).QueryRow(ctx, sql, args...).Scan(&available)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, apperror.NewNotFound(offeredTable, batchID.String())
	}
	if err != nil {
		return 0, fmt.Errorf("current quantity: %w", err)
	}

	return available, nil
}
