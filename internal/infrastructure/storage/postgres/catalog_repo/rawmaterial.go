package catalog_repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"fabrica/internal/core/apperror"
	"fabrica/internal/core/id"
	"fabrica/internal/domain/catalogs/rawmaterial"
	"fabrica/internal/infrastructure/storage/postgres"
)

const rawMaterialTable = "cat_raw_materials"

// RawMaterialRepo implements rawmaterial.Repository.
type RawMaterialRepo struct {
	*BaseCatalogRepo[*rawmaterial.RawMaterial]
}

// NewRawMaterialRepo creates a new raw material repository.
func NewRawMaterialRepo(txManager *postgres.TxManager) *RawMaterialRepo {
	return &RawMaterialRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txManager,
			rawMaterialTable,
			postgres.ExtractDBColumns[rawmaterial.RawMaterial](),
			[]string{"name", "code"},
			func() *rawmaterial.RawMaterial { return &rawmaterial.RawMaterial{} },
		),
	}
}

// ApplyQuantityDelta atomically adjusts available_quantity. The guard
// in the WHERE clause keeps the resulting quantity non-negative, so a
// concurrent consumer can never overdraw stock.
func (r *RawMaterialRepo) ApplyQuantityDelta(ctx context.Context, materialID id.ID, delta int64, actor id.ID) error {
	sql, args, err := r.Builder().
		Update(rawMaterialTable).
		Set("available_quantity", squirrel.Expr("available_quantity + ?", delta)).
		Set("version", squirrel.Expr("version + 1")).
		Set("updated_at", squirrel.Expr("now()")).
		Set("updated_by", actor).
		Where(squirrel.Eq{"id": materialID}).
		Where(squirrel.Expr("available_quantity + ? >= 0", delta)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build quantity update: %w", err)
	}

	result, err := r.Querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		if mapped := postgres.MapError(err, rawMaterialTable); mapped != err {
			return mapped
		}
		return fmt.Errorf("apply quantity delta: %w", err)
	}

	if result.RowsAffected() == 0 {
		available, availErr := r.currentQuantity(ctx, materialID)
		if availErr != nil {
			return availErr
		}
		return apperror.NewInsufficientStock(materialID, -delta, available)
	}

	return nil
}

func (r *RawMaterialRepo) currentQuantity(ctx context.Context, materialID id.ID) (int64, error) {
	sql, args, err := r.Builder().
		Select("available_quantity").
		From(rawMaterialTable).
		Where(squirrel.Eq{"id": materialID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var available int64
	err = r.Querier(ctx).QueryRow(ctx, sql, args...).Scan(&available)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, apperror.NewNotFound(rawMaterialTable, materialID.String())
	}
	if err != nil {
		return 0, fmt.Errorf("current quantity: %w", err)
	}

	return available, nil
}
