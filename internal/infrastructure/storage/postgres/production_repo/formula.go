// Package production_repo provides PostgreSQL repositories for the
// production engine: formula lines, offered batches and the backlog
// queue.
package production_repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"fabrica/internal/core/id"
	"fabrica/internal/domain/formula"
	"fabrica/internal/infrastructure/storage/postgres"
	"fabrica/internal/infrastructure/storage/postgres/catalog_repo"
)

const formulaTable = "prod_formula_lines"

// FormulaRepo implements formula.Repository.
type FormulaRepo struct {
	*catalog_repo.BaseCatalogRepo[*formula.Line]
}

// NewFormulaRepo creates a new formula line repository.
func NewFormulaRepo(txManager *postgres.TxManager) *FormulaRepo {
	return &FormulaRepo{
		BaseCatalogRepo: catalog_repo.NewBaseCatalogRepo(
			txManager,
			formulaTable,
			postgres.ExtractDBColumns[formula.Line](),
			nil,
			func() *formula.Line { return &formula.Line{} },
		),
	}
}

// ListActiveByProduct returns active lines ordered by raw material ID,
// giving every checker the same lock order.
func (r *FormulaRepo) ListActiveByProduct(ctx context.Context, productID id.ID) ([]*formula.Line, error) {
	q := r.Builder().
		Select(postgres.ExtractDBColumns[formula.Line]()...).
		From(formulaTable).
		Where(squirrel.Eq{"product_id": productID}).
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("raw_material_id ASC")

	return r.FindMany(ctx, q)
}

// ExistsForPair reports whether an active line links product and raw material.
func (r *FormulaRepo) ExistsForPair(ctx context.Context, productID, rawMaterialID id.ID) (bool, error) {
	sql, args, err := r.Builder().
		Select("1").
		From(formulaTable).
		Where(squirrel.Eq{"product_id": productID}).
		Where(squirrel.Eq{"raw_material_id": rawMaterialID}).
		Where(squirrel.Eq{"is_active": true}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	var exists int
	err = r.Querier(ctx).QueryRow(ctx, sql, args...).Scan(&exists)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("exists for pair: %w", err)
	}

	return true, nil
}
