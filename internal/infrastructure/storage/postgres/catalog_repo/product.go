package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"fabrica/internal/core/apperror"
	"fabrica/internal/core/id"
	"fabrica/internal/domain/catalogs/product"
	"fabrica/internal/infrastructure/storage/postgres"
)

const productTable = "cat_products"

// ProductRepo implements product.Repository.
type ProductRepo struct {
	*BaseCatalogRepo[*product.Product]
}

// NewProductRepo creates a new product repository.
func NewProductRepo(txManager *postgres.TxManager) *ProductRepo {
	return &ProductRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txManager,
			productTable,
			postgres.ExtractDBColumns[product.Product](),
			[]string{"name", "code"},
			func() *product.Product { return &product.Product{} },
		),
	}
}

// GetName returns just the product name.
func (r *ProductRepo) GetName(ctx context.Context, productID id.ID) (string, error) {
	sql, args, err := r.Builder().
		Select("name").
		From(productTable).
		Where(squirrel.Eq{"id": productID}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("build query: %w", err)
	}

	var name string
	err = r.Querier(ctx).QueryRow(ctx, sql, args...).Scan(&name)
	if err == pgx.ErrNoRows {
		return "", apperror.NewNotFound(productTable, productID.String())
	}
	if err != nil {
		return "", fmt.Errorf("get name: %w", err)
	}

	return name, nil
}
