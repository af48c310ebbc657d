package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"fabrica/internal/core/id"
	"fabrica/internal/domain/catalogs/price"
	"fabrica/internal/infrastructure/storage/postgres"
)

const priceTable = "cat_prices"

// PriceRepo implements price.Repository.
type PriceRepo struct {
	*BaseCatalogRepo[*price.Price]
}

// NewPriceRepo creates a new price repository.
func NewPriceRepo(txManager *postgres.TxManager) *PriceRepo {
	return &PriceRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txManager,
			priceTable,
			postgres.ExtractDBColumns[price.Price](),
			nil,
			func() *price.Price { return &price.Price{} },
		),
	}
}

// GetByProductID returns the active price row for a product.
func (r *PriceRepo) GetByProductID(ctx context.Context, productID id.ID) (*price.Price, error) {
	q := r.Builder().
		Select(postgres.ExtractDBColumns[price.Price]()...).
		From(priceTable).
		Where(squirrel.Eq{"product_id": productID}).
		Where(squirrel.Eq{"is_active": true}).
		Limit(1)

	return r.FindOne(ctx, q)
}
