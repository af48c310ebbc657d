// Package document_repo provides PostgreSQL repositories for
// transactional documents: customer orders and supplier purchases.
package document_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"fabrica/internal/core/id"
	"fabrica/internal/domain"
	"fabrica/internal/domain/order"
	"fabrica/internal/infrastructure/storage/postgres"
	"fabrica/internal/infrastructure/storage/postgres/catalog_repo"
)

const orderTable = "doc_orders"

// OrderRepo implements order.Repository.
type OrderRepo struct {
	*catalog_repo.BaseCatalogRepo[*order.Order]
}

// NewOrderRepo creates a new order repository.
func NewOrderRepo(txManager *postgres.TxManager) *OrderRepo {
	return &OrderRepo{
		BaseCatalogRepo: catalog_repo.NewBaseCatalogRepo(
			txManager,
			orderTable,
			postgres.ExtractDBColumns[order.Order](),
			nil,
			func() *order.Order { return &order.Order{} },
		),
	}
}

// ListByOfferedProduct returns orders placed against a batch.
func (r *OrderRepo) ListByOfferedProduct(ctx context.Context, offeredProductID id.ID, filter domain.ListFilter) (domain.ListResult[*order.Order], error) {
	result := domain.ListResult[*order.Order]{
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}

	q := r.Builder().
		Select(postgres.ExtractDBColumns[order.Order]()...).
		From(orderTable).
		Where(squirrel.Eq{"offered_product_id": offeredProductID}).
		OrderBy("order_date DESC")

	if !filter.IncludeInactive {
		q = q.Where(squirrel.Eq{"is_active": true})
	}
	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	items, err := r.FindMany(ctx, q)
	if err != nil {
		return result, err
	}

	result.Items = items
	result.TotalCount = int64(len(items))
	return result, nil
}
