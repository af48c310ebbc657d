package document_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"fabrica/internal/core/id"
	"fabrica/internal/domain"
	"fabrica/internal/domain/purchase"
	"fabrica/internal/infrastructure/storage/postgres"
	"fabrica/internal/infrastructure/storage/postgres/catalog_repo"
)

const purchaseTable = "doc_purchases"

// PurchaseRepo implements purchase.Repository.
type PurchaseRepo struct {
	*catalog_repo.BaseCatalogRepo[*purchase.Purchase]
}

// NewPurchaseRepo creates a new purchase repository.
func NewPurchaseRepo(txManager *postgres.TxManager) *PurchaseRepo {
	return &PurchaseRepo{
		BaseCatalogRepo: catalog_repo.NewBaseCatalogRepo(
			txManager,
			purchaseTable,
			postgres.ExtractDBColumns[purchase.Purchase](),
			nil,
			func() *purchase.Purchase { return &purchase.Purchase{} },
		),
	}
}

// ListBySupplier returns purchases placed with a supplier.
func (r *PurchaseRepo) ListBySupplier(ctx context.Context, supplierID id.ID, filter domain.ListFilter) (domain.ListResult[*purchase.Purchase], error) {
	result := domain.ListResult[*purchase.Purchase]{
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}

	q := r.Builder().
		Select(postgres.ExtractDBColumns[purchase.Purchase]()...).
		From(purchaseTable).
		Where(squirrel.Eq{"supplier_id": supplierID}).
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
