package production_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"fabrica/internal/core/id"
	"fabrica/internal/domain/backlog"
	"fabrica/internal/infrastructure/storage/postgres"
	"fabrica/internal/infrastructure/storage/postgres/catalog_repo"
)

const backlogTable = "prod_backlog"

// BacklogRepo implements backlog.Repository.
type BacklogRepo struct {
	*catalog_repo.BaseCatalogRepo[*backlog.Entry]
}

// NewBacklogRepo creates a new backlog repository.
func NewBacklogRepo(txManager *postgres.TxManager) *BacklogRepo {
	return &BacklogRepo{
		BaseCatalogRepo: catalog_repo.NewBaseCatalogRepo(
			txManager,
			backlogTable,
			postgres.ExtractDBColumns[backlog.Entry](),
			nil,
			func() *backlog.Entry { return &backlog.Entry{} },
		),
	}
}

// ListActiveByProduct returns active entries oldest first, locked so
// concurrent production runs drain the queue one at a time.
func (r *BacklogRepo) ListActiveByProduct(ctx context.Context, productID id.ID) ([]*backlog.Entry, error) {
	return r.FindMany(ctx, r.activeByProduct(productID))
}

// activeByProduct builds the drain query. The id tie-break keeps the
// order deterministic when entries share a created_at timestamp.
func (r *BacklogRepo) activeByProduct(productID id.ID) squirrel.SelectBuilder {
	return r.Builder().
		Select(postgres.ExtractDBColumns[backlog.Entry]()...).
		From(backlogTable).
		Where(squirrel.Eq{"product_id": productID}).
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("created_at ASC", "id ASC").
		Suffix("FOR UPDATE")
}
