package catalog_repo

import (
	"fabrica/internal/domain/catalogs/supplier"
	"fabrica/internal/infrastructure/storage/postgres"
)

const supplierTable = "cat_suppliers"

// SupplierRepo implements supplier.Repository.
type SupplierRepo struct {
	*BaseCatalogRepo[*supplier.Supplier]
}

// NewSupplierRepo creates a new supplier repository.
func NewSupplierRepo(txManager *postgres.TxManager) *SupplierRepo {
	return &SupplierRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txManager,
			supplierTable,
			postgres.ExtractDBColumns[supplier.Supplier](),
			[]string{"name", "code"},
			func() *supplier.Supplier { return &supplier.Supplier{} },
		),
	}
}
