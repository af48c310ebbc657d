package supplier

import (
	"fabrica/internal/core/tx"
	"fabrica/internal/domain"
)

// Service provides business logic for the Supplier catalog.
type Service struct {
	*domain.CatalogService[*Supplier]
	repo Repository
}

// NewService creates a new Supplier service.
func NewService(repo Repository, txManager tx.Manager, audit domain.AuditRecorder) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Supplier]{
		Repo:       repo,
		TxManager:  txManager,
		Audit:      audit,
		EntityName: "supplier",
	})

	return &Service{
		CatalogService: base,
		repo:           repo,
	}
}
