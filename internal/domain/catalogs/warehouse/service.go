package warehouse

import (
	"fabrica/internal/core/tx"
	"fabrica/internal/domain"
)

// Service provides business logic for the Warehouse catalog.
type Service struct {
	*domain.CatalogService[*Warehouse]
	repo Repository
}

// NewService creates a new Warehouse service.
func NewService(repo Repository, txManager tx.Manager, audit domain.AuditRecorder) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Warehouse]{
		Repo:       repo,
		TxManager:  txManager,
		Audit:      audit,
		EntityName: "warehouse",
	})

	return &Service{
		CatalogService: base,
		repo:           repo,
	}
}
