package product

import (
	"fabrica/internal/core/tx"
	"fabrica/internal/domain"
)

// Service provides business logic for the Product catalog.
type Service struct {
	*domain.CatalogService[*Product]
	repo Repository
}

// NewService creates a new Product service.
func NewService(repo Repository, txManager tx.Manager, audit domain.AuditRecorder) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Product]{
		Repo:       repo,
		TxManager:  txManager,
		Audit:      audit,
		EntityName: "product",
	})

	return &Service{
		CatalogService: base,
		repo:           repo,
	}
}
