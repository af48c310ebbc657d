package price

import (
	"context"

	"fabrica/internal/core/apperror"
	"fabrica/internal/core/id"
	"fabrica/internal/core/tx"
	"fabrica/internal/domain"
)

// Service provides business logic for the Price catalog.
type Service struct {
	*domain.CatalogService[*Price]
	repo        Repository
	productRepo ProductChecker
}

// ProductChecker verifies product references.
type ProductChecker interface {
	Exists(ctx context.Context, id id.ID) (bool, error)
}

// NewService creates a new Price service.
func NewService(repo Repository, products ProductChecker, txManager tx.Manager, audit domain.AuditRecorder) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Price]{
		Repo:       repo,
		TxManager:  txManager,
		Audit:      audit,
		EntityName: "price",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		productRepo:    products,
	}

	base.Hooks().OnBeforeCreate(svc.checkProduct)
	base.Hooks().OnBeforeUpdate(svc.checkProduct)

	return svc
}

// GetByProductID returns the active price for a product.
func (s *Service) GetByProductID(ctx context.Context, productID id.ID) (*Price, error) {
	p, err := s.repo.GetByProductID(ctx, productID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("price", productID.String())
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) checkProduct(ctx context.Context, p *Price) error {
	ok, err := s.productRepo.Exists(ctx, p.ProductID)
	if err != nil {
		return apperror.NewInternal(err).WithDetail("check", "product")
	}
	if !ok {
		return apperror.NewNotFound("product", p.ProductID.String())
	}
	return nil
}
