package formula

import (
	"context"

	"fabrica/internal/core/apperror"
	"fabrica/internal/core/id"
	"fabrica/internal/core/tx"
	"fabrica/internal/domain"
)

// ReferenceChecker verifies foreign references for formula lines.
type ReferenceChecker interface {
	Exists(ctx context.Context, id id.ID) (bool, error)
}

// Service provides business logic for formula lines.
type Service struct {
	*domain.CatalogService[*Line]
	repo      Repository
	products  ReferenceChecker
	materials ReferenceChecker
}

// NewService creates a formula line service.
func NewService(repo Repository, products, materials ReferenceChecker, txManager tx.Manager, audit domain.AuditRecorder) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Line]{
		Repo:       repo,
		TxManager:  txManager,
		Audit:      audit,
		EntityName: "formula_line",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		products:       products,
		materials:      materials,
	}

	base.Hooks().OnBeforeCreate(svc.checkReferences)
	base.Hooks().OnBeforeCreate(svc.checkPairUnique)
	base.Hooks().OnBeforeUpdate(svc.checkReferences)

	return svc
}

// ListByProduct returns the active formula lines for a product.
func (s *Service) ListByProduct(ctx context.Context, productID id.ID) ([]*Line, error) {
	return s.repo.ListActiveByProduct(ctx, productID)
}

func (s *Service) checkReferences(ctx context.Context, l *Line) error {
	ok, err := s.products.Exists(ctx, l.ProductID)
	if err != nil {
		return apperror.NewInternal(err).WithDetail("check", "product")
	}
	if !ok {
		return apperror.NewNotFound("product", l.ProductID.String())
	}

	ok, err = s.materials.Exists(ctx, l.RawMaterialID)
	if err != nil {
		return apperror.NewInternal(err).WithDetail("check", "raw_material")
	}
	if !ok {
		return apperror.NewNotFound("raw_material", l.RawMaterialID.String())
	}

	return nil
}

func (s *Service) checkPairUnique(ctx context.Context, l *Line) error {
	exists, err := s.repo.ExistsForPair(ctx, l.ProductID, l.RawMaterialID)
	if err != nil {
		return apperror.NewInternal(err).WithDetail("check", "formula_pair")
	}
	if exists {
		return apperror.NewDuplicate("formula_line", "raw material").
			WithDetail("productId", l.ProductID.String()).
			WithDetail("rawMaterialId", l.RawMaterialID.String())
	}
	return nil
}
