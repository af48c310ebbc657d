package rawmaterial

import (
	"context"

	"fabrica/internal/core/apperror"
	"fabrica/internal/core/id"
	"fabrica/internal/core/tx"
	"fabrica/internal/domain"
)

// Service provides business logic for the RawMaterial catalog.
type Service struct {
	*domain.CatalogService[*RawMaterial]
	repo          Repository
	warehouseRepo WarehouseChecker
}

// WarehouseChecker verifies warehouse references without importing the
// warehouse package (avoids a catalog-to-catalog dependency cycle).
type WarehouseChecker interface {
	Exists(ctx context.Context, id id.ID) (bool, error)
}

// NewService creates a new RawMaterial service.
func NewService(repo Repository, warehouses WarehouseChecker, txManager tx.Manager, audit domain.AuditRecorder) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*RawMaterial]{
		Repo:       repo,
		TxManager:  txManager,
		Audit:      audit,
		EntityName: "raw_material",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		warehouseRepo:  warehouses,
	}

	base.Hooks().OnBeforeCreate(svc.checkWarehouse)
	base.Hooks().OnBeforeUpdate(svc.checkWarehouse)

	return svc
}

// checkWarehouse verifies the referenced warehouse exists.
func (s *Service) checkWarehouse(ctx context.Context, m *RawMaterial) error {
	ok, err := s.warehouseRepo.Exists(ctx, m.WarehouseID)
	if err != nil {
		return apperror.NewInternal(err).WithDetail("check", "warehouse")
	}
	if !ok {
		return apperror.NewNotFound("warehouse", m.WarehouseID.String())
	}
	return nil
}
