package purchase

import (
	"context"
	"fmt"
	"time"

	"fabrica/internal/core/apperror"
	"fabrica/internal/core/id"
	"fabrica/internal/core/tx"
	"fabrica/internal/domain"
	"fabrica/internal/domain/catalogs/rawmaterial"
	"fabrica/pkg/logger"
)

// SupplierChecker verifies supplier references.
type SupplierChecker interface {
	Exists(ctx context.Context, id id.ID) (bool, error)
}

// Service provides business logic for purchases.
type Service struct {
	*domain.CatalogService[*Purchase]
	repo      Repository
	materials rawmaterial.Repository
	suppliers SupplierChecker
	txManager tx.Manager
	audit     domain.AuditRecorder

	now func() time.Time
}

// NewService creates a purchase service.
func NewService(
	repo Repository,
	materials rawmaterial.Repository,
	suppliers SupplierChecker,
	txManager tx.Manager,
	audit domain.AuditRecorder,
) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Purchase]{
		Repo:       repo,
		TxManager:  txManager,
		Audit:      audit,
		EntityName: "purchase",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		materials:      materials,
		suppliers:      suppliers,
		txManager:      txManager,
		audit:          audit,
		now:            time.Now,
	}

	base.Hooks().OnBeforeCreate(svc.checkReferences)

	return svc
}

// CreatePurchase registers a pending purchase with a supplier.
func (s *Service) CreatePurchase(ctx context.Context, supplierID, rawMaterialID id.ID, quantity int64, actor id.ID) (*Purchase, error) {
	p := New(supplierID, rawMaterialID, quantity, s.now())
	if err := s.Create(ctx, p, actor); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdatePurchase applies a partial update. Setting IsDelivered performs
// the one-way receipt transition: the delivery date is stamped and the
// raw material's available quantity is credited exactly once.
func (s *Service) UpdatePurchase(ctx context.Context, purchaseID id.ID, patch Patch, actor id.ID) (*Purchase, error) {
	var (
		p        *Purchase
		received bool
	)

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		var err error
		p, err = s.repo.GetForUpdate(ctx, purchaseID)
		if err != nil {
			if apperror.IsNotFound(err) {
				return apperror.NewNotFound("purchase", purchaseID.String())
			}
			return err
		}

		if patch.Quantity != nil {
			if *patch.Quantity <= 0 {
				return apperror.NewInvalidQuantity(*patch.Quantity)
			}
			if p.IsDelivered {
				return apperror.NewValidation("delivered purchase cannot change quantity").
					WithDetail("purchaseId", purchaseID.String())
			}
			p.Quantity = *patch.Quantity
		}

		if patch.IsDelivered != nil && *patch.IsDelivered {
			if p.IsDelivered {
				return apperror.NewAlreadyDelivered(purchaseID)
			}

			if err := s.materials.ApplyQuantityDelta(ctx, p.RawMaterialID, p.Quantity, actor); err != nil {
				return fmt.Errorf("credit raw material: %w", err)
			}

			deliveredAt := s.now()
			p.IsDelivered = true
			p.DeliveryDate = &deliveredAt
			received = true
		}

		p.StampUpdated(actor)
		return s.repo.Update(ctx, p)
	})
	if err != nil {
		return nil, err
	}

	if received {
		if s.audit != nil {
			if auditErr := s.audit.Record(ctx, "purchase", p.ID, domain.AuditDeliver, actor, p); auditErr != nil {
				logger.Warn(ctx, "audit record failed", "entity", "purchase", "error", auditErr)
			}
		}
		logger.Info(ctx, "purchase received",
			"purchase_id", p.ID,
			"raw_material_id", p.RawMaterialID,
			"quantity", p.Quantity,
		)
	}

	return p, nil
}

// ListBySupplier returns the purchases placed with a supplier,
// newest first.
func (s *Service) ListBySupplier(ctx context.Context, supplierID id.ID, filter domain.ListFilter) (domain.ListResult[*Purchase], error) {
	return s.repo.ListBySupplier(ctx, supplierID, filter)
}

func (s *Service) checkReferences(ctx context.Context, p *Purchase) error {
	ok, err := s.suppliers.Exists(ctx, p.SupplierID)
	if err != nil {
		return apperror.NewInternal(err).WithDetail("check", "supplier")
	}
	if !ok {
		return apperror.NewNotFound("supplier", p.SupplierID.String())
	}

	ok, err = s.materials.Exists(ctx, p.RawMaterialID)
	if err != nil {
		return apperror.NewInternal(err).WithDetail("check", "raw_material")
	}
	if !ok {
		return apperror.NewNotFound("raw_material", p.RawMaterialID.String())
	}

	return nil
}
