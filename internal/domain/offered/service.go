package offered

import (
	"context"
	"time"

	"fabrica/internal/core/apperror"
	"fabrica/internal/core/id"
	"fabrica/internal/core/tx"
	"fabrica/internal/domain"
	"fabrica/internal/domain/backlog"
	"fabrica/internal/domain/formula"
	"fabrica/pkg/logger"
)

// ProductLookup resolves product references during a production run.
type ProductLookup interface {
	Exists(ctx context.Context, id id.ID) (bool, error)
	GetName(ctx context.Context, id id.ID) (string, error)
}

// WarehouseChecker verifies warehouse references.
type WarehouseChecker interface {
	Exists(ctx context.Context, id id.ID) (bool, error)
}

// Service provides business logic for offered product batches,
// including the production run orchestration.
type Service struct {
	*domain.CatalogService[*Product]
	repo       Repository
	checker    *formula.Checker
	backlog    *backlog.Service
	products   ProductLookup
	warehouses WarehouseChecker
	txManager  tx.Manager
	audit      domain.AuditRecorder

	now func() time.Time
}

// NewService creates an offered product service.
func NewService(
	repo Repository,
	checker *formula.Checker,
	backlogSvc *backlog.Service,
	products ProductLookup,
	warehouses WarehouseChecker,
	txManager tx.Manager,
	audit domain.AuditRecorder,
) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Product]{
		Repo:       repo,
		TxManager:  txManager,
		Audit:      audit,
		EntityName: "offered_product",
	})

	return &Service{
		CatalogService: base,
		repo:           repo,
		checker:        checker,
		backlog:        backlogSvc,
		products:       products,
		warehouses:     warehouses,
		txManager:      txManager,
		audit:          audit,
		now:            time.Now,
	}
}

// Produce runs a production: it consumes raw materials per the
// product's formula, stores the produced units as a new offered batch
// and shrinks the product's backlog by the produced amount. Backlog
// demand only tracks what still needs producing; it never debits the
// batch. The whole run is one transaction; a requirement shortfall
// rolls everything back.
func (s *Service) Produce(ctx context.Context, productID, warehouseID id.ID, quantity int64, actor id.ID) (*Product, formula.CheckResult, error) {
	if quantity <= 0 {
		return nil, formula.CheckResult{}, apperror.NewInvalidQuantity(quantity)
	}

	ok, err := s.warehouses.Exists(ctx, warehouseID)
	if err != nil {
		return nil, formula.CheckResult{}, apperror.NewInternal(err).WithDetail("check", "warehouse")
	}
	if !ok {
		return nil, formula.CheckResult{}, apperror.NewNotFound("warehouse", warehouseID.String())
	}

	name, err := s.products.GetName(ctx, productID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, formula.CheckResult{}, apperror.NewNotFound("product", productID.String())
		}
		return nil, formula.CheckResult{}, err
	}

	var (
		batch         *Product
		result        formula.CheckResult
		backlogServed int64
	)
	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		result, err = s.checker.CheckAndConsume(ctx, productID, quantity, actor)
		if err != nil {
			return err
		}
		if !result.Satisfied {
			return apperror.NewRequirementsNotMet(productID).
				WithDetail("shortfalls", result.Shortfalls)
		}

		batch = New(BatchCode(s.now()), name, productID, warehouseID, quantity)
		if err := batch.Validate(ctx); err != nil {
			return err
		}
		batch.StampCreated(actor)
		if err := s.repo.Create(ctx, batch); err != nil {
			return err
		}

		remaining, err := s.backlog.Satisfy(ctx, productID, quantity, actor)
		if err != nil {
			return err
		}
		backlogServed = quantity - remaining

		return nil
	})
	if err != nil {
		return nil, result, err
	}

	if s.audit != nil {
		if auditErr := s.audit.Record(ctx, "offered_product", batch.ID, domain.AuditProduce, actor, batch); auditErr != nil {
			logger.Warn(ctx, "audit record failed", "entity", "offered_product", "error", auditErr)
		}
	}

	logger.Info(ctx, "production run completed",
		"product_id", productID,
		"batch_id", batch.ID,
		"code", batch.Code,
		"produced", quantity,
		"backlog_served", backlogServed,
	)
	return batch, result, nil
}

// CheckRequirements evaluates a planned run without consuming stock.
func (s *Service) CheckRequirements(ctx context.Context, productID id.ID, quantity int64) (formula.CheckResult, error) {
	return s.checker.Check(ctx, productID, quantity)
}
