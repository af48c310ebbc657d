package order

import (
	"context"
	"fmt"
	"time"

	"fabrica/internal/core/apperror"
	"fabrica/internal/core/id"
	"fabrica/internal/core/tx"
	"fabrica/internal/core/types"
	"fabrica/internal/domain"
	"fabrica/internal/domain/backlog"
	"fabrica/internal/domain/catalogs/price"
	"fabrica/internal/domain/offered"
	"fabrica/pkg/logger"
)

// CreateInput carries the order creation request.
type CreateInput struct {
	OfferedProductID id.ID
	Quantity         types.Money
	Discount         types.Money
}

// Service provides business logic for orders: settlement on creation,
// re-validation on update and the delivery transition.
type Service struct {
	*domain.CatalogService[*Order]
	repo      Repository
	offered   offered.Repository
	prices    price.Repository
	backlog   *backlog.Service
	txManager tx.Manager
	audit     domain.AuditRecorder

	now func() time.Time
}

// NewService creates an order service.
func NewService(
	repo Repository,
	offeredRepo offered.Repository,
	prices price.Repository,
	backlogSvc *backlog.Service,
	txManager tx.Manager,
	audit domain.AuditRecorder,
) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Order]{
		Repo:       repo,
		TxManager:  txManager,
		Audit:      audit,
		EntityName: "order",
	})

	return &Service{
		CatalogService: base,
		repo:           repo,
		offered:        offeredRepo,
		prices:         prices,
		backlog:        backlogSvc,
		txManager:      txManager,
		audit:          audit,
		now:            time.Now,
	}
}

// CreateOrder validates the request against current stock, settles the
// total and persists a pending order. A quantity above the batch's
// stock records a backlog entry for the shortfall and rejects the
// order; the backlog write is the one side effect that survives the
// rejection.
func (s *Service) CreateOrder(ctx context.Context, input CreateInput, actor id.ID) (*Order, error) {
	if !input.Quantity.IsPositive() {
		return nil, apperror.NewInvalidQuantity(input.Quantity.IntPart())
	}

	batch, err := s.offered.GetByID(ctx, input.OfferedProductID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("offered_product", input.OfferedProductID.String())
		}
		return nil, err
	}

	available := types.NewMoneyFromInt(batch.Quantity)
	if input.Quantity.GreaterThan(available) {
		shortfall := input.Quantity.Sub(available).Ceil().IntPart()
		if _, recErr := s.backlog.Record(ctx, batch.ProductID, shortfall, actor); recErr != nil {
			return nil, fmt.Errorf("record backlog shortfall: %w", recErr)
		}
		return nil, apperror.NewInsufficientStock(batch.ID, input.Quantity.IntPart(), batch.Quantity)
	}

	total, err := s.settle(ctx, batch.ProductID, input.Quantity, input.Discount)
	if err != nil {
		return nil, err
	}

	ord := New(batch.ID, input.Quantity, input.Discount, s.now())
	ord.Total = total
	if err := ord.Validate(ctx); err != nil {
		return nil, err
	}
	ord.StampCreated(actor)

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Create(ctx, ord)
	})
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.record(ctx, ord.ID, domain.AuditCreate, actor, ord)

	logger.Info(ctx, "order created",
		"order_id", ord.ID,
		"offered_product_id", batch.ID,
		"total", ord.Total,
	)
	return ord, nil
}

// UpdateOrder applies a partial update. Quantity and discount changes
// are re-validated against the current batch snapshot; the total is
// recomputed only when the discount actually changed. Setting
// IsDelivered performs the one-way delivery transition: the delivery
// date is stamped and the batch quantity is decremented exactly once.
func (s *Service) UpdateOrder(ctx context.Context, orderID id.ID, patch Patch, actor id.ID) (*Order, error) {
	var (
		ord       *Order
		delivered bool
	)

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		var err error
		ord, err = s.repo.GetForUpdate(ctx, orderID)
		if err != nil {
			if apperror.IsNotFound(err) {
				return apperror.NewNotFound("order", orderID.String())
			}
			return err
		}

		batch, err := s.offered.GetForUpdate(ctx, ord.OfferedProductID)
		if err != nil {
			if apperror.IsNotFound(err) {
				return apperror.NewNotFound("offered_product", ord.OfferedProductID.String())
			}
			return err
		}

		if patch.Quantity != nil {
			if !patch.Quantity.IsPositive() {
				return apperror.NewInvalidQuantity(patch.Quantity.IntPart())
			}
			if ord.IsDelivered {
				return apperror.NewValidation("delivered order cannot change quantity").
					WithDetail("orderId", orderID.String())
			}
			available := types.NewMoneyFromInt(batch.Quantity)
			if patch.Quantity.GreaterThan(available) {
				return apperror.NewInsufficientStock(batch.ID, patch.Quantity.IntPart(), batch.Quantity)
			}
			ord.Quantity = *patch.Quantity
		}

		if patch.Discount != nil && !patch.Discount.Equal(ord.Discount) {
			if patch.Discount.IsNegative() {
				return apperror.NewValidation("discount cannot be negative").
					WithDetail("field", "discount")
			}
			total, err := s.settle(ctx, batch.ProductID, ord.Quantity, *patch.Discount)
			if err != nil {
				return err
			}
			ord.Discount = *patch.Discount
			ord.Total = total
		}

		if patch.IsDelivered != nil && *patch.IsDelivered {
			if ord.IsDelivered {
				return apperror.NewAlreadyDelivered(orderID)
			}

			units := ord.Quantity.IntPart()
			if err := s.offered.ApplyQuantityDelta(ctx, batch.ID, -units, actor); err != nil {
				if apperror.IsInsufficientStock(err) {
					return apperror.NewInsufficientStock(batch.ID, units, batch.Quantity)
				}
				return fmt.Errorf("decrement offered quantity: %w", err)
			}

			deliveredAt := s.now()
			ord.IsDelivered = true
			ord.DeliveryDate = &deliveredAt
			delivered = true
		}

		ord.StampUpdated(actor)
		return s.repo.Update(ctx, ord)
	})
	if err != nil {
		return nil, err
	}

	if delivered {
		s.record(ctx, ord.ID, domain.AuditDeliver, actor, ord)
		logger.Info(ctx, "order delivered",
			"order_id", ord.ID,
			"offered_product_id", ord.OfferedProductID,
			"quantity", ord.Quantity,
		)
	} else {
		s.record(ctx, ord.ID, domain.AuditUpdate, actor, ord)
	}

	return ord, nil
}

// ListByOfferedProduct returns the orders placed against a batch,
// newest first.
func (s *Service) ListByOfferedProduct(ctx context.Context, offeredProductID id.ID, filter domain.ListFilter) (domain.ListResult[*Order], error) {
	return s.repo.ListByOfferedProduct(ctx, offeredProductID, filter)
}

// settle computes the order total from the product price. The discount
// may not exceed the gross amount.
func (s *Service) settle(ctx context.Context, productID id.ID, quantity, discount types.Money) (types.Money, error) {
	p, err := s.prices.GetByProductID(ctx, productID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return types.Zero(), apperror.NewNotFound("price", productID.String())
		}
		return types.Zero(), err
	}

	gross := p.Price.Mul(quantity)
	if gross.LessThan(discount) {
		return types.Zero(), apperror.NewInvalidDiscount(gross, discount)
	}

	return gross.Sub(discount), nil
}

func (s *Service) record(ctx context.Context, orderID id.ID, action domain.AuditAction, actor id.ID, snapshot any) {
	if s.audit == nil {
		return
	}
	if err := s.audit.Record(ctx, "order", orderID, action, actor, snapshot); err != nil {
		logger.Warn(ctx, "audit record failed", "entity", "order", "error", err)
	}
}
