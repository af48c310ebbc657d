package backlog

import (
	"context"
	"fmt"

	"fabrica/internal/core/id"
	"fabrica/internal/core/tx"
	"fabrica/internal/domain"
	"fabrica/pkg/logger"
)

// Service provides business logic for the backlog queue.
type Service struct {
	*domain.CatalogService[*Entry]
	repo      Repository
	txManager tx.Manager
}

// NewService creates a backlog service.
func NewService(repo Repository, txManager tx.Manager, audit domain.AuditRecorder) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Entry]{
		Repo:       repo,
		TxManager:  txManager,
		Audit:      audit,
		EntityName: "backlog_entry",
	})

	return &Service{
		CatalogService: base,
		repo:           repo,
		txManager:      txManager,
	}
}

// Record registers a shortfall of required units for a product. Called
// when an order is rejected for insufficient stock; the entry survives
// the rejection so production planning can see the demand.
func (s *Service) Record(ctx context.Context, productID id.ID, required int64, actor id.ID) (*Entry, error) {
	entry := NewEntry(productID, required)
	if err := s.Create(ctx, entry, actor); err != nil {
		return nil, err
	}

	logger.Info(ctx, "backlog recorded",
		"product_id", productID,
		"required_quantity", required,
	)
	return entry, nil
}

// Satisfy drains the product's backlog with available produced units,
// oldest entries first, and returns how many units remain after the
// queue is served. Runs in the caller's transaction when one is open.
func (s *Service) Satisfy(ctx context.Context, productID id.ID, available int64, actor id.ID) (int64, error) {
	if available <= 0 {
		return available, nil
	}

	remaining := available
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		entries, err := s.repo.ListActiveByProduct(ctx, productID)
		if err != nil {
			return fmt.Errorf("list backlog: %w", err)
		}

		allocations, left := Allocate(entries, available)
		for _, alloc := range allocations {
			entry := alloc.Entry
			if alloc.Exhausted {
				entry.RequiredQuantity = 0
				entry.Deactivate()
			} else {
				entry.RequiredQuantity -= alloc.Applied
			}
			entry.StampUpdated(actor)

			if err := s.repo.Update(ctx, entry); err != nil {
				return fmt.Errorf("update backlog entry %s: %w", entry.ID, err)
			}
		}

		if len(allocations) > 0 {
			logger.Info(ctx, "backlog satisfied",
				"product_id", productID,
				"entries", len(allocations),
				"consumed", available-left,
			)
		}

		remaining = left
		return nil
	})
	if err != nil {
		return 0, err
	}

	return remaining, nil
}
