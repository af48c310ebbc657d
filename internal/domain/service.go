package domain

import (
	"context"
	"fmt"

	"fabrica/internal/core/apperror"
	"fabrica/internal/core/id"
	"fabrica/internal/core/tx"
	"fabrica/pkg/logger"
)

// CatalogService provides business logic shared by all catalog entities.
// Entity-specific services embed it and register hooks for their own rules.
type CatalogService[T Entity] struct {
	repo      CatalogRepository[T]
	txManager tx.Manager
	audit     AuditRecorder
	hooks     *HookRegistry[T]

	// entityName for error messages and audit entries
	entityName string
}

// CatalogServiceConfig configures the catalog service.
type CatalogServiceConfig[T Entity] struct {
	Repo       CatalogRepository[T]
	TxManager  tx.Manager
	Audit      AuditRecorder // optional
	EntityName string
}

// NewCatalogService creates a new catalog service.
func NewCatalogService[T Entity](cfg CatalogServiceConfig[T]) *CatalogService[T] {
	return &CatalogService[T]{
		repo:       cfg.Repo,
		txManager:  cfg.TxManager,
		audit:      cfg.Audit,
		hooks:      NewHookRegistry[T](),
		entityName: cfg.EntityName,
	}
}

// Hooks returns the hook registry for external registration.
func (s *CatalogService[T]) Hooks() *HookRegistry[T] {
	return s.hooks
}

func (s *CatalogService[T]) normalizeValidationErr(err error) error {
	if err == nil {
		return nil
	}
	if apperror.IsAppError(err) {
		return err
	}
	return apperror.NewValidation(err.Error())
}

func (s *CatalogService[T]) normalizeGetErr(err error, idOrCode any) error {
	if err == nil {
		return nil
	}
	// Ensure not-found is mapped to the correct entity name.
	if apperror.IsNotFound(err) {
		return apperror.NewNotFound(s.entityName, idOrCode)
	}
	if apperror.IsAppError(err) {
		return err
	}
	return apperror.NewInternal(err).WithDetail("entity", s.entityName).WithDetail("id", idOrCode)
}

// recordAudit writes an audit entry; failures are logged, never propagated.
func (s *CatalogService[T]) recordAudit(ctx context.Context, entityID id.ID, action AuditAction, actor id.ID, snapshot any) {
	if s.audit == nil {
		return
	}
	if err := s.audit.Record(ctx, s.entityName, entityID, action, actor, snapshot); err != nil {
		logger.Warn(ctx, "audit record failed",
			"entity", s.entityName,
			"entity_id", entityID,
			"action", action,
			"error", err,
		)
	}
}

// Create validates, stamps audit fields and inserts a new entity.
func (s *CatalogService[T]) Create(ctx context.Context, entity T, actor id.ID) error {
	if err := entity.Validate(ctx); err != nil {
		return s.normalizeValidationErr(err)
	}

	entity.StampCreated(actor)

	if err := s.hooks.Run(ctx, BeforeCreate, entity); err != nil {
		return err
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, entity); err != nil {
			return fmt.Errorf("create %s: %w", s.entityName, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.recordAudit(ctx, entity.GetID(), AuditCreate, actor, entity)
	return s.hooks.Run(ctx, AfterCreate, entity)
}

// GetByID retrieves an entity by ID.
func (s *CatalogService[T]) GetByID(ctx context.Context, entityID id.ID) (T, error) {
	entity, err := s.repo.GetByID(ctx, entityID)
	if err != nil {
		return entity, s.normalizeGetErr(err, entityID.String())
	}
	return entity, nil
}

// GetByCode retrieves an entity by code.
func (s *CatalogService[T]) GetByCode(ctx context.Context, code string) (T, error) {
	entity, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return entity, s.normalizeGetErr(err, code)
	}
	return entity, nil
}

// Update validates and persists changes to an existing entity.
func (s *CatalogService[T]) Update(ctx context.Context, entity T, actor id.ID) error {
	if err := entity.Validate(ctx); err != nil {
		return s.normalizeValidationErr(err)
	}

	entity.StampUpdated(actor)

	if err := s.hooks.Run(ctx, BeforeUpdate, entity); err != nil {
		return err
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Update(ctx, entity); err != nil {
			return fmt.Errorf("update %s: %w", s.entityName, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.recordAudit(ctx, entity.GetID(), AuditUpdate, actor, entity)
	return s.hooks.Run(ctx, AfterUpdate, entity)
}

// Delete removes an entity by ID.
func (s *CatalogService[T]) Delete(ctx context.Context, entityID id.ID, actor id.ID) error {
	entity, err := s.repo.GetByID(ctx, entityID)
	if err != nil {
		return s.normalizeGetErr(err, entityID.String())
	}

	if err := s.hooks.Run(ctx, BeforeDelete, entity); err != nil {
		return err
	}

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Delete(ctx, entityID); err != nil {
			return fmt.Errorf("delete %s: %w", s.entityName, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.recordAudit(ctx, entityID, AuditDelete, actor, nil)
	return s.hooks.Run(ctx, AfterDelete, entity)
}

// List retrieves entities with filtering and pagination.
func (s *CatalogService[T]) List(ctx context.Context, filter ListFilter) (ListResult[T], error) {
	result, err := s.repo.List(ctx, filter)
	if err != nil {
		return result, fmt.Errorf("list %s: %w", s.entityName, err)
	}
	return result, nil
}
