// Package domain provides core business logic interfaces and types.
package domain

import (
	"context"

	"fabrica/internal/core/id"
)

// --- Filter & Pagination ---

// ListFilter contains common filtering options for list operations.
// Mirrors the query surface of the list endpoints: search, sort, paging.
type ListFilter struct {
	// Search performs a pattern match on searchable fields (name, code)
	Search string

	// IDs filters by specific IDs
	IDs []id.ID

	// ProductID narrows the list to records referencing one product,
	// for entities that carry a product reference
	ProductID *id.ID

	// IncludeInactive includes deactivated records
	IncludeInactive bool

	// OrderBy specifies sorting (e.g., "name", "-created_at")
	OrderBy string

	// Pagination
	Limit  int
	Offset int
}

// DefaultListFilter returns sensible defaults.
func DefaultListFilter() ListFilter {
	return ListFilter{
		Limit:   50,
		OrderBy: "name",
	}
}

// ListResult contains paginated results.
type ListResult[T any] struct {
	Items      []T   `json:"items"`
	TotalCount int64 `json:"totalCount"`
	Limit      int   `json:"limit"`
	Offset     int   `json:"offset"`
}

// --- Entity constraint ---

// Entity is the contract every catalog entity satisfies via entity.Base.
type Entity interface {
	Validate(ctx context.Context) error
	StampCreated(actor id.ID)
	StampUpdated(actor id.ID)
	GetID() id.ID
}

// --- Repository Interfaces ---

// CatalogRepository defines CRUD operations for catalog entities.
type CatalogRepository[T Entity] interface {
	// Create inserts a new entity
	Create(ctx context.Context, entity T) error

	// GetByID retrieves entity by ID
	GetByID(ctx context.Context, id id.ID) (T, error)

	// GetByCode retrieves entity by code
	GetByCode(ctx context.Context, code string) (T, error)

	// Update modifies an existing entity (with optimistic locking)
	Update(ctx context.Context, entity T) error

	// Delete removes the entity row
	Delete(ctx context.Context, id id.ID) error

	// List retrieves entities with filtering and pagination
	List(ctx context.Context, filter ListFilter) (ListResult[T], error)

	// Exists checks if an entity with the given ID exists
	Exists(ctx context.Context, id id.ID) (bool, error)
}

// --- Audit ---

// AuditAction is the kind of mutation recorded in the audit trail.
type AuditAction string

const (
	AuditCreate  AuditAction = "create"
	AuditUpdate  AuditAction = "update"
	AuditDelete  AuditAction = "delete"
	AuditDeliver AuditAction = "deliver"
	AuditProduce AuditAction = "produce"
)

// AuditRecorder persists change-history entries. Recording is best-effort:
// services log failures but never fail the business operation over them.
type AuditRecorder interface {
	Record(ctx context.Context, entityType string, entityID id.ID, action AuditAction, actor id.ID, snapshot any) error
}

// --- Hooks ---

// HookEvent represents a lifecycle event type.
type HookEvent string

const (
	BeforeCreate HookEvent = "before_create"
	AfterCreate  HookEvent = "after_create"
	BeforeUpdate HookEvent = "before_update"
	AfterUpdate  HookEvent = "after_update"
	BeforeDelete HookEvent = "before_delete"
	AfterDelete  HookEvent = "after_delete"
)

// Hook is a function that runs at specific lifecycle points.
type Hook[T any] func(ctx context.Context, entity T) error

// HookRegistry stores lifecycle hooks for an entity type.
type HookRegistry[T any] struct {
	hooks map[HookEvent][]Hook[T]
}

// NewHookRegistry creates an empty hook registry.
func NewHookRegistry[T any]() *HookRegistry[T] {
	return &HookRegistry[T]{
		hooks: make(map[HookEvent][]Hook[T]),
	}
}

// On registers a hook for the specified event.
func (r *HookRegistry[T]) On(event HookEvent, hook Hook[T]) {
	r.hooks[event] = append(r.hooks[event], hook)
}

// Run executes all hooks for the specified event.
func (r *HookRegistry[T]) Run(ctx context.Context, event HookEvent, entity T) error {
	for _, hook := range r.hooks[event] {
		if err := hook(ctx, entity); err != nil {
			return err
		}
	}
	return nil
}

// OnBeforeCreate registers a hook to run before create.
func (r *HookRegistry[T]) OnBeforeCreate(hook Hook[T]) {
	r.On(BeforeCreate, hook)
}

// OnBeforeUpdate registers a hook to run before update.
func (r *HookRegistry[T]) OnBeforeUpdate(hook Hook[T]) {
	r.On(BeforeUpdate, hook)
}

// OnBeforeDelete registers a hook to run before delete.
func (r *HookRegistry[T]) OnBeforeDelete(hook Hook[T]) {
	r.On(BeforeDelete, hook)
}
