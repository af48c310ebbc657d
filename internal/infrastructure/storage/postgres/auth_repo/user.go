// Package auth_repo provides PostgreSQL repositories for users and
// refresh tokens.
package auth_repo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"fabrica/internal/core/apperror"
	"fabrica/internal/core/id"
	"fabrica/internal/domain"
	"fabrica/internal/domain/auth"
	"fabrica/internal/infrastructure/storage/postgres"
)

const userTable = "sys_users"

// UserRepo implements auth.UserRepository.
type UserRepo struct {
	txManager *postgres.TxManager
	cols      []string
}

// NewUserRepo creates a new user repository.
func NewUserRepo(txManager *postgres.TxManager) *UserRepo {
	return &UserRepo{
		txManager: txManager,
		cols:      postgres.ExtractDBColumns[auth.User](),
	}
}

func (r *UserRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func (r *UserRepo) baseSelect() squirrel.SelectBuilder {
	return r.builder().Select(r.cols...).From(userTable)
}

// Create inserts a new user.
func (r *UserRepo) Create(ctx context.Context, user *auth.User) error {
	data := postgres.StructToMap(user)

	sql, args, err := r.builder().
		Insert(userTable).
		SetMap(data).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err = r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		if mapped := postgres.MapError(err, "user"); mapped != err {
			return mapped
		}
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

// GetByID retrieves a user by ID.
func (r *UserRepo) GetByID(ctx context.Context, userID id.ID) (*auth.User, error) {
	return r.findOne(ctx, r.baseSelect().Where(squirrel.Eq{"id": userID}), userID.String())
}

// GetByUsername retrieves a user by username (case-insensitive).
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*auth.User, error) {
	q := r.baseSelect().Where(squirrel.Eq{"lower(username)": strings.ToLower(username)})
	return r.findOne(ctx, q, username)
}

func (r *UserRepo) findOne(ctx context.Context, q squirrel.SelectBuilder, key string) (*auth.User, error) {
	sql, args, err := q.Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var user auth.User
	if err := pgxscan.Get(ctx, r.txManager.GetQuerier(ctx), &user, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("user", key)
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &user, nil
}

// Update modifies an existing user with optimistic locking.
func (r *UserRepo) Update(ctx context.Context, user *auth.User) error {
	data := postgres.StructToMap(user)
	version, _ := data["version"].(int)
	delete(data, "id")
	delete(data, "version")

	sql, args, err := r.builder().
		Update(userTable).
		SetMap(data).
		Set("version", squirrel.Expr("version + 1")).
		Where(squirrel.Eq{"id": user.ID}).
		Where(squirrel.Eq{"version": version}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	result, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		if mapped := postgres.MapError(err, "user"); mapped != err {
			return mapped
		}
		return fmt.Errorf("update user: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewConcurrentModification("user", user.ID)
	}
	user.Version++

	return nil
}

// Delete removes a user row.
func (r *UserRepo) Delete(ctx context.Context, userID id.ID) error {
	sql, args, err := r.builder().
		Delete(userTable).
		Where(squirrel.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	result, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("user", userID.String())
	}

	return nil
}

// List retrieves users with filtering and pagination.
func (r *UserRepo) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*auth.User], error) {
	result := domain.ListResult[*auth.User]{
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}

	q := r.baseSelect()

	if !filter.IncludeInactive {
		q = q.Where(squirrel.Eq{"is_active": true})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where(squirrel.Or{
			squirrel.ILike{"username": pattern},
			squirrel.ILike{"email": pattern},
		})
	}

	countSQL, countArgs, err := r.builder().
		Select("COUNT(*)").
		FromSelect(q, "sub").
		ToSql()
	if err != nil {
		return result, fmt.Errorf("build count query: %w", err)
	}

	querier := r.txManager.GetQuerier(ctx)
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&result.TotalCount); err != nil {
		return result, fmt.Errorf("count: %w", err)
	}

	q = q.OrderBy("username ASC")
	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return result, fmt.Errorf("build query: %w", err)
	}

	if err := pgxscan.Select(ctx, querier, &result.Items, sql, args...); err != nil {
		return result, fmt.Errorf("list users: %w", err)
	}

	return result, nil
}

// ExistsByUsername checks if a username is taken.
func (r *UserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, squirrel.Eq{"lower(username)": strings.ToLower(username)})
}

// ExistsByEmail checks if an email is registered.
func (r *UserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, squirrel.Eq{"lower(email)": strings.ToLower(email)})
}

func (r *UserRepo) exists(ctx context.Context, cond squirrel.Eq) (bool, error) {
	sql, args, err := r.builder().
		Select("1").
		From(userTable).
		Where(cond).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	var exists int
	err = r.txManager.GetQuerier(ctx).QueryRow(ctx, sql, args...).Scan(&exists)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("exists: %w", err)
	}

	return true, nil
}
