package auth_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"fabrica/internal/core/apperror"
	"fabrica/internal/core/id"
	"fabrica/internal/domain/auth"
	"fabrica/internal/infrastructure/storage/postgres"
)

const tokenTable = "sys_refresh_tokens"

// TokenRepo implements auth.TokenRepository.
type TokenRepo struct {
	txManager *postgres.TxManager
}

// NewTokenRepo creates a new refresh token repository.
func NewTokenRepo(txManager *postgres.TxManager) *TokenRepo {
	return &TokenRepo{txManager: txManager}
}

func (r *TokenRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// SaveRefreshToken stores a hashed refresh token.
func (r *TokenRepo) SaveRefreshToken(ctx context.Context, token *auth.RefreshToken) error {
	sql, args, err := r.builder().
		Insert(tokenTable).
		SetMap(postgres.StructToMap(token)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err = r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert refresh token: %w", err)
	}

	return nil
}

// GetRefreshToken retrieves a token by its hash.
func (r *TokenRepo) GetRefreshToken(ctx context.Context, tokenHash string) (*auth.RefreshToken, error) {
	sql, args, err := r.builder().
		Select(postgres.ExtractDBColumns[auth.RefreshToken]()...).
		From(tokenTable).
		Where(squirrel.Eq{"token_hash": tokenHash}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var token auth.RefreshToken
	if err := pgxscan.Get(ctx, r.txManager.GetQuerier(ctx), &token, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("refresh_token", "hash")
		}
		return nil, fmt.Errorf("get refresh token: %w", err)
	}

	return &token, nil
}

// RevokeRefreshToken revokes a single token.
func (r *TokenRepo) RevokeRefreshToken(ctx context.Context, tokenID id.ID, reason string) error {
	sql, args, err := r.builder().
		Update(tokenTable).
		Set("revoked_at", squirrel.Expr("now()")).
		Set("revoked_reason", reason).
		Where(squirrel.Eq{"id": tokenID}).
		Where(squirrel.Eq{"revoked_at": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	if _, err = r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("revoke refresh token: %w", err)
	}

	return nil
}

// RevokeAllUserTokens revokes every live token for a user.
func (r *TokenRepo) RevokeAllUserTokens(ctx context.Context, userID id.ID, reason string) error {
	sql, args, err := r.builder().
		Update(tokenTable).
		Set("revoked_at", squirrel.Expr("now()")).
		Set("revoked_reason", reason).
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.Eq{"revoked_at": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	if _, err = r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("revoke user tokens: %w", err)
	}

	return nil
}
