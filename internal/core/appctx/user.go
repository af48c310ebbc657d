// Package appctx provides request-scoped values: the authenticated user
// and tracing metadata.
package appctx

import (
	"context"

	"fabrica/internal/core/id"
)

// UserContext contains authenticated user information extracted from the JWT.
type UserContext struct {
	UserID      id.ID
	Username    string
	Email       string
	Role        string
	Permissions []string
	IsAdmin     bool
}

type userContextKey struct{}

// WithUser adds UserContext to context.
func WithUser(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

// GetUser returns UserContext from context, or nil.
func GetUser(ctx context.Context) *UserContext {
	if v, ok := ctx.Value(userContextKey{}).(*UserContext); ok {
		return v
	}
	return nil
}

// GetActor returns the acting user's ID from context, or the nil ID.
// Domain services receive the actor explicitly; handlers resolve it here.
func GetActor(ctx context.Context) id.ID {
	if u := GetUser(ctx); u != nil {
		return u.UserID
	}
	return id.Nil()
}

// HasPermission checks if the user in context carries a permission.
// Admins implicitly hold every permission.
func HasPermission(ctx context.Context, permission string) bool {
	u := GetUser(ctx)
	if u == nil {
		return false
	}
	if u.IsAdmin {
		return true
	}
	for _, p := range u.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}
