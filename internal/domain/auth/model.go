// Package auth provides authentication and authorization domain logic.
package auth

import (
	"context"
	"time"

	"fabrica/internal/core/apperror"
	"fabrica/internal/core/id"
)

// Role codes. Each user carries exactly one role; permissions are
// derived from it.
const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleOperator = "operator"
)

// Permission codes checked by the permission middleware.
const (
	PermCatalogRead    = "catalog:read"
	PermCatalogWrite   = "catalog:write"
	PermProductionRun  = "production:run"
	PermOrdersWrite    = "orders:write"
	PermPurchasesWrite = "purchases:write"
	PermUsersManage    = "users:manage"
)

// rolePermissions maps each role to its granted permissions. Admin is
// handled by the IsAdmin flag and bypasses the check entirely.
var rolePermissions = map[string][]string{
	RoleManager: {
		PermCatalogRead, PermCatalogWrite,
		PermProductionRun, PermOrdersWrite, PermPurchasesWrite,
	},
	RoleOperator: {
		PermCatalogRead, PermProductionRun,
	},
}

// PermissionsForRole returns the permission set granted by a role.
func PermissionsForRole(role string) []string {
	return rolePermissions[role]
}

// ValidRole reports whether the role code is known.
func ValidRole(role string) bool {
	if role == RoleAdmin {
		return true
	}
	_, ok := rolePermissions[role]
	return ok
}

// User represents a system user.
type User struct {
	ID                  id.ID      `db:"id" json:"id"`
	Username            string     `db:"username" json:"username"`
	Email               string     `db:"email" json:"email"`
	PasswordHash        string     `db:"password_hash" json:"-"`
	Role                string     `db:"role" json:"role"`
	IsActive            bool       `db:"is_active" json:"isActive"`
	LastLoginAt         *time.Time `db:"last_login_at" json:"lastLoginAt,omitempty"`
	FailedLoginAttempts int        `db:"failed_login_attempts" json:"-"`
	LockedUntil         *time.Time `db:"locked_until" json:"-"`
	CreatedAt           time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt           time.Time  `db:"updated_at" json:"updatedAt"`
	Version             int        `db:"version" json:"version"`
}

// NewUser creates a new user.
func NewUser(username, email, passwordHash, role string) *User {
	now := time.Now().UTC()
	return &User{
		ID:           id.New(),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
		Version:      1,
	}
}

// Validate validates user data.
func (u *User) Validate(ctx context.Context) error {
	if u.Username == "" {
		return apperror.NewValidation("username is required").WithDetail("field", "username")
	}
	if u.Email == "" {
		return apperror.NewValidation("email is required").WithDetail("field", "email")
	}
	if !ValidRole(u.Role) {
		return apperror.NewValidation("unknown role").WithDetail("field", "role")
	}
	return nil
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Permissions returns the user's derived permission set.
func (u *User) Permissions() []string {
	return PermissionsForRole(u.Role)
}

// IsLocked returns true if the account is locked.
func (u *User) IsLocked() bool {
	if u.LockedUntil == nil {
		return false
	}
	return time.Now().Before(*u.LockedUntil)
}

// CanLogin checks if the user can login.
func (u *User) CanLogin() error {
	if !u.IsActive {
		return apperror.NewForbidden("account is disabled")
	}
	if u.IsLocked() {
		return apperror.NewForbidden("account is temporarily locked")
	}
	return nil
}

// RecordFailedLogin increments the failed login counter.
func (u *User) RecordFailedLogin(maxAttempts int, lockDuration time.Duration) {
	u.FailedLoginAttempts++
	if u.FailedLoginAttempts >= maxAttempts {
		lockUntil := time.Now().Add(lockDuration)
		u.LockedUntil = &lockUntil
	}
}

// RecordSuccessfulLogin resets the failed login counter.
func (u *User) RecordSuccessfulLogin() {
	u.FailedLoginAttempts = 0
	u.LockedUntil = nil
	now := time.Now()
	u.LastLoginAt = &now
}

// RefreshToken is a stored, hashed refresh token.
type RefreshToken struct {
	ID            id.ID      `db:"id"`
	UserID        id.ID      `db:"user_id"`
	TokenHash     string     `db:"token_hash"`
	ExpiresAt     time.Time  `db:"expires_at"`
	CreatedAt     time.Time  `db:"created_at"`
	RevokedAt     *time.Time `db:"revoked_at"`
	RevokedReason string     `db:"revoked_reason"`
}

// IsValid checks if the refresh token is usable.
func (t *RefreshToken) IsValid() bool {
	if t.RevokedAt != nil {
		return false
	}
	return time.Now().Before(t.ExpiresAt)
}

// TokenPair contains access and refresh tokens.
type TokenPair struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresAt    time.Time `json:"expiresAt"`
	TokenType    string    `json:"tokenType"`
}

// Credentials for login.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest for user registration.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}
