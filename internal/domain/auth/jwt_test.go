package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateAccessToken(t *testing.T) {
	svc := NewJWTService(DefaultJWTConfig("test-secret"))
	user := NewUser("alice", "alice@example.com", "hash", RoleManager)

	token, expiresAt, err := svc.GenerateAccessToken(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), expiresAt, time.Minute)

	uc, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, uc.UserID)
	assert.Equal(t, "alice", uc.Username)
	assert.Equal(t, "alice@example.com", uc.Email)
	assert.Equal(t, RoleManager, uc.Role)
	assert.ElementsMatch(t, PermissionsForRole(RoleManager), uc.Permissions)
	assert.False(t, uc.IsAdmin)
}

func TestAdminTokenCarriesAdminFlag(t *testing.T) {
	svc := NewJWTService(DefaultJWTConfig("test-secret"))
	user := NewUser("root", "root@example.com", "hash", RoleAdmin)

	token, _, err := svc.GenerateAccessToken(user)
	require.NoError(t, err)

	uc, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.True(t, uc.IsAdmin)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	user := NewUser("alice", "alice@example.com", "hash", RoleOperator)

	token, _, err := NewJWTService(DefaultJWTConfig("secret-a")).GenerateAccessToken(user)
	require.NoError(t, err)

	_, err = NewJWTService(DefaultJWTConfig("secret-b")).ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	cfg := DefaultJWTConfig("test-secret")
	cfg.AccessTokenTTL = -time.Minute
	svc := NewJWTService(cfg)
	user := NewUser("alice", "alice@example.com", "hash", RoleOperator)

	token, _, err := svc.GenerateAccessToken(user)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := NewJWTService(DefaultJWTConfig("test-secret"))

	_, err := svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestPermissionsForRole(t *testing.T) {
	assert.Contains(t, PermissionsForRole(RoleManager), PermOrdersWrite)
	assert.Contains(t, PermissionsForRole(RoleOperator), PermProductionRun)
	assert.NotContains(t, PermissionsForRole(RoleOperator), PermCatalogWrite)
	assert.Empty(t, PermissionsForRole(RoleAdmin))
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole(RoleAdmin))
	assert.True(t, ValidRole(RoleManager))
	assert.True(t, ValidRole(RoleOperator))
	assert.False(t, ValidRole("superuser"))
}
