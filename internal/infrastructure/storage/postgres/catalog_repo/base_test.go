package catalog_repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fabrica/internal/core/apperror"
)

type listRow struct{}

func newTestRepo(cols []string) *BaseCatalogRepo[*listRow] {
	return NewBaseCatalogRepo(nil, "cat_items", cols, []string{"name", "code"}, func() *listRow {
		return &listRow{}
	})
}

var catalogCols = []string{"id", "code", "name", "is_active", "version", "created_at"}

func TestParseOrderByDefaults(t *testing.T) {
	repo := newTestRepo(catalogCols)

	order, err := repo.parseOrderBy("")
	require.NoError(t, err)
	assert.Equal(t, "name ASC", order)

	// tables without a name column sort by creation time
	noName := newTestRepo([]string{"id", "is_active", "version", "created_at"})
	order, err = noName.parseOrderBy("")
	require.NoError(t, err)
	assert.Equal(t, "created_at ASC", order)
}

func TestParseOrderByDirections(t *testing.T) {
	repo := newTestRepo(catalogCols)

	tests := []struct {
		in   string
		want string
	}{
		{"code", "code ASC"},
		{"+code", "code ASC"},
		{"-created_at", "created_at DESC"},
		{"-name", "name DESC"},
	}

	for _, tt := range tests {
		order, err := repo.parseOrderBy(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, order)
	}
}

func TestParseOrderByRejectsUnknownColumn(t *testing.T) {
	repo := newTestRepo(catalogCols)

	for _, in := range []string{"password", "-drop table", "-"} {
		_, err := repo.parseOrderBy(in)
		require.Error(t, err, in)
		appErr, ok := apperror.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperror.CodeValidation, appErr.Code)
	}
}

func TestBaseSelectSQL(t *testing.T) {
	repo := newTestRepo(catalogCols)

	sql, _, err := repo.baseSelect().ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, code, name, is_active, version, created_at FROM cat_items", sql)
}

func TestBuilderUsesDollarPlaceholders(t *testing.T) {
	repo := newTestRepo(catalogCols)

	sql, args, err := repo.Builder().
		Select("1").
		From(repo.TableName()).
		Where("code = ?", "RM-001").
		ToSql()
	require.NoError(t, err)
	assert.Contains(t, sql, "$1")
	assert.Equal(t, []any{"RM-001"}, args)
}

func TestHasColumn(t *testing.T) {
	repo := newTestRepo(catalogCols)

	assert.True(t, repo.hasColumn("code"))
	assert.False(t, repo.hasColumn("product_id"))
}

func TestGetByCodeWithoutCodeColumn(t *testing.T) {
	// codeless tables (orders, backlog) answer not-found without ever
	// touching the database
	repo := newTestRepo([]string{"id", "is_active", "version", "created_at"})

	_, err := repo.GetByCode(context.Background(), "26-02-4")

	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}
