package production_repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fabrica/internal/core/id"
)

func TestActiveByProductQueryOrderAndLock(t *testing.T) {
	repo := NewBacklogRepo(nil)

	sql, args, err := repo.activeByProduct(id.New()).ToSql()

	require.NoError(t, err)
	assert.Contains(t, sql, "FROM prod_backlog")
	assert.Contains(t, sql, "ORDER BY created_at ASC, id ASC")
	assert.Contains(t, sql, "FOR UPDATE")
	assert.Len(t, args, 2)
}
