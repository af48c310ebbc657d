package handlers

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fabrica/internal/core/apperror"
	"fabrica/internal/core/id"
	"fabrica/internal/domain/backlog"
)

type stubTxManager struct{}

func (stubTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeBacklogRepo struct {
	backlog.Repository
	entries map[id.ID]*backlog.Entry
}

func newFakeBacklogRepo() *fakeBacklogRepo {
	return &fakeBacklogRepo{entries: make(map[id.ID]*backlog.Entry)}
}

func (f *fakeBacklogRepo) Create(ctx context.Context, entry *backlog.Entry) error {
	f.entries[entry.ID] = entry
	return nil
}

func (f *fakeBacklogRepo) GetByID(ctx context.Context, entryID id.ID) (*backlog.Entry, error) {
	entry, ok := f.entries[entryID]
	if !ok {
		return nil, apperror.NewNotFound("backlog_entry", entryID.String())
	}
	return entry, nil
}

func (f *fakeBacklogRepo) Update(ctx context.Context, entry *backlog.Entry) error {
	if _, ok := f.entries[entry.ID]; !ok {
		return apperror.NewNotFound("backlog_entry", entry.ID.String())
	}
	f.entries[entry.ID] = entry
	return nil
}

func (f *fakeBacklogRepo) Delete(ctx context.Context, entryID id.ID) error {
	if _, ok := f.entries[entryID]; !ok {
		return apperror.NewNotFound("backlog_entry", entryID.String())
	}
	delete(f.entries, entryID)
	return nil
}

func newBacklogHandlerFixture() (*BacklogHandler, *fakeBacklogRepo) {
	gin.SetMode(gin.TestMode)
	repo := newFakeBacklogRepo()
	svc := backlog.NewService(repo, stubTxManager{}, nil)
	return NewBacklogHandler(NewBaseHandler(), svc), repo
}

func testContext(method, target string, body []byte) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestBacklogCreateStoresEntry(t *testing.T) {
	h, repo := newBacklogHandlerFixture()
	productID := id.New()

	body := fmt.Sprintf(`{"productId":%q,"requiredQuantity":4}`, productID.String())
	c, w := testContext(http.MethodPost, "/backlog", []byte(body))

	h.Create(c)

	require.Empty(t, c.Errors)
	assert.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, repo.entries, 1)
	for _, entry := range repo.entries {
		assert.Equal(t, productID, entry.ProductID)
		assert.Equal(t, int64(4), entry.RequiredQuantity)
		assert.True(t, entry.IsActive)
	}
}

func TestBacklogCreateRejectsNonPositiveQuantity(t *testing.T) {
	h, repo := newBacklogHandlerFixture()

	body := fmt.Sprintf(`{"productId":%q,"requiredQuantity":0}`, id.New().String())
	c, _ := testContext(http.MethodPost, "/backlog", []byte(body))

	h.Create(c)

	require.NotEmpty(t, c.Errors)
	assert.Empty(t, repo.entries)
}

func TestBacklogUpdateAdjustsRequiredQuantity(t *testing.T) {
	h, repo := newBacklogHandlerFixture()
	entry := backlog.NewEntry(id.New(), 4)
	repo.entries[entry.ID] = entry

	body := `{"requiredQuantity":9,"isActive":true,"version":1}`
	c, w := testContext(http.MethodPut, "/backlog/"+entry.ID.String(), []byte(body))
	c.Params = gin.Params{{Key: "id", Value: entry.ID.String()}}

	h.Update(c)

	require.Empty(t, c.Errors)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(9), repo.entries[entry.ID].RequiredQuantity)
}

func TestBacklogDeleteRemovesEntry(t *testing.T) {
	h, repo := newBacklogHandlerFixture()
	entry := backlog.NewEntry(id.New(), 4)
	repo.entries[entry.ID] = entry

	c, w := testContext(http.MethodDelete, "/backlog/"+entry.ID.String(), nil)
	c.Params = gin.Params{{Key: "id", Value: entry.ID.String()}}

	h.Delete(c)
	c.Writer.WriteHeaderNow()

	require.Empty(t, c.Errors)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, repo.entries)
}

func TestBacklogDeleteUnknownEntry(t *testing.T) {
	h, _ := newBacklogHandlerFixture()

	unknown := id.New()
	c, _ := testContext(http.MethodDelete, "/backlog/"+unknown.String(), nil)
	c.Params = gin.Params{{Key: "id", Value: unknown.String()}}

	h.Delete(c)

	require.NotEmpty(t, c.Errors)
	assert.True(t, apperror.IsNotFound(c.Errors.Last().Err))
}
