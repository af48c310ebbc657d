package offered

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fabrica/internal/core/apperror"
	"fabrica/internal/core/id"
	"fabrica/internal/domain/backlog"
	"fabrica/internal/domain/catalogs/rawmaterial"
	"fabrica/internal/domain/formula"
)

type stubTxManager struct{}

func (stubTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeBatchRepo struct {
	Repository
	created []*Product
}

func (f *fakeBatchRepo) Create(ctx context.Context, batch *Product) error {
	f.created = append(f.created, batch)
	return nil
}

type fakeFormulaRepo struct {
	formula.Repository
	lines []*formula.Line
}

func (f *fakeFormulaRepo) ListActiveByProduct(ctx context.Context, productID id.ID) ([]*formula.Line, error) {
	var out []*formula.Line
	for _, l := range f.lines {
		if l.ProductID == productID {
			out = append(out, l)
		}
	}
	return out, nil
}

type fakeMaterialRepo struct {
	rawmaterial.Repository
	materials map[id.ID]*rawmaterial.RawMaterial
}

func (f *fakeMaterialRepo) GetByID(ctx context.Context, materialID id.ID) (*rawmaterial.RawMaterial, error) {
	mat, ok := f.materials[materialID]
	if !ok {
		return nil, apperror.NewNotFound("raw_material", materialID.String())
	}
	return mat, nil
}

func (f *fakeMaterialRepo) GetForUpdate(ctx context.Context, materialID id.ID) (*rawmaterial.RawMaterial, error) {
	return f.GetByID(ctx, materialID)
}

func (f *fakeMaterialRepo) ApplyQuantityDelta(ctx context.Context, materialID id.ID, delta int64, actor id.ID) error {
	mat, ok := f.materials[materialID]
	if !ok {
		return apperror.NewNotFound("raw_material", materialID.String())
	}
	if mat.AvailableQuantity+delta < 0 {
		return apperror.NewInsufficientStock(materialID, -delta, mat.AvailableQuantity)
	}
	mat.AvailableQuantity += delta
	return nil
}

type fakeBacklogRepo struct {
	backlog.Repository
	entries []*backlog.Entry
}

func (f *fakeBacklogRepo) Create(ctx context.Context, entry *backlog.Entry) error {
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeBacklogRepo) Update(ctx context.Context, entry *backlog.Entry) error {
	return nil
}

func (f *fakeBacklogRepo) ListActiveByProduct(ctx context.Context, productID id.ID) ([]*backlog.Entry, error) {
	var active []*backlog.Entry
	for _, e := range f.entries {
		if e.ProductID == productID && e.IsActive {
			active = append(active, e)
		}
	}
	return active, nil
}

type fakeProductLookup struct {
	name string
}

func (f fakeProductLookup) Exists(ctx context.Context, productID id.ID) (bool, error) {
	return f.name != "", nil
}

func (f fakeProductLookup) GetName(ctx context.Context, productID id.ID) (string, error) {
	if f.name == "" {
		return "", apperror.NewNotFound("product", productID.String())
	}
	return f.name, nil
}

type fakeWarehouseChecker struct {
	exists bool
}

func (f fakeWarehouseChecker) Exists(ctx context.Context, warehouseID id.ID) (bool, error) {
	return f.exists, nil
}

type produceFixture struct {
	svc       *Service
	repo      *fakeBatchRepo
	materials *fakeMaterialRepo
	backlog   *fakeBacklogRepo
}

func newProduceFixture(lines []*formula.Line, materials ...*rawmaterial.RawMaterial) *produceFixture {
	txm := stubTxManager{}

	matRepo := &fakeMaterialRepo{materials: make(map[id.ID]*rawmaterial.RawMaterial)}
	for _, m := range materials {
		matRepo.materials[m.ID] = m
	}

	checker := formula.NewChecker(&fakeFormulaRepo{lines: lines}, matRepo, txm)
	backlogRepo := &fakeBacklogRepo{}
	repo := &fakeBatchRepo{}

	svc := NewService(
		repo,
		checker,
		backlog.NewService(backlogRepo, txm, nil),
		fakeProductLookup{name: "Widget"},
		fakeWarehouseChecker{exists: true},
		txm,
		nil,
	)
	svc.now = func() time.Time {
		return time.Date(2026, 1, 8, 12, 0, 0, 0, time.UTC) // Thursday, week 2
	}

	return &produceFixture{svc: svc, repo: repo, materials: matRepo, backlog: backlogRepo}
}

func TestProduceStoresBatchWithDateCode(t *testing.T) {
	fx := newProduceFixture(nil)
	productID := id.New()
	warehouseID := id.New()

	batch, result, err := fx.svc.Produce(context.Background(), productID, warehouseID, 10, id.New())

	require.NoError(t, err)
	assert.True(t, result.Satisfied)
	require.Len(t, fx.repo.created, 1)
	assert.Same(t, batch, fx.repo.created[0])
	assert.Equal(t, "26-02-4", batch.Code)
	assert.Equal(t, "Widget", batch.Name)
	assert.Equal(t, productID, batch.ProductID)
	assert.Equal(t, warehouseID, batch.WarehouseID)
	assert.Equal(t, int64(10), batch.Quantity)
}

func TestProduceKeepsFullBatchWhileDrainingBacklog(t *testing.T) {
	fx := newProduceFixture(nil)
	productID := id.New()

	entry := backlog.NewEntry(productID, 3)
	fx.backlog.entries = append(fx.backlog.entries, entry)

	batch, _, err := fx.svc.Produce(context.Background(), productID, id.New(), 10, id.New())

	require.NoError(t, err)

	// backlog demand never debits the batch; the full run is sellable
	assert.Equal(t, int64(10), batch.Quantity)
	assert.Equal(t, int64(0), entry.RequiredQuantity)
	assert.False(t, entry.IsActive)
}

func TestProducePartiallyDrainsOversizedBacklog(t *testing.T) {
	fx := newProduceFixture(nil)
	productID := id.New()

	entry := backlog.NewEntry(productID, 15)
	fx.backlog.entries = append(fx.backlog.entries, entry)

	batch, _, err := fx.svc.Produce(context.Background(), productID, id.New(), 10, id.New())

	require.NoError(t, err)
	assert.Equal(t, int64(10), batch.Quantity)
	assert.Equal(t, int64(5), entry.RequiredQuantity)
	assert.True(t, entry.IsActive)
}

func TestProduceConsumesMaterialsPerFormula(t *testing.T) {
	productID := id.New()
	steel := rawmaterial.New("RM-001", "Steel", id.New(), 10)
	fx := newProduceFixture([]*formula.Line{formula.NewLine(productID, steel.ID, 2)}, steel)

	batch, _, err := fx.svc.Produce(context.Background(), productID, id.New(), 4, id.New())

	require.NoError(t, err)
	assert.Equal(t, int64(4), batch.Quantity)
	assert.Equal(t, int64(2), steel.AvailableQuantity)
}

func TestProduceRejectsOnRequirementShortfall(t *testing.T) {
	productID := id.New()
	steel := rawmaterial.New("RM-001", "Steel", id.New(), 4)
	fx := newProduceFixture([]*formula.Line{formula.NewLine(productID, steel.ID, 5)}, steel)

	batch, result, err := fx.svc.Produce(context.Background(), productID, id.New(), 1, id.New())

	require.Error(t, err)
	assert.True(t, apperror.IsRequirementsNotMet(err))
	assert.Nil(t, batch)
	require.Len(t, result.Shortfalls, 1)
	assert.Equal(t, int64(1), result.Shortfalls[0].Missing)

	// nothing was created or consumed
	assert.Empty(t, fx.repo.created)
	assert.Equal(t, int64(4), steel.AvailableQuantity)
}

func TestProduceRejectsUnknownWarehouse(t *testing.T) {
	fx := newProduceFixture(nil)
	fx.svc.warehouses = fakeWarehouseChecker{exists: false}

	_, _, err := fx.svc.Produce(context.Background(), id.New(), id.New(), 5, id.New())

	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestProduceRejectsUnknownProduct(t *testing.T) {
	fx := newProduceFixture(nil)
	fx.svc.products = fakeProductLookup{}

	_, _, err := fx.svc.Produce(context.Background(), id.New(), id.New(), 5, id.New())

	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestProduceRejectsNonPositiveQuantity(t *testing.T) {
	fx := newProduceFixture(nil)

	_, _, err := fx.svc.Produce(context.Background(), id.New(), id.New(), 0, id.New())

	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInvalidQuantity, appErr.Code)
}

func TestCheckRequirementsDoesNotTouchStock(t *testing.T) {
	productID := id.New()
	steel := rawmaterial.New("RM-001", "Steel", id.New(), 3)
	fx := newProduceFixture([]*formula.Line{formula.NewLine(productID, steel.ID, 2)}, steel)

	result, err := fx.svc.CheckRequirements(context.Background(), productID, 2)

	require.NoError(t, err)
	assert.False(t, result.Satisfied)
	assert.Equal(t, int64(3), steel.AvailableQuantity)
	assert.Empty(t, fx.repo.created)
}
