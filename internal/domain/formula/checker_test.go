package formula

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fabrica/internal/core/apperror"
	"fabrica/internal/core/id"
	"fabrica/internal/domain/catalogs/rawmaterial"
)

type stubTxManager struct{}

func (stubTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeLineRepo struct {
	Repository
	lines []*Line
}

func (f *fakeLineRepo) ListActiveByProduct(ctx context.Context, productID id.ID) ([]*Line, error) {
	var out []*Line
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
	deltas    []int64
}

func newFakeMaterialRepo(materials ...*rawmaterial.RawMaterial) *fakeMaterialRepo {
	repo := &fakeMaterialRepo{materials: make(map[id.ID]*rawmaterial.RawMaterial)}
	for _, m := range materials {
		repo.materials[m.ID] = m
	}
	return repo
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
	f.deltas = append(f.deltas, delta)
	return nil
}

func TestCheckWithoutFormulaLinesIsSatisfied(t *testing.T) {
	checker := NewChecker(&fakeLineRepo{}, newFakeMaterialRepo(), stubTxManager{})

	result, err := checker.Check(context.Background(), id.New(), 5)

	require.NoError(t, err)
	assert.True(t, result.Satisfied)
	assert.Empty(t, result.Shortfalls)
}

func TestCheckRejectsNonPositiveQuantity(t *testing.T) {
	checker := NewChecker(&fakeLineRepo{}, newFakeMaterialRepo(), stubTxManager{})

	_, err := checker.Check(context.Background(), id.New(), 0)

	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInvalidQuantity, appErr.Code)
}

func TestCheckReportsShortfallPerLine(t *testing.T) {
	productID := id.New()
	steel := rawmaterial.New("RM-001", "Steel", id.New(), 4)
	lines := &fakeLineRepo{lines: []*Line{NewLine(productID, steel.ID, 2)}}
	checker := NewChecker(lines, newFakeMaterialRepo(steel), stubTxManager{})

	result, err := checker.Check(context.Background(), productID, 3)

	require.NoError(t, err)
	assert.False(t, result.Satisfied)
	require.Len(t, result.Shortfalls, 1)

	short := result.Shortfalls[0]
	assert.Equal(t, steel.ID, short.RawMaterialID)
	assert.Equal(t, "Steel", short.Name)
	assert.Equal(t, int64(6), short.Required)
	assert.Equal(t, int64(4), short.Available)
	assert.Equal(t, int64(2), short.Missing)
}

func TestCheckDoesNotConsumeStock(t *testing.T) {
	productID := id.New()
	steel := rawmaterial.New("RM-001", "Steel", id.New(), 10)
	lines := &fakeLineRepo{lines: []*Line{NewLine(productID, steel.ID, 2)}}
	materials := newFakeMaterialRepo(steel)
	checker := NewChecker(lines, materials, stubTxManager{})

	result, err := checker.Check(context.Background(), productID, 3)

	require.NoError(t, err)
	assert.True(t, result.Satisfied)
	assert.Equal(t, int64(10), steel.AvailableQuantity)
	assert.Empty(t, materials.deltas)
}

func TestCheckAndConsumeDecrementsEveryLine(t *testing.T) {
	productID := id.New()
	steel := rawmaterial.New("RM-001", "Steel", id.New(), 10)
	glass := rawmaterial.New("RM-002", "Glass", id.New(), 9)
	lines := &fakeLineRepo{lines: []*Line{
		NewLine(productID, steel.ID, 2),
		NewLine(productID, glass.ID, 3),
	}}
	materials := newFakeMaterialRepo(steel, glass)
	checker := NewChecker(lines, materials, stubTxManager{})

	result, err := checker.CheckAndConsume(context.Background(), productID, 3, id.New())

	require.NoError(t, err)
	assert.True(t, result.Satisfied)
	assert.Equal(t, int64(4), steel.AvailableQuantity)
	assert.Equal(t, int64(0), glass.AvailableQuantity)
}

func TestCheckAndConsumeLeavesStockUntouchedOnShortfall(t *testing.T) {
	productID := id.New()
	steel := rawmaterial.New("RM-001", "Steel", id.New(), 10)
	glass := rawmaterial.New("RM-002", "Glass", id.New(), 2)
	lines := &fakeLineRepo{lines: []*Line{
		NewLine(productID, steel.ID, 2),
		NewLine(productID, glass.ID, 3),
	}}
	materials := newFakeMaterialRepo(steel, glass)
	checker := NewChecker(lines, materials, stubTxManager{})

	result, err := checker.CheckAndConsume(context.Background(), productID, 3, id.New())

	// the shortfall is a result, not an error
	require.NoError(t, err)
	assert.False(t, result.Satisfied)
	require.Len(t, result.Shortfalls, 1)
	assert.Equal(t, glass.ID, result.Shortfalls[0].RawMaterialID)

	// all-or-nothing: the covered line was not decremented either
	assert.Equal(t, int64(10), steel.AvailableQuantity)
	assert.Equal(t, int64(2), glass.AvailableQuantity)
	assert.Empty(t, materials.deltas)
}

func TestCheckAndConsumeRejectsNonPositiveQuantity(t *testing.T) {
	checker := NewChecker(&fakeLineRepo{}, newFakeMaterialRepo(), stubTxManager{})

	_, err := checker.CheckAndConsume(context.Background(), id.New(), -1, id.New())

	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInvalidQuantity, appErr.Code)
}

func TestCheckUnknownMaterialFails(t *testing.T) {
	productID := id.New()
	lines := &fakeLineRepo{lines: []*Line{NewLine(productID, id.New(), 1)}}
	checker := NewChecker(lines, newFakeMaterialRepo(), stubTxManager{})

	_, err := checker.Check(context.Background(), productID, 1)

	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}
