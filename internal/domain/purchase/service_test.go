package purchase

import (
	"context"
	"testing"
	"time"

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

type fakePurchaseRepo struct {
	Repository
	purchases map[id.ID]*Purchase
}

func newFakePurchaseRepo() *fakePurchaseRepo {
	return &fakePurchaseRepo{purchases: make(map[id.ID]*Purchase)}
}

func (f *fakePurchaseRepo) Create(ctx context.Context, p *Purchase) error {
	f.purchases[p.ID] = p
	return nil
}

func (f *fakePurchaseRepo) GetByID(ctx context.Context, purchaseID id.ID) (*Purchase, error) {
	p, ok := f.purchases[purchaseID]
	if !ok {
		return nil, apperror.NewNotFound("purchase", purchaseID.String())
	}
	return p, nil
}

func (f *fakePurchaseRepo) GetForUpdate(ctx context.Context, purchaseID id.ID) (*Purchase, error) {
	return f.GetByID(ctx, purchaseID)
}

func (f *fakePurchaseRepo) Update(ctx context.Context, p *Purchase) error {
	f.purchases[p.ID] = p
	return nil
}

type fakeMaterialRepo struct {
	rawmaterial.Repository
	material *rawmaterial.RawMaterial
}

func (f *fakeMaterialRepo) Exists(ctx context.Context, materialID id.ID) (bool, error) {
	return f.material != nil && f.material.ID == materialID, nil
}

func (f *fakeMaterialRepo) ApplyQuantityDelta(ctx context.Context, materialID id.ID, delta int64, actor id.ID) error {
	if f.material == nil || f.material.ID != materialID {
		return apperror.NewNotFound("raw_material", materialID.String())
	}
	if f.material.AvailableQuantity+delta < 0 {
		return apperror.NewInsufficientStock(materialID, -delta, f.material.AvailableQuantity)
	}
	f.material.AvailableQuantity += delta
	return nil
}

type fakeSupplierChecker struct {
	exists bool
}

func (f fakeSupplierChecker) Exists(ctx context.Context, supplierID id.ID) (bool, error) {
	return f.exists, nil
}

type purchaseFixture struct {
	svc        *Service
	repo       *fakePurchaseRepo
	material   *rawmaterial.RawMaterial
	supplierID id.ID
	now        time.Time
}

func newPurchaseFixture() *purchaseFixture {
	material := rawmaterial.New("RM-001", "Steel", id.New(), 10)
	repo := newFakePurchaseRepo()

	svc := NewService(
		repo,
		&fakeMaterialRepo{material: material},
		fakeSupplierChecker{exists: true},
		stubTxManager{},
		nil,
	)

	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	return &purchaseFixture{
		svc:        svc,
		repo:       repo,
		material:   material,
		supplierID: id.New(),
		now:        now,
	}
}

func int64Ptr(n int64) *int64 {
	return &n
}

func boolPtr(b bool) *bool {
	return &b
}

func TestCreatePurchase(t *testing.T) {
	fx := newPurchaseFixture()

	p, err := fx.svc.CreatePurchase(context.Background(), fx.supplierID, fx.material.ID, 7, id.New())

	require.NoError(t, err)
	assert.Equal(t, fx.supplierID, p.SupplierID)
	assert.Equal(t, fx.material.ID, p.RawMaterialID)
	assert.Equal(t, int64(7), p.Quantity)
	assert.False(t, p.IsDelivered)
	assert.Equal(t, fx.now, p.OrderDate)
	assert.Contains(t, fx.repo.purchases, p.ID)
}

func TestCreatePurchaseUnknownSupplier(t *testing.T) {
	fx := newPurchaseFixture()
	fx.svc.suppliers = fakeSupplierChecker{exists: false}

	_, err := fx.svc.CreatePurchase(context.Background(), id.New(), fx.material.ID, 7, id.New())

	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
	assert.Empty(t, fx.repo.purchases)
}

func TestCreatePurchaseUnknownMaterial(t *testing.T) {
	fx := newPurchaseFixture()

	_, err := fx.svc.CreatePurchase(context.Background(), fx.supplierID, id.New(), 7, id.New())

	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestCreatePurchaseRejectsNonPositiveQuantity(t *testing.T) {
	fx := newPurchaseFixture()

	_, err := fx.svc.CreatePurchase(context.Background(), fx.supplierID, fx.material.ID, 0, id.New())

	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInvalidQuantity, appErr.Code)
}

func TestReceiptCreditsStockExactlyOnce(t *testing.T) {
	fx := newPurchaseFixture()
	actor := id.New()

	p, err := fx.svc.CreatePurchase(context.Background(), fx.supplierID, fx.material.ID, 7, actor)
	require.NoError(t, err)

	received, err := fx.svc.UpdatePurchase(context.Background(), p.ID, Patch{IsDelivered: boolPtr(true)}, actor)

	require.NoError(t, err)
	assert.True(t, received.IsDelivered)
	require.NotNil(t, received.DeliveryDate)
	assert.Equal(t, fx.now, *received.DeliveryDate)
	assert.Equal(t, int64(17), fx.material.AvailableQuantity)

	// a second receipt must not credit again
	_, err = fx.svc.UpdatePurchase(context.Background(), p.ID, Patch{IsDelivered: boolPtr(true)}, actor)
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeAlreadyDelivered, appErr.Code)
	assert.Equal(t, int64(17), fx.material.AvailableQuantity)
}

func TestDeliveredPurchaseQuantityIsFrozen(t *testing.T) {
	fx := newPurchaseFixture()
	actor := id.New()

	p, err := fx.svc.CreatePurchase(context.Background(), fx.supplierID, fx.material.ID, 7, actor)
	require.NoError(t, err)

	_, err = fx.svc.UpdatePurchase(context.Background(), p.ID, Patch{IsDelivered: boolPtr(true)}, actor)
	require.NoError(t, err)

	_, err = fx.svc.UpdatePurchase(context.Background(), p.ID, Patch{Quantity: int64Ptr(3)}, actor)

	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
}

func TestPendingPurchaseQuantityCanChange(t *testing.T) {
	fx := newPurchaseFixture()
	actor := id.New()

	p, err := fx.svc.CreatePurchase(context.Background(), fx.supplierID, fx.material.ID, 7, actor)
	require.NoError(t, err)

	updated, err := fx.svc.UpdatePurchase(context.Background(), p.ID, Patch{Quantity: int64Ptr(12)}, actor)

	require.NoError(t, err)
	assert.Equal(t, int64(12), updated.Quantity)
	assert.Equal(t, int64(10), fx.material.AvailableQuantity)
}

func TestQuantityChangeThenReceiptCreditsNewQuantity(t *testing.T) {
	fx := newPurchaseFixture()
	actor := id.New()

	p, err := fx.svc.CreatePurchase(context.Background(), fx.supplierID, fx.material.ID, 7, actor)
	require.NoError(t, err)

	_, err = fx.svc.UpdatePurchase(context.Background(), p.ID, Patch{
		Quantity:    int64Ptr(12),
		IsDelivered: boolPtr(true),
	}, actor)

	require.NoError(t, err)
	assert.Equal(t, int64(22), fx.material.AvailableQuantity)
}

func TestUpdateUnknownPurchase(t *testing.T) {
	fx := newPurchaseFixture()

	_, err := fx.svc.UpdatePurchase(context.Background(), id.New(), Patch{IsDelivered: boolPtr(true)}, id.New())

	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}
