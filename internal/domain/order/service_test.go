package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fabrica/internal/core/apperror"
	"fabrica/internal/core/id"
	"fabrica/internal/core/types"
	"fabrica/internal/domain/backlog"
	"fabrica/internal/domain/catalogs/price"
	"fabrica/internal/domain/offered"
)

type stubTxManager struct{}

func (stubTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeOrderRepo struct {
	Repository
	orders map[id.ID]*Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[id.ID]*Order)}
}

func (f *fakeOrderRepo) Create(ctx context.Context, ord *Order) error {
	f.orders[ord.ID] = ord
	return nil
}

func (f *fakeOrderRepo) GetByID(ctx context.Context, orderID id.ID) (*Order, error) {
	ord, ok := f.orders[orderID]
	if !ok {
		return nil, apperror.NewNotFound("order", orderID.String())
	}
	return ord, nil
}

func (f *fakeOrderRepo) GetForUpdate(ctx context.Context, orderID id.ID) (*Order, error) {
	return f.GetByID(ctx, orderID)
}

func (f *fakeOrderRepo) Update(ctx context.Context, ord *Order) error {
	f.orders[ord.ID] = ord
	return nil
}

type fakeBatchRepo struct {
	offered.Repository
	batch *offered.Product
}

func (f *fakeBatchRepo) GetByID(ctx context.Context, batchID id.ID) (*offered.Product, error) {
	if f.batch == nil || f.batch.ID != batchID {
		return nil, apperror.NewNotFound("offered_product", batchID.String())
	}
	return f.batch, nil
}

func (f *fakeBatchRepo) GetForUpdate(ctx context.Context, batchID id.ID) (*offered.Product, error) {
	return f.GetByID(ctx, batchID)
}

func (f *fakeBatchRepo) ApplyQuantityDelta(ctx context.Context, batchID id.ID, delta int64, actor id.ID) error {
	if f.batch == nil || f.batch.ID != batchID {
		return apperror.NewNotFound("offered_product", batchID.String())
	}
	if f.batch.Quantity+delta < 0 {
		return apperror.NewInsufficientStock(batchID, -delta, f.batch.Quantity)
	}
	f.batch.Quantity += delta
	return nil
}

type fakePriceRepo struct {
	price.Repository
	price *price.Price
	calls int
}

func (f *fakePriceRepo) GetByProductID(ctx context.Context, productID id.ID) (*price.Price, error) {
	f.calls++
	if f.price == nil || f.price.ProductID != productID {
		return nil, apperror.NewNotFound("price", productID.String())
	}
	return f.price, nil
}

type fakeBacklogRepo struct {
	backlog.Repository
	entries   []*backlog.Entry
	createErr error
}

func (f *fakeBacklogRepo) Create(ctx context.Context, entry *backlog.Entry) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeBacklogRepo) Update(ctx context.Context, entry *backlog.Entry) error {
	return nil
}

func (f *fakeBacklogRepo) ListActiveByProduct(ctx context.Context, productID id.ID) ([]*backlog.Entry, error) {
	return nil, nil
}

type orderFixture struct {
	svc     *Service
	orders  *fakeOrderRepo
	batch   *offered.Product
	prices  *fakePriceRepo
	backlog *fakeBacklogRepo
	now     time.Time
}

// newOrderFixture wires a service around one batch of 5 units priced
// at 10 per unit.
func newOrderFixture() *orderFixture {
	txm := stubTxManager{}
	productID := id.New()

	batch := offered.New("26-02-4", "Widget", productID, id.New(), 5)
	orders := newFakeOrderRepo()
	prices := &fakePriceRepo{price: price.New(productID, types.MustMoney("10"))}
	backlogRepo := &fakeBacklogRepo{}

	svc := NewService(
		orders,
		&fakeBatchRepo{batch: batch},
		prices,
		backlog.NewService(backlogRepo, txm, nil),
		txm,
		nil,
	)

	now := time.Date(2026, 2, 10, 9, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	return &orderFixture{
		svc:     svc,
		orders:  orders,
		batch:   batch,
		prices:  prices,
		backlog: backlogRepo,
		now:     now,
	}
}

func moneyPtr(s string) *types.Money {
	m := types.MustMoney(s)
	return &m
}

func boolPtr(b bool) *bool {
	return &b
}

func TestCreateOrderSettlesTotal(t *testing.T) {
	fx := newOrderFixture()

	ord, err := fx.svc.CreateOrder(context.Background(), CreateInput{
		OfferedProductID: fx.batch.ID,
		Quantity:         types.MustMoney("3"),
		Discount:         types.MustMoney("5"),
	}, id.New())

	require.NoError(t, err)
	assert.True(t, ord.Total.Equal(types.MustMoney("25")))
	assert.False(t, ord.IsDelivered)
	assert.Equal(t, fx.now, ord.OrderDate)
	assert.Contains(t, fx.orders.orders, ord.ID)
}

func TestCreateOrderAboveStockRecordsBacklog(t *testing.T) {
	fx := newOrderFixture()

	_, err := fx.svc.CreateOrder(context.Background(), CreateInput{
		OfferedProductID: fx.batch.ID,
		Quantity:         types.MustMoney("8"),
		Discount:         types.Zero(),
	}, id.New())

	require.Error(t, err)
	assert.True(t, apperror.IsInsufficientStock(err))

	// the rejection leaves no order but the shortfall is on record
	assert.Empty(t, fx.orders.orders)
	require.Len(t, fx.backlog.entries, 1)
	assert.Equal(t, fx.batch.ProductID, fx.backlog.entries[0].ProductID)
	assert.Equal(t, int64(3), fx.backlog.entries[0].RequiredQuantity)
}

func TestCreateOrderSurfacesBacklogWriteFailure(t *testing.T) {
	fx := newOrderFixture()
	fx.backlog.createErr = errors.New("insert failed")

	_, err := fx.svc.CreateOrder(context.Background(), CreateInput{
		OfferedProductID: fx.batch.ID,
		Quantity:         types.MustMoney("8"),
		Discount:         types.Zero(),
	}, id.New())

	require.Error(t, err)
	assert.ErrorContains(t, err, "insert failed")
	assert.False(t, apperror.IsInsufficientStock(err))
	assert.Empty(t, fx.orders.orders)
}

func TestCreateOrderRejectsDiscountAboveGross(t *testing.T) {
	fx := newOrderFixture()

	_, err := fx.svc.CreateOrder(context.Background(), CreateInput{
		OfferedProductID: fx.batch.ID,
		Quantity:         types.MustMoney("2"),
		Discount:         types.MustMoney("25"),
	}, id.New())

	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInvalidDiscount, appErr.Code)
	assert.Empty(t, fx.orders.orders)
}

func TestCreateOrderRejectsNonPositiveQuantity(t *testing.T) {
	fx := newOrderFixture()

	_, err := fx.svc.CreateOrder(context.Background(), CreateInput{
		OfferedProductID: fx.batch.ID,
		Quantity:         types.Zero(),
		Discount:         types.Zero(),
	}, id.New())

	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInvalidQuantity, appErr.Code)
}

func TestCreateOrderUnknownBatch(t *testing.T) {
	fx := newOrderFixture()

	_, err := fx.svc.CreateOrder(context.Background(), CreateInput{
		OfferedProductID: id.New(),
		Quantity:         types.MustMoney("1"),
		Discount:         types.Zero(),
	}, id.New())

	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestDeliveryDecrementsBatchExactlyOnce(t *testing.T) {
	fx := newOrderFixture()
	actor := id.New()

	ord, err := fx.svc.CreateOrder(context.Background(), CreateInput{
		OfferedProductID: fx.batch.ID,
		Quantity:         types.MustMoney("2"),
		Discount:         types.Zero(),
	}, actor)
	require.NoError(t, err)

	delivered, err := fx.svc.UpdateOrder(context.Background(), ord.ID, Patch{IsDelivered: boolPtr(true)}, actor)

	require.NoError(t, err)
	assert.True(t, delivered.IsDelivered)
	require.NotNil(t, delivered.DeliveryDate)
	assert.Equal(t, fx.now, *delivered.DeliveryDate)
	assert.Equal(t, int64(3), fx.batch.Quantity)

	// a second delivery must not decrement again
	_, err = fx.svc.UpdateOrder(context.Background(), ord.ID, Patch{IsDelivered: boolPtr(true)}, actor)
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeAlreadyDelivered, appErr.Code)
	assert.Equal(t, int64(3), fx.batch.Quantity)
}

func TestDeliveredOrderQuantityIsFrozen(t *testing.T) {
	fx := newOrderFixture()
	actor := id.New()

	ord, err := fx.svc.CreateOrder(context.Background(), CreateInput{
		OfferedProductID: fx.batch.ID,
		Quantity:         types.MustMoney("2"),
		Discount:         types.Zero(),
	}, actor)
	require.NoError(t, err)

	_, err = fx.svc.UpdateOrder(context.Background(), ord.ID, Patch{IsDelivered: boolPtr(true)}, actor)
	require.NoError(t, err)

	_, err = fx.svc.UpdateOrder(context.Background(), ord.ID, Patch{Quantity: moneyPtr("1")}, actor)

	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
}

func TestUpdateQuantityAboveStockRejected(t *testing.T) {
	fx := newOrderFixture()
	actor := id.New()

	ord, err := fx.svc.CreateOrder(context.Background(), CreateInput{
		OfferedProductID: fx.batch.ID,
		Quantity:         types.MustMoney("2"),
		Discount:         types.Zero(),
	}, actor)
	require.NoError(t, err)

	_, err = fx.svc.UpdateOrder(context.Background(), ord.ID, Patch{Quantity: moneyPtr("9")}, actor)

	require.Error(t, err)
	assert.True(t, apperror.IsInsufficientStock(err))
}

func TestDiscountChangeRecomputesTotal(t *testing.T) {
	fx := newOrderFixture()
	actor := id.New()

	ord, err := fx.svc.CreateOrder(context.Background(), CreateInput{
		OfferedProductID: fx.batch.ID,
		Quantity:         types.MustMoney("2"),
		Discount:         types.MustMoney("5"),
	}, actor)
	require.NoError(t, err)
	require.Equal(t, 1, fx.prices.calls)
	assert.True(t, ord.Total.Equal(types.MustMoney("15")))

	// patching with the same discount does not hit the price catalog
	updated, err := fx.svc.UpdateOrder(context.Background(), ord.ID, Patch{Discount: moneyPtr("5")}, actor)
	require.NoError(t, err)
	assert.Equal(t, 1, fx.prices.calls)
	assert.True(t, updated.Total.Equal(types.MustMoney("15")))

	updated, err = fx.svc.UpdateOrder(context.Background(), ord.ID, Patch{Discount: moneyPtr("8")}, actor)
	require.NoError(t, err)
	assert.Equal(t, 2, fx.prices.calls)
	assert.True(t, updated.Total.Equal(types.MustMoney("12")))
}

func TestUpdateUnknownOrder(t *testing.T) {
	fx := newOrderFixture()

	_, err := fx.svc.UpdateOrder(context.Background(), id.New(), Patch{Discount: moneyPtr("1")}, id.New())

	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}
