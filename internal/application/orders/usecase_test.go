package orders_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saiidhanna21/garage/internal/application/orders"
	"github.com/saiidhanna21/garage/internal/domain"
	"github.com/saiidhanna21/garage/internal/domain/entity"
	"github.com/saiidhanna21/garage/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// In-memory store with snapshot/rollback, standing in for PostgreSQL
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	items  map[string]*entity.GarageItem
	orders map[string]*entity.Order

	failOrderInsert error // injected fault for atomicity tests
	failAdjust      error
}

func newMemStore() *memStore {
	return &memStore{
		items:  make(map[string]*entity.GarageItem),
		orders: make(map[string]*entity.Order),
	}
}

func (s *memStore) snapshot() *memStore {
	cp := newMemStore()
	for k, v := range s.items {
		item := *v
		cp.items[k] = &item
	}
	for k, v := range s.orders {
		order := *v
		cp.orders[k] = &order
	}
	return cp
}

func (s *memStore) restore(from *memStore) {
	s.items = from.items
	s.orders = from.orders
}

type memOrderRepo struct{ s *memStore }

func (r *memOrderRepo) Create(_ context.Context, order *entity.Order) error {
	if r.s.failOrderInsert != nil {
		return r.s.failOrderInsert
	}
	cp := *order
	r.s.orders[order.ID] = &cp
	return nil
}

func (r *memOrderRepo) GetByID(_ context.Context, id string) (*entity.Order, error) {
	o, ok := r.s.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *memOrderRepo) List(_ context.Context, limit, offset int) ([]*entity.Order, error) {
	var list []*entity.Order
	for _, o := range r.s.orders {
		cp := *o
		list = append(list, &cp)
	}
	return list, nil
}

func (r *memOrderRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.s.orders[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.orders, id)
	return nil
}

type memItemRepo struct{ s *memStore }

func (r *memItemRepo) Create(_ context.Context, item *entity.GarageItem) error {
	cp := *item
	r.s.items[item.ID] = &cp
	return nil
}

func (r *memItemRepo) GetByID(_ context.Context, id string) (*entity.GarageItem, error) {
	i, ok := r.s.items[id]
	if !ok {
		return nil, nil
	}
	cp := *i
	return &cp, nil
}

func (r *memItemRepo) GetForUpdate(ctx context.Context, id string) (*entity.GarageItem, error) {
	return r.GetByID(ctx, id)
}

func (r *memItemRepo) List(_ context.Context, limit, offset int) ([]*entity.GarageItem, error) {
	var list []*entity.GarageItem
	for _, i := range r.s.items {
		cp := *i
		list = append(list, &cp)
	}
	return list, nil
}

func (r *memItemRepo) AdjustQuantity(_ context.Context, id string, delta int64) error {
	if r.s.failAdjust != nil {
		return r.s.failAdjust
	}
	i, ok := r.s.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	i.QuantityOnHand += delta
	return nil
}

func (r *memItemRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.s.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.items, id)
	return nil
}

// memTxRunner snapshots the store before fn and restores it when fn
// fails, mirroring commit/rollback.
type memTxRunner struct{ s *memStore }

func (r *memTxRunner) Run(ctx context.Context, fn func(
	orderRepo repository.OrderRepository,
	itemRepo repository.GarageItemRepository,
) error) error {
	before := r.s.snapshot()
	if err := fn(&memOrderRepo{r.s}, &memItemRepo{r.s}); err != nil {
		r.s.restore(before)
		return err
	}
	return nil
}

func newTestUseCase(t *testing.T, initialQty int64) (*orders.UseCase, *memStore) {
	t.Helper()
	s := newMemStore()
	s.items["item-1"] = &entity.GarageItem{
		ID:             "item-1",
		ProductID:      "prod-1",
		Description:    "box of mixed tools",
		QuantityOnHand: initialQty,
		CategoryID:     "cat-1",
	}
	uc := orders.NewUseCase(&memTxRunner{s}, &memOrderRepo{s}, &memItemRepo{s})
	return uc, s
}

// ──────────────────────────────────────────────────────────────────────────────
// PlaceOrder
// ──────────────────────────────────────────────────────────────────────────────

func TestPlaceOrder_SellDecrementsStock(t *testing.T) {
	uc, s := newTestUseCase(t, 5)

	result, err := uc.PlaceOrder(context.Background(), orders.PlaceOrderInput{
		CustomerID:   "cust-1",
		GarageItemID: "item-1",
		Type:         entity.OrderTypeSell,
		Quantity:     3,
	})
	require.NoError(t, err)
	require.NotNil(t, result.Order)
	require.NotNil(t, result.Item)

	assert.Equal(t, int64(2), result.Item.QuantityOnHand)
	assert.Equal(t, int64(2), s.items["item-1"].QuantityOnHand)
	require.NotNil(t, result.Order.CustomerID)
	assert.Equal(t, "cust-1", *result.Order.CustomerID)
	assert.Len(t, s.orders, 1)
}

func TestPlaceOrder_BuyIncrementsStockAndDropsCustomer(t *testing.T) {
	uc, s := newTestUseCase(t, 5)

	result, err := uc.PlaceOrder(context.Background(), orders.PlaceOrderInput{
		CustomerID:   "abc", // must be ignored: buy orders have no customer
		GarageItemID: "item-1",
		Type:         entity.OrderTypeBuy,
		Quantity:     10,
	})
	require.NoError(t, err)

	assert.Nil(t, result.Order.CustomerID)
	assert.Equal(t, int64(15), result.Item.QuantityOnHand)
	assert.Nil(t, s.orders[result.Order.ID].CustomerID)
}

func TestPlaceOrder_SellExceedingStock_RejectedWithoutMutation(t *testing.T) {
	uc, s := newTestUseCase(t, 5)

	_, err := uc.PlaceOrder(context.Background(), orders.PlaceOrderInput{
		CustomerID:   "cust-1",
		GarageItemID: "item-1",
		Type:         entity.OrderTypeSell,
		Quantity:     6,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, int64(5), s.items["item-1"].QuantityOnHand)
	assert.Empty(t, s.orders)
}

func TestPlaceOrder_SellEqualToStock_Succeeds(t *testing.T) {
	uc, s := newTestUseCase(t, 5)

	_, err := uc.PlaceOrder(context.Background(), orders.PlaceOrderInput{
		CustomerID:   "cust-1",
		GarageItemID: "item-1",
		Type:         entity.OrderTypeSell,
		Quantity:     5,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), s.items["item-1"].QuantityOnHand)
}

func TestPlaceOrder_InvalidOrderType(t *testing.T) {
	uc, s := newTestUseCase(t, 5)

	for _, typ := range []string{"", "trade", "BUY", "Sell"} {
		_, err := uc.PlaceOrder(context.Background(), orders.PlaceOrderInput{
			GarageItemID: "item-1",
			Type:         typ,
			Quantity:     1,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidOrderType, "type %q must be rejected", typ)
	}
	assert.Empty(t, s.orders, "no invalid order may be persisted")
	assert.Equal(t, int64(5), s.items["item-1"].QuantityOnHand)
}

func TestPlaceOrder_NonPositiveQuantity(t *testing.T) {
	uc, _ := newTestUseCase(t, 5)

	for _, qty := range []int64{0, -3} {
		_, err := uc.PlaceOrder(context.Background(), orders.PlaceOrderInput{
			CustomerID:   "cust-1",
			GarageItemID: "item-1",
			Type:         entity.OrderTypeSell,
			Quantity:     qty,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestPlaceOrder_UnknownItem(t *testing.T) {
	uc, _ := newTestUseCase(t, 5)

	_, err := uc.PlaceOrder(context.Background(), orders.PlaceOrderInput{
		CustomerID:   "cust-1",
		GarageItemID: "missing",
		Type:         entity.OrderTypeSell,
		Quantity:     1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPlaceOrder_StoreFailureLeavesNoPartialEffects(t *testing.T) {
	uc, s := newTestUseCase(t, 5)
	s.failAdjust = errors.New("connection reset")

	_, err := uc.PlaceOrder(context.Background(), orders.PlaceOrderInput{
		CustomerID:   "cust-1",
		GarageItemID: "item-1",
		Type:         entity.OrderTypeSell,
		Quantity:     2,
	})
	require.Error(t, err)

	// The order insert succeeded inside the tx; the rollback must erase it.
	assert.Empty(t, s.orders)
	assert.Equal(t, int64(5), s.items["item-1"].QuantityOnHand)
}

func TestPlaceOrder_DefaultsOrderDate(t *testing.T) {
	uc, _ := newTestUseCase(t, 5)

	result, err := uc.PlaceOrder(context.Background(), orders.PlaceOrderInput{
		GarageItemID: "item-1",
		Type:         entity.OrderTypeBuy,
		Quantity:     1,
	})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), result.Order.OrderDate, time.Minute)
}

// ──────────────────────────────────────────────────────────────────────────────
// DeleteOrder
// ──────────────────────────────────────────────────────────────────────────────

func TestDeleteOrder_ReversesSell(t *testing.T) {
	uc, s := newTestUseCase(t, 5)

	result, err := uc.PlaceOrder(context.Background(), orders.PlaceOrderInput{
		CustomerID:   "cust-1",
		GarageItemID: "item-1",
		Type:         entity.OrderTypeSell,
		Quantity:     3,
	})
	require.NoError(t, err)
	require.Equal(t, int64(2), s.items["item-1"].QuantityOnHand)

	deleted, err := uc.DeleteOrder(context.Background(), result.Order.ID)
	require.NoError(t, err)

	assert.Equal(t, result.Order.ID, deleted.ID)
	assert.Equal(t, int64(5), s.items["item-1"].QuantityOnHand)
	assert.Empty(t, s.orders)
}

func TestDeleteOrder_ReversesBuy_EvenIntoNegativeStock(t *testing.T) {
	uc, s := newTestUseCase(t, 0)

	bought, err := uc.PlaceOrder(context.Background(), orders.PlaceOrderInput{
		GarageItemID: "item-1",
		Type:         entity.OrderTypeBuy,
		Quantity:     10,
	})
	require.NoError(t, err)

	// Sell part of the bought stock, then delete the buy order: the
	// reversal subtracts the full buy quantity without a sufficiency
	// check and drives the count negative.
	_, err = uc.PlaceOrder(context.Background(), orders.PlaceOrderInput{
		CustomerID:   "cust-1",
		GarageItemID: "item-1",
		Type:         entity.OrderTypeSell,
		Quantity:     4,
	})
	require.NoError(t, err)
	require.Equal(t, int64(6), s.items["item-1"].QuantityOnHand)

	_, err = uc.DeleteOrder(context.Background(), bought.Order.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(-4), s.items["item-1"].QuantityOnHand)
}

func TestDeleteOrder_UnknownID(t *testing.T) {
	uc, _ := newTestUseCase(t, 5)

	_, err := uc.DeleteOrder(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Stock accounting across sequences
// ──────────────────────────────────────────────────────────────────────────────

// Example sequence from the order reconciliation contract:
// start at 5, sell 3 (ok, 2 left), sell 3 again (rejected, still 2),
// delete the first sale (back to 5).
func TestReconciliation_ExampleSequence(t *testing.T) {
	uc, s := newTestUseCase(t, 5)
	ctx := context.Background()

	first, err := uc.PlaceOrder(ctx, orders.PlaceOrderInput{
		CustomerID: "cust-1", GarageItemID: "item-1", Type: entity.OrderTypeSell, Quantity: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), s.items["item-1"].QuantityOnHand)

	_, err = uc.PlaceOrder(ctx, orders.PlaceOrderInput{
		CustomerID: "cust-1", GarageItemID: "item-1", Type: entity.OrderTypeSell, Quantity: 3,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(2), s.items["item-1"].QuantityOnHand)

	_, err = uc.DeleteOrder(ctx, first.Order.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(5), s.items["item-1"].QuantityOnHand)
}

// Quantity on hand must always equal the initial stock plus the summed
// deltas of the orders still live.
func TestReconciliation_StockMatchesLiveOrders(t *testing.T) {
	const initial = int64(20)
	uc, s := newTestUseCase(t, initial)
	ctx := context.Background()

	steps := []struct {
		typ string
		qty int64
	}{
		{entity.OrderTypeSell, 5},
		{entity.OrderTypeBuy, 12},
		{entity.OrderTypeSell, 18},
		{entity.OrderTypeBuy, 1},
		{entity.OrderTypeSell, 4},
	}
	var placed []string
	for _, st := range steps {
		result, err := uc.PlaceOrder(ctx, orders.PlaceOrderInput{
			CustomerID: "cust-1", GarageItemID: "item-1", Type: st.typ, Quantity: st.qty,
		})
		require.NoError(t, err)
		placed = append(placed, result.Order.ID)
	}

	// Delete a couple of orders in the middle.
	_, err := uc.DeleteOrder(ctx, placed[1])
	require.NoError(t, err)
	_, err = uc.DeleteOrder(ctx, placed[4])
	require.NoError(t, err)

	var sum int64
	for _, o := range s.orders {
		sum += o.QuantityDelta()
	}
	assert.Equal(t, initial+sum, s.items["item-1"].QuantityOnHand)
}
