package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saiidhanna21/garage/internal/application/catalog"
	"github.com/saiidhanna21/garage/internal/application/dto"
	"github.com/saiidhanna21/garage/internal/application/orders"
	"github.com/saiidhanna21/garage/internal/domain"
	"github.com/saiidhanna21/garage/internal/domain/entity"
	apphttp "github.com/saiidhanna21/garage/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixed-content store backing the composite view routes
// ──────────────────────────────────────────────────────────────────────────────

type viewStore struct {
	orders     []*entity.Order
	items      []*entity.GarageItem
	customers  []*entity.Customer
	products   []*entity.Product
	categories []*entity.Category
}

// seededViewStore builds a store where every order references a real
// customer and item, with enough rows that a small page cannot cover
// the catalogs.
func seededViewStore() *viewStore {
	s := &viewStore{}
	for i := 0; i < 4; i++ {
		s.customers = append(s.customers, &entity.Customer{
			ID:    fmt.Sprintf("cust-%d", i),
			Name:  fmt.Sprintf("Customer %d", i),
			Email: fmt.Sprintf("c%d@example.com", i),
		})
	}
	s.categories = append(s.categories, &entity.Category{ID: "cat-0", Name: "Tools"})
	for i := 0; i < 2; i++ {
		s.products = append(s.products, &entity.Product{
			ID:   fmt.Sprintf("prod-%d", i),
			Name: fmt.Sprintf("Product %d", i),
			UPC:  fmt.Sprintf("00000000000%d", i),
		})
	}
	for i := 0; i < 5; i++ {
		s.items = append(s.items, &entity.GarageItem{
			ID:             fmt.Sprintf("item-%d", i),
			ProductID:      s.products[i%2].ID,
			QuantityOnHand: 10,
			CategoryID:     "cat-0",
		})
	}
	for i := 0; i < 3; i++ {
		customerID := s.customers[3-i].ID
		s.orders = append(s.orders, &entity.Order{
			ID:           fmt.Sprintf("order-%d", i),
			CustomerID:   &customerID,
			GarageItemID: s.items[4-i].ID,
			OrderDate:    time.Date(2026, time.January, i+1, 0, 0, 0, 0, time.UTC),
			Type:         entity.OrderTypeSell,
			Quantity:     1,
		})
	}
	return s
}

func pageSlice[T any](list []T, limit, offset int) []T {
	if offset >= len(list) {
		return nil
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}

type viewOrderRepo struct{ s *viewStore }

func (r *viewOrderRepo) Create(_ context.Context, o *entity.Order) error {
	r.s.orders = append(r.s.orders, o)
	return nil
}

func (r *viewOrderRepo) GetByID(_ context.Context, id string) (*entity.Order, error) {
	for _, o := range r.s.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, nil
}

func (r *viewOrderRepo) List(_ context.Context, limit, offset int) ([]*entity.Order, error) {
	return pageSlice(r.s.orders, limit, offset), nil
}

func (r *viewOrderRepo) Delete(_ context.Context, id string) error { return domain.ErrNotFound }

type viewItemRepo struct{ s *viewStore }

func (r *viewItemRepo) Create(_ context.Context, i *entity.GarageItem) error {
	r.s.items = append(r.s.items, i)
	return nil
}

func (r *viewItemRepo) GetByID(_ context.Context, id string) (*entity.GarageItem, error) {
	for _, i := range r.s.items {
		if i.ID == id {
			return i, nil
		}
	}
	return nil, nil
}

func (r *viewItemRepo) GetForUpdate(ctx context.Context, id string) (*entity.GarageItem, error) {
	return r.GetByID(ctx, id)
}

func (r *viewItemRepo) List(_ context.Context, limit, offset int) ([]*entity.GarageItem, error) {
	return pageSlice(r.s.items, limit, offset), nil
}

func (r *viewItemRepo) AdjustQuantity(_ context.Context, id string, delta int64) error { return nil }

func (r *viewItemRepo) Delete(_ context.Context, id string) error { return domain.ErrNotFound }

type viewCustomerRepo struct{ s *viewStore }

func (r *viewCustomerRepo) Create(_ context.Context, c *entity.Customer) error {
	r.s.customers = append(r.s.customers, c)
	return nil
}

func (r *viewCustomerRepo) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	return nil, nil
}

func (r *viewCustomerRepo) GetByEmail(_ context.Context, email string) (*entity.Customer, error) {
	return nil, nil
}

func (r *viewCustomerRepo) ListWithOrderCount(_ context.Context, limit, offset int) ([]*entity.CustomerWithOrders, error) {
	var out []*entity.CustomerWithOrders
	for _, c := range pageSlice(r.s.customers, limit, offset) {
		out = append(out, &entity.CustomerWithOrders{Customer: *c})
	}
	return out, nil
}

func (r *viewCustomerRepo) Delete(_ context.Context, id string) error { return domain.ErrNotFound }

type viewProductRepo struct{ s *viewStore }

func (r *viewProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.s.products = append(r.s.products, p)
	return nil
}

func (r *viewProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return nil, nil
}

func (r *viewProductRepo) List(_ context.Context, limit, offset int) ([]*entity.Product, error) {
	return pageSlice(r.s.products, limit, offset), nil
}

func (r *viewProductRepo) Delete(_ context.Context, id string) error { return domain.ErrNotFound }

type viewCategoryRepo struct{ s *viewStore }

func (r *viewCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	r.s.categories = append(r.s.categories, c)
	return nil
}

func (r *viewCategoryRepo) GetByName(_ context.Context, name string) (*entity.Category, error) {
	return nil, nil
}

func (r *viewCategoryRepo) List(_ context.Context) ([]*entity.Category, error) {
	return r.s.categories, nil
}

func (r *viewCategoryRepo) Delete(_ context.Context, id string) error { return domain.ErrNotFound }

func buildViewApp(s *viewStore) *fiber.App {
	orderUC := orders.NewUseCase(nil, &viewOrderRepo{s}, &viewItemRepo{s})
	customerUC := catalog.NewCustomerUseCase(&viewCustomerRepo{s})
	itemUC := catalog.NewGarageItemUseCase(&viewItemRepo{s}, &viewCategoryRepo{s}, &viewProductRepo{s})

	app := fiber.New()
	app.Get("/orders", apphttp.NewOrderHandler(orderUC, customerUC, itemUC).List)
	app.Get("/garage-items", apphttp.NewGarageItemHandler(itemUC).List)
	return app
}

func getJSON(t *testing.T, app *fiber.App, path string, out any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}

// ──────────────────────────────────────────────────────────────────────────────
// Composite views
// ──────────────────────────────────────────────────────────────────────────────

// The orders page must not slice the supporting catalogs: an order on
// any page still has to resolve its customer and item from the payload.
func TestOrdersView_CatalogsAreCompleteOnEveryPage(t *testing.T) {
	s := seededViewStore()
	app := buildViewApp(s)

	var out dto.OrderListResponse
	getJSON(t, app, "/orders?limit=1&offset=2", &out)

	require.Len(t, out.Orders, 1)
	assert.Len(t, out.Customers, 4)
	assert.Len(t, out.GarageItems, 5)
	assert.Len(t, out.Products, 2)

	customers := make(map[string]bool)
	for _, c := range out.Customers {
		customers[c.ID] = true
	}
	items := make(map[string]bool)
	for _, i := range out.GarageItems {
		items[i.ID] = true
	}
	for _, o := range out.Orders {
		require.NotNil(t, o.CustomerID)
		assert.True(t, customers[*o.CustomerID], "order %s: customer %s missing from payload", o.ID, *o.CustomerID)
		assert.True(t, items[o.GarageItemID], "order %s: item %s missing from payload", o.ID, o.GarageItemID)
	}
}

func TestGarageItemsView_PagesItemsButNotCatalogs(t *testing.T) {
	s := seededViewStore()
	app := buildViewApp(s)

	var out dto.GarageItemListResponse
	getJSON(t, app, "/garage-items?limit=2&offset=4", &out)

	assert.Len(t, out.Items, 1)
	assert.Len(t, out.Products, 2)
	assert.Len(t, out.Categories, 1)
}
