package editing_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"ordermanagement/internal/core/application/usecases/commands"
	"ordermanagement/internal/core/application/usecases/queries"
	"ordermanagement/internal/core/domain/model/catalog"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCatalogLoader struct{ mock.Mock }

func (m *MockCatalogLoader) Handle(ctx context.Context, query queries.GetProductsQuery) (*catalog.Catalog, error) {
	args := m.Called(ctx, query)
	c, _ := args.Get(0).(*catalog.Catalog)
	return c, args.Error(1)
}

type MockOrderLoader struct{ mock.Mock }

func (m *MockOrderLoader) Handle(ctx context.Context, query queries.GetOrderQuery) (*order.Order, error) {
	args := m.Called(ctx, query)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockOrderCreator struct{ mock.Mock }

func (m *MockOrderCreator) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockOrderUpdater struct{ mock.Mock }

func (m *MockOrderUpdater) Handle(ctx context.Context, cmd commands.UpdateOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

// fakeClock is a settable clock.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.UnixMilli(1700000123456).UTC()}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	widget, err := catalog.NewProduct(1, "Widget", kernel.MustMoney("9.99"))
	require.NoError(t, err)
	gadget, err := catalog.NewProduct(2, "Gadget", kernel.MustMoney("10.00"))
	require.NoError(t, err)
	c, err := catalog.NewCatalog([]catalog.Product{widget, gadget})
	require.NoError(t, err)
	return c
}

func persistedOrder(t *testing.T, id kernel.ID) *order.Order {
	t.Helper()
	number, err := order.NumberFromString("ORD000777")
	require.NoError(t, err)
	date, err := order.ParseDate("2023-12-31T08:00:00Z")
	require.NoError(t, err)
	li, err := order.RestoreLineItem(1, "Widget", kernel.MustMoney("9.99"), 2)
	require.NoError(t, err)
	o, err := order.RestoreOrder(id, number, date, order.InProgress, 2, kernel.MustMoney("19.98"), []order.LineItem{li})
	require.NoError(t, err)
	return o
}
