package queries_test

import (
	"context"
	"testing"
	"time"

	"ordermanagement/internal/core/domain/model/catalog"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderGateway struct{ mock.Mock }

func (m *MockOrderGateway) ListOrders(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderGateway) GetOrder(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockProductGateway struct{ mock.Mock }

func (m *MockProductGateway) ListProducts(ctx context.Context) ([]catalog.Product, error) {
	args := m.Called(ctx)
	products, _ := args.Get(0).([]catalog.Product)
	return products, args.Error(1)
}

func (m *MockProductGateway) GetProduct(ctx context.Context, id kernel.ID) (catalog.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(catalog.Product)
	return p, args.Error(1)
}

func product(t *testing.T, id kernel.ID, name, price string) catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(id, name, kernel.MustMoney(price))
	require.NoError(t, err)
	return p
}

func listedOrder(t *testing.T, id kernel.ID, number string, status order.Status, price string) *order.Order {
	t.Helper()
	n, err := order.NumberFromString(number)
	require.NoError(t, err)
	date := order.DateFromTime(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC))
	o, err := order.RestoreOrder(id, n, date, status, 4, kernel.MustMoney(price), nil)
	require.NoError(t, err)
	return o
}
