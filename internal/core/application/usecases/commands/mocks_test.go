package commands_test

import (
	"context"
	"testing"
	"time"

	"ordermanagement/internal/core/domain/model/catalog"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderGateway struct{ mock.Mock }

func (m *MockOrderGateway) CreateOrder(ctx context.Context, req ports.OrderRequest) (*order.Order, error) {
	args := m.Called(ctx, req)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderGateway) UpdateOrder(ctx context.Context, id kernel.ID, req ports.OrderRequest) (*order.Order, error) {
	args := m.Called(ctx, id, req)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderGateway) DeleteOrder(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderGateway) ChangeStatus(ctx context.Context, id kernel.ID, status order.Status) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

type MockProductGateway struct{ mock.Mock }

func (m *MockProductGateway) CreateProduct(ctx context.Context, req ports.ProductRequest) (catalog.Product, error) {
	args := m.Called(ctx, req)
	p, _ := args.Get(0).(catalog.Product)
	return p, args.Error(1)
}

func (m *MockProductGateway) UpdateProduct(
	ctx context.Context,
	id kernel.ID,
	req ports.ProductRequest,
) (catalog.Product, error) {
	args := m.Called(ctx, id, req)
	p, _ := args.Get(0).(catalog.Product)
	return p, args.Error(1)
}

func (m *MockProductGateway) DeleteProduct(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockConfirmer struct{ mock.Mock }

func (m *MockConfirmer) Confirm(ctx context.Context, c ports.Confirmation) (bool, error) {
	args := m.Called(ctx, c)
	return args.Bool(0), args.Error(1)
}

func product(t *testing.T, id kernel.ID, name, price string) catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(id, name, kernel.MustMoney(price))
	require.NoError(t, err)
	return p
}

func newDraft(t *testing.T) *order.Draft {
	t.Helper()
	now := time.UnixMilli(1700000123456)
	d, err := order.NewDraft(order.GenerateNumber(now), order.DateFromTime(now))
	require.NoError(t, err)
	return d
}

func filledDraft(t *testing.T) *order.Draft {
	t.Helper()
	d := newDraft(t)
	widget, err := order.NewLineItem(product(t, 1, "Widget", "9.99"), 3)
	require.NoError(t, err)
	gadget, err := order.NewLineItem(product(t, 2, "Gadget", "10.00"), 1)
	require.NoError(t, err)
	require.NoError(t, d.AddLineItem(widget))
	require.NoError(t, d.AddLineItem(gadget))
	return d
}

func editDraft(t *testing.T, id kernel.ID) *order.Draft {
	t.Helper()
	number, err := order.NumberFromString("ORD000777")
	require.NoError(t, err)
	li, err := order.NewLineItem(product(t, 1, "Widget", "9.99"), 2)
	require.NoError(t, err)
	d, err := order.RestoreDraft(id, number, order.DateFromTime(time.Now()), []order.LineItem{li})
	require.NoError(t, err)
	return d
}

func storedOrder(t *testing.T, id kernel.ID, number string) *order.Order {
	t.Helper()
	n, err := order.NumberFromString(number)
	require.NoError(t, err)
	o, err := order.RestoreOrder(id, n, order.DateFromTime(time.Now()), order.Pending, 4, kernel.MustMoney("39.97"), nil)
	require.NoError(t, err)
	return o
}
