package order_test

import (
	"testing"
	"time"

	"ordermanagement/internal/core/domain/model/catalog"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func widget(t *testing.T) catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(1, "Widget", kernel.MustMoney("9.99"))
	require.NoError(t, err)
	return p
}

func gadget(t *testing.T) catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(2, "Gadget", kernel.MustMoney("10.00"))
	require.NoError(t, err)
	return p
}

func gizmo(t *testing.T) catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(3, "Gizmo", kernel.MustMoney("0.10"))
	require.NoError(t, err)
	return p
}

func lineItem(t *testing.T, p catalog.Product, quantity int) order.LineItem {
	t.Helper()
	li, err := order.NewLineItem(p, quantity)
	require.NoError(t, err)
	return li
}

func newDraft(t *testing.T) *order.Draft {
	t.Helper()
	now := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
	d, err := order.NewDraft(order.GenerateNumber(now), order.DateFromTime(now))
	require.NoError(t, err)
	return d
}
