package queries_test

import (
	"errors"
	"testing"

	"ordermanagement/internal/core/application/usecases/queries"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrdersQueryHandler_Handle(t *testing.T) {
	t.Run("should map orders to list rows", func(t *testing.T) {
		ctx := t.Context()
		gateway := new(MockOrderGateway)
		gateway.On("ListOrders", ctx).Return([]*order.Order{
			listedOrder(t, 1, "ORD000001", order.Pending, "39.97"),
			listedOrder(t, 2, "ORD000002", order.Status(9), "0"),
		}, nil).Once()

		rows, err := queries.NewGetOrdersQueryHandler(gateway).Handle(ctx, queries.NewGetOrdersQuery())

		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, queries.GetOrdersQueryResponse{
			ID:             1,
			OrderNumber:    "ORD000001",
			OrderDate:      "2024-03-05",
			Status:         order.Pending,
			NumberProducts: 4,
			FinalPrice:     kernel.MustMoney("39.97"),
		}, rows[0])
		assert.Equal(t, "Unknown", rows[1].Status.String())
		gateway.AssertExpectations(t)
	})

	t.Run("should return an empty list", func(t *testing.T) {
		gateway := new(MockOrderGateway)
		gateway.On("ListOrders", t.Context()).Return([]*order.Order{}, nil).Once()

		rows, err := queries.NewGetOrdersQueryHandler(gateway).Handle(t.Context(), queries.NewGetOrdersQuery())

		require.NoError(t, err)
		assert.NotNil(t, rows)
		assert.Empty(t, rows)
	})

	t.Run("should report load failures", func(t *testing.T) {
		gateway := new(MockOrderGateway)
		gateway.On("ListOrders", t.Context()).Return(nil, errors.New("dial tcp: refused")).Once()

		_, err := queries.NewGetOrdersQueryHandler(gateway).Handle(t.Context(), queries.NewGetOrdersQuery())

		require.ErrorIs(t, err, errs.ErrLoadFailed)
	})

	t.Run("should reject an unconstructed query", func(t *testing.T) {
		_, err := queries.NewGetOrdersQueryHandler(new(MockOrderGateway)).Handle(t.Context(), queries.GetOrdersQuery{})

		require.ErrorIs(t, err, queries.ErrGetOrdersQueryIsNotConstructed)
	})
}
