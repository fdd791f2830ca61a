package queries

import (
	"context"

	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/pkg/errs"
)

// OrderLister reads the order list.
type OrderLister interface {
	ListOrders(ctx context.Context) ([]*order.Order, error)
}

type GetOrdersQueryHandler struct {
	orders OrderLister
}

func NewGetOrdersQueryHandler(orders OrderLister) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{orders: orders}
}

// Handle returns the orders in backend order. A failure is reported as
// errs.ErrLoadFailed.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orders.ListOrders(ctx)
	if err != nil {
		return nil, errs.NewLoadFailedError("orders", err)
	}

	response := make([]GetOrdersQueryResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, GetOrdersQueryResponse{
			ID:             o.ID(),
			OrderNumber:    o.Number().String(),
			OrderDate:      o.Date().String(),
			Status:         o.Status(),
			NumberProducts: o.NumberProducts(),
			FinalPrice:     o.FinalPrice(),
		})
	}

	return response, nil
}
