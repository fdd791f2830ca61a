package commands

import (
	"context"

	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/pkg/errs"
)

// UpdateOrderCommandHandler submits an edited order. It follows the same
// contract as CreateOrderCommandHandler; an unknown order id surfaces as
// errs.ErrSubmissionFailed wrapping errs.ErrObjectNotFound.
type UpdateOrderCommandHandler struct {
	orders OrderSubmitter
}

func NewUpdateOrderCommandHandler(orders OrderSubmitter) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{orders: orders}
}

func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	draft := cmd.Draft()
	if err := draft.ValidateForSubmission(); err != nil {
		return nil, err
	}

	updated, err := h.orders.UpdateOrder(ctx, cmd.OrderID(), ToOrderRequest(draft))
	if err != nil {
		return nil, errs.NewSubmissionFailedError(orderResource(draft), err)
	}

	return updated, nil
}
