package commands

import (
	"context"

	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/pkg/errs"
)

// CreateOrderCommandHandler submits a new order to the backend.
//
// The draft is checked locally first, so an empty draft never reaches the
// network. Any backend failure is returned as errs.ErrSubmissionFailed wrapping
// the original error; the draft is left untouched so the user can retry.
type CreateOrderCommandHandler struct {
	orders OrderSubmitter
}

func NewCreateOrderCommandHandler(orders OrderSubmitter) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{orders: orders}
}

// Handle sends the draft and returns the order as stored by the backend.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	draft := cmd.Draft()
	if err := draft.ValidateForSubmission(); err != nil {
		return nil, err
	}

	created, err := h.orders.CreateOrder(ctx, ToOrderRequest(draft))
	if err != nil {
		return nil, errs.NewSubmissionFailedError(orderResource(draft), err)
	}

	return created, nil
}
