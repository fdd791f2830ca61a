package commands

import (
	"context"
	"fmt"

	"ordermanagement/internal/core/ports"
	"ordermanagement/internal/pkg/errs"
)

// DeleteOrderCommandHandler asks for confirmation and then deletes the order.
type DeleteOrderCommandHandler struct {
	orders OrderDeleter
}

func NewDeleteOrderCommandHandler(orders OrderDeleter) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{orders: orders}
}

// Handle reports whether the order was deleted. Declining leaves everything as is.
func (h DeleteOrderCommandHandler) Handle(
	ctx context.Context,
	cmd DeleteOrderCommand,
	confirmer ports.Confirmer,
) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	ok, err := confirmer.Confirm(ctx, ports.Confirmation{
		Kind:    ports.ConfirmDeleteOrder,
		Message: fmt.Sprintf("Order %s will be deleted", cmd.Label()),
	})
	if err != nil || !ok {
		return false, err
	}

	if err = h.orders.DeleteOrder(ctx, cmd.OrderID()); err != nil {
		return false, errs.NewDeleteFailedError("order "+cmd.Label(), err)
	}

	return true, nil
}
