package commands

import (
	"context"
	"fmt"

	"ordermanagement/internal/core/ports"
	"ordermanagement/internal/pkg/errs"
)

// ChangeOrderStatusCommandHandler asks for confirmation and then sends the new
// status to the backend.
type ChangeOrderStatusCommandHandler struct {
	orders OrderStatusChanger
}

func NewChangeOrderStatusCommandHandler(orders OrderStatusChanger) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{orders: orders}
}

// Handle reports whether the change was carried out. A declined confirmation
// returns (false, nil) without contacting the backend. The caller should reload
// the order list after a successful change.
func (h ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
	confirmer ports.Confirmer,
) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	ok, err := confirmer.Confirm(ctx, ports.Confirmation{
		Kind:    ports.ConfirmChangeStatus,
		Message: fmt.Sprintf("Change status of order %s to %s?", cmd.OrderID(), cmd.Status()),
	})
	if err != nil || !ok {
		return false, err
	}

	if err = h.orders.ChangeStatus(ctx, cmd.OrderID(), cmd.Status()); err != nil {
		return false, errs.NewStatusChangeFailedError("order "+cmd.OrderID().String(), err)
	}

	return true, nil
}
