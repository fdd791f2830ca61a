package commands

import (
	"errors"
	"strings"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/guard"
)

var (
	ErrDeleteOrderCommandIsNotConstructed = errors.New(
		"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
	)
)

// DeleteOrderCommand removes a persisted order. The order number is only used
// in the confirmation prompt and may be empty.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.ID
	orderNumber string

	guard guard.ConstructorGuard
}

func NewDeleteOrderCommand(orderID kernel.ID, orderNumber string) (DeleteOrderCommand, error) {
	cmd := DeleteOrderCommand{
		orderNumber: strings.TrimSpace(orderNumber),
		guard:       guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return DeleteOrderCommand{}, err
	}
	cmd.orderID = orderID

	return cmd, nil
}

func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

func (c DeleteOrderCommand) OrderID() kernel.ID {
	return c.orderID
}

// Label is the order number when known, the id otherwise.
func (c DeleteOrderCommand) Label() string {
	if c.orderNumber != "" {
		return c.orderNumber
	}
	return c.orderID.String()
}
