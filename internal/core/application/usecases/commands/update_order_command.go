package commands

import (
	"errors"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/pkg/errs"
	"ordermanagement/internal/pkg/guard"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
	ErrDraftIsNew = errors.New("draft has no order to update")
)

// UpdateOrderCommand replaces the line items of an existing order with those of
// an edit draft. The order id is taken from the draft.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	draft *order.Draft

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand wraps a draft opened over an existing order.
func NewUpdateOrderCommand(draft *order.Draft) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{guard: guard.NewConstructorGuard()}

	if err := cmd.setDraft(draft); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

func (c UpdateOrderCommand) OrderID() kernel.ID {
	return c.draft.OrderID()
}

func (c UpdateOrderCommand) Draft() *order.Draft {
	return c.draft
}

func (c *UpdateOrderCommand) setDraft(draft *order.Draft) error {
	if err := draft.Validate(); err != nil {
		return err
	}
	if draft.IsNew() {
		return errs.NewValueIsInvalidErrorWithCause("draft", ErrDraftIsNew)
	}
	c.draft = draft
	return nil
}
