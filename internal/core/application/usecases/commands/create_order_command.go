package commands

import (
	"errors"

	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/pkg/errs"
	"ordermanagement/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrDraftIsNotNew = errors.New("draft belongs to an existing order")
)

// CreateOrderCommand submits a new order built in a draft.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(draft)
//	if err != nil {
//	    return err
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	draft *order.Draft

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand wraps a draft that has no order identity yet.
func NewCreateOrderCommand(draft *order.Draft) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{guard: guard.NewConstructorGuard()}

	if err := cmd.setDraft(draft); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Draft() *order.Draft {
	return c.draft
}

func (c *CreateOrderCommand) setDraft(draft *order.Draft) error {
	if err := draft.Validate(); err != nil {
		return err
	}
	if !draft.IsNew() {
		return errs.NewValueIsInvalidErrorWithCause("draft", ErrDraftIsNotNew)
	}
	c.draft = draft
	return nil
}
