package commands_test

import (
	"errors"
	"testing"

	"ordermanagement/internal/core/application/usecases/commands"
	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/core/ports"
	"ordermanagement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("should accept a new draft", func(t *testing.T) {
		d := newDraft(t)

		cmd, err := commands.NewCreateOrderCommand(d)

		require.NoError(t, err)
		assert.Same(t, d, cmd.Draft())
	})

	t.Run("should reject an edit draft", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(editDraft(t, 5))

		require.ErrorIs(t, err, commands.ErrDraftIsNotNew)
	})

	t.Run("should reject a nil draft", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(nil)

		require.ErrorIs(t, err, order.ErrDraftIsNotConstructed)
	})
}

func TestCreateOrderCommandHandler_Handle(t *testing.T) {
	t.Run("should submit the draft and return the stored order", func(t *testing.T) {
		ctx := t.Context()
		d := filledDraft(t)
		cmd, err := commands.NewCreateOrderCommand(d)
		require.NoError(t, err)

		gateway := new(MockOrderGateway)
		stored := storedOrder(t, 11, "ORD123456")
		gateway.On("CreateOrder", ctx, ports.OrderRequest{
			OrderNumber: "ORD123456",
			Products: []ports.OrderRequestLine{
				{ProductID: 1, Quantity: 3},
				{ProductID: 2, Quantity: 1},
			},
		}).Return(stored, nil).Once()

		h := commands.NewCreateOrderCommandHandler(gateway)
		created, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Same(t, stored, created)
		gateway.AssertExpectations(t)
	})

	t.Run("should reject an empty draft without calling the backend", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(newDraft(t))
		require.NoError(t, err)
		gateway := new(MockOrderGateway)

		h := commands.NewCreateOrderCommandHandler(gateway)
		_, err = h.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, order.ErrEmptyOrder)
		gateway.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
	})

	t.Run("should wrap backend failures and keep the draft", func(t *testing.T) {
		d := filledDraft(t)
		cmd, err := commands.NewCreateOrderCommand(d)
		require.NoError(t, err)
		backendErr := errors.New("500 internal server error")

		gateway := new(MockOrderGateway)
		gateway.On("CreateOrder", mock.Anything, mock.Anything).Return(nil, backendErr).Once()

		h := commands.NewCreateOrderCommandHandler(gateway)
		_, err = h.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrSubmissionFailed)
		require.ErrorIs(t, err, backendErr)
		assert.Contains(t, err.Error(), "ORD123456")
		assert.Equal(t, 2, d.Len())
		assert.Equal(t, "39.97", d.FinalPrice().String())
	})

	t.Run("should reject an unconstructed command", func(t *testing.T) {
		h := commands.NewCreateOrderCommandHandler(new(MockOrderGateway))

		_, err := h.Handle(t.Context(), commands.CreateOrderCommand{})

		require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
