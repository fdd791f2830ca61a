package ports

import "context"

// ConfirmationKind names the destructive action awaiting the user's decision.
type ConfirmationKind string

const (
	ConfirmDeleteOrder    ConfirmationKind = "delete_order"
	ConfirmChangeStatus   ConfirmationKind = "change_status"
	ConfirmRemoveLineItem ConfirmationKind = "remove_line_item"
)

// Confirmation describes what is about to happen, for display to the user.
type Confirmation struct {
	Kind    ConfirmationKind
	Message string
}

// Confirmer asks the user to approve a destructive action. The action runs only
// when Confirm returns true; false means the user declined and nothing changes.
type Confirmer interface {
	Confirm(ctx context.Context, c Confirmation) (bool, error)
}

// ConfirmerFunc adapts a function to Confirmer.
type ConfirmerFunc func(ctx context.Context, c Confirmation) (bool, error)

func (f ConfirmerFunc) Confirm(ctx context.Context, c Confirmation) (bool, error) {
	return f(ctx, c)
}

// AlwaysConfirm approves everything.
var AlwaysConfirm Confirmer = ConfirmerFunc(func(context.Context, Confirmation) (bool, error) {
	return true, nil
})

// NeverConfirm declines everything.
var NeverConfirm Confirmer = ConfirmerFunc(func(context.Context, Confirmation) (bool, error) {
	return false, nil
})
