// Package ports defines the contracts between the order composition core and
// its collaborators: the remote order/product service, the user's confirmation
// dialog and the clock.
package ports

import (
	"context"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
)

// OrderRequestLine is one product reference of a create or update request.
// Names, prices and totals are never sent; the backend prices the order itself.
type OrderRequestLine struct {
	ProductID kernel.ID
	Quantity  int
}

// OrderRequest is the body of create and update submissions.
type OrderRequest struct {
	OrderNumber string
	Products    []OrderRequestLine
}

// OrderGateway is the remote order service. Implementations must not retry;
// a failed call is reported once and the caller decides what to do.
type OrderGateway interface {
	// ListOrders returns all orders in the list shape: no line items,
	// server-computed numberProducts and finalPrice.
	ListOrders(ctx context.Context) ([]*order.Order, error)

	// GetOrder returns a single order with its line items.
	// An unknown id yields an error matching errs.ErrObjectNotFound.
	GetOrder(ctx context.Context, id kernel.ID) (*order.Order, error)

	// CreateOrder persists a new order and returns it as stored, or nil when
	// the backend answers without a body.
	CreateOrder(ctx context.Context, req OrderRequest) (*order.Order, error)

	// UpdateOrder replaces the line items of an existing order. The returned
	// order is nil when the backend answers without a body.
	UpdateOrder(ctx context.Context, id kernel.ID, req OrderRequest) (*order.Order, error)

	DeleteOrder(ctx context.Context, id kernel.ID) error

	// ChangeStatus sends the status as its integer code.
	ChangeStatus(ctx context.Context, id kernel.ID, status order.Status) error
}
