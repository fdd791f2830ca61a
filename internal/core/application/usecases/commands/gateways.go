// Package commands contains operations that change state on the backend.
// Every command is a validated value object paired with a handler that owns
// its collaborators; handlers translate drafts into backend requests and wrap
// backend failures into transport errors.
package commands

import (
	"context"

	"ordermanagement/internal/core/domain/model/catalog"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/core/ports"
)

// Narrow views of the gateways, one per handler.
type (
	// OrderSubmitter persists drafts.
	OrderSubmitter interface {
		CreateOrder(ctx context.Context, req ports.OrderRequest) (*order.Order, error)
		UpdateOrder(ctx context.Context, id kernel.ID, req ports.OrderRequest) (*order.Order, error)
	}

	// OrderDeleter removes orders by identity.
	OrderDeleter interface {
		DeleteOrder(ctx context.Context, id kernel.ID) error
	}

	// OrderStatusChanger moves orders through the status workflow.
	OrderStatusChanger interface {
		ChangeStatus(ctx context.Context, id kernel.ID, status order.Status) error
	}

	// ProductWriter administers the catalog.
	ProductWriter interface {
		CreateProduct(ctx context.Context, req ports.ProductRequest) (catalog.Product, error)
		UpdateProduct(ctx context.Context, id kernel.ID, req ports.ProductRequest) (catalog.Product, error)
		DeleteProduct(ctx context.Context, id kernel.ID) error
	}
)
