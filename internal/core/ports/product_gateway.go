package ports

import (
	"context"

	"ordermanagement/internal/core/domain/model/catalog"
	"ordermanagement/internal/core/domain/model/kernel"
)

// ProductRequest is the body of product create and update calls.
type ProductRequest struct {
	Name      string
	UnitPrice kernel.Money
}

// ProductGateway is the remote product service backing the catalog.
type ProductGateway interface {
	ListProducts(ctx context.Context) ([]catalog.Product, error)
	GetProduct(ctx context.Context, id kernel.ID) (catalog.Product, error)
	CreateProduct(ctx context.Context, req ProductRequest) (catalog.Product, error)
	UpdateProduct(ctx context.Context, id kernel.ID, req ProductRequest) (catalog.Product, error)
	DeleteProduct(ctx context.Context, id kernel.ID) error
}
