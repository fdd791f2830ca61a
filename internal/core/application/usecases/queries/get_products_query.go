package queries

import (
	"context"
	"errors"

	"ordermanagement/internal/core/domain/model/catalog"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"
	"ordermanagement/internal/pkg/guard"
)

var (
	ErrGetProductsQueryIsNotConstructed = errors.New(
		"GetProductsQuery must be created via NewGetProductsQuery constructor",
	)
)

// GetProductsQuery loads the catalog. Editing sessions run it once at start.
type GetProductsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetProductsQuery() GetProductsQuery {
	return GetProductsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsQueryIsNotConstructed)
}

// ProductReader reads the product service.
type ProductReader interface {
	ListProducts(ctx context.Context) ([]catalog.Product, error)
	GetProduct(ctx context.Context, id kernel.ID) (catalog.Product, error)
}

type GetProductsQueryHandler struct {
	products ProductReader
}

func NewGetProductsQueryHandler(products ProductReader) GetProductsQueryHandler {
	return GetProductsQueryHandler{products: products}
}

// Handle returns the catalog. Failures, including a listing with duplicate
// ids, are reported as errs.ErrLoadFailed.
func (h GetProductsQueryHandler) Handle(ctx context.Context, query GetProductsQuery) (*catalog.Catalog, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	products, err := h.products.ListProducts(ctx)
	if err != nil {
		return nil, errs.NewLoadFailedError("products", err)
	}

	c, err := catalog.NewCatalog(products)
	if err != nil {
		return nil, errs.NewLoadFailedError("products", err)
	}

	return c, nil
}

// GetProductQueryHandler loads a single product by id.
type GetProductQueryHandler struct {
	products ProductReader
}

func NewGetProductQueryHandler(products ProductReader) GetProductQueryHandler {
	return GetProductQueryHandler{products: products}
}

func (h GetProductQueryHandler) Handle(ctx context.Context, productID kernel.ID) (catalog.Product, error) {
	if err := productID.Validate(); err != nil {
		return catalog.Product{}, err
	}

	p, err := h.products.GetProduct(ctx, productID)
	if err != nil {
		return catalog.Product{}, errs.NewLoadFailedError("product "+productID.String(), err)
	}

	return p, nil
}
