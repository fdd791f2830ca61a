package commands

import (
	"context"

	"ordermanagement/internal/core/domain/model/catalog"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"
)

// SaveProductCommandHandler creates or updates catalog entries.
type SaveProductCommandHandler struct {
	products ProductWriter
}

func NewSaveProductCommandHandler(products ProductWriter) SaveProductCommandHandler {
	return SaveProductCommandHandler{products: products}
}

func (h SaveProductCommandHandler) Handle(ctx context.Context, cmd SaveProductCommand) (catalog.Product, error) {
	if err := cmd.Validate(); err != nil {
		return catalog.Product{}, err
	}

	var (
		saved catalog.Product
		err   error
	)
	if cmd.IsNew() {
		saved, err = h.products.CreateProduct(ctx, cmd.Request())
	} else {
		saved, err = h.products.UpdateProduct(ctx, cmd.ProductID(), cmd.Request())
	}
	if err != nil {
		return catalog.Product{}, errs.NewSubmissionFailedError("product "+cmd.Request().Name, err)
	}

	return saved, nil
}

// DeleteProductCommandHandler removes a catalog entry. Existing orders keep
// their snapshot of it.
type DeleteProductCommandHandler struct {
	products ProductWriter
}

func NewDeleteProductCommandHandler(products ProductWriter) DeleteProductCommandHandler {
	return DeleteProductCommandHandler{products: products}
}

func (h DeleteProductCommandHandler) Handle(ctx context.Context, productID kernel.ID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	if err := h.products.DeleteProduct(ctx, productID); err != nil {
		return errs.NewDeleteFailedError("product "+productID.String(), err)
	}
	return nil
}
