package order

import (
	"errors"
	"fmt"

	"ordermanagement/internal/pkg/errs"
)

// Domain sentinels. They are carried as the cause of the typed errors in errs,
// so callers may match either the specific rule or the generic family.
var (
	ErrMissingProduct   = errors.New("no product selected")
	ErrInvalidQuantity  = errors.New("quantity must be a positive integer")
	ErrProductNotFound  = errors.New("product is not in the catalog")
	ErrDuplicateProduct = errors.New("product is already in the order")
	ErrEmptyOrder       = errors.New("order has no line items")
	ErrIndexOutOfRange  = errors.New("line item index is out of range")
)

// NewMissingProductError reports that no product was selected for a line item.
func NewMissingProductError() error {
	return errs.NewValueIsRequiredErrorWithCause("product", ErrMissingProduct)
}

// NewInvalidQuantityError reports a quantity input that is not a positive integer.
func NewInvalidQuantityError(input any) error {
	return errs.NewValueIsInvalidErrorWithCause(
		"quantity",
		fmt.Errorf("%w: got %q", ErrInvalidQuantity, fmt.Sprint(input)),
	)
}

// NewProductNotFoundError reports a product id that is absent from the catalog.
func NewProductNotFoundError(productID any) error {
	return errs.NewObjectNotFoundErrorWithCause("product", productID, ErrProductNotFound)
}

func newDuplicateProductError(productName string) error {
	return errs.NewValueIsInvalidErrorWithCause(
		"product",
		fmt.Errorf("%w: %s", ErrDuplicateProduct, productName),
	)
}

func newIndexOutOfRangeError(index, length int) error {
	return errs.NewValueIsOutOfRangeErrorWithCause("index", index, 0, length-1, ErrIndexOutOfRange)
}

func newEmptyOrderError() error {
	return errs.NewValueIsRequiredErrorWithCause("lineItems", ErrEmptyOrder)
}
