package services

import (
	"strconv"
	"strings"

	"ordermanagement/internal/core/domain/model/catalog"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
)

// LineItemBuilder validates a product selection and quantity against a catalog.
//
// Checks run in a fixed order and the first failure is returned:
//  1. a product is selected (non-zero id), otherwise order.ErrMissingProduct
//  2. the quantity parses as an integer ≥ 1, otherwise order.ErrInvalidQuantity
//  3. the product is in the catalog, otherwise order.ErrProductNotFound
//
// Example usage:
//
//	builder := NewLineItemBuilder(cat)
//	li, err := builder.Build(productID, "3")
//	if errors.Is(err, order.ErrInvalidQuantity) {
//	    // ask the user for a positive number
//	}
type LineItemBuilder struct {
	catalog *catalog.Catalog
}

// NewLineItemBuilder binds a builder to the catalog of one editing session.
// The catalog is shared by reference and never modified.
func NewLineItemBuilder(c *catalog.Catalog) LineItemBuilder {
	return LineItemBuilder{catalog: c}
}

// Build produces a new line item for productID with the quantity typed by the user.
func (b LineItemBuilder) Build(productID kernel.ID, quantityInput string) (order.LineItem, error) {
	if productID.IsZero() {
		return order.LineItem{}, order.NewMissingProductError()
	}

	quantity, err := parseQuantity(quantityInput)
	if err != nil {
		return order.LineItem{}, err
	}

	product, ok := b.catalog.Find(productID)
	if !ok {
		return order.LineItem{}, order.NewProductNotFoundError(productID)
	}

	return order.NewLineItem(product, quantity)
}

// Rebuild changes the quantity of an existing line. The product cannot be changed
// and its snapshot is kept, even if the catalog price moved since.
func (b LineItemBuilder) Rebuild(item order.LineItem, quantityInput string) (order.LineItem, error) {
	quantity, err := parseQuantity(quantityInput)
	if err != nil {
		return order.LineItem{}, err
	}
	return item.WithQuantity(quantity)
}

func parseQuantity(input string) (int, error) {
	quantity, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || quantity < 1 {
		return 0, order.NewInvalidQuantityError(input)
	}
	return quantity, nil
}
