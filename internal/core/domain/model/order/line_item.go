package order

import (
	"errors"

	"ordermanagement/internal/core/domain/model/catalog"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/guard"
)

var (
	// ErrLineItemIsNotConstructed is returned when a LineItem was not created through
	// NewLineItem or RestoreLineItem.
	ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")
)

// LineItem is one product entry of an order.
//
// The product name and unit price are copied from the catalog when the line is
// built and are not affected by later catalog changes. The total price is not
// stored; it is derived from the snapshot and the quantity on every call.
type LineItem struct {
	productID   kernel.ID
	productName string
	unitPrice   kernel.Money
	quantity    int

	guard guard.ConstructorGuard
}

// NewLineItem snapshots product and pairs it with quantity, which must be at least 1.
func NewLineItem(product catalog.Product, quantity int) (LineItem, error) {
	if err := product.Validate(); err != nil {
		return LineItem{}, err
	}

	li := LineItem{
		productID:   product.ID(),
		productName: product.Name(),
		unitPrice:   product.UnitPrice(),
		guard:       guard.NewConstructorGuard(),
	}
	if err := li.setQuantity(quantity); err != nil {
		return LineItem{}, err
	}

	return li, nil
}

// RestoreLineItem rebuilds a line item from a persisted order, where the snapshot
// was taken by an earlier session.
func RestoreLineItem(productID kernel.ID, productName string, unitPrice kernel.Money, quantity int) (LineItem, error) {
	product, err := catalog.NewProduct(productID, productName, unitPrice)
	if err != nil {
		return LineItem{}, err
	}
	return NewLineItem(product, quantity)
}

// WithQuantity returns a copy of the line with a new quantity. The product and
// its snapshot stay as they were.
func (li LineItem) WithQuantity(quantity int) (LineItem, error) {
	if err := li.Validate(); err != nil {
		return LineItem{}, err
	}
	if err := li.setQuantity(quantity); err != nil {
		return LineItem{}, err
	}
	return li, nil
}

// Validate ensures the line item was created via a constructor.
func (li LineItem) Validate() error {
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

func (li LineItem) ProductID() kernel.ID {
	return li.productID
}

func (li LineItem) ProductName() string {
	return li.productName
}

func (li LineItem) UnitPrice() kernel.Money {
	return li.unitPrice
}

func (li LineItem) Quantity() int {
	return li.quantity
}

// TotalPrice returns unit price × quantity.
func (li LineItem) TotalPrice() kernel.Money {
	return li.unitPrice.Multiply(li.quantity)
}

func (li *LineItem) setQuantity(quantity int) error {
	if quantity < 1 {
		return NewInvalidQuantityError(quantity)
	}
	li.quantity = quantity
	return nil
}
