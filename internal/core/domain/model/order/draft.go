package order

import (
	"errors"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/guard"
)

var (
	// ErrDraftIsNotConstructed is returned when a Draft was not created through
	// NewDraft or RestoreDraft.
	ErrDraftIsNotConstructed = errors.New("Draft must be created via NewDraft constructor")
)

// Draft is the mutable composition of an order before it is submitted.
//
// A draft is owned by exactly one editing session and is not safe for
// concurrent use. Its invariants:
//   - number and date are fixed at construction
//   - line items keep insertion order, which is the display order
//   - no product appears twice
//   - totals are derived from the line items on every read
//
// An empty draft is valid; emptiness is only rejected by ValidateForSubmission.
type Draft struct {
	orderID   kernel.ID
	number    Number
	date      Date
	lineItems []LineItem

	guard guard.ConstructorGuard
}

// NewDraft starts an empty draft for a new order.
func NewDraft(number Number, date Date) (*Draft, error) {
	d := &Draft{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		d.setNumber(number),
		d.setDate(date),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDraft loads an existing order into a draft for editing. The line items
// must satisfy the same uniqueness rule as AddLineItem.
func RestoreDraft(orderID kernel.ID, number Number, date Date, items []LineItem) (*Draft, error) {
	d := &Draft{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		d.setOrderID(orderID),
		d.setNumber(number),
		d.setDate(date),
	); err != nil {
		return nil, err
	}

	for _, item := range items {
		if err := d.AddLineItem(item); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// Validate ensures the draft was created via a constructor.
func (d *Draft) Validate() error {
	if d == nil {
		return ErrDraftIsNotConstructed
	}
	return d.guard.Validate(ErrDraftIsNotConstructed)
}

// OrderID is the identity of the order being edited, or zero for a new order.
func (d *Draft) OrderID() kernel.ID {
	return d.orderID
}

// IsNew reports whether the draft will be submitted as a create.
func (d *Draft) IsNew() bool {
	return d.orderID.IsZero()
}

func (d *Draft) OrderNumber() Number {
	return d.number
}

func (d *Draft) OrderDate() Date {
	return d.date
}

// LineItems returns a copy of the line items in display order.
func (d *Draft) LineItems() []LineItem {
	out := make([]LineItem, len(d.lineItems))
	copy(out, d.lineItems)
	return out
}

func (d *Draft) Len() int {
	return len(d.lineItems)
}

// LineItem returns the line at index.
func (d *Draft) LineItem(index int) (LineItem, error) {
	if err := d.checkIndex(index); err != nil {
		return LineItem{}, err
	}
	return d.lineItems[index], nil
}

// AddLineItem appends item. If its product is already present the draft is left
// unchanged and an error wrapping ErrDuplicateProduct is returned; the existing
// line should be edited instead.
func (d *Draft) AddLineItem(item LineItem) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if i := d.indexOf(item.ProductID()); i >= 0 {
		return newDuplicateProductError(d.lineItems[i].ProductName())
	}
	d.lineItems = append(d.lineItems, item)
	return nil
}

// ReplaceLineItem overwrites the line at index. The replacement may not carry a
// product that is present at another index.
func (d *Draft) ReplaceLineItem(index int, item LineItem) error {
	if err := d.checkIndex(index); err != nil {
		return err
	}
	if err := item.Validate(); err != nil {
		return err
	}
	if i := d.indexOf(item.ProductID()); i >= 0 && i != index {
		return newDuplicateProductError(d.lineItems[i].ProductName())
	}
	d.lineItems[index] = item
	return nil
}

// RemoveLineItem deletes the line at index; later lines shift down by one.
func (d *Draft) RemoveLineItem(index int) (LineItem, error) {
	if err := d.checkIndex(index); err != nil {
		return LineItem{}, err
	}
	removed := d.lineItems[index]
	d.lineItems = append(d.lineItems[:index], d.lineItems[index+1:]...)
	return removed, nil
}

// TotalQuantity is the sum of line quantities.
func (d *Draft) TotalQuantity() int {
	total := 0
	for _, li := range d.lineItems {
		total += li.Quantity()
	}
	return total
}

// FinalPrice is the sum of line totals.
func (d *Draft) FinalPrice() kernel.Money {
	total := kernel.ZeroMoney()
	for _, li := range d.lineItems {
		total = total.Add(li.TotalPrice())
	}
	return total
}

// ValidateForSubmission checks the precondition of create and update: the draft
// must hold at least one line item.
func (d *Draft) ValidateForSubmission() error {
	if err := d.Validate(); err != nil {
		return err
	}
	if len(d.lineItems) == 0 {
		return newEmptyOrderError()
	}
	return nil
}

func (d *Draft) indexOf(productID kernel.ID) int {
	for i, li := range d.lineItems {
		if li.ProductID() == productID {
			return i
		}
	}
	return -1
}

func (d *Draft) checkIndex(index int) error {
	if index < 0 || index >= len(d.lineItems) {
		return newIndexOutOfRangeError(index, len(d.lineItems))
	}
	return nil
}

func (d *Draft) setOrderID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.orderID = id
	return nil
}

func (d *Draft) setNumber(number Number) error {
	if number.IsZero() {
		return ErrNumberIsRequired
	}
	d.number = number
	return nil
}

func (d *Draft) setDate(date Date) error {
	if date.IsZero() {
		return ErrDateIsRequired
	}
	d.date = date
	return nil
}
