package order

import (
	"errors"

	"ordermanagement/internal/core/domain/model/kernel"
)

// Order is a persisted order as reported by the backend. The aggregates
// (number of products, final price) are computed server-side and consumed as is.
//
// The status is kept verbatim, so an order carrying an unrecognised code still
// loads and displays as "Unknown".
type Order struct {
	id             kernel.ID
	number         Number
	date           Date
	status         Status
	numberProducts int
	finalPrice     kernel.Money
	lineItems      []LineItem
}

// RestoreOrder rebuilds an order read from the backend. List responses carry no
// line items; pass nil.
func RestoreOrder(
	id kernel.ID,
	number Number,
	date Date,
	status Status,
	numberProducts int,
	finalPrice kernel.Money,
	lineItems []LineItem,
) (*Order, error) {
	o := &Order{
		status:         status,
		numberProducts: numberProducts,
		finalPrice:     finalPrice,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
	); err != nil {
		return nil, err
	}
	o.date = date

	for _, li := range lineItems {
		if err := li.Validate(); err != nil {
			return nil, err
		}
	}
	o.lineItems = append([]LineItem(nil), lineItems...)

	return o, nil
}

func (o *Order) ID() kernel.ID {
	return o.id
}

func (o *Order) Number() Number {
	return o.number
}

func (o *Order) Date() Date {
	return o.date
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) NumberProducts() int {
	return o.numberProducts
}

func (o *Order) FinalPrice() kernel.Money {
	return o.finalPrice
}

// LineItems returns a copy of the order's lines; empty for list responses.
func (o *Order) LineItems() []LineItem {
	out := make([]LineItem, len(o.lineItems))
	copy(out, o.lineItems)
	return out
}

// Edit opens a draft over this order with its persisted number, date and lines.
func (o *Order) Edit() (*Draft, error) {
	return RestoreDraft(o.id, o.number, o.date, o.lineItems)
}

func (o *Order) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number Number) error {
	if number.IsZero() {
		return ErrNumberIsRequired
	}
	o.number = number
	return nil
}
