// Package queries contains read operations against the backend. Queries return
// read models for the order list and domain objects where an editing session
// needs them (catalog, order detail).
package queries

import (
	"errors"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/pkg/guard"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
)

// GetOrdersQuery lists every order for the order list screen.
//
// Example:
//
//	orders, err := handler.Handle(ctx, NewGetOrdersQuery())
//	if err != nil {
//	    return err // errs.ErrLoadFailed
//	}
//	for _, o := range orders {
//	    fmt.Printf("%s %s %s\n", o.OrderNumber, o.Status, o.FinalPrice)
//	}
type GetOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetOrdersQuery() GetOrdersQuery {
	return GetOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// GetOrdersQueryResponse is one row of the order list. NumberProducts and
// FinalPrice are the backend's figures.
type GetOrdersQueryResponse struct {
	ID             kernel.ID
	OrderNumber    string
	OrderDate      string
	Status         order.Status
	NumberProducts int
	FinalPrice     kernel.Money
}
