package commands

import (
	"errors"
	"strings"

	"ordermanagement/internal/core/domain/model/catalog"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/ports"
	"ordermanagement/internal/pkg/guard"
)

var (
	ErrSaveProductCommandIsNotConstructed = errors.New(
		"SaveProductCommand must be created via NewCreateProductCommand or NewUpdateProductCommand",
	)
)

// SaveProductCommand creates a product, or updates one when productID is set.
type SaveProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.ID
	name      string
	unitPrice kernel.Money

	guard guard.ConstructorGuard
}

// NewCreateProductCommand prepares a new catalog entry.
func NewCreateProductCommand(name string, unitPrice kernel.Money) (SaveProductCommand, error) {
	cmd := SaveProductCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setUnitPrice(unitPrice),
	); err != nil {
		return SaveProductCommand{}, err
	}

	return cmd, nil
}

// NewUpdateProductCommand prepares a change to an existing catalog entry. Orders
// that already hold the product keep their snapshot.
func NewUpdateProductCommand(productID kernel.ID, name string, unitPrice kernel.Money) (SaveProductCommand, error) {
	cmd := SaveProductCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setName(name),
		cmd.setUnitPrice(unitPrice),
	); err != nil {
		return SaveProductCommand{}, err
	}

	return cmd, nil
}

func (c SaveProductCommand) Validate() error {
	return c.guard.Validate(ErrSaveProductCommandIsNotConstructed)
}

func (c SaveProductCommand) ProductID() kernel.ID {
	return c.productID
}

func (c SaveProductCommand) IsNew() bool {
	return c.productID.IsZero()
}

func (c SaveProductCommand) Request() ports.ProductRequest {
	return ports.ProductRequest{Name: c.name, UnitPrice: c.unitPrice}
}

func (c *SaveProductCommand) setProductID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.productID = id
	return nil
}

func (c *SaveProductCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return catalog.ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *SaveProductCommand) setUnitPrice(unitPrice kernel.Money) error {
	m, err := kernel.NewMoney(unitPrice.Decimal())
	if err != nil {
		return err
	}
	c.unitPrice = m
	return nil
}
