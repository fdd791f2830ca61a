package catalog

import (
	"errors"
	"strings"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"
	"ordermanagement/internal/pkg/guard"
)

var (
	// ErrProductIsNotConstructed is returned when a Product was not created through NewProduct.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
	// ErrNameIsRequired is returned for blank product names.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Product is a catalog entry. It is immutable once constructed.
type Product struct {
	id        kernel.ID
	name      string
	unitPrice kernel.Money

	guard guard.ConstructorGuard
}

// NewProduct validates and creates a Product. All field errors are reported together.
func NewProduct(id kernel.ID, name string, unitPrice kernel.Money) (Product, error) {
	p := Product{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setUnitPrice(unitPrice),
	); err != nil {
		return Product{}, err
	}

	return p, nil
}

// Validate ensures the product was created via NewProduct.
func (p Product) Validate() error {
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p Product) ID() kernel.ID {
	return p.id
}

func (p Product) Name() string {
	return p.name
}

func (p Product) UnitPrice() kernel.Money {
	return p.unitPrice
}

func (p *Product) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}

func (p *Product) setUnitPrice(unitPrice kernel.Money) error {
	if unitPrice.Decimal().IsNegative() {
		return errs.NewValueIsInvalidError("unitPrice")
	}
	p.unitPrice = unitPrice
	return nil
}
