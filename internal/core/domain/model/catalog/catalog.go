package catalog

import (
	"fmt"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"
)

// Catalog is the read-only set of products available while composing an order.
// Insertion order of the backend listing is preserved.
type Catalog struct {
	products []Product
	index    map[kernel.ID]int
}

// NewCatalog indexes products by id. Unconstructed products and duplicate ids are rejected.
func NewCatalog(products []Product) (*Catalog, error) {
	c := &Catalog{
		products: make([]Product, 0, len(products)),
		index:    make(map[kernel.ID]int, len(products)),
	}

	for _, p := range products {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, exists := c.index[p.ID()]; exists {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"products",
				fmt.Errorf("product id %s appears more than once", p.ID()),
			)
		}
		c.index[p.ID()] = len(c.products)
		c.products = append(c.products, p)
	}

	return c, nil
}

// Find returns the product with the given id.
func (c *Catalog) Find(id kernel.ID) (Product, bool) {
	if c == nil {
		return Product{}, false
	}
	i, ok := c.index[id]
	if !ok {
		return Product{}, false
	}
	return c.products[i], true
}

// Products returns a copy of the catalog entries.
func (c *Catalog) Products() []Product {
	if c == nil {
		return nil
	}
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.products)
}
