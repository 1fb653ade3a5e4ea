package catalog

import (
	"PharmaCS/entity"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Catalog is the read-only product list the chat engine resolves against.
// It preserves load order and is safe to share across requests without
// locking.
type Catalog struct {
	products []entity.Product
	byId     map[string]entity.Product
}

// New validates every product and builds the id index. A malformed record
// or duplicate id fails the whole load; catalog defects surface at start,
// never per-request.
func New(products []entity.Product) (*Catalog, error) {
	validate := validator.New()
	byId := make(map[string]entity.Product, len(products))

	for i, p := range products {
		if err := validate.Struct(p); err != nil {
			return nil, fmt.Errorf("invalid product at index %d (%q): %w", i, p.Id, err)
		}
		if _, dup := byId[p.Id]; dup {
			return nil, fmt.Errorf("duplicate product id: %s", p.Id)
		}
		byId[p.Id] = p
	}

	return &Catalog{
		products: append([]entity.Product(nil), products...),
		byId:     byId,
	}, nil
}

// Products returns the catalog in load order. Callers must not modify the
// returned slice.
func (c *Catalog) Products() []entity.Product {
	return c.products
}

// Get looks a product up by id.
func (c *Catalog) Get(id string) (entity.Product, bool) {
	p, ok := c.byId[id]
	return p, ok
}

// Size reports the number of products loaded.
func (c *Catalog) Size() int {
	return len(c.products)
}
