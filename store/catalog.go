// Package store provides the in-memory catalog and transaction ledgers.
package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"inventory_manager/domain"
)

// Catalog is an in-memory domain.ProductStore keyed by product name
type Catalog struct {
	mu       sync.RWMutex
	products map[string]domain.Product
}

// NewCatalog constructs an empty Catalog
func NewCatalog() *Catalog {
	return &Catalog{
		products: make(map[string]domain.Product),
	}
}

// compile-time assertion that Catalog implements domain.ProductStore
var _ domain.ProductStore = (*Catalog)(nil)

func (c *Catalog) Add(ctx context.Context, product domain.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := domain.ValidateProduct(product); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.products[product.Name]; exists {
		return domain.NewDuplicateProductError(product.Name)
	}
	c.products[product.Name] = product
	return nil
}

func (c *Catalog) Get(ctx context.Context, name string) (domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return domain.Product{}, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	p, ok := c.products[name]
	if !ok {
		return domain.Product{}, domain.NewProductNotFoundError(name)
	}
	return p, nil
}

// Update replaces every field of the stored product with the same name.
func (c *Catalog) Update(ctx context.Context, product domain.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := domain.ValidateProduct(product); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.products[product.Name]; !ok {
		return domain.NewProductNotFoundError(product.Name)
	}
	c.products[product.Name] = product
	return nil
}

func (c *Catalog) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.products[name]; !ok {
		return domain.NewProductNotFoundError(name)
	}
	delete(c.products, name)
	return nil
}

// Adjust hands fn a working copy of the named product and stores the copy
// only if fn returns nil. The name cannot be changed through Adjust.
func (c *Catalog) Adjust(ctx context.Context, name string, fn func(*domain.Product) error) (domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return domain.Product{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	p, ok := c.products[name]
	if !ok {
		return domain.Product{}, domain.NewProductNotFoundError(name)
	}
	if err := fn(&p); err != nil {
		return domain.Product{}, err
	}
	p.Name = name
	if err := domain.ValidateProduct(p); err != nil {
		return domain.Product{}, err
	}
	c.products[name] = p
	return p, nil
}

func (c *Catalog) List(ctx context.Context, filter domain.ListFilter) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.Product, 0, len(c.products))
	for _, p := range c.products {
		if filter.MinPrice != nil && p.Price.LessThan(*filter.MinPrice) {
			continue
		}
		if filter.MaxPrice != nil && p.Price.GreaterThan(*filter.MaxPrice) {
			continue
		}
		if filter.LowStock != nil && p.Quantity > *filter.LowStock {
			continue
		}
		out = append(out, p)
	}

	desc := filter.Order == "desc"
	switch filter.SortBy {
	case "price":
		sort.Slice(out, func(i, j int) bool {
			if cmp := out[i].Price.Cmp(out[j].Price); cmp != 0 {
				return (cmp > 0) == desc
			}
			return out[i].Name < out[j].Name
		})
	case "quantity":
		sort.Slice(out, func(i, j int) bool {
			if out[i].Quantity != out[j].Quantity {
				return (out[i].Quantity > out[j].Quantity) == desc
			}
			return out[i].Name < out[j].Name
		})
	default:
		sort.Slice(out, func(i, j int) bool {
			if desc {
				return out[i].Name > out[j].Name
			}
			return out[i].Name < out[j].Name
		})
	}

	return out, nil
}

// BulkAdd adds every product or none of them. All problems found in the
// batch are reported together.
func (c *Catalog) BulkAdd(ctx context.Context, products []domain.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(products) == 0 {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	var collected error
	collect := func(i int, err error) {
		err = fmt.Errorf("item %d: %w", i+1, err)
		if collected == nil {
			collected = err
		} else {
			collected = fmt.Errorf("%w; %w", collected, err)
		}
	}

	seen := make(map[string]struct{}, len(products))
	for i, p := range products {
		if err := domain.ValidateProduct(p); err != nil {
			collect(i, err)
			continue
		}
		if _, dup := seen[p.Name]; dup {
			collect(i, domain.NewDuplicateProductError(p.Name))
			continue
		}
		if _, exists := c.products[p.Name]; exists {
			collect(i, domain.NewDuplicateProductError(p.Name))
			continue
		}
		seen[p.Name] = struct{}{}
	}
	if collected != nil {
		return collected
	}

	for _, p := range products {
		c.products[p.Name] = p
	}
	return nil
}

// Len reports how many products are in the catalog.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.products)
}
