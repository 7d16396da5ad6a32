// Package domain defines core business types and interfaces.
package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// Product represents an inventory product. The name is its catalog key.
type Product struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

// ValidateProduct checks the fields a catalog entry must satisfy.
func ValidateProduct(p Product) error {
	if p.Name == "" {
		return NewInvalidInputError("name", "cannot be empty", p.Name)
	}
	if p.Quantity < 0 {
		return NewInvalidInputError("quantity", "must be non-negative", p.Quantity)
	}
	if p.Price.IsNegative() {
		return NewInvalidInputError("price", "must be non-negative", p.Price.String())
	}
	return nil
}

// ListFilter allows filtering and sorting results from List
type ListFilter struct {
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	LowStock *int   // only products with quantity at or below this value
	SortBy   string // "name", "price", "quantity"; name when empty
	Order    string // "asc" or "desc"
}

// ProductStore defines the storage interface for the product catalog
type ProductStore interface {
	Add(ctx context.Context, product Product) error
	Get(ctx context.Context, name string) (Product, error)
	Update(ctx context.Context, product Product) error
	Delete(ctx context.Context, name string) error
	Adjust(ctx context.Context, name string, fn func(*Product) error) (Product, error)
	List(ctx context.Context, filter ListFilter) ([]Product, error)
	BulkAdd(ctx context.Context, products []Product) error
	Len() int
}
