// Package domain defines error types for the inventory system.
package domain

import (
	"errors"
	"fmt"
)

// ProductNotFoundError is returned when no product has the given name
type ProductNotFoundError struct {
	Name string
}

// Error implements the error interface for ProductNotFoundError
func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product not found: name=%s", e.Name)
}

// Is allows proper error type checking with errors.Is()
func (e *ProductNotFoundError) Is(target error) bool {
	_, ok := target.(*ProductNotFoundError)
	return ok
}

// InvalidInputError is returned when a product field or a numeric input is rejected
type InvalidInputError struct {
	Field  string
	Reason string
	Value  interface{}
}

// Error implements the error interface for InvalidInputError
func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: field=%s, reason=%s, value=%v", e.Field, e.Reason, e.Value)
}

// Is allows proper error type checking with errors.Is()
func (e *InvalidInputError) Is(target error) bool {
	_, ok := target.(*InvalidInputError)
	return ok
}

// DuplicateProductError is returned when adding a product whose name is already in the catalog
type DuplicateProductError struct {
	Name string
}

// Error implements the error interface for DuplicateProductError
func (e *DuplicateProductError) Error() string {
	return fmt.Sprintf("duplicate product: name=%s already exists", e.Name)
}

// Is allows proper error type checking with errors.Is()
func (e *DuplicateProductError) Is(target error) bool {
	_, ok := target.(*DuplicateProductError)
	return ok
}

// InsufficientStockError is returned when a sale asks for more units than are on hand
type InsufficientStockError struct {
	Name      string
	Requested int
	Available int
}

// Error implements the error interface for InsufficientStockError
func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock: name=%s, requested=%d, available=%d", e.Name, e.Requested, e.Available)
}

// Is allows proper error type checking with errors.Is()
func (e *InsufficientStockError) Is(target error) bool {
	_, ok := target.(*InsufficientStockError)
	return ok
}

// Helper functions for creating errors with context

// NewProductNotFoundError creates a new ProductNotFoundError
func NewProductNotFoundError(name string) error {
	return &ProductNotFoundError{Name: name}
}

// NewInvalidInputError creates a new InvalidInputError
func NewInvalidInputError(field, reason string, value interface{}) error {
	return &InvalidInputError{
		Field:  field,
		Reason: reason,
		Value:  value,
	}
}

// NewDuplicateProductError creates a new DuplicateProductError
func NewDuplicateProductError(name string) error {
	return &DuplicateProductError{Name: name}
}

// NewInsufficientStockError creates a new InsufficientStockError
func NewInsufficientStockError(name string, requested, available int) error {
	return &InsufficientStockError{Name: name, Requested: requested, Available: available}
}

// Type assertion helpers for use with errors.As()

// IsProductNotFoundError checks if an error is a ProductNotFoundError
func IsProductNotFoundError(err error) bool {
	var pnf *ProductNotFoundError
	return errors.As(err, &pnf)
}

// IsInvalidInputError checks if an error is an InvalidInputError
func IsInvalidInputError(err error) bool {
	var iie *InvalidInputError
	return errors.As(err, &iie)
}

// IsDuplicateProductError checks if an error is a DuplicateProductError
func IsDuplicateProductError(err error) bool {
	var dpe *DuplicateProductError
	return errors.As(err, &dpe)
}

// IsInsufficientStockError checks if an error is an InsufficientStockError
func IsInsufficientStockError(err error) bool {
	var ise *InsufficientStockError
	return errors.As(err, &ise)
}
