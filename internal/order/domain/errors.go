package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by order stores when no order matches the id.
var ErrNotFound = errors.New("order not found")

// ProductNotFoundError reports a requested product that did not resolve
// against the catalog. Validation is fail-fast: only the first offending line
// is reported.
type ProductNotFoundError struct {
	ProductID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product not found (%s)", e.ProductID)
}

// InsufficientStockError reports a requested quantity exceeding the product's
// available stock at validation time. It carries the product name, not the id.
type InsufficientStockError struct {
	ProductName string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("product quantity invalid (%s)", e.ProductName)
}
