package orders

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrProductNotFound   = errors.New("product not found")
	ErrOrderItemNotFound = errors.New("order item not found")
	ErrNotAuthorized     = errors.New("not authorized")
	ErrInvalidStatus     = errors.New("invalid status")
)

// InsufficientStockError names the product that killed the checkout and
// how many units were actually available.
type InsufficientStockError struct {
	Product   string
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s. Available: %d", e.Product, e.Available)
}
