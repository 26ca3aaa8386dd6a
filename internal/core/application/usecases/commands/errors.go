package commands

import (
	"errors"
	"fmt"

	"storefront/internal/core/ports"
)

var (
	// ErrEmptyCart is returned when checkout finds no lines to buy. A second
	// concurrent checkout of the same cart also ends here: the first one
	// empties the cart, so the loser of the per-user lock sees nothing left.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrProductUnavailable is returned when a cart line references a product
	// that no longer exists in the catalog.
	ErrProductUnavailable = errors.New("product is unavailable")
)

// InsufficientStockError reports a failed stock reservation, naming the
// blocking product so the customer knows what to remove.
type InsufficientStockError struct {
	ProductName string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %q", e.ProductName)
}

func (e *InsufficientStockError) Unwrap() error {
	return ports.ErrInsufficientStock
}
