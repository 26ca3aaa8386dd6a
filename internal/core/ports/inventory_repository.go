package ports

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/kernel"
)

// ErrInsufficientStock is returned by TryReserve when the available stock is
// lower than the requested quantity. The reservation has no effect in that
/// case: the decrement is conditional, never partial.
var ErrInsufficientStock = errors.New("insufficient stock")

// InventoryRepository is the authoritative ledger of available stock per
// product. All stock mutation in the system goes through these primitives;
// no caller is permitted to read a stock value and write a derived one back.
type InventoryRepository interface {
	// TryReserve atomically checks availableStock >= quantity and decrements
	// by quantity in one indivisible step relative to concurrent callers on
	// the same product. Returns ErrInsufficientStock when the check fails and
	// an ObjectNotFoundError when the product does not exist. This is the
	// single correctness-critical primitive of the whole system.
	TryReserve(ctx context.Context, productID kernel.UUID, quantity int) error

	// Release atomically increments availableStock by quantity. Used for
	// compensation: checkout rollback and order cancellation.
	Release(ctx context.Context, productID kernel.UUID, quantity int) error

	// Peek returns the current available stock for display purposes only.
	// It must never gate a reservation decision; that goes through TryReserve.
	Peek(ctx context.Context, productID kernel.UUID) (int, error)
}
