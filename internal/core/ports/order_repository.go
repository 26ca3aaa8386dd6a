package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate. The order number carries a unique
	// constraint; a duplicate insert fails rather than silently overwriting.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status-driven changes to an existing order under
	// optimistic concurrency: the write only applies if the stored version
	// still matches the version the aggregate was read at, and it bumps the
	// version. A mismatch returns a VersionIsInvalidError so two concurrent
	// transitions cannot both succeed and double-apply compensating effects.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its system identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes an order permanently. This is the destructive
	// administrative operation: unlike cancellation it releases no stock.
	Delete(ctx context.Context, id kernel.UUID) error
}
