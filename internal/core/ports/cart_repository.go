package ports

import (
	"context"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
)

// CartRepository defines the persistence contract for cart aggregates.
// There is at most one cart per user, enforced by a unique constraint on the
// user identifier.
type CartRepository interface {
	// GetByUser retrieves the user's cart, or an ObjectNotFoundError if the
	// user has never added anything. Carts are created lazily via Add.
	GetByUser(ctx context.Context, userID kernel.UUID) (*cart.Cart, error)

	// Add persists a newly created cart with its lines.
	Add(ctx context.Context, aggregate *cart.Cart) error

	// Update replaces the cart's persisted line list with the aggregate's
	// current one. Clearing a cart updates it to zero lines; the cart row
	// itself is never deleted.
	Update(ctx context.Context, aggregate *cart.Cart) error
}
