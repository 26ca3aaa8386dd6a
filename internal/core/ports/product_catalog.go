package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
)

// Product is the read model the catalog collaborator exposes to this core:
// enough to price a cart line and freeze an order line snapshot.
type Product struct {
	ID             kernel.UUID
	Name           string
	Price          kernel.Money
	AvailableStock int
	Image          string
}

// ProductCatalog looks up live product data. The catalog itself (CRUD, brands,
// categories, images) is owned by an excluded collaborator; this core only
// reads it to price carts and snapshot order lines.
type ProductCatalog interface {
	// GetProduct resolves a product by id, or an ObjectNotFoundError when the
	// product has been deleted from the catalog.
	GetProduct(ctx context.Context, productID kernel.UUID) (*Product, error)
}
