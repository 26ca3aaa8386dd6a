package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrGetProductStockQueryIsNotConstructed = errors.New(
	"GetProductStockQuery must be created via NewGetProductStockQuery constructor",
)

// GetProductStockQuery retrieves the advisory available stock of one product.
// The value is for display only and never gates a reservation.
type GetProductStockQuery struct {
	productID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetProductStockQuery creates a stock display query.
func NewGetProductStockQuery(productID kernel.UUID) (GetProductStockQuery, error) {
	if err := productID.Validate(); err != nil {
		return GetProductStockQuery{}, err
	}

	return GetProductStockQuery{
		productID: productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductStockQuery) Validate() error {
	return q.guard.Validate(ErrGetProductStockQueryIsNotConstructed)
}

// ProductID returns the product whose stock is requested.
func (q GetProductStockQuery) ProductID() kernel.UUID {
	return q.productID
}

// ProductStockView reports a product's displayed stock level.
type ProductStockView struct {
	ProductID      string
	AvailableStock int
}
