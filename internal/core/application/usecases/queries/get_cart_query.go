package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrGetCartQueryIsNotConstructed = errors.New(
	"GetCartQuery must be created via NewGetCartQuery constructor",
)

// GetCartQuery retrieves the user's cart priced at current catalog prices.
// Unlike an order, a cart has no frozen pricing: the subtotal is recomputed on
// every read.
type GetCartQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCartQuery creates a query for the given user's cart.
func NewGetCartQuery(userID kernel.UUID) (GetCartQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetCartQuery{}, err
	}

	return GetCartQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// UserID returns the cart owner's identifier.
func (q GetCartQuery) UserID() kernel.UUID {
	return q.userID
}

// CartLineView is one cart line enriched with live catalog data.
type CartLineView struct {
	LineID         string
	ProductID      string
	Name           string
	UnitPrice      int64
	Quantity       int
	Size           string
	Color          *ColorView
	Image          string
	Subtotal       int64
	AvailableStock int
}

// CartView is the cart read model: lines plus a subtotal computed from
// current prices.
type CartView struct {
	Lines    []CartLineView
	Subtotal int64
}
