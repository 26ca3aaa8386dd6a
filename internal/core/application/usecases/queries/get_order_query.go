package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order by identifier on behalf of a requester.
// Only the owning user or an operator may see the order.
type GetOrderQuery struct {
	orderID     kernel.UUID
	requesterID kernel.UUID
	isOperator  bool

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to fetch an order for the given requester.
func NewGetOrderQuery(orderID, requesterID kernel.UUID, isOperator bool) (GetOrderQuery, error) {
	if err := errors.Join(orderID.Validate(), requesterID.Validate()); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID:     orderID,
		requesterID: requesterID,
		isOperator:  isOperator,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order's identifier.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// RequesterID returns the identity making the request.
func (q GetOrderQuery) RequesterID() kernel.UUID {
	return q.requesterID
}

// IsOperator reports whether the requester holds the operator role.
func (q GetOrderQuery) IsOperator() bool {
	return q.isOperator
}
