package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrListUserOrdersQueryIsNotConstructed = errors.New(
	"ListUserOrdersQuery must be created via NewListUserOrdersQuery constructor",
)

// ListUserOrdersQuery retrieves a page of the user's own orders, newest first.
type ListUserOrdersQuery struct {
	userID kernel.UUID
	page   int
	limit  int

	guard guard.ConstructorGuard
}

// NewListUserOrdersQuery creates a paginated query over a user's orders.
// Out-of-range pagination values are clamped, not rejected.
func NewListUserOrdersQuery(userID kernel.UUID, page, limit int) (ListUserOrdersQuery, error) {
	if err := userID.Validate(); err != nil {
		return ListUserOrdersQuery{}, err
	}

	page, limit = normalizePage(page, limit)
	return ListUserOrdersQuery{
		userID: userID,
		page:   page,
		limit:  limit,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListUserOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListUserOrdersQueryIsNotConstructed)
}

// UserID returns the owner whose orders are listed.
func (q ListUserOrdersQuery) UserID() kernel.UUID {
	return q.userID
}

// Page returns the 1-based page number.
func (q ListUserOrdersQuery) Page() int {
	return q.page
}

// Limit returns the page size.
func (q ListUserOrdersQuery) Limit() int {
	return q.limit
}

// OrderPageView is one page of order summaries plus pagination metadata.
type OrderPageView struct {
	Items []OrderSummaryView
	Page  int
	Limit int
	Total int64
	Pages int
}
