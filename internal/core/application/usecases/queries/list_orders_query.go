package queries

import (
	"errors"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery is the operator-facing listing over all orders, with an
// optional status filter and a free-text search over order numbers.
type ListOrdersQuery struct {
	status order.Status // Unknown means no filter
	search string
	page   int
	limit  int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates an administrative order listing query.
// An empty status string means no status filter; a non-empty one must name a
// known status.
func NewListOrdersQuery(status, search string, page, limit int) (ListOrdersQuery, error) {
	query := ListOrdersQuery{
		search: search,
		guard:  guard.NewConstructorGuard(),
	}

	if status != "" {
		parsed, err := order.StatusFromString(status)
		if err != nil {
			return ListOrdersQuery{}, err
		}
		query.status = parsed
	}

	query.page, query.limit = normalizePage(page, limit)
	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Status returns the status filter; order.Unknown means unfiltered.
func (q ListOrdersQuery) Status() order.Status {
	return q.status
}

// Search returns the order number search term, possibly empty.
func (q ListOrdersQuery) Search() string {
	return q.search
}

// Page returns the 1-based page number.
func (q ListOrdersQuery) Page() int {
	return q.page
}

// Limit returns the page size.
func (q ListOrdersQuery) Limit() int {
	return q.limit
}
