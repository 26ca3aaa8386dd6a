package queries

import (
	"context"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/retry"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler retrieves orders across all users for operators.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for the administrative listing.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle returns one page of orders, newest first, filtered by status and
// order number search when given.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (OrderPageView, error) {
	if err := query.Validate(); err != nil {
		return OrderPageView{}, err
	}

	where := "1 = 1"
	args := make([]any, 0, 2)
	if query.Status() != order.Unknown {
		where += " AND status = ?"
		args = append(args, query.Status().String())
	}
	if query.Search() != "" {
		where += " AND number ILIKE ?"
		args = append(args, "%"+query.Search()+"%")
	}

	page := OrderPageView{
		Items: make([]OrderSummaryView, 0, query.Limit()),
		Page:  query.Page(),
		Limit: query.Limit(),
	}

	err := retry.Do(ctx, func() error {
		page.Items = page.Items[:0]
		page.Total = 0

		err := h.db.WithContext(ctx).
			Raw("SELECT COUNT(*) FROM orders WHERE "+where, args...).
			Scan(&page.Total).Error
		if err != nil {
			return err
		}

		listArgs := append(append([]any{}, args...), query.Limit(), (query.Page()-1)*query.Limit())
		rows, err := h.db.WithContext(ctx).Raw(`
			SELECT id, number, user_id, status, payment_status, total, created_at
			FROM orders
			WHERE `+where+`
			ORDER BY created_at DESC
			LIMIT ? OFFSET ?
		`, listArgs...).Rows()
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			summary, scanErr := scanOrderSummaryView(rows)
			if scanErr != nil {
				return scanErr
			}
			page.Items = append(page.Items, summary)
		}

		return rows.Err()
	})
	if err != nil {
		return OrderPageView{}, err
	}

	page.Pages = int((page.Total + int64(page.Limit) - 1) / int64(page.Limit))
	return page, nil
}
