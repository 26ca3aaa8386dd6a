package queries

import (
	"context"

	"storefront/internal/pkg/retry"

	"gorm.io/gorm"
)

// ListUserOrdersQueryHandler retrieves a customer's order history.
type ListUserOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListUserOrdersQueryHandler creates a handler for order history reads.
func NewListUserOrdersQueryHandler(db *gorm.DB) ListUserOrdersQueryHandler {
	return ListUserOrdersQueryHandler{db: db}
}

// Handle returns one page of the user's orders, newest first.
func (h ListUserOrdersQueryHandler) Handle(ctx context.Context, query ListUserOrdersQuery) (OrderPageView, error) {
	if err := query.Validate(); err != nil {
		return OrderPageView{}, err
	}

	page := OrderPageView{
		Items: make([]OrderSummaryView, 0, query.Limit()),
		Page:  query.Page(),
		Limit: query.Limit(),
	}

	err := retry.Do(ctx, func() error {
		page.Items = page.Items[:0]
		page.Total = 0

		err := h.db.WithContext(ctx).Raw(
			"SELECT COUNT(*) FROM orders WHERE user_id = ?",
			query.UserID().Bytes(),
		).Scan(&page.Total).Error
		if err != nil {
			return err
		}

		rows, err := h.db.WithContext(ctx).Raw(`
			SELECT id, number, user_id, status, payment_status, total, created_at
			FROM orders
			WHERE user_id = ?
			ORDER BY created_at DESC
			LIMIT ? OFFSET ?
		`, query.UserID().Bytes(), query.Limit(), (query.Page()-1)*query.Limit()).Rows()
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
