package queries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/retry"

	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle fetches the order. A request by someone who is neither the owner nor
// an operator reports ObjectNotFoundError, indistinguishable from a missing
// order, so identifiers cannot be probed for existence.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	var view OrderView
	err := retry.Do(ctx, func() error {
		row := h.db.WithContext(ctx).Raw(
			fmt.Sprintf("SELECT %s FROM orders WHERE id = ?", orderColumns),
			query.OrderID().Bytes(),
		).Row()

		scanned, scanErr := scanOrderView(row)
		if scanErr != nil {
			if errors.Is(scanErr, sql.ErrNoRows) {
				return errs.NewObjectNotFoundError("order", query.OrderID().String())
			}
			return scanErr
		}

		view = scanned
		return nil
	})
	if err != nil {
		return OrderView{}, err
	}

	if !query.IsOperator() && view.UserID != query.RequesterID().String() {
		return OrderView{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	return view, nil
}
