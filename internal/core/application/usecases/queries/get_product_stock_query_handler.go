package queries

import (
	"context"
	"database/sql"
	"errors"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/retry"

	"gorm.io/gorm"
)

// GetProductStockQueryHandler reads the displayed stock level of a product.
type GetProductStockQueryHandler struct {
	db *gorm.DB
}

// NewGetProductStockQueryHandler creates a handler for stock display reads.
func NewGetProductStockQueryHandler(db *gorm.DB) GetProductStockQueryHandler {
	return GetProductStockQueryHandler{db: db}
}

// Handle returns the current available stock for display.
func (h GetProductStockQueryHandler) Handle(ctx context.Context, query GetProductStockQuery) (ProductStockView, error) {
	if err := query.Validate(); err != nil {
		return ProductStockView{}, err
	}

	view := ProductStockView{ProductID: query.ProductID().String()}
	err := retry.Do(ctx, func() error {
		row := h.db.WithContext(ctx).Raw(
			"SELECT available_stock FROM products WHERE id = ?",
			query.ProductID().Bytes(),
		).Row()

		if scanErr := row.Scan(&view.AvailableStock); scanErr != nil {
			if errors.Is(scanErr, sql.ErrNoRows) {
				return errs.NewObjectNotFoundError("product", query.ProductID().String())
			}
			return scanErr
		}
		return nil
	})
	if err != nil {
		return ProductStockView{}, err
	}

	return view, nil
}
