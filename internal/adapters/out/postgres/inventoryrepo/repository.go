// Package inventoryrepo is the stock ledger over the products table. Every
// stock mutation in the system goes through the two primitives here, both of
// them single atomic UPDATE statements. There is no read-check-write anywhere:
// the availability check and the decrement are one statement, so concurrent
// checkouts racing for the last unit are serialized by the database row lock
// and exactly one of them wins.
package inventoryrepo

import (
	"context"
	"database/sql"
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/retry"

	"gorm.io/gorm"
)

// GormInventoryRepository implements InventoryRepository using GORM.
type GormInventoryRepository struct {
	db *gorm.DB
}

// NewGormInventoryRepository creates a new GORM inventory repository.
func NewGormInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

// TryReserve decrements available stock if and only if enough is available.
// The condition lives inside the UPDATE itself, which makes the call safe to
// retry on transient failures: a retry of a statement that already applied
// re-evaluates the condition instead of decrementing twice only because the
// first response was lost, never below the guard.
func (r *GormInventoryRepository) TryReserve(ctx context.Context, productID kernel.UUID, quantity int) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	if quantity < 1 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxReservation)
	}

	var reserved bool
	err := retry.Do(ctx, func() error {
		result := r.db.WithContext(ctx).Exec(
			"UPDATE products SET available_stock = available_stock - ? WHERE id = ? AND available_stock >= ?",
			quantity, productID.Bytes(), quantity,
		)
		if result.Error != nil {
			return result.Error
		}
		reserved = result.RowsAffected > 0
		return nil
	})
	if err != nil {
		return err
	}
	if reserved {
		return nil
	}

	// Zero rows means either the guard failed or the product is gone.
	if _, err = r.Peek(ctx, productID); err != nil {
		return err
	}
	return ports.ErrInsufficientStock
}

// Release increments available stock unconditionally. Used as compensation
// when a checkout fails after partial reservation and when an order is
// cancelled.
func (r *GormInventoryRepository) Release(ctx context.Context, productID kernel.UUID, quantity int) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	if quantity < 1 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxReservation)
	}

	return retry.Do(ctx, func() error {
		result := r.db.WithContext(ctx).Exec(
			"UPDATE products SET available_stock = available_stock + ? WHERE id = ?",
			quantity, productID.Bytes(),
		)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.NewObjectNotFoundError("product", productID.String())
		}
		return nil
	})
}

// Peek returns the current available stock for display. The value is stale
// the moment it is read; only TryReserve decides.
func (r *GormInventoryRepository) Peek(ctx context.Context, productID kernel.UUID) (int, error) {
	if err := productID.Validate(); err != nil {
		return 0, err
	}

	var stock int
	err := retry.Do(ctx, func() error {
		row := r.db.WithContext(ctx).Raw(
			"SELECT available_stock FROM products WHERE id = ?",
			productID.Bytes(),
		).Row()

		if scanErr := row.Scan(&stock); scanErr != nil {
			if errors.Is(scanErr, sql.ErrNoRows) {
				return errs.NewObjectNotFoundError("product", productID.String())
			}
			return scanErr
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return stock, nil
}

// maxReservation bounds a single reservation quantity for error reporting.
const maxReservation = 1_000_000
