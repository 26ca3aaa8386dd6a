// Package sequencerepo issues human-facing order numbers from a named counter
// row. The counter is advanced with a single upsert, so concurrent checkouts
// always draw distinct values; within a transaction the drawn value is burned
// on rollback, leaving harmless gaps in the sequence.
package sequencerepo

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

const orderNumberCounter = "order_number"

// GormSequenceGenerator implements OrderNumberGenerator over a counters table.
type GormSequenceGenerator struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGormSequenceGenerator creates a new counter-backed number generator.
func NewGormSequenceGenerator(db *gorm.DB) *GormSequenceGenerator {
	return &GormSequenceGenerator{db: db, now: time.Now}
}

// NextOrderNumber draws the next value from the order number counter and
// formats it for display.
func (g *GormSequenceGenerator) NextOrderNumber(ctx context.Context) (string, error) {
	var seq int64
	row := g.db.WithContext(ctx).Raw(
		`INSERT INTO counters (name, value) VALUES (?, 1)
		 ON CONFLICT (name) DO UPDATE SET value = counters.value + 1
		 RETURNING value`,
		orderNumberCounter,
	).Row()

	if err := row.Scan(&seq); err != nil {
		return "", err
	}

	return formatOrderNumber(g.now().UTC(), seq), nil
}

// formatOrderNumber renders a sequence value as a customer-facing order
// number: the RC prefix, the two-digit year and month, and the zero-padded
// sequence. The sequence is global, not per month; the date part is there for
// the support desk, not for uniqueness.
func formatOrderNumber(now time.Time, seq int64) string {
	return fmt.Sprintf("RC%s%05d", now.Format("0601"), seq)
}

// CounterDTO represents a named counter row.
type CounterDTO struct {
	Name  string `gorm:"primaryKey"`
	Value int64  `gorm:"not null"`
}

// TableName specifies the database table name for counter rows.
func (CounterDTO) TableName() string {
	return "counters"
}
