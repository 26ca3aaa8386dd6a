package kernel

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// Money is a monetary amount in the store's minor currency unit.
// Amounts are never negative. The zero value represents zero money and is
// valid, so Money can be used for free delivery fees without construction.
//
// Money is deliberately single-currency: multi-currency handling is outside
// the order-processing core.
type Money struct {
	amount int64
}

// NewMoney creates a Money value. Negative amounts are rejected.
func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d is negative", amount))
	}
	return Money{amount: amount}, nil
}

// Amount returns the raw amount in minor units.
func (m Money) Amount() int64 {
	return m.amount
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount}
}

// MultiplyBy returns the amount scaled by a non-negative quantity.
func (m Money) MultiplyBy(quantity int) Money {
	if quantity < 0 {
		quantity = 0
	}
	return Money{amount: m.amount * int64(quantity)}
}

// IsAtLeast reports whether the amount meets or exceeds the given threshold.
func (m Money) IsAtLeast(threshold Money) bool {
	return m.amount >= threshold.amount
}

// IsEqual reports whether two amounts are the same.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

// String formats the amount for logs and error messages.
func (m Money) String() string {
	return fmt.Sprintf("%d", m.amount)
}
