// Package types provides shared value types.
package types

import (
	"github.com/shopspring/decimal"
)

// Money is a monetary or fractional-quantity value with full precision.
// Prices, discounts, order totals and ordered quantities all use Money to
// avoid floating-point drift in settlement math.
type Money = decimal.Decimal

// NewMoneyFromString creates a Money value from its decimal string form.
// Preferred over float conversion for anything persisted.
func NewMoneyFromString(s string) (Money, error) {
	return decimal.NewFromString(s)
}

// NewMoneyFromInt creates a Money value from an integer unit count.
func NewMoneyFromInt(n int64) Money {
	return decimal.NewFromInt(n)
}

// MustMoney creates a Money value from a string, panicking on error.
// Only for constants and tests.
func MustMoney(s string) Money {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Zero returns the zero Money value.
func Zero() Money {
	return decimal.Zero
}
