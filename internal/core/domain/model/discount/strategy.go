// Package discount provides the pluggable discount policies applied to an
// order's subtotal. The variant set is small and fixed, so the policies are
// a closed set of value types behind one capability interface rather than an
// open hierarchy.
package discount

import (
	"checkout/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// Strategy computes the absolute discount amount for a subtotal.
//
// Contract: for every subtotal s, 0 <= Apply(s) <= s. Each variant keeps the
// discount within these bounds so the post-discount amount never goes
// negative.
type Strategy interface {
	Apply(subtotal kernel.Money) kernel.Money
}

// NoDiscount is the no-op policy: the discount is always zero.
// It is the default policy of a freshly created order.
type NoDiscount struct{}

// NewNoDiscount creates the no-op discount policy.
func NewNoDiscount() NoDiscount {
	return NoDiscount{}
}

// Apply returns zero for any subtotal.
func (NoDiscount) Apply(kernel.Money) kernel.Money {
	return kernel.ZeroMoney()
}

// PercentageDiscount subtracts a fixed percentage of the subtotal.
// Percentages between 0 and 100 are expected but not enforced, matching the
// pricing policy this engine models.
type PercentageDiscount struct {
	percentage decimal.Decimal
}

// NewPercentageDiscount creates a percentage discount policy.
// A percentage of 25 discounts a quarter of the subtotal.
func NewPercentageDiscount(percentage decimal.Decimal) PercentageDiscount {
	return PercentageDiscount{percentage: percentage}
}

// Apply returns subtotal * percentage / 100, rounded half-to-even to two
// fraction digits.
func (d PercentageDiscount) Apply(subtotal kernel.Money) kernel.Money {
	return subtotal.Percent(d.percentage)
}

// Percentage returns the configured percentage.
func (d PercentageDiscount) Percentage() decimal.Decimal {
	return d.percentage
}

// FixedAmountDiscount subtracts a fixed amount, capped at the subtotal so
// the discount can never exceed what is being discounted.
type FixedAmountDiscount struct {
	amount kernel.Money
}

// NewFixedAmountDiscount creates a fixed-amount discount policy.
func NewFixedAmountDiscount(amount kernel.Money) FixedAmountDiscount {
	return FixedAmountDiscount{amount: amount}
}

// Apply returns min(subtotal, amount).
func (d FixedAmountDiscount) Apply(subtotal kernel.Money) kernel.Money {
	return subtotal.Min(d.amount)
}

// Amount returns the configured discount cap.
func (d FixedAmountDiscount) Amount() kernel.Money {
	return d.amount
}
