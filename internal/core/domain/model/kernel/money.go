package kernel

import (
	"fmt"

	"checkout/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// moneyScale is the number of fraction digits monetary amounts are rounded
// and displayed at.
const moneyScale = 2

// Money is a value object representing a non-negative monetary amount in the
// store's single currency. It wraps github.com/shopspring/decimal to keep
// price arithmetic exact.
//
// Rounding rule: wherever an operation can produce more than two fraction
// digits (percentage discounts), the result is rounded half-to-even
// (banker's rounding) to two digits. Display formatting always renders two
// fraction digits.
//
// Unlike most kernel value objects, the zero value of Money is valid and
// means exactly 0.00: an order's derived amounts are zero until its total
// has been calculated.
//
// Example usage:
//
//	price, err := kernel.MoneyFromString("85.00")
//	if err != nil {
//	    // handle error
//	}
//	lineTotal := price.MulInt(2) // 170.00
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates a Money from a decimal amount.
// Returns an error if the amount is negative.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is negative", amount))
	}
	return Money{amount: amount}, nil
}

// MoneyFromString parses a Money from its decimal string representation.
// Returns an error if the string is not a valid decimal or is negative.
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(amount)
}

// MustMoney parses a Money from a string and panics on failure.
// Intended for fixed policy constants and test fixtures only.
func MustMoney(s string) Money {
	m, err := MoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

// ZeroMoney returns a Money of exactly 0.00.
func ZeroMoney() Money {
	return Money{}
}

// Decimal returns the underlying decimal amount. It exists for persistence
// adapters; domain code should use the Money operations instead.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns the difference of two amounts.
// Returns an error if the result would be negative.
func (m Money) Sub(other Money) (Money, error) {
	result := m.amount.Sub(other.amount)
	if result.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s - %s is negative", m.amount, other.amount))
	}
	return Money{amount: result}, nil
}

// MulInt returns the amount multiplied by a non-negative integer quantity.
func (m Money) MulInt(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

// Percent returns the given percentage of the amount, rounded half-to-even
// to two fraction digits. A percentage of 25 yields a quarter of the amount.
func (m Money) Percent(percentage decimal.Decimal) Money {
	return Money{
		amount: m.amount.Mul(percentage).
			Div(decimal.NewFromInt(100)).
			RoundBank(moneyScale),
	}
}

// Min returns the smaller of two amounts.
func (m Money) Min(other Money) Money {
	if m.amount.GreaterThan(other.amount) {
		return other
	}
	return m
}

// Cmp compares two amounts. It returns -1, 0, or 1 when m is respectively
// less than, equal to, or greater than other.
func (m Money) Cmp(other Money) int {
	return m.amount.Cmp(other.amount)
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual compares two amounts for numeric equality, ignoring scale.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String renders the amount with exactly two fraction digits.
// This is the display format used by order and delivery summaries.
func (m Money) String() string {
	return m.amount.StringFixed(moneyScale)
}
