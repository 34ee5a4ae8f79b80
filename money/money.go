// Package money implements fixed-point monetary amounts in integer minor
// units (cents). All arithmetic inside the SDK happens on Amount values;
// decimal and floating-point representations exist only at the display and
// parse edges.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// exponent is the number of minor-unit digits. The platform prices
// everything in cents regardless of currency.
const exponent = 2

// Amount is a monetary amount in minor units.
type Amount int64

// Zero is the zero amount.
const Zero Amount = 0

// Sum adds up amounts. Summing in int64 keeps totals exact no matter how
// deeply an order tree nests.
func Sum(amounts ...Amount) Amount {
	var total Amount
	for _, a := range amounts {
		total += a
	}
	return total
}

// Mul scales an amount by an integer count.
func (a Amount) Mul(count int) Amount {
	return a * Amount(count)
}

// IsZero reports whether the amount is zero.
func (a Amount) IsZero() bool {
	return a == 0
}

// Decimal returns the amount in major units as an exact decimal, e.g.
// Amount(1350) -> 13.50.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.New(int64(a), -exponent)
}

// Float64 returns the amount in major units as a float64. The conversion is
// a final step for display; never feed the result back into price math.
func (a Amount) Float64() float64 {
	f, _ := a.Decimal().Float64()
	return f
}

// String formats the amount in major units, e.g. "13.50".
func (a Amount) String() string {
	return a.Decimal().StringFixed(exponent)
}

// FromDecimal converts a major-unit decimal to an Amount. It fails if the
// value carries sub-minor-unit precision, which would silently lose money.
func FromDecimal(d decimal.Decimal) (Amount, error) {
	shifted := d.Shift(exponent)
	if !shifted.IsInteger() {
		return 0, fmt.Errorf("amount %s has sub-minor-unit precision", d)
	}
	return Amount(shifted.IntPart()), nil
}

// FromMajor parses a major-unit string such as "13.50" into an Amount.
func FromMajor(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", s, err)
	}
	return FromDecimal(d)
}
