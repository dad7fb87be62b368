package debtservice

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Percent is a rate expressed in percent: 3.861 means 3.861%.
type Percent float64

// Equal compares two rates with a precision finer than the displayed one.
func (p Percent) Equal(q Percent) bool {
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

// Rate returns the rate as a fraction: 3.861% is 0.03861.
func (p Percent) Rate() float64 { return float64(p) / 100 }

// Round returns the rate rounded to the given number of decimals.
func (p Percent) Round(places int32) Percent {
	return Percent(Round(float64(p), places))
}

func (p Percent) String() string {
	return fmt.Sprintf("%s%%", decimal.NewFromFloat(float64(p)).Round(3).String())
}

// Round rounds x half away from zero to the given number of decimals.
//
// It goes through a decimal so that 2.675 rounds to 2.68, as written, and not
// to the 2.67 a binary float64 would produce.
func Round(x float64, places int32) float64 {
	return decimal.NewFromFloat(x).Round(places).InexactFloat64()
}
