package debtservice

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value, used for display only.
//
// Computations are done in float64 (see Payment) and converted to Money at
// the edges.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M returns a Money of value in the given currency.
func M[T float64 | int | int64 | decimal.Decimal](value T, currency string) Money {
	var v decimal.Decimal
	switch x := any(value).(type) {
	case float64:
		v = decimal.NewFromFloat(x)
	case int:
		v = decimal.NewFromInt(int64(x))
	case int64:
		v = decimal.NewFromInt(x)
	case decimal.Decimal:
		v = x
	}
	return Money{value: v, cur: currency}
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the value formatted in its currency, rounded to the currency's fraction.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(dec.IntPart())
}

// IsZero reports whether m is a zero amount.
func (m Money) IsZero() bool { return m.value.IsZero() }
