package domain

import (
	"fmt"
	"math/big"
)

// Money is an exact decimal amount backed by big.Rat, so breakdown
// invariants hold without floating-point tolerance. Money is immutable;
// every operation returns a new instance.
type Money struct {
	amount *big.Rat
}

// NewMoney creates Money from a numerator/denominator pair, the form the
// amounts are persisted in. NewMoney(14999, 100) is 149.99.
func NewMoney(numerator, denominator int64) *Money {
	if denominator == 0 {
		panic("money: denominator cannot be zero")
	}
	return &Money{amount: big.NewRat(numerator, denominator)}
}

// NewMoneyFromDecimal parses a decimal string such as "149.99" or "0.1".
// Non-finite or otherwise malformed input is rejected.
func NewMoneyFromDecimal(decimal string) (*Money, error) {
	rat := new(big.Rat)
	if _, ok := rat.SetString(decimal); !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPriceFormat, decimal)
	}
	return &Money{amount: rat}, nil
}

// NewMoneyFromRat copies an existing big.Rat into Money.
func NewMoneyFromRat(rat *big.Rat) *Money {
	if rat == nil {
		return Zero()
	}
	return &Money{amount: new(big.Rat).Set(rat)}
}

// Zero returns a zero amount.
func Zero() *Money {
	return &Money{amount: big.NewRat(0, 1)}
}

// Add returns m + other.
func (m *Money) Add(other *Money) *Money {
	return &Money{amount: new(big.Rat).Add(m.amount, other.amount)}
}

// Sub returns m - other.
func (m *Money) Sub(other *Money) *Money {
	return &Money{amount: new(big.Rat).Sub(m.amount, other.amount)}
}

// Percent treats p as a percentage on the 0-100 scale and returns
// m * p / 100. Percentages are Money values themselves so that margin
// and VAT arithmetic stays exact.
func (m *Money) Percent(p *Money) *Money {
	r := new(big.Rat).Mul(m.amount, p.amount)
	r.Quo(r, big.NewRat(100, 1))
	return &Money{amount: r}
}

// IsZero reports whether the amount is zero.
func (m *Money) IsZero() bool {
	return m.amount.Sign() == 0
}

// IsNegative reports whether the amount is below zero.
func (m *Money) IsNegative() bool {
	return m.amount.Sign() < 0
}

// IsPositive reports whether the amount is above zero.
func (m *Money) IsPositive() bool {
	return m.amount.Sign() > 0
}

// Equals reports exact equality with other.
func (m *Money) Equals(other *Money) bool {
	if other == nil {
		return false
	}
	return m.amount.Cmp(other.amount) == 0
}

// Numerator returns the numerator of the reduced internal fraction.
// Used for persistence.
func (m *Money) Numerator() int64 {
	return m.amount.Num().Int64()
}

// Denominator returns the denominator of the reduced internal fraction.
// Used for persistence.
func (m *Money) Denominator() int64 {
	return m.amount.Denom().Int64()
}

// Rat returns a copy of the internal big.Rat.
func (m *Money) Rat() *big.Rat {
	return new(big.Rat).Set(m.amount)
}

// Float64 converts to float64 for display only; it may lose precision.
func (m *Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

// String renders the amount with two decimal places.
func (m *Money) String() string {
	return m.amount.FloatString(2)
}

// FloatString renders the amount with the given number of decimal places.
func (m *Money) FloatString(precision int) string {
	return m.amount.FloatString(precision)
}
