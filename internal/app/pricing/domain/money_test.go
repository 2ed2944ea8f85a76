package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoneyFromDecimal(t *testing.T) {
	m, err := NewMoneyFromDecimal("149.99")
	require.NoError(t, err)
	assert.Equal(t, "149.99", m.String())
	assert.True(t, m.Equals(NewMoney(14999, 100)))
}

func TestNewMoneyFromDecimal_RejectsMalformedInput(t *testing.T) {
	for _, s := range []string{"", "abc", "NaN", "Inf", "-Inf", "12..3"} {
		_, err := NewMoneyFromDecimal(s)
		assert.ErrorIs(t, err, ErrInvalidPriceFormat, "input %q", s)
	}
}

func TestNewMoney_PanicsOnZeroDenominator(t *testing.T) {
	assert.Panics(t, func() { NewMoney(1, 0) })
}

func TestMoney_Arithmetic(t *testing.T) {
	a := NewMoney(100, 1)
	b := NewMoney(2550, 100) // 25.50

	sum := a.Add(b)
	assert.Equal(t, "125.50", sum.String())

	diff := sum.Sub(b)
	assert.True(t, diff.Equals(a))

	// Operands stay untouched.
	assert.Equal(t, "100.00", a.String())
}

func TestMoney_PercentIsExact(t *testing.T) {
	base := NewMoney(1000, 1)

	// 10% of 1000 must be exactly 100, not a float approximation.
	tenPct := base.Percent(NewMoney(10, 1))
	assert.True(t, tenPct.Equals(NewMoney(100, 1)))

	// 20% VAT of 990 is exactly 198.
	vat := NewMoney(990, 1).Percent(NewMoney(20, 1))
	assert.True(t, vat.Equals(NewMoney(198, 1)))
}

func TestMoney_Signs(t *testing.T) {
	assert.True(t, Zero().IsZero())
	assert.True(t, NewMoney(-1, 1).IsNegative())
	assert.True(t, NewMoney(1, 100).IsPositive())
	assert.False(t, Zero().IsPositive())
	assert.False(t, Zero().IsNegative())
}

func TestMoney_PersistenceRoundTrip(t *testing.T) {
	m, err := NewMoneyFromDecimal("1188.40")
	require.NoError(t, err)

	back := NewMoney(m.Numerator(), m.Denominator())
	assert.True(t, m.Equals(back))
}
