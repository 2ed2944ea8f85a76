package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarginRule_MarginFor_PercentAndFixed(t *testing.T) {
	rule := MarginRule{
		RuleID:        "r1",
		MarginPercent: NewMoney(10, 1),
		MarginFixed:   NewMoney(20, 1),
		Priority:      1,
		IsActive:      true,
	}

	margin := rule.MarginFor(NewMoney(1000, 1))
	assert.True(t, margin.Equals(NewMoney(120, 1)), "10%% of 1000 plus 20 fixed")
}

func TestMarginRule_MarginFor_NonPositiveTermsContributeNothing(t *testing.T) {
	// A rule cannot reduce the price: zero or negative effect fields are
	// simply ignored.
	rule := MarginRule{
		RuleID:        "r2",
		MarginPercent: NewMoney(-5, 1),
		MarginFixed:   NewMoney(0, 1),
	}
	assert.True(t, rule.MarginFor(NewMoney(1000, 1)).IsZero())

	onlyFixed := MarginRule{RuleID: "r3", MarginFixed: NewMoney(15, 1)}
	assert.True(t, onlyFixed.MarginFor(NewMoney(1000, 1)).Equals(NewMoney(15, 1)))

	unset := MarginRule{RuleID: "r4"}
	assert.True(t, unset.MarginFor(NewMoney(1000, 1)).IsZero())
}

func TestTopPriority(t *testing.T) {
	low := MarginRule{RuleID: "low", Priority: 1}
	high := MarginRule{RuleID: "high", Priority: 10}

	assert.Nil(t, TopPriority(nil))
	assert.Equal(t, "high", TopPriority([]MarginRule{low, high}).RuleID)
	assert.Equal(t, "high", TopPriority([]MarginRule{high, low}).RuleID)
}

func TestTopPriority_TieKeepsSourceOrder(t *testing.T) {
	first := MarginRule{RuleID: "first", Priority: 5}
	second := MarginRule{RuleID: "second", Priority: 5}

	assert.Equal(t, "first", TopPriority([]MarginRule{first, second}).RuleID)
}

func TestMarginRule_IsGlobal(t *testing.T) {
	assert.True(t, MarginRule{RuleID: "g"}.IsGlobal())

	days := int64(7)
	assert.False(t, MarginRule{RuleID: "d", MinAdvanceDays: &days}.IsGlobal())
}
