package m_margin_rule

import (
	"time"

	"cloud.google.com/go/spanner"
)

// BuildInsertMap prepares the canonical columns for a rule row. The
// predicate pointers keep NULL (wildcard) distinguishable from a set
// value; percent and fixed are decimal strings such as "12.5".
func BuildInsertMap(ruleID string, minAdvanceDays *int64, season, category *string,
	marginPercent, marginFixed *string, priority int64, isActive bool,
	createdAt, updatedAt time.Time) map[string]interface{} {

	m := map[string]interface{}{
		ColRuleID:    ruleID,
		ColPriority:  priority,
		ColIsActive:  isActive,
		ColCreatedAt: createdAt,
		ColUpdatedAt: updatedAt,
	}

	putNullableInt64(m, ColMinAdvanceDays, minAdvanceDays)
	putNullableString(m, ColSeason, season)
	putNullableString(m, ColCategory, category)
	putNullableString(m, ColMarginPercent, marginPercent)
	putNullableString(m, ColMarginFixed, marginFixed)

	return m
}

// InsertMutation builds a spanner.Insert for a margin rule.
func InsertMutation(values map[string]interface{}) *spanner.Mutation {
	cols := make([]string, 0, len(values))
	vals := make([]interface{}, 0, len(values))
	for c, v := range values {
		cols = append(cols, c)
		vals = append(vals, v)
	}
	return spanner.Insert(TableName, cols, vals)
}

func putNullableInt64(m map[string]interface{}, col string, v *int64) {
	if v != nil {
		m[col] = *v
	} else {
		m[col] = nil
	}
}

func putNullableString(m map[string]interface{}, col string, v *string) {
	if v != nil {
		m[col] = *v
	} else {
		m[col] = nil
	}
}
