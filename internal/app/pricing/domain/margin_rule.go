package domain

// MarginRule is a configured markup policy. Rules are created and edited
// by operators outside this service; here they are read-only candidates
// for a single computation.
//
// The predicate fields are pointers: nil means wildcard on that
// dimension. Matching itself happens in the rule source query; the
// calculator only ranks whatever candidate list it is handed.
type MarginRule struct {
	RuleID         string
	MinAdvanceDays *int64
	Season         *string
	Category       *string

	// MarginPercent is on the 0-100 scale. Either effect field may be
	// nil or non-positive, in which case it contributes nothing; a rule
	// cannot reduce the price through this path.
	MarginPercent *Money
	MarginFixed   *Money

	Priority int64
	IsActive bool
}

// MarginFor computes the margin this rule yields on a base price.
// The percentage term applies only when the percent is positive, the
// fixed term only when the fixed amount is positive.
func (r MarginRule) MarginFor(basePrice *Money) *Money {
	margin := Zero()
	if r.MarginPercent != nil && r.MarginPercent.IsPositive() {
		margin = margin.Add(basePrice.Percent(r.MarginPercent))
	}
	if r.MarginFixed != nil && r.MarginFixed.IsPositive() {
		margin = margin.Add(r.MarginFixed)
	}
	return margin
}

// IsGlobal reports whether every predicate is a wildcard, i.e. the rule
// is unconditionally eligible.
func (r MarginRule) IsGlobal() bool {
	return r.MinAdvanceDays == nil && r.Season == nil && r.Category == nil
}

// TopPriority returns the rule with the numerically highest priority.
// On ties the earliest candidate wins, so a source that orders by
// priority descending keeps its ordering authoritative. Returns nil for
// an empty list.
func TopPriority(rules []MarginRule) *MarginRule {
	if len(rules) == 0 {
		return nil
	}
	best := 0
	for i := 1; i < len(rules); i++ {
		if rules[i].Priority > rules[best].Priority {
			best = i
		}
	}
	return &rules[best]
}
