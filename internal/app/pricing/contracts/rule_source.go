package contracts

import (
	"context"

	"github.com/voyatra/package-pricing-service/internal/app/pricing/domain"
)

// RuleMatch is the booking context candidate rules are matched against.
type RuleMatch struct {
	AdvanceDays int64
	Category    string
	Season      string
}

// RuleSource supplies the pre-filtered candidate margin rules for a
// booking context: active rules whose advance-days threshold, category
// or season matches, or fully-wildcard rules, ordered by priority
// descending. The calculator trusts this filtering and only ranks the
// list it receives.
type RuleSource interface {
	CandidateRules(ctx context.Context, match RuleMatch) ([]domain.MarginRule, error)
}
