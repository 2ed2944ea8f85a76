package candidate_rules

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/voyatra/package-pricing-service/internal/app/pricing/contracts"
	"github.com/voyatra/package-pricing-service/internal/app/pricing/domain"
)

// SpannerCandidateRulesQuery fetches the candidate margin rules for a
// booking context directly from Spanner.
//
// The predicate deliberately mirrors the historical rule-configuration
// semantics: the dimensions combine with OR, so a rule matching on
// advance days alone is eligible even when category and season differ,
// and a fully-NULL rule matches everything. Priority ranking downstream
// then decides among whatever matched.
type SpannerCandidateRulesQuery struct {
	Client *spanner.Client
}

func NewSpannerCandidateRulesQuery(client *spanner.Client) *SpannerCandidateRulesQuery {
	return &SpannerCandidateRulesQuery{Client: client}
}

func (q *SpannerCandidateRulesQuery) CandidateRules(ctx context.Context, match contracts.RuleMatch) ([]domain.MarginRule, error) {
	stmt := spanner.Statement{
		SQL: `SELECT rule_id, min_advance_days, season, category,
		             margin_percent, margin_fixed, priority, is_active
		      FROM margin_rules
		      WHERE is_active
		        AND (
		             (min_advance_days IS NOT NULL AND min_advance_days <= @advanceDays)
		          OR (category IS NOT NULL AND category = @category)
		          OR (season IS NOT NULL AND season = @season)
		          OR (min_advance_days IS NULL AND category IS NULL AND season IS NULL)
		        )
		      ORDER BY priority DESC`,
		Params: map[string]interface{}{
			"advanceDays": match.AdvanceDays,
			"category":    match.Category,
			"season":      match.Season,
		},
	}

	iter := q.Client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var rules []domain.MarginRule
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return rules, nil
		}
		if err != nil {
			return nil, err
		}

		rule, err := scanRule(row)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
}

func scanRule(row *spanner.Row) (domain.MarginRule, error) {
	var (
		ruleID         string
		minAdvanceDays spanner.NullInt64
		season         spanner.NullString
		category       spanner.NullString
		marginPercent  spanner.NullString
		marginFixed    spanner.NullString
		priority       int64
		isActive       bool
	)

	if err := row.Columns(&ruleID, &minAdvanceDays, &season, &category,
		&marginPercent, &marginFixed, &priority, &isActive); err != nil {
		return domain.MarginRule{}, err
	}

	rule := domain.MarginRule{
		RuleID:   ruleID,
		Priority: priority,
		IsActive: isActive,
	}

	if minAdvanceDays.Valid {
		v := minAdvanceDays.Int64
		rule.MinAdvanceDays = &v
	}
	if season.Valid {
		v := season.StringVal
		rule.Season = &v
	}
	if category.Valid {
		v := category.StringVal
		rule.Category = &v
	}

	if marginPercent.Valid && marginPercent.StringVal != "" {
		m, err := domain.NewMoneyFromDecimal(marginPercent.StringVal)
		if err != nil {
			return domain.MarginRule{}, fmt.Errorf("rule %s margin_percent: %w", ruleID, err)
		}
		rule.MarginPercent = m
	}
	if marginFixed.Valid && marginFixed.StringVal != "" {
		m, err := domain.NewMoneyFromDecimal(marginFixed.StringVal)
		if err != nil {
			return domain.MarginRule{}, fmt.Errorf("rule %s margin_fixed: %w", ruleID, err)
		}
		rule.MarginFixed = m
	}

	return rule, nil
}
