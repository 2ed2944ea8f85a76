package queries

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/voyatra/package-pricing-service/internal/app/pricing/contracts"
	"github.com/voyatra/package-pricing-service/internal/app/pricing/domain"
	"github.com/voyatra/package-pricing-service/internal/app/pricing/queries/candidate_rules"
	"github.com/voyatra/package-pricing-service/internal/app/pricing/queries/get_breakdown"
)

// SpannerReadModel is the infrastructure adapter composing the
// individual query implementations. It satisfies both contracts.ReadModel
// and contracts.RuleSource.
type SpannerReadModel struct {
	rulesQ     *candidate_rules.SpannerCandidateRulesQuery
	breakdownQ *get_breakdown.SpannerBreakdownQuery
}

func NewSpannerReadModel(client *spanner.Client) *SpannerReadModel {
	return &SpannerReadModel{
		rulesQ:     candidate_rules.NewSpannerCandidateRulesQuery(client),
		breakdownQ: get_breakdown.NewSpannerBreakdownQuery(client),
	}
}

func (rm *SpannerReadModel) CandidateRules(ctx context.Context, match contracts.RuleMatch) ([]domain.MarginRule, error) {
	return rm.rulesQ.CandidateRules(ctx, match)
}

func (rm *SpannerReadModel) LoadBreakdown(ctx context.Context, itineraryID string) (*domain.PriceBreakdown, error) {
	return rm.breakdownQ.LoadBreakdown(ctx, itineraryID)
}
