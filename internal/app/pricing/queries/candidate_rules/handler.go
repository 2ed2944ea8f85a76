package candidate_rules

import (
	"context"

	"github.com/voyatra/package-pricing-service/internal/app/pricing/contracts"
	"github.com/voyatra/package-pricing-service/internal/app/pricing/domain"
)

// Handler exposes candidate-rule lookup to the transport layer, mainly
// as an operator debugging surface.
type Handler struct {
	rules contracts.RuleSource
}

func NewHandler(rules contracts.RuleSource) *Handler {
	return &Handler{rules: rules}
}

func (h *Handler) Execute(ctx context.Context, match contracts.RuleMatch) ([]domain.MarginRule, error) {
	return h.rules.CandidateRules(ctx, match)
}
