package price_package

import (
	"context"

	"github.com/google/uuid"

	"github.com/voyatra/package-pricing-service/internal/app/pricing/contracts"
	"github.com/voyatra/package-pricing-service/internal/app/pricing/domain"
	"github.com/voyatra/package-pricing-service/internal/app/pricing/usecases/quote_package"
	"github.com/voyatra/package-pricing-service/internal/app/pricing/usecases/shared"
	"github.com/voyatra/package-pricing-service/internal/pkg/clock"
	commitplan "github.com/voyatra/package-pricing-service/internal/pkg/committer"
)

// Request prices one itinerary and persists the result.
type Request struct {
	ItineraryID string
	Quote       quote_package.Request
}

// Interactor computes the package price, replaces the itinerary's stored
// breakdown components and records a package.priced outbox event, all in
// one commit plan.
type Interactor struct {
	Quote         *quote_package.Interactor
	ComponentRepo contracts.ComponentRepo
	OutboxRepo    contracts.OutboxRepo
	Committer     contracts.Committer
	Clock         clock.Clock
}

func NewInteractor(quote *quote_package.Interactor, components contracts.ComponentRepo,
	outbox contracts.OutboxRepo, committer contracts.Committer, clk clock.Clock) *Interactor {
	return &Interactor{
		Quote:         quote,
		ComponentRepo: components,
		OutboxRepo:    outbox,
		Committer:     committer,
		Clock:         clk,
	}
}

func (it *Interactor) Execute(ctx context.Context, req Request) (*domain.PackageCalculation, error) {
	now := it.Clock.Now()

	// 1. Compute. The quote interactor owns validation and rule fetch.
	calc, err := it.Quote.Execute(ctx, req.Quote)
	if err != nil {
		return nil, err
	}

	// 2. Build the commit plan: component replacement first, then the
	// outbox event describing the fresh price.
	plan := commitplan.NewPlan()
	plan.AddAll(it.ComponentRepo.ReplaceMuts(req.ItineraryID, calc.Breakdown))

	ev := &domain.PackagePricedEvent{
		ItineraryID: req.ItineraryID,
		BasePrice:   calc.BasePrice,
		Margin:      calc.Margin,
		Tax:         calc.Tax,
		TotalPrice:  calc.TotalPrice,
		Currency:    calc.Currency,
		PricedAt:    now,
	}
	if len(calc.AppliedRules) > 0 {
		ruleID := calc.AppliedRules[0].RuleID
		ev.AppliedRuleID = &ruleID
	}

	payload, err := shared.MarshalDomainEventPayload(ev)
	if err != nil {
		return nil, err
	}
	plan.Add(it.OutboxRepo.InsertMut(&contracts.OutboxEvent{
		EventID:      uuid.New().String(),
		EventType:    ev.EventType(),
		AggregateID:  ev.AggregateID(),
		PayloadJSON:  payload,
		Status:       "pending",
		CreatedAtUTC: now,
	}))

	// 3. Apply atomically.
	if err := it.Committer.Apply(ctx, plan); err != nil {
		return nil, err
	}
	return calc, nil
}
