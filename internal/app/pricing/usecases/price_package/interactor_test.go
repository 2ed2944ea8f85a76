package price_package

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyatra/package-pricing-service/internal/app/pricing/contracts"
	"github.com/voyatra/package-pricing-service/internal/app/pricing/domain"
	"github.com/voyatra/package-pricing-service/internal/app/pricing/repo"
	"github.com/voyatra/package-pricing-service/internal/app/pricing/usecases/quote_package"
	"github.com/voyatra/package-pricing-service/internal/pkg/clock"
	commitplan "github.com/voyatra/package-pricing-service/internal/pkg/committer"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

type ruleSourceStub struct {
	rules []domain.MarginRule
}

func (s *ruleSourceStub) CandidateRules(context.Context, contracts.RuleMatch) ([]domain.MarginRule, error) {
	return s.rules, nil
}

type committerSpy struct {
	applied []*commitplan.Plan
	err     error
}

func (c *committerSpy) Apply(_ context.Context, plan *commitplan.Plan) error {
	c.applied = append(c.applied, plan)
	return c.err
}

func newTestInteractor(rules []domain.MarginRule, cm contracts.Committer) *Interactor {
	clk := clock.NewFake(testNow)
	quote := quote_package.NewInteractor(&ruleSourceStub{rules: rules}, clk)
	return NewInteractor(quote, repo.NewComponentRepo(clk), repo.NewOutboxRepo(), cm, clk)
}

func TestExecute_PersistsBreakdownAndOutboxInOnePlan(t *testing.T) {
	cm := &committerSpy{}
	it := newTestInteractor(nil, cm)

	calc, err := it.Execute(context.Background(), Request{
		ItineraryID: "itn-1",
		Quote: quote_package.Request{
			FlightPrice:   "150",
			HotelPrice:    "700",
			TransferPrice: "50",
			CheckInDate:   testNow.AddDate(0, 0, 21),
		},
	})
	require.NoError(t, err)
	require.NotNil(t, calc)
	assert.True(t, calc.TotalPrice.Equals(domain.NewMoney(1188, 1)))

	// One atomic plan: delete + 5 component inserts + 1 outbox insert.
	require.Len(t, cm.applied, 1)
	assert.Len(t, cm.applied[0].Mutations(), len(calc.Breakdown.Components)+2)
}

func TestExecute_RecordsAppliedRuleInEvent(t *testing.T) {
	cm := &committerSpy{}
	rules := []domain.MarginRule{
		{RuleID: "early-bird", Priority: 7, MarginPercent: domain.NewMoney(12, 1), IsActive: true},
	}
	it := newTestInteractor(rules, cm)

	calc, err := it.Execute(context.Background(), Request{
		ItineraryID: "itn-2",
		Quote: quote_package.Request{
			FlightPrice: "1000",
			CheckInDate: testNow.AddDate(0, 0, 45),
		},
	})
	require.NoError(t, err)
	require.Len(t, calc.AppliedRules, 1)
	assert.Equal(t, "early-bird", calc.AppliedRules[0].RuleID)
	require.Len(t, cm.applied, 1)
}

func TestExecute_InvalidInputCommitsNothing(t *testing.T) {
	cm := &committerSpy{}
	it := newTestInteractor(nil, cm)

	_, err := it.Execute(context.Background(), Request{
		ItineraryID: "itn-3",
		Quote: quote_package.Request{
			FlightPrice: "-1",
			CheckInDate: testNow.AddDate(0, 0, 7),
		},
	})
	assert.ErrorIs(t, err, domain.ErrNegativePrice)
	assert.Empty(t, cm.applied, "nothing must reach the committer on invalid input")
}

func TestExecute_CommitFailurePropagates(t *testing.T) {
	cm := &committerSpy{err: context.DeadlineExceeded}
	it := newTestInteractor(nil, cm)

	_, err := it.Execute(context.Background(), Request{
		ItineraryID: "itn-4",
		Quote: quote_package.Request{
			FlightPrice: "100",
			CheckInDate: testNow.AddDate(0, 0, 7),
		},
	})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
