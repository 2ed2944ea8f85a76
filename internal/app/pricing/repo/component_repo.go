package repo

import (
	"time"

	"cloud.google.com/go/spanner"

	"github.com/voyatra/package-pricing-service/internal/app/pricing/domain"
	"github.com/voyatra/package-pricing-service/internal/models/m_price_component"
	"github.com/voyatra/package-pricing-service/internal/pkg/clock"
)

// ComponentRepo is the Spanner implementation of the component
// write-side repository. It returns mutations but never applies them.
type ComponentRepo struct {
	clk clock.Clock
}

func NewComponentRepo(clk clock.Clock) *ComponentRepo {
	return &ComponentRepo{clk: clk}
}

// buildInsertValues constructs the values map for one breakdown line.
// Unexported so tests can inspect the map without reaching into
// spanner.Mutation internals.
func buildInsertValues(itineraryID string, position int64, c domain.PriceComponent, createdAt time.Time) map[string]interface{} {
	return m_price_component.BuildInsertMap(
		itineraryID,
		position,
		string(c.Type),
		c.NetPrice.Numerator(), c.NetPrice.Denominator(),
		c.MarginAmount.Numerator(), c.MarginAmount.Denominator(),
		c.TaxAmount.Numerator(), c.TaxAmount.Denominator(),
		c.Currency,
		createdAt.UTC(),
	)
}

// ReplaceMuts deletes every stored row for the itinerary and inserts the
// breakdown's lines in order. Full replace, never merge: pricing the
// same itinerary again leaves only the fresh rows.
func (r *ComponentRepo) ReplaceMuts(itineraryID string, b domain.PriceBreakdown) []*spanner.Mutation {
	now := r.clk.Now()

	muts := make([]*spanner.Mutation, 0, len(b.Components)+1)
	muts = append(muts, m_price_component.DeleteByItineraryMutation(itineraryID))
	for i, c := range b.Components {
		values := buildInsertValues(itineraryID, int64(i), c, now)
		muts = append(muts, m_price_component.InsertMutation(values))
	}
	return muts
}
