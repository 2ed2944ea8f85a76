package e2e

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyatra/package-pricing-service/internal/app/pricing/domain"
	"github.com/voyatra/package-pricing-service/internal/app/pricing/usecases/price_package"
	"github.com/voyatra/package-pricing-service/internal/app/pricing/usecases/quote_package"
	"github.com/voyatra/package-pricing-service/internal/models/m_margin_rule"
)

func seedRule(ctx context.Context, t *testing.T, ruleID string, minAdvanceDays *int64,
	season, category *string, percent, fixed *string, priority int64, active bool) {
	t.Helper()
	values := m_margin_rule.BuildInsertMap(ruleID, minAdvanceDays, season, category,
		percent, fixed, priority, active, clk.Now(), clk.Now())
	_, err := spClient.Apply(ctx, []*spanner.Mutation{m_margin_rule.InsertMutation(values)})
	require.NoError(t, err)
}

func i64(v int64) *int64   { return &v }
func str(v string) *string { return &v }

func TestPackagePricingFlow(t *testing.T) {
	requireEmulator(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Two candidates: the early-bird rule outranks the category rule.
	seedRule(ctx, t, "early-bird-15", i64(14), nil, nil, str("15"), nil, 10, true)
	seedRule(ctx, t, "beach-5", nil, nil, str("beach"), str("5"), nil, 1, true)

	const itineraryID = "itn-e2e-flow"
	calc, err := priceUC.Execute(ctx, price_package.Request{
		ItineraryID: itineraryID,
		Quote: quote_package.Request{
			FlightPrice:   "150",
			HotelPrice:    "700",
			TransferPrice: "50",
			CheckInDate:   clk.Now().Add(30 * 24 * time.Hour),
			Category:      "beach",
		},
	})
	require.NoError(t, err)

	// 900 base, 15% margin, 20% VAT on the marked-up amount.
	assert.Equal(t, "900.00", calc.BasePrice.String())
	assert.Equal(t, "135.00", calc.Margin.String())
	assert.Equal(t, "207.00", calc.Tax.String())
	assert.Equal(t, "1242.00", calc.TotalPrice.String())
	require.Len(t, calc.AppliedRules, 1)
	assert.Equal(t, "early-bird-15", calc.AppliedRules[0].RuleID)

	// The stored breakdown reconstructs to the same lines and totals.
	stored, err := readModel.LoadBreakdown(ctx, itineraryID)
	require.NoError(t, err)
	require.Len(t, stored.Components, len(calc.Breakdown.Components))
	for i, c := range calc.Breakdown.Components {
		assert.Equal(t, c.Type, stored.Components[i].Type)
		assert.Equal(t, c.TotalPrice.String(), stored.Components[i].TotalPrice.String())
	}
	assert.Equal(t, calc.Breakdown.GrandTotal.String(), stored.GrandTotal.String())

	events := mustFetchOutboxEvents(ctx, t, spClient, itineraryID)
	require.Len(t, events, 1)
	assert.Equal(t, "package.priced", events[0].EventType)
	assert.Equal(t, "pending", events[0].Status)

	payload := events[0].payloadMap(t)
	assert.Equal(t, "1242.00", payload["total_price"])
	assert.Equal(t, "early-bird-15", payload["applied_rule_id"])
}

func TestRepriceReplacesStoredComponents(t *testing.T) {
	requireEmulator(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	const itineraryID = "itn-e2e-reprice"
	checkIn := clk.Now().Add(3 * 24 * time.Hour)

	_, err := priceUC.Execute(ctx, price_package.Request{
		ItineraryID: itineraryID,
		Quote: quote_package.Request{
			FlightPrice:   "100",
			HotelPrice:    "400",
			TransferPrice: "25",
			CheckInDate:   checkIn,
			Category:      "safari",
		},
	})
	require.NoError(t, err)

	first, err := readModel.LoadBreakdown(ctx, itineraryID)
	require.NoError(t, err)
	require.Len(t, first.Components, 5)

	// Re-price with fewer components; the old rows must be gone.
	second, err := priceUC.Execute(ctx, price_package.Request{
		ItineraryID: itineraryID,
		Quote: quote_package.Request{
			FlightPrice: "100",
			CheckInDate: checkIn,
			Category:    "safari",
		},
	})
	require.NoError(t, err)

	stored, err := readModel.LoadBreakdown(ctx, itineraryID)
	require.NoError(t, err)
	require.Len(t, stored.Components, 3)
	assert.Equal(t, second.TotalPrice.String(), stored.GrandTotal.String())

	events := mustFetchOutboxEvents(ctx, t, spClient, itineraryID)
	assert.Len(t, events, 2)
}

func TestDefaultMarginWhenNoRuleMatches(t *testing.T) {
	requireEmulator(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Three days out, unmatched category and season: none of the seeded
	// rules apply, so the flat default margin kicks in.
	calc, err := quoteUC.Execute(ctx, quote_package.Request{
		FlightPrice: "1000",
		CheckInDate: clk.Now().Add(3 * 24 * time.Hour),
		Category:    "expedition",
		Season:      "monsoon",
	})
	require.NoError(t, err)

	assert.Equal(t, "100.00", calc.Margin.String())
	assert.Equal(t, "220.00", calc.Tax.String())
	assert.Equal(t, "1320.00", calc.TotalPrice.String())
	assert.Empty(t, calc.AppliedRules)
}

func TestInactiveRuleIsIgnored(t *testing.T) {
	requireEmulator(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	seedRule(ctx, t, "retired-ski-50", nil, nil, str("ski"), str("50"), nil, 99, false)

	calc, err := quoteUC.Execute(ctx, quote_package.Request{
		FlightPrice: "200",
		CheckInDate: clk.Now().Add(2 * 24 * time.Hour),
		Category:    "ski",
	})
	require.NoError(t, err)

	// Default margin, not the retired 50%.
	assert.Equal(t, "20.00", calc.Margin.String())
	assert.Empty(t, calc.AppliedRules)
}

func TestBreakdownMissingForUnknownItinerary(t *testing.T) {
	requireEmulator(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err := readModel.LoadBreakdown(ctx, "itn-never-priced")
	assert.ErrorIs(t, err, domain.ErrBreakdownNotFound)
}
