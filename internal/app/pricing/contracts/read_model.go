package contracts

import (
	"context"

	"github.com/voyatra/package-pricing-service/internal/app/pricing/domain"
)

// ReadModel is the read side over stored pricing data.
type ReadModel interface {
	// LoadBreakdown reconstructs the stored breakdown for an itinerary
	// using the same aggregation formulas as the calculator, so stored
	// and freshly computed breakdowns agree exactly. Returns
	// domain.ErrBreakdownNotFound when nothing is stored for the key.
	LoadBreakdown(ctx context.Context, itineraryID string) (*domain.PriceBreakdown, error)
}
