package contracts

import (
	"cloud.google.com/go/spanner"

	"github.com/voyatra/package-pricing-service/internal/app/pricing/domain"
)

// ComponentRepo is the write-side repository for stored breakdown
// components. Methods return Spanner mutations; they never apply them.
type ComponentRepo interface {
	// ReplaceMuts returns the mutations that replace all components
	// stored for the itinerary with the breakdown's components. Full
	// replace semantics: prior rows for the key are deleted, never
	// merged or appended to.
	ReplaceMuts(itineraryID string, b domain.PriceBreakdown) []*spanner.Mutation
}
