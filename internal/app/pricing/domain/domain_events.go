package domain

import "time"

// DomainEvent is the marker interface for facts recorded in the outbox.
type DomainEvent interface {
	EventType() string
	AggregateID() string
	OccurredAt() time.Time
}

// PackagePricedEvent is raised when an itinerary's price is computed and
// its breakdown components are (re)persisted.
type PackagePricedEvent struct {
	ItineraryID string
	BasePrice   *Money
	Margin      *Money
	Tax         *Money
	TotalPrice  *Money
	Currency    string

	// AppliedRuleID is nil when the default margin was used.
	AppliedRuleID *string

	PricedAt time.Time
}

func (e *PackagePricedEvent) EventType() string {
	return "package.priced"
}

func (e *PackagePricedEvent) AggregateID() string {
	return e.ItineraryID
}

func (e *PackagePricedEvent) OccurredAt() time.Time {
	return e.PricedAt
}
