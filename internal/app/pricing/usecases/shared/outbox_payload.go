package shared

import (
	"encoding/json"
	"fmt"

	"github.com/voyatra/package-pricing-service/internal/app/pricing/domain"
)

// MarshalDomainEventPayload converts a domain event into the JSON
// payload stored in the outbox. The domain layer stays free of
// serialization concerns; amounts are extracted here as two-decimal
// strings for downstream consumers (invoicing, analytics).
func MarshalDomainEventPayload(ev domain.DomainEvent) (string, error) {
	if ev == nil {
		return "{}", nil
	}

	switch e := ev.(type) {
	case *domain.PackagePricedEvent:
		payload := map[string]interface{}{
			"itinerary_id": e.ItineraryID,
			"base_price":   e.BasePrice.String(),
			"margin":       e.Margin.String(),
			"tax":          e.Tax.String(),
			"total_price":  e.TotalPrice.String(),
			"currency":     e.Currency,
			"priced_at":    e.PricedAt,
		}
		if e.AppliedRuleID != nil {
			payload["applied_rule_id"] = *e.AppliedRuleID
		}
		b, err := json.Marshal(payload)
		return string(b), err
	}

	b, err := json.Marshal(ev)
	if err != nil {
		return "", fmt.Errorf("marshal outbox payload for %T: %w", ev, err)
	}
	return string(b), nil
}
