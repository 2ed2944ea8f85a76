package m_outbox

import (
	"time"

	"cloud.google.com/go/spanner"
)

// BuildInsertMap prepares the columns for one outbox row. processed_at
// starts NULL; the relay stamps it once the event is published.
func BuildInsertMap(eventID, eventType, aggregateID, payload, status string, createdAt time.Time) map[string]interface{} {
	return map[string]interface{}{
		ColEventID:     eventID,
		ColEventType:   eventType,
		ColAggregateID: aggregateID,
		ColPayload:     payload,
		ColStatus:      status,
		ColCreatedAt:   createdAt,
		ColProcessedAt: nil,
	}
}

// InsertMutation builds a spanner.Insert for the outbox table.
func InsertMutation(values map[string]interface{}) *spanner.Mutation {
	cols := make([]string, 0, len(values))
	vals := make([]interface{}, 0, len(values))
	for c, v := range values {
		cols = append(cols, c)
		vals = append(vals, v)
	}
	return spanner.Insert(TableName, cols, vals)
}
