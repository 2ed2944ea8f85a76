package m_outbox

// Column constants for the outbox_events table.
const (
	TableName = "outbox_events"

	ColEventID     = "event_id"
	ColEventType   = "event_type"
	ColAggregateID = "aggregate_id"
	ColPayload     = "payload"
	ColStatus      = "status"
	ColCreatedAt   = "created_at"
	ColProcessedAt = "processed_at"
)
