package contracts

import (
	"time"

	"cloud.google.com/go/spanner"
)

// OutboxRepo is the write-side repository for the transactional outbox.
// It returns Spanner mutations; it does not apply them.
type OutboxRepo interface {
	InsertMut(e *OutboxEvent) *spanner.Mutation
}

// OutboxEvent is an enriched domain event ready for the outbox table.
type OutboxEvent struct {
	EventID      string
	EventType    string
	AggregateID  string
	PayloadJSON  string
	Status       string
	CreatedAtUTC time.Time
}
