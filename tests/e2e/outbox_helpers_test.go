package e2e

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/iterator"
)

type outboxEvent struct {
	EventID     string
	EventType   string
	AggregateID string
	Payload     string
	Status      string
	CreatedAt   time.Time
}

// payloadMap decodes the event payload for field-level assertions.
func (e outboxEvent) payloadMap(t *testing.T) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(e.Payload), &m))
	return m
}

func mustFetchOutboxEvents(ctx context.Context, t *testing.T, client *spanner.Client, itineraryID string) []outboxEvent {
	t.Helper()
	items, err := fetchOutboxEvents(ctx, client, itineraryID)
	require.NoError(t, err)
	return items
}

func fetchOutboxEvents(ctx context.Context, client *spanner.Client, itineraryID string) ([]outboxEvent, error) {
	stmt := spanner.Statement{
		SQL: `SELECT event_id, event_type, aggregate_id, payload, status, created_at
        FROM outbox_events
        WHERE aggregate_id = @id
        ORDER BY created_at ASC, event_id ASC`,
		Params: map[string]any{"id": itineraryID},
	}

	iter := client.Single().Query(ctx, stmt)
	defer iter.Stop()

	out := make([]outboxEvent, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		var e outboxEvent
		if err := row.Columns(&e.EventID, &e.EventType, &e.AggregateID, &e.Payload, &e.Status, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
}
