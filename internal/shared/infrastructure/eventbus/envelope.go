package eventbus

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/felixgeelhaar/cadence/internal/shared/domain"
)

// Envelope is the wire format for published domain events. The event body
// is nested so consumers can route on the envelope without decoding it.
type Envelope struct {
	EventID       uuid.UUID       `json:"event_id"`
	AggregateID   uuid.UUID       `json:"aggregate_id"`
	AggregateType string          `json:"aggregate_type"`
	EventType     string          `json:"event_type"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Payload       json.RawMessage `json:"payload"`
}

// PublishDomainEvent wraps a domain event in an envelope and publishes it
// under the event's routing key.
func PublishDomainEvent(ctx context.Context, p Publisher, event domain.DomainEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	body, err := json.Marshal(Envelope{
		EventID:       event.EventID(),
		AggregateID:   event.AggregateID(),
		AggregateType: event.AggregateType(),
		EventType:     event.RoutingKey(),
		OccurredAt:    event.OccurredAt(),
		Payload:       payload,
	})
	if err != nil {
		return err
	}

	return p.Publish(ctx, event.RoutingKey(), body)
}
