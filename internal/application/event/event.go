package event

import (
	"context"
	"time"

	"github.com/google/uuid"
	zlog "github.com/rs/zerolog/log"

	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/domain"
	appCtx "github.com/baechuer/real-time-ressys/services/eventhub-service/internal/pkg/context"
)

const (
	EventVersion  = 1
	EventProducer = "eventhub-service"

	RoutingEventPublished = "event.published"
	RoutingEventDrafted   = "event.drafted"
	RoutingEventCanceled  = "event.canceled"
)

// DomainEventEnvelope is the stable contract for all domain events emitted by this service.
type DomainEventEnvelope[T any] struct {
	Version    int       `json:"version"`
	Producer   string    `json:"producer"`
	MessageID  string    `json:"message_id"`
	TraceID    string    `json:"trace_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    T         `json:"payload"`
}

// EventStatePayload is the body for event.published / event.drafted / event.canceled.
type EventStatePayload struct {
	EventID    int64     `json:"event_id"`
	UserID     int64     `json:"user_id"`
	Name       string    `json:"name"`
	Location   string    `json:"location,omitempty"`
	Date       time.Time `json:"date"`
	Capacity   int       `json:"capacity"`
	State      string    `json:"state"`
	Categories []string  `json:"categories,omitempty"`
}

// ID lets transports reuse the envelope id as the broker message id.
func (e DomainEventEnvelope[T]) ID() string { return e.MessageID }

func NewEnvelope[T any](ctx context.Context, now time.Time, payload T) DomainEventEnvelope[T] {
	return DomainEventEnvelope[T]{
		Version:    EventVersion,
		Producer:   EventProducer,
		MessageID:  uuid.NewString(),
		TraceID:    appCtx.GetRequestID(ctx),
		OccurredAt: now.UTC(),
		Payload:    payload,
	}
}

func routingKeyFor(s domain.EventState) string {
	switch s {
	case domain.StatePublished:
		return RoutingEventPublished
	case domain.StateCancelled:
		return RoutingEventCanceled
	default:
		return RoutingEventDrafted
	}
}

// emitState publishes best-effort; a broker failure never fails the request.
func (s *Service) emitState(ctx context.Context, ev *domain.Event) {
	rk := routingKeyFor(ev.State)
	env := NewEnvelope(ctx, s.clock.Now(), EventStatePayload{
		EventID:    ev.ID,
		UserID:     ev.UserID,
		Name:       ev.Name,
		Location:   ev.Location,
		Date:       ev.Date,
		Capacity:   ev.Capacity,
		State:      string(ev.State),
		Categories: ev.Categories,
	})
	if err := s.pub.PublishEvent(ctx, rk, env); err != nil {
		zlog.Error().
			Err(err).
			Str("rk", rk).
			Int64("event_id", ev.ID).
			Msg("publish domain event failed")
	}
}
