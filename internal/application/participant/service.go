package participant

import (
	"context"
	"time"

	zlog "github.com/rs/zerolog/log"

	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/application/event"
	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/domain"
)

const (
	RoutingRSVPCreated = "rsvp.created"
	RoutingRSVPRemoved = "rsvp.removed"
)

type RSVPPayload struct {
	UserID        int64     `json:"user_id"`
	EventID       int64     `json:"event_id"`
	RSVPDate      time.Time `json:"rsvp_date"`
	PaymentStatus bool      `json:"payment_status"`
}

type Service struct {
	repo   ParticipantRepo
	events EventReader
	pub    Publisher
	clock  Clock
}

func New(repo ParticipantRepo, events EventReader, pub Publisher, clock Clock) *Service {
	return &Service{repo: repo, events: events, pub: pub, clock: clock}
}

type AddCmd struct {
	UserID        int64
	EventID       int64
	RSVPDate      *time.Time
	PaymentStatus bool
}

// Add registers the user for the event. The composite key arbitrates concurrent
// duplicates: exactly one insert wins, the other gets already_participating.
func (s *Service) Add(ctx context.Context, cmd AddCmd) (*domain.Participant, error) {
	if cmd.UserID <= 0 {
		return nil, domain.ErrInvalidField("user_id", "must be a positive integer")
	}
	if cmd.EventID <= 0 {
		return nil, domain.ErrInvalidField("event_id", "must be a positive integer")
	}

	ev, err := s.events.GetByID(ctx, cmd.EventID)
	if err != nil {
		if domain.KindOf(err) == domain.KindNotFound {
			return nil, domain.WithMeta(
				domain.New(domain.KindValidation, "reference_not_found", "event does not exist"),
				map[string]string{"field": "event_id"},
			)
		}
		return nil, err
	}
	if ev.State == domain.StateCancelled {
		return nil, domain.ErrInvalidState("cannot RSVP to a cancelled event")
	}

	p := &domain.Participant{
		UserID:        cmd.UserID,
		EventID:       cmd.EventID,
		RSVPDate:      s.clock.Now().UTC(),
		PaymentStatus: cmd.PaymentStatus,
	}
	if cmd.RSVPDate != nil {
		p.RSVPDate = cmd.RSVPDate.UTC()
	}

	if err := s.repo.Insert(ctx, p); err != nil {
		return nil, err
	}
	s.emit(ctx, RoutingRSVPCreated, p)
	return p, nil
}

func (s *Service) Get(ctx context.Context, userID, eventID int64) (*domain.Participant, error) {
	return s.repo.Get(ctx, userID, eventID)
}

type UpdateCmd struct {
	UserID  int64
	EventID int64
	Patch   domain.ParticipantPatch
}

func (s *Service) Update(ctx context.Context, cmd UpdateCmd) (*domain.Participant, error) {
	p, err := s.repo.Get(ctx, cmd.UserID, cmd.EventID)
	if err != nil {
		return nil, err
	}
	if cmd.Patch.Empty() {
		return p, nil
	}
	p.ApplyPatch(cmd.Patch)
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Remove(ctx context.Context, userID, eventID int64) error {
	p, err := s.repo.Get(ctx, userID, eventID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, userID, eventID); err != nil {
		return err
	}
	s.emit(ctx, RoutingRSVPRemoved, p)
	return nil
}

func (s *Service) ListByEvent(ctx context.Context, eventID int64) ([]*domain.Participant, error) {
	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		return nil, err
	}
	return s.repo.ListByEvent(ctx, eventID)
}

func (s *Service) ListByUser(ctx context.Context, userID int64) ([]*domain.Participant, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) emit(ctx context.Context, rk string, p *domain.Participant) {
	if s.pub == nil {
		return
	}
	env := event.NewEnvelope(ctx, s.clock.Now(), RSVPPayload{
		UserID:        p.UserID,
		EventID:       p.EventID,
		RSVPDate:      p.RSVPDate,
		PaymentStatus: p.PaymentStatus,
	})
	if err := s.pub.PublishEvent(ctx, rk, env); err != nil {
		zlog.Error().
			Err(err).
			Str("rk", rk).
			Int64("user_id", p.UserID).
			Int64("event_id", p.EventID).
			Msg("publish rsvp event failed")
	}
}
