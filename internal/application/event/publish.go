package event

import (
	"context"

	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/domain"
)

func (s *Service) Publish(ctx context.Context, userID, eventID int64) (*domain.Event, error) {
	return s.transition(ctx, userID, eventID, domain.StatePublished)
}

// Draft moves a published event back to DRAFT.
func (s *Service) Draft(ctx context.Context, userID, eventID int64) (*domain.Event, error) {
	return s.transition(ctx, userID, eventID, domain.StateDraft)
}

func (s *Service) Cancel(ctx context.Context, userID, eventID int64) (*domain.Event, error) {
	return s.transition(ctx, userID, eventID, domain.StateCancelled)
}

func (s *Service) transition(ctx context.Context, userID, eventID int64, to domain.EventState) (*domain.Event, error) {
	var out *domain.Event

	err := s.repo.WithTx(ctx, func(r TxEventRepo) error {
		ev, err := r.GetByIDForUpdate(ctx, eventID)
		if err != nil {
			return err
		}
		if err := ownedBy(ev, userID); err != nil {
			return err
		}
		if err := ev.Transition(to, s.clock.Now()); err != nil {
			return err
		}
		if err := r.Update(ctx, ev); err != nil {
			return err
		}
		out = ev
		return nil
	})
	if err != nil {
		return nil, err
	}

	// after commit
	s.invalidate(ctx, out.ID)
	s.emitState(ctx, out)
	return out, nil
}
