package event

import (
	"context"

	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/domain"
)

type UpdateCmd struct {
	UserID  int64
	EventID int64
	Patch   domain.EventPatch
}

func (s *Service) Update(ctx context.Context, cmd UpdateCmd) (*domain.Event, error) {
	var out *domain.Event

	err := s.repo.WithTx(ctx, func(r TxEventRepo) error {
		ev, err := r.GetByIDForUpdate(ctx, cmd.EventID)
		if err != nil {
			return err
		}
		if err := ownedBy(ev, cmd.UserID); err != nil {
			return err
		}
		if err := ev.ApplyPatch(cmd.Patch, s.clock.Now()); err != nil {
			return err
		}
		if err := r.Update(ctx, ev); err != nil {
			return err
		}
		if cmd.Patch.Categories != nil {
			if err := r.ReplaceCategories(ctx, ev.ID, ev.Categories); err != nil {
				return err
			}
		}
		out = ev
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, out.ID)
	return out, nil
}

func (s *Service) Delete(ctx context.Context, userID, eventID int64) error {
	ev, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return err
	}
	if err := ownedBy(ev, userID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, eventID); err != nil {
		return err
	}
	s.invalidate(ctx, eventID)
	return nil
}
