package event

import (
	"context"
	"time"

	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/domain"
)

type CreateCmd struct {
	UserID int64

	Name         string
	Description  string
	Date         time.Time
	EndTime      *time.Time
	Location     string
	PricingInfo  float64
	ThumbnailURL string
	Capacity     int
	State        domain.EventState
	Categories   []string
}

// Create inserts the event and its category links in one transaction.
func (s *Service) Create(ctx context.Context, cmd CreateCmd) (*domain.Event, error) {
	e, err := domain.NewEvent(domain.NewEventInput{
		UserID:       cmd.UserID,
		Name:         cmd.Name,
		Description:  cmd.Description,
		Date:         cmd.Date,
		EndTime:      cmd.EndTime,
		Location:     cmd.Location,
		PricingInfo:  cmd.PricingInfo,
		ThumbnailURL: cmd.ThumbnailURL,
		Capacity:     cmd.Capacity,
		State:        cmd.State,
		Categories:   cmd.Categories,
	}, s.clock.Now())
	if err != nil {
		return nil, err
	}

	err = s.repo.WithTx(ctx, func(r TxEventRepo) error {
		if err := r.Insert(ctx, e); err != nil {
			return err
		}
		if len(e.Categories) == 0 {
			return nil
		}
		return r.ReplaceCategories(ctx, e.ID, e.Categories)
	})
	if err != nil {
		return nil, err
	}

	if e.State == domain.StatePublished {
		s.emitState(ctx, e)
	}
	return e, nil
}
