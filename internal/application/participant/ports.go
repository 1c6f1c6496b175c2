package participant

import (
	"context"
	"time"

	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/domain"
)

type Clock interface {
	Now() time.Time
}

// ParticipantRepo addresses rows by the composite (userID, eventID) key only.
type ParticipantRepo interface {
	Insert(ctx context.Context, p *domain.Participant) error
	Get(ctx context.Context, userID, eventID int64) (*domain.Participant, error)
	Update(ctx context.Context, p *domain.Participant) error
	Delete(ctx context.Context, userID, eventID int64) error
	ListByEvent(ctx context.Context, eventID int64) ([]*domain.Participant, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.Participant, error)
}

type EventReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
}

type Publisher interface {
	PublishEvent(ctx context.Context, routingKey string, payload any) error
}
