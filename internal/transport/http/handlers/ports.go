package handlers

import (
	"context"
	"time"

	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/application/event"
	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/application/participant"
	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/application/user"
	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/domain"
)

type Clock interface{ Now() time.Time }

type UserService interface {
	Register(ctx context.Context, cmd user.RegisterCmd) (*domain.User, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, cmd user.UpdateCmd) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
	ListEvents(ctx context.Context, id int64) ([]*domain.Event, error)
	ListRSVPs(ctx context.Context, id int64) ([]*domain.Participant, error)
}

type EventService interface {
	Create(ctx context.Context, cmd event.CreateCmd) (*domain.Event, error)
	Get(ctx context.Context, id int64) (*domain.Event, error)
	GetForUser(ctx context.Context, userID, eventID int64) (*domain.Event, error)
	Update(ctx context.Context, cmd event.UpdateCmd) (*domain.Event, error)
	Delete(ctx context.Context, userID, eventID int64) error
	Publish(ctx context.Context, userID, eventID int64) (*domain.Event, error)
	Draft(ctx context.Context, userID, eventID int64) (*domain.Event, error)
	Cancel(ctx context.Context, userID, eventID int64) (*domain.Event, error)
	List(ctx context.Context, f event.ListFilter) ([]*domain.Event, error)
	Filter(ctx context.Context, f event.FilterQuery) ([]*domain.Event, error)
	Search(ctx context.Context, keyword string) ([]*domain.Event, error)
}

type CategoryService interface {
	CreateMany(ctx context.Context, names []string) ([]*domain.Category, error)
	Get(ctx context.Context, id int64) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
	Update(ctx context.Context, id int64, name *string) (*domain.Category, error)
	Delete(ctx context.Context, id int64) error
}

type ParticipantService interface {
	Add(ctx context.Context, cmd participant.AddCmd) (*domain.Participant, error)
	Get(ctx context.Context, userID, eventID int64) (*domain.Participant, error)
	Update(ctx context.Context, cmd participant.UpdateCmd) (*domain.Participant, error)
	Remove(ctx context.Context, userID, eventID int64) error
	ListByEvent(ctx context.Context, eventID int64) ([]*domain.Participant, error)
}
