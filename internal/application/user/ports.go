package user

import (
	"context"
	"time"

	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/domain"
)

type Clock interface {
	Now() time.Time
}

type UserRepo interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
	Delete(ctx context.Context, id int64) error
}

type PasswordHasher interface {
	Hash(password string) (string, error)
}

// EventLister and RSVPLister back the "owned by user" read variants.
type EventLister interface {
	ListByOwner(ctx context.Context, userID int64) ([]*domain.Event, error)
}

type RSVPLister interface {
	ListByUser(ctx context.Context, userID int64) ([]*domain.Participant, error)
}
