package event

import (
	"context"
	"time"

	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/domain"
)

type Clock interface {
	Now() time.Time
}

type EventRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
	Delete(ctx context.Context, id int64) error

	List(ctx context.Context, f ListFilter) ([]*domain.Event, error)
	Filter(ctx context.Context, f FilterQuery) ([]*domain.Event, error)
	Search(ctx context.Context, keyword string) ([]*domain.Event, error)

	WithTx(ctx context.Context, fn func(r TxEventRepo) error) error
}

// TxEventRepo is the write side used inside a single transaction.
type TxEventRepo interface {
	Insert(ctx context.Context, e *domain.Event) error
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Event, error)
	Update(ctx context.Context, e *domain.Event) error
	// ReplaceCategories links the event to exactly the named categories.
	// Unknown names are a validation error.
	ReplaceCategories(ctx context.Context, eventID int64, names []string) error
}

type EventPublisher interface {
	PublishEvent(ctx context.Context, routingKey string, payload any) error
}

type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, val any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}
