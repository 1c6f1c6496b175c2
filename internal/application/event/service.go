package event

import (
	"context"
	"time"

	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/domain"
	zlog "github.com/rs/zerolog/log"
)

type Service struct {
	repo  EventRepo
	pub   EventPublisher
	cache Cache
	clock Clock

	ttlDetails time.Duration
}

// New wires the event service. pub and cache may be nil.
func New(repo EventRepo, clock Clock, pub EventPublisher, cache Cache, ttlDetails time.Duration) *Service {
	if ttlDetails == 0 {
		ttlDetails = 5 * time.Minute
	}
	if pub == nil {
		pub = NoopPublisher{}
	}
	return &Service{
		repo:       repo,
		pub:        pub,
		cache:      cache,
		clock:      clock,
		ttlDetails: ttlDetails,
	}
}

// ownedBy hides events of other users behind not_found.
func ownedBy(e *domain.Event, userID int64) error {
	if e.UserID != userID {
		return domain.ErrNotFound("event")
	}
	return nil
}

func (s *Service) invalidate(ctx context.Context, eventID int64) {
	if s.cache == nil {
		return
	}
	key := CacheKeyEventDetails(eventID)
	if err := s.cache.Delete(ctx, key); err != nil {
		zlog.Warn().Err(err).Str("key", key).Msg("cache invalidate failed")
	}
}
