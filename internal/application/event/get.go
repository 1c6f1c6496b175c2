package event

import (
	"context"

	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/domain"
	zlog "github.com/rs/zerolog/log"
)

// Get reads through the detail cache when one is configured.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Event, error) {
	key := CacheKeyEventDetails(id)

	if s.cache != nil {
		var cached domain.Event
		found, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			zlog.Warn().Err(err).Str("key", key).Msg("cache get failed")
		} else if found {
			zlog.Debug().Str("key", key).Msg("cache hit")
			return &cached, nil
		} else {
			zlog.Debug().Str("key", key).Msg("cache miss")
		}
	}

	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, e, s.ttlDetails); err != nil {
			zlog.Warn().Err(err).Str("key", key).Msg("cache set failed")
		}
	}
	return e, nil
}

// GetForUser returns the event only if userID owns it. No cache: owners need fresh reads.
func (s *Service) GetForUser(ctx context.Context, userID, eventID int64) (*domain.Event, error) {
	e, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if err := ownedBy(e, userID); err != nil {
		return nil, err
	}
	return e, nil
}
