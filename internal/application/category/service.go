package category

import (
	"context"
	"strings"

	zlog "github.com/rs/zerolog/log"

	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/application/event"
	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/domain"
)

type CategoryRepo interface {
	CreateMany(ctx context.Context, names []string) ([]*domain.Category, error)
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
	Update(ctx context.Context, c *domain.Category) error
	Delete(ctx context.Context, id int64) error
	// LinkedEventIDs lists the events tagged with the category.
	LinkedEventIDs(ctx context.Context, id int64) ([]int64, error)
}

// DetailCache is the event detail cache. Cached events embed category names, so a
// rename has to evict them.
type DetailCache interface {
	Delete(ctx context.Context, keys ...string) error
}

type Service struct {
	repo  CategoryRepo
	cache DetailCache
}

// New wires the category service. cache may be nil.
func New(repo CategoryRepo, cache DetailCache) *Service {
	return &Service{repo: repo, cache: cache}
}

// CreateMany inserts all names in one statement; any duplicate against existing
// rows fails the whole batch.
func (s *Service) CreateMany(ctx context.Context, names []string) ([]*domain.Category, error) {
	if len(names) == 0 {
		return nil, domain.ErrMissingField("categories")
	}
	clean, err := domain.NormalizeCategoryNames(names)
	if err != nil {
		return nil, err
	}
	return s.repo.CreateMany(ctx, clean)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Category, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*domain.Category, error) {
	return s.repo.List(ctx)
}

// Update renames the category when name is set; a nil name returns it unchanged.
func (s *Service) Update(ctx context.Context, id int64, name *string) (*domain.Category, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if name == nil {
		return c, nil
	}
	v := strings.TrimSpace(*name)
	if v == "" {
		return nil, domain.ErrInvalidField("name", "category name must not be empty")
	}
	if v == c.Name {
		return c, nil
	}
	c.Name = v
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	s.evictLinkedEvents(ctx, c.ID)
	return c, nil
}

// evictLinkedEvents is best-effort: a failure leaves entries to expire by TTL.
func (s *Service) evictLinkedEvents(ctx context.Context, categoryID int64) {
	if s.cache == nil {
		return
	}
	ids, err := s.repo.LinkedEventIDs(ctx, categoryID)
	if err != nil {
		zlog.Warn().Err(err).Int64("category_id", categoryID).Msg("cache invalidate failed: linked events")
		return
	}
	if len(ids) == 0 {
		return
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = event.CacheKeyEventDetails(id)
	}
	if err := s.cache.Delete(ctx, keys...); err != nil {
		zlog.Warn().Err(err).Int64("category_id", categoryID).Int("keys", len(keys)).Msg("cache invalidate failed")
	}
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
