package event

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/domain"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100

	// MaxPage keeps (page-1)*limit inside int; pages past it are empty anyway.
	MaxPage = math.MaxInt / MaxLimit

	dateLayout = "2006-01-02"
)

// ListFilter drives the unpaginated list endpoint. Zero values mean "no constraint".
type ListFilter struct {
	State  domain.EventState
	UserID int64
}

// FilterQuery is the composed filter. Every criterion is optional and they AND together.
type FilterQuery struct {
	Categories []string
	Date       string // YYYY-MM-DD, whole UTC day
	Location   string // case-sensitive substring
	Page       int
	Limit      int
}

// Normalize coerces pagination to defaults and trims criteria. A malformed date is
// the only input it rejects.
func (f *FilterQuery) Normalize() error {
	f.Location = strings.TrimSpace(f.Location)
	f.Date = strings.TrimSpace(f.Date)

	cats := make([]string, 0, len(f.Categories))
	seen := make(map[string]struct{}, len(f.Categories))
	for _, c := range f.Categories {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		cats = append(cats, c)
	}
	f.Categories = cats

	if f.Page <= 0 {
		f.Page = DefaultPage
	}
	if f.Limit <= 0 {
		f.Limit = DefaultLimit
	}
	if f.Limit > MaxLimit {
		f.Limit = MaxLimit
	}
	if f.Page > MaxPage {
		f.Page = MaxPage
	}

	if f.Date != "" {
		if _, _, err := DayBounds(f.Date); err != nil {
			return err
		}
	}
	return nil
}

func (f FilterQuery) Offset() int {
	return (f.Page - 1) * f.Limit
}

// DayBounds returns [dateT00:00:00.000Z, dateT23:59:59.999Z].
func DayBounds(date string) (time.Time, time.Time, error) {
	d, err := time.ParseInLocation(dateLayout, strings.TrimSpace(date), time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, domain.ErrInvalidField("date", "must be a calendar day (YYYY-MM-DD)")
	}
	return d, d.Add(24*time.Hour - time.Millisecond), nil
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]*domain.Event, error) {
	if f.State != "" && !f.State.Valid() {
		return nil, domain.ErrInvalidField("state", "must be one of PUBLISHED, DRAFT, CANCELLED")
	}
	return s.repo.List(ctx, f)
}

func (s *Service) ListByOwner(ctx context.Context, userID int64) ([]*domain.Event, error) {
	return s.repo.List(ctx, ListFilter{UserID: userID})
}

func (s *Service) Filter(ctx context.Context, f FilterQuery) ([]*domain.Event, error) {
	if err := f.Normalize(); err != nil {
		return nil, err
	}
	return s.repo.Filter(ctx, f)
}

// Search matches keyword against name, description and location. A blank keyword
// carries no signal and matches nothing, without a storage round-trip.
func (s *Service) Search(ctx context.Context, keyword string) ([]*domain.Event, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return []*domain.Event{}, nil
	}
	return s.repo.Search(ctx, keyword)
}
