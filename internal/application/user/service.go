package user

import (
	"context"

	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/domain"
)

const minPasswordLen = 6

type Service struct {
	repo   UserRepo
	hasher PasswordHasher
	events EventLister
	rsvps  RSVPLister
	clock  Clock
}

func New(repo UserRepo, hasher PasswordHasher, events EventLister, rsvps RSVPLister, clock Clock) *Service {
	return &Service{repo: repo, hasher: hasher, events: events, rsvps: rsvps, clock: clock}
}

type RegisterCmd struct {
	Username string
	Email    string
	Password string
	Profile  domain.Profile
}

// Register hashes the password and inserts the user. A duplicate username or email
// surfaces as a conflict naming the colliding field.
func (s *Service) Register(ctx context.Context, cmd RegisterCmd) (*domain.User, error) {
	if len(cmd.Password) < minPasswordLen {
		return nil, domain.ErrInvalidField("password", "must be at least 6 characters long")
	}
	hash, err := s.hasher.Hash(cmd.Password)
	if err != nil {
		return nil, err
	}
	u, err := domain.NewUser(cmd.Username, cmd.Email, hash, cmd.Profile, s.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

type UpdateCmd struct {
	UserID   int64
	Password *string
	Patch    domain.UserPatch
}

func (s *Service) Update(ctx context.Context, cmd UpdateCmd) (*domain.User, error) {
	u, err := s.repo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	patch := cmd.Patch
	if cmd.Password != nil {
		if len(*cmd.Password) < minPasswordLen {
			return nil, domain.ErrInvalidField("password", "must be at least 6 characters long")
		}
		hash, err := s.hasher.Hash(*cmd.Password)
		if err != nil {
			return nil, err
		}
		patch.PasswordHash = &hash
	}

	if err := u.ApplyPatch(patch, s.clock.Now()); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListEvents(ctx context.Context, id int64) ([]*domain.Event, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.events.ListByOwner(ctx, id)
}

func (s *Service) ListRSVPs(ctx context.Context, id int64) ([]*domain.Participant, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.rsvps.ListByUser(ctx, id)
}
