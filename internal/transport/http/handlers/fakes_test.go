package handlers

import (
	"context"
	"time"

	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/application/event"
	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/application/participant"
	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/application/user"
	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/domain"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

var testNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

type fakeUsers struct {
	registered user.RegisterCmd
	updated    user.UpdateCmd
	err        error
}

func (f *fakeUsers) Register(_ context.Context, cmd user.RegisterCmd) (*domain.User, error) {
	f.registered = cmd
	if f.err != nil {
		return nil, f.err
	}
	return &domain.User{ID: 1, Username: cmd.Username, Email: cmd.Email, PasswordHash: "hash"}, nil
}

func (f *fakeUsers) Get(_ context.Context, id int64) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.User{ID: id, Username: "john_doe"}, nil
}

func (f *fakeUsers) Update(_ context.Context, cmd user.UpdateCmd) (*domain.User, error) {
	f.updated = cmd
	if f.err != nil {
		return nil, f.err
	}
	return &domain.User{ID: cmd.UserID, Username: "john_doe"}, nil
}

func (f *fakeUsers) Delete(_ context.Context, _ int64) error { return f.err }

func (f *fakeUsers) ListEvents(_ context.Context, id int64) ([]*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []*domain.Event{{ID: 1, UserID: id, State: domain.StateDraft}}, nil
}

func (f *fakeUsers) ListRSVPs(_ context.Context, id int64) ([]*domain.Participant, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []*domain.Participant{{UserID: id, EventID: 2}}, nil
}

type fakeEvents struct {
	created  event.CreateCmd
	updated  event.UpdateCmd
	filtered event.FilterQuery
	listed   event.ListFilter
	searched string
	moved    string
	err      error
}

func (f *fakeEvents) ev(id, userID int64, s domain.EventState) *domain.Event {
	return &domain.Event{ID: id, UserID: userID, Name: "Jazz", Date: testNow.Add(time.Hour), State: s}
}

func (f *fakeEvents) Create(_ context.Context, cmd event.CreateCmd) (*domain.Event, error) {
	f.created = cmd
	if f.err != nil {
		return nil, f.err
	}
	st := cmd.State
	if st == "" {
		st = domain.StateDraft
	}
	return f.ev(10, cmd.UserID, st), nil
}

func (f *fakeEvents) Get(_ context.Context, id int64) (*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.ev(id, 1, domain.StatePublished), nil
}

func (f *fakeEvents) GetForUser(_ context.Context, userID, eventID int64) (*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.ev(eventID, userID, domain.StateDraft), nil
}

func (f *fakeEvents) Update(_ context.Context, cmd event.UpdateCmd) (*domain.Event, error) {
	f.updated = cmd
	if f.err != nil {
		return nil, f.err
	}
	return f.ev(cmd.EventID, cmd.UserID, domain.StateDraft), nil
}

func (f *fakeEvents) Delete(_ context.Context, _, _ int64) error { return f.err }

func (f *fakeEvents) move(name string, to domain.EventState, userID, eventID int64) (*domain.Event, error) {
	f.moved = name
	if f.err != nil {
		return nil, f.err
	}
	return f.ev(eventID, userID, to), nil
}

func (f *fakeEvents) Publish(_ context.Context, u, e int64) (*domain.Event, error) {
	return f.move("publish", domain.StatePublished, u, e)
}

func (f *fakeEvents) Draft(_ context.Context, u, e int64) (*domain.Event, error) {
	return f.move("draft", domain.StateDraft, u, e)
}

func (f *fakeEvents) Cancel(_ context.Context, u, e int64) (*domain.Event, error) {
	return f.move("cancel", domain.StateCancelled, u, e)
}

func (f *fakeEvents) List(_ context.Context, lf event.ListFilter) ([]*domain.Event, error) {
	f.listed = lf
	return []*domain.Event{}, f.err
}

func (f *fakeEvents) Filter(_ context.Context, q event.FilterQuery) ([]*domain.Event, error) {
	f.filtered = q
	return []*domain.Event{f.ev(1, 1, domain.StatePublished)}, f.err
}

func (f *fakeEvents) Search(_ context.Context, keyword string) ([]*domain.Event, error) {
	f.searched = keyword
	return []*domain.Event{}, f.err
}

type fakeCategories struct {
	created []string
	err     error
}

func (f *fakeCategories) CreateMany(_ context.Context, names []string) ([]*domain.Category, error) {
	f.created = names
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*domain.Category, len(names))
	for i, n := range names {
		out[i] = &domain.Category{ID: int64(i + 1), Name: n}
	}
	return out, nil
}

func (f *fakeCategories) Get(_ context.Context, id int64) (*domain.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Category{ID: id, Name: "Music"}, nil
}

func (f *fakeCategories) List(_ context.Context) ([]*domain.Category, error) {
	return []*domain.Category{{ID: 1, Name: "Music"}}, f.err
}

func (f *fakeCategories) Update(_ context.Context, id int64, name *string) (*domain.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Category{ID: id, Name: *name}, nil
}

func (f *fakeCategories) Delete(_ context.Context, _ int64) error { return f.err }

type fakeParticipants struct {
	added   participant.AddCmd
	updated participant.UpdateCmd
	err     error
}

func (f *fakeParticipants) Add(_ context.Context, cmd participant.AddCmd) (*domain.Participant, error) {
	f.added = cmd
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Participant{UserID: cmd.UserID, EventID: cmd.EventID, RSVPDate: testNow, PaymentStatus: cmd.PaymentStatus}, nil
}

func (f *fakeParticipants) Get(_ context.Context, u, e int64) (*domain.Participant, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Participant{UserID: u, EventID: e, RSVPDate: testNow}, nil
}

func (f *fakeParticipants) Update(_ context.Context, cmd participant.UpdateCmd) (*domain.Participant, error) {
	f.updated = cmd
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Participant{UserID: cmd.UserID, EventID: cmd.EventID, RSVPDate: testNow, PaymentStatus: true}, nil
}

func (f *fakeParticipants) Remove(_ context.Context, _, _ int64) error { return f.err }

func (f *fakeParticipants) ListByEvent(_ context.Context, e int64) ([]*domain.Participant, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []*domain.Participant{{UserID: 1, EventID: e}}, nil
}
