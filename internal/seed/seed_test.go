package seed

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/application/event"
	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/application/participant"
	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/application/user"
	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/domain"
)

type fakeUsers struct {
	next int64
	got  []user.RegisterCmd
	err  error
}

func (f *fakeUsers) Register(_ context.Context, cmd user.RegisterCmd) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.next++
	f.got = append(f.got, cmd)
	return &domain.User{ID: f.next, Username: cmd.Username}, nil
}

type fakeCategories struct{ got []string }

func (f *fakeCategories) CreateMany(_ context.Context, names []string) ([]*domain.Category, error) {
	f.got = names
	out := make([]*domain.Category, len(names))
	for i, n := range names {
		out[i] = &domain.Category{ID: int64(i + 1), Name: n}
	}
	return out, nil
}

type fakeEvents struct {
	next int64
	got  []event.CreateCmd
}

func (f *fakeEvents) Create(_ context.Context, cmd event.CreateCmd) (*domain.Event, error) {
	f.next += 10
	f.got = append(f.got, cmd)
	return &domain.Event{ID: f.next, UserID: cmd.UserID, Name: cmd.Name}, nil
}

type fakeRSVPs struct{ got []participant.AddCmd }

func (f *fakeRSVPs) Add(_ context.Context, cmd participant.AddCmd) (*domain.Participant, error) {
	f.got = append(f.got, cmd)
	return &domain.Participant{UserID: cmd.UserID, EventID: cmd.EventID}, nil
}

func TestRun_LoadsFixture(t *testing.T) {
	u, c, e, r := &fakeUsers{}, &fakeCategories{}, &fakeEvents{}, &fakeRSVPs{}
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	res, err := Run(context.Background(), Deps{Users: u, Categories: c, Events: e, RSVPs: r}, now)
	require.NoError(t, err)

	assert.Equal(t, []int64{1, 2}, res.UserIDs)
	assert.Equal(t, []int64{1, 2, 3}, res.CategoryIDs)
	assert.Equal(t, []int64{10, 20}, res.EventIDs)

	assert.Equal(t, "john_doe", u.got[0].Username)
	assert.Equal(t, "jane_smith", u.got[1].Username)
	assert.Equal(t, []string{"Music", "Technology", "Food & Drink"}, c.got)

	require.Len(t, e.got, 2)
	assert.Equal(t, int64(1), e.got[0].UserID)
	assert.Equal(t, now, e.got[0].Date)
	assert.Equal(t, []string{"Technology"}, e.got[1].Categories)
	assert.Equal(t, time.Date(2024, 9, 20, 9, 0, 0, 0, time.UTC), e.got[1].Date)

	require.Len(t, r.got, 2)
	assert.Equal(t, participant.AddCmd{UserID: 1, EventID: 10, PaymentStatus: true}, r.got[0])
	assert.Equal(t, participant.AddCmd{UserID: 2, EventID: 20, PaymentStatus: true}, r.got[1])
}

func TestRun_StopsOnFirstError(t *testing.T) {
	boom := domain.ErrConflict("username_taken", "Username already exists")
	u := &fakeUsers{err: boom}
	e := &fakeEvents{}

	_, err := Run(context.Background(), Deps{Users: u, Categories: &fakeCategories{}, Events: e, RSVPs: &fakeRSVPs{}}, time.Now())
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
	assert.Empty(t, e.got)
}
