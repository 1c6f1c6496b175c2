// Package seed loads the demo fixture through the application services, so seeded
// rows obey the same validation, hashing and transaction rules as API writes.
package seed

import (
	"context"
	"fmt"
	"time"

	zlog "github.com/rs/zerolog/log"

	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/application/event"
	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/application/participant"
	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/application/user"
	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/domain"
)

type Users interface {
	Register(ctx context.Context, cmd user.RegisterCmd) (*domain.User, error)
}

type Categories interface {
	CreateMany(ctx context.Context, names []string) ([]*domain.Category, error)
}

type Events interface {
	Create(ctx context.Context, cmd event.CreateCmd) (*domain.Event, error)
}

type RSVPs interface {
	Add(ctx context.Context, cmd participant.AddCmd) (*domain.Participant, error)
}

type Deps struct {
	Users      Users
	Categories Categories
	Events     Events
	RSVPs      RSVPs
}

// Result carries the ids assigned to the fixture rows.
type Result struct {
	UserIDs     []int64
	CategoryIDs []int64
	EventIDs    []int64
}

const demoPassword = "password123"

// Run inserts two users, three categories, two events and one RSVP per user.
// It is not idempotent: a second run fails on the unique username.
func Run(ctx context.Context, d Deps, now time.Time) (*Result, error) {
	res := &Result{}

	users := []user.RegisterCmd{
		{
			Username: "john_doe",
			Email:    "john.doe@example.com",
			Password: demoPassword,
			Profile: domain.Profile{
				FirstName:         "John",
				LastName:          "Doe",
				Bio:               "Lorem ipsum dolor sit amet, consectetur adipiscing elit.",
				ProfilePictureURL: "https://example.com/johndoe.jpg",
				SocialLinks: map[string]string{
					"twitter":  "https://twitter.com/johndoe",
					"linkedin": "https://linkedin.com/in/johndoe",
				},
				Address: "123 Main St, Anytown, USA",
			},
		},
		{
			Username: "jane_smith",
			Email:    "jane.smith@example.com",
			Password: demoPassword,
			Profile: domain.Profile{
				FirstName:         "Jane",
				LastName:          "Smith",
				Bio:               "Vivamus magna justo, lacinia eget consectetur sed, convallis at tellus.",
				ProfilePictureURL: "https://example.com/janesmith.jpg",
				SocialLinks: map[string]string{
					"twitter":  "https://twitter.com/janesmith",
					"linkedin": "https://linkedin.com/in/janesmith",
				},
				Address: "456 Oak Ave, Anycity, USA",
			},
		},
	}
	for _, cmd := range users {
		u, err := d.Users.Register(ctx, cmd)
		if err != nil {
			return nil, fmt.Errorf("seed user %s: %w", cmd.Username, err)
		}
		res.UserIDs = append(res.UserIDs, u.ID)
	}

	cats, err := d.Categories.CreateMany(ctx, []string{"Music", "Technology", "Food & Drink"})
	if err != nil {
		return nil, fmt.Errorf("seed categories: %w", err)
	}
	for _, c := range cats {
		res.CategoryIDs = append(res.CategoryIDs, c.ID)
	}

	expoStart := time.Date(2024, 9, 20, 9, 0, 0, 0, time.UTC)
	expoEnd := time.Date(2024, 9, 20, 17, 0, 0, 0, time.UTC)
	events := []event.CreateCmd{
		{
			UserID:       res.UserIDs[0],
			Name:         "Summer Music Festival",
			Description:  "Join us for a day of live music and fun!",
			Date:         now.UTC(),
			Location:     "Central Park, New York",
			PricingInfo:  29.99,
			ThumbnailURL: "https://example.com/summerfestival.jpg",
			Capacity:     5000,
			State:        domain.StatePublished,
			Categories:   []string{"Music"},
		},
		{
			UserID:       res.UserIDs[1],
			Name:         "Tech Expo 2024",
			Description:  "Discover the latest in technology innovations.",
			Date:         expoStart,
			EndTime:      &expoEnd,
			Location:     "Tech Center, San Francisco",
			PricingInfo:  0,
			ThumbnailURL: "https://example.com/techexpo.jpg",
			Capacity:     1000,
			State:        domain.StatePublished,
			Categories:   []string{"Technology"},
		},
	}
	for _, cmd := range events {
		e, err := d.Events.Create(ctx, cmd)
		if err != nil {
			return nil, fmt.Errorf("seed event %q: %w", cmd.Name, err)
		}
		res.EventIDs = append(res.EventIDs, e.ID)
	}

	for i := range res.UserIDs {
		_, err := d.RSVPs.Add(ctx, participant.AddCmd{
			UserID:        res.UserIDs[i],
			EventID:       res.EventIDs[i],
			PaymentStatus: true,
		})
		if err != nil {
			return nil, fmt.Errorf("seed rsvp user=%d event=%d: %w", res.UserIDs[i], res.EventIDs[i], err)
		}
	}

	zlog.Info().
		Int("users", len(res.UserIDs)).
		Int("categories", len(res.CategoryIDs)).
		Int("events", len(res.EventIDs)).
		Msg("seed complete")
	return res, nil
}
