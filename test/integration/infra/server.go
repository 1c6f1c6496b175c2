//go:build integration

package infra

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/application/category"
	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/application/event"
	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/application/participant"
	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/application/user"
	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/config"
	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/infrastructure/db/postgres"
	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/infrastructure/security"
	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/transport/http/handlers"
	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/transport/http/router"
)

type utcClock struct{}

func (utcClock) Now() time.Time { return time.Now().UTC() }

// NewHandler wires the full HTTP stack over db without a broker or cache.
func NewHandler(db *sql.DB) http.Handler {
	clock := utcClock{}
	eventRepo := postgres.NewEventRepo(db)
	participantRepo := postgres.NewParticipantRepo(db)

	events := event.New(eventRepo, clock, nil, nil, 0)
	users := user.New(postgres.NewUserRepo(db), security.NewBcryptHasher(4), events, participantRepo, clock)
	cats := category.New(postgres.NewCategoryRepo(db), nil)
	rsvps := participant.New(participantRepo, eventRepo, nil, clock)

	return router.New(router.Handlers{
		Users:        handlers.NewUsersHandler(users, clock),
		Events:       handlers.NewEventsHandler(events, clock),
		Categories:   handlers.NewCategoriesHandler(cats),
		Participants: handlers.NewParticipantsHandler(rsvps),
		Health:       handlers.NewHealthHandler(map[string]handlers.Pinger{"postgres": db}),
	}, &config.Config{})
}
