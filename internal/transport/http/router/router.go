package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/config"
	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/transport/http/handlers"
	mw "github.com/baechuer/real-time-ressys/services/eventhub-service/internal/transport/http/middleware"
	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/transport/http/response"
)

type Handlers struct {
	Users        *handlers.UsersHandler
	Events       *handlers.EventsHandler
	Categories   *handlers.CategoriesHandler
	Participants *handlers.ParticipantsHandler
	Health       *handlers.HealthHandler
}

func New(h Handlers, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(mw.RequestID)
	r.Use(mw.SecurityHeaders)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(mw.AccessLog)
	r.Use(mw.Metrics)

	if cfg.RLEnabled {
		r.Use(httprate.Limit(
			cfg.RLLimit,
			cfg.RLWindow,
			httprate.WithKeyFuncs(httprate.KeyByIP),
			httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
				response.Fail(w, http.StatusTooManyRequests, "rate_limited", "too many requests", nil,
					response.RequestIDFromRequest(r))
			}),
		))
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.Fail(w, http.StatusNotFound, "route_not_found", "route not found", nil, response.RequestIDFromRequest(r))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.Fail(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed", nil, response.RequestIDFromRequest(r))
	})

	r.Get("/healthz", h.Health.Healthz)
	r.Get("/readyz", h.Health.Readyz)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/users", func(r chi.Router) {
		r.Post("/", h.Users.Register)

		r.Route("/{user_id}", func(r chi.Router) {
			r.Get("/", h.Users.Get)
			r.Put("/", h.Users.Update)
			r.Delete("/", h.Users.Delete)

			r.Get("/events", h.Users.ListEvents)
			r.Post("/events", h.Events.Create)
			r.Route("/events/{event_id}", func(r chi.Router) {
				r.Get("/", h.Events.GetOwned)
				r.Put("/", h.Events.Update)
				r.Delete("/", h.Events.Delete)
				r.Post("/publish", h.Events.Publish)
				r.Post("/draft", h.Events.Draft)
				r.Post("/cancel", h.Events.Cancel)
			})

			r.Get("/rsvps", h.Users.ListRSVPs)
			r.Post("/rsvps", h.Participants.Create)
			r.Get("/rsvps/{event_id}", h.Participants.Get)
			r.Put("/rsvps/{event_id}", h.Participants.Update)
			r.Delete("/rsvps/{event_id}", h.Participants.Delete)
		})
	})

	r.Route("/events", func(r chi.Router) {
		r.Get("/", h.Events.List)
		r.Get("/search", h.Events.Search)
		r.Get("/filter", h.Events.Filter)
		r.Get("/{event_id}", h.Events.Get)
		r.Get("/{event_id}/participants", h.Participants.ListByEvent)
	})

	r.Route("/categories", func(r chi.Router) {
		r.Get("/", h.Categories.List)
		r.Post("/", h.Categories.Create)
		r.Get("/{category_id}", h.Categories.Get)
		r.Put("/{category_id}", h.Categories.Update)
		r.Delete("/{category_id}", h.Categories.Delete)
	})

	return r
}
