package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/config"
	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/transport/http/handlers"
)

// Services are nil: every request here is answered before a handler reaches one.
func newTestRouter(cfg *config.Config) http.Handler {
	clock := handlers.Clock(nil)
	return New(Handlers{
		Users:        handlers.NewUsersHandler(nil, clock),
		Events:       handlers.NewEventsHandler(nil, clock),
		Categories:   handlers.NewCategoriesHandler(nil),
		Participants: handlers.NewParticipantsHandler(nil),
		Health:       handlers.NewHealthHandler(nil),
	}, cfg)
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = "10.0.0.1:1234"
	h.ServeHTTP(rr, req)
	return rr
}

func TestRouter_Healthz(t *testing.T) {
	h := newTestRouter(&config.Config{})

	rr := get(h, "/healthz")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
	assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))

	rr = get(h, "/readyz")
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRouter_NotFoundIsJSON(t *testing.T) {
	h := newTestRouter(&config.Config{})

	rr := get(h, "/nope")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "application/json")
	assert.Contains(t, rr.Body.String(), `"code":"route_not_found"`)
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	h := newTestRouter(&config.Config{})

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPatch, "/healthz", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Contains(t, rr.Body.String(), `"code":"method_not_allowed"`)
}

func TestRouter_PathIDValidatedBeforeService(t *testing.T) {
	h := newTestRouter(&config.Config{})

	for _, p := range []string{"/users/abc", "/events/0", "/users/1/events/x", "/categories/-3"} {
		rr := get(h, p)
		assert.Equal(t, http.StatusBadRequest, rr.Code, p)
	}
}

func TestRouter_Metrics(t *testing.T) {
	h := newTestRouter(&config.Config{})
	_ = get(h, "/healthz")

	rr := get(h, "/metrics")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "eventhub_service_http_requests_total")
}

func TestRouter_RateLimit(t *testing.T) {
	h := newTestRouter(&config.Config{RLEnabled: true, RLLimit: 2, RLWindow: time.Minute})

	assert.Equal(t, http.StatusOK, get(h, "/healthz").Code)
	assert.Equal(t, http.StatusOK, get(h, "/healthz").Code)

	rr := get(h, "/healthz")
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Contains(t, rr.Body.String(), `"code":"rate_limited"`)
}
