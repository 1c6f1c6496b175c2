package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/transport/http/response"
)

// Pinger is satisfied by *sql.DB and the redis client.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// PingFunc adapts a plain ping to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) PingContext(ctx context.Context) error { return f(ctx) }

type HealthHandler struct {
	deps map[string]Pinger
}

// NewHealthHandler takes the named dependencies readyz must reach. Nil entries are skipped.
func NewHealthHandler(deps map[string]Pinger) *HealthHandler {
	clean := make(map[string]Pinger, len(deps))
	for k, v := range deps {
		if v != nil {
			clean[k] = v
		}
	}
	return &HealthHandler{deps: clean}
}

func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	response.Data(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := map[string]string{}
	ready := true
	for name, p := range h.deps {
		if err := p.PingContext(ctx); err != nil {
			status[name] = "down"
			ready = false
			continue
		}
		status[name] = "up"
	}
	if !ready {
		response.Fail(w, http.StatusServiceUnavailable, "not_ready", "dependency unavailable", status,
			response.RequestIDFromRequest(r))
		return
	}
	status["status"] = "ready"
	response.Data(w, http.StatusOK, status)
}
