package response

import (
	"net/http"

	appCtx "github.com/baechuer/real-time-ressys/services/eventhub-service/internal/pkg/context"
)

// RequestIDFromRequest prefers the id the RequestID middleware put in the context
// and falls back to the inbound header.
func RequestIDFromRequest(r *http.Request) string {
	if r == nil {
		return ""
	}
	if id := appCtx.GetRequestID(r.Context()); id != "" {
		return id
	}
	return r.Header.Get("X-Request-Id")
}
