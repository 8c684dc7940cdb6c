package rest

import (
	"net/http"

	"github.com/heartmarshall/keepit-backend/internal/transport/middleware"
)

// Handlers groups everything the router serves.
type Handlers struct {
	Health       *HealthHandler
	Matching     *MatchingHandler
	Notification *NotificationHandler
	Stream       *StreamHandler
	Metrics      http.Handler
}

// NewRouter registers all routes. api wraps every /api/v1 route (auth, CORS,
// rate limiting); probes and /metrics are served bare.
func NewRouter(h Handlers, api middleware.Middleware) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)
	if h.Metrics != nil {
		mux.Handle("GET /metrics", h.Metrics)
	}

	route := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, api(fn))
	}

	// CORS answers preflights before the handler is reached.
	route("OPTIONS /api/v1/", http.NotFound)

	route("POST /api/v1/matchings", h.Matching.Open)
	route("GET /api/v1/matchings/{id}", h.Matching.Get)
	route("DELETE /api/v1/matchings/{id}", h.Matching.Withdraw)
	route("POST /api/v1/matchings/{id}/keep", h.Matching.Keep)
	route("POST /api/v1/matchings/{id}/accept", h.Matching.Accept)
	route("POST /api/v1/matchings/{id}/confirm", h.Matching.Confirm)
	route("POST /api/v1/matchings/{id}/complete", h.Matching.Complete)
	route("POST /api/v1/matchings/{id}/cancel", h.Matching.Cancel)

	route("GET /api/v1/notifications", h.Notification.List)
	route("GET /api/v1/notifications/unread-count", h.Notification.UnreadCount)
	route("GET /api/v1/notifications/stream", h.Stream.Stream)
	route("PUT /api/v1/notifications/read-all", h.Notification.MarkAllRead)
	route("PUT /api/v1/notifications/{id}/read", h.Notification.MarkRead)
	route("DELETE /api/v1/notifications/{id}", h.Notification.Delete)

	return mux
}
