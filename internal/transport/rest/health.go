package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/raulk/clock"
)

const pingTimeout = 3 * time.Second

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// channelCounter reports how many live notification channels are open.
type channelCounter interface {
	Len() int
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	db       dbPinger
	channels channelCounter
	clock    clock.Clock
	version  string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db dbPinger, channels channelCounter, clk clock.Clock, version string) *HealthHandler {
	return &HealthHandler{db: db, channels: channels, clock: clk, version: version}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status      string `json:"status"`
	Latency     string `json:"latency,omitempty"`
	Connections *int   `json:"connections,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: h.clock.Now().UTC(),
	})
}

// Ready is the readiness probe. Pings DB: 200 if OK, 503 if not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	status, code := "ok", http.StatusOK
	if err := h.db.Ping(ctx); err != nil {
		status, code = "down", http.StatusServiceUnavailable
	}

	writeJSON(w, code, HealthResponse{
		Status:    status,
		Timestamp: h.clock.Now().UTC(),
	})
}

// Health is the full health check: database latency, open live channels and
// build version. Only the database decides the overall status.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	components := make(map[string]CompStatus, 2)
	overall, code := "ok", http.StatusOK

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		components["database"] = CompStatus{Status: "down"}
		overall, code = "down", http.StatusServiceUnavailable
	} else {
		components["database"] = CompStatus{Status: "ok", Latency: time.Since(start).String()}
	}

	open := h.channels.Len()
	components["push"] = CompStatus{Status: "ok", Connections: &open}

	writeJSON(w, code, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: components,
		Timestamp:  h.clock.Now().UTC(),
	})
}
