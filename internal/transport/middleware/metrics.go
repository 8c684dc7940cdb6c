package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/keepit-backend/internal/metrics"
)

// Metrics records request counts by method and status, and latency by method.
// Hijacked websocket streams are counted but not timed.
func Metrics(m *metrics.Metrics) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := wrapStatus(w)

			next.ServeHTTP(sw, r)

			m.HTTPRequests.WithLabelValues(r.Method, strconv.Itoa(sw.status)).Inc()
			if sw.status != http.StatusSwitchingProtocols {
				m.HTTPDuration.WithLabelValues(r.Method).Observe(time.Since(start).Seconds())
			}
		})
	}
}
