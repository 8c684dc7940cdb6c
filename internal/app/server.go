package app

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/raulk/clock"

	"github.com/heartmarshall/keepit-backend/internal/auth"
	"github.com/heartmarshall/keepit-backend/internal/config"
	"github.com/heartmarshall/keepit-backend/internal/transport/middleware"
	"github.com/heartmarshall/keepit-backend/internal/transport/rest"
)

const rateLimitCleanupInterval = 5 * time.Minute

// httpServer is the HTTP surface plus the resources that must be released
// when it stops.
type httpServer struct {
	*http.Server
	stop func()
}

func newHTTPServer(cfg *config.Config, deps *Deps, pinger Pinger, clk clock.Clock, logger *slog.Logger) *httpServer {
	handler, stop := NewHTTPHandler(cfg, deps, pinger, clk, logger)
	return &httpServer{
		Server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
			Handler:      handler,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
			IdleTimeout:  cfg.Server.IdleTimeout,
		},
		stop: stop,
	}
}

// NewHTTPHandler builds the complete HTTP surface over deps. stop releases
// the rate limiter's background cleanup.
func NewHTTPHandler(cfg *config.Config, deps *Deps, pinger Pinger, clk clock.Clock, logger *slog.Logger) (h http.Handler, stop func()) {
	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	limiter := middleware.NewRateLimiter(clk, rateLimitCleanupInterval)

	handlers := rest.Handlers{
		Health:       rest.NewHealthHandler(pinger, deps.Registry, clk, BuildVersion()),
		Matching:     rest.NewMatchingHandler(deps.Matching, logger),
		Notification: rest.NewNotificationHandler(deps.Notifications, logger),
		Stream:       rest.NewStreamHandler(deps.Registry, clk, cfg.Push, logger),
		Metrics:      promhttp.HandlerFor(deps.Prometheus, promhttp.HandlerOpts{}),
	}

	return newHandler(cfg, handlers, jwt, limiter, deps, logger), limiter.Stop
}

// newHandler assembles the router and both middleware chains. Every request
// gets recovery, a request id, access logs and metrics; /api/v1 routes also
// get CORS, rate limiting and authentication.
func newHandler(
	cfg *config.Config,
	h rest.Handlers,
	jwt *auth.JWTManager,
	limiter *middleware.RateLimiter,
	deps *Deps,
	logger *slog.Logger,
) http.Handler {
	api := middleware.Chain(
		middleware.CORS(cfg.CORS),
		limiter.Limit(cfg.Server.RateLimitPerMin),
		middleware.Auth(jwt),
	)

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Metrics(deps.Metrics),
	)(rest.NewRouter(h, api))
}
