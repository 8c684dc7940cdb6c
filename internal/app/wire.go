package app

import (
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/raulk/clock"

	"github.com/heartmarshall/keepit-backend/internal/adapter/postgres"
	matchingrepo "github.com/heartmarshall/keepit-backend/internal/adapter/postgres/matching"
	noticerepo "github.com/heartmarshall/keepit-backend/internal/adapter/postgres/notice"
	notificationrepo "github.com/heartmarshall/keepit-backend/internal/adapter/postgres/notification"
	placerepo "github.com/heartmarshall/keepit-backend/internal/adapter/postgres/place"
	productrepo "github.com/heartmarshall/keepit-backend/internal/adapter/postgres/product"
	userrepo "github.com/heartmarshall/keepit-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/keepit-backend/internal/config"
	"github.com/heartmarshall/keepit-backend/internal/metrics"
	"github.com/heartmarshall/keepit-backend/internal/service/expiry"
	"github.com/heartmarshall/keepit-backend/internal/service/matching"
	"github.com/heartmarshall/keepit-backend/internal/service/notification"
)

// Deps holds the long-lived components shared by the server and the
// maintenance commands.
type Deps struct {
	Registry      *notification.Registry
	Dispatcher    *notification.Dispatcher
	Notifications *notification.Service
	Matching      *matching.Service
	Scanner       *expiry.Scanner
	Metrics       *metrics.Metrics
	Prometheus    *prometheus.Registry
}

// Wire builds repositories and services on top of pool.
func Wire(cfg *config.Config, pool *pgxpool.Pool, clk clock.Clock, logger *slog.Logger) *Deps {
	// 1. Metrics.
	prom := prometheus.NewRegistry()
	prom.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(prom)

	// 2. Repositories.
	txm := postgres.NewTxManager(pool)
	matchings := matchingrepo.New(pool)
	notices := noticerepo.New(pool)
	notifications := notificationrepo.New(pool)
	products := productrepo.New(pool)
	places := placerepo.New(pool)
	users := userrepo.New(pool)

	// 3. Live channels and delivery.
	registry := notification.NewRegistry(cfg.Push.BufferSize)
	m.ObserveLiveChannels(registry.Len)
	dispatcher := notification.NewDispatcher(logger, users, notifications, registry, clk, m)

	// 4. Services.
	return &Deps{
		Registry:      registry,
		Dispatcher:    dispatcher,
		Notifications: notification.NewService(logger, notifications, clk),
		Matching: matching.NewService(
			logger, matchings, products, places, users, txm, dispatcher, clk, cfg.Scanner.Location,
		),
		Scanner:    expiry.NewScanner(logger, matchings, notices, txm, dispatcher, clk, m, cfg.Scanner),
		Metrics:    m,
		Prometheus: prom,
	}
}
