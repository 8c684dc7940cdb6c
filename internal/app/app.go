package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/raulk/clock"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/keepit-backend/internal/adapter/postgres"
	"github.com/heartmarshall/keepit-backend/internal/config"
	"github.com/heartmarshall/keepit-backend/migrations"
)

// Pinger reports database reachability for the readiness probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Run is the application entry point. It loads configuration, connects to the
// database, starts the HTTP server and the expiry scanner, and blocks until
// ctx is cancelled or one of them fails.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("timezone", cfg.Scanner.Location.String()),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, migrations.FS, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	clk := clock.New()
	deps := Wire(cfg, pool, clk, logger)
	srv := newHTTPServer(cfg, deps, pool, clk, logger)

	return serve(ctx, cfg, deps, srv, logger)
}

func serve(ctx context.Context, cfg *config.Config, deps *Deps, srv *httpServer, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	if cfg.Scanner.Enabled {
		g.Go(func() error {
			return deps.Scanner.Run(gctx)
		})
	} else {
		logger.Warn("expiry scanner disabled")
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		// Hijacked websocket connections are not tracked by Shutdown.
		deps.Registry.Close()
		srv.stop()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("stopped with error", slog.String("error", err.Error()))
		return err
	}
	logger.Info("stopped")
	return nil
}
