// Command cleanup-notifications deletes read notifications older than the
// given number of days. It is intended to be invoked by an external cron
// job, not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/raulk/clock"

	"github.com/heartmarshall/keepit-backend/internal/adapter/postgres"
	notificationrepo "github.com/heartmarshall/keepit-backend/internal/adapter/postgres/notification"
	"github.com/heartmarshall/keepit-backend/internal/app"
	"github.com/heartmarshall/keepit-backend/internal/config"
	"github.com/heartmarshall/keepit-backend/internal/service/notification"
)

func main() {
	days := flag.Int("days", 30, "retention in days for read notifications")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := notification.NewService(logger, notificationrepo.New(pool), clock.New())

	if _, err := svc.Cleanup(ctx, time.Duration(*days)*24*time.Hour); err != nil {
		logger.Error("cleanup failed", slog.Int("days", *days), slog.String("error", err.Error()))
		os.Exit(1)
	}
}
