// Command scan-expiry runs one expiry scan for a single calendar day and
// exits. It is meant for catching up on days the server missed; notices
// already sent for that day are not sent again.
//
// Usage:
//
//	scan-expiry [-date YYYY-MM-DD]
//
// Without -date the current day in the scanner timezone is scanned.
// Exit codes: 0 = success, 1 = error or partial failure.
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
	"github.com/heartmarshall/keepit-backend/internal/app"
	"github.com/heartmarshall/keepit-backend/internal/config"
)

func main() {
	date := flag.String("date", "", "day to scan, YYYY-MM-DD (default: today)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	deps := app.Wire(cfg, pool, clock.New(), logger)

	day := deps.Scanner.Today()
	if *date != "" {
		day, err = time.ParseInLocation(time.DateOnly, *date, time.UTC)
		if err != nil {
			logger.Error("invalid -date", slog.String("date", *date), slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	report, err := deps.Scanner.RunOnce(ctx, day)
	if err != nil {
		logger.Error("scan failed",
			slog.String("day", day.Format(time.DateOnly)),
			slog.Int("failed", report.Failed),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}

	logger.Info("scan completed",
		slog.String("day", day.Format(time.DateOnly)),
		slog.Int("scanned", report.Scanned),
		slog.Int("notices", report.Notices),
	)
}
