// Package expiry raises the date-based storage notices: reminders a few days
// into storage, warnings before expiry, and the expiry notice itself.
package expiry

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/raulk/clock"
	"go.uber.org/multierr"

	"github.com/heartmarshall/keepit-backend/internal/config"
	"github.com/heartmarshall/keepit-backend/internal/domain"
	"github.com/heartmarshall/keepit-backend/internal/metrics"
)

type matchingRepo interface {
	ListEligible(ctx context.Context, day time.Time, confirmDays int) ([]domain.Matching, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Matching, error)
}

type noticeRepo interface {
	Claim(ctx context.Context, matchingID uuid.UUID, trigger domain.Trigger, day time.Time) (bool, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type notifier interface {
	Persist(ctx context.Context, userID uuid.UUID, message string) (*domain.Notification, error)
	PushAll(ctx context.Context, ns []*domain.Notification)
}

// Report summarizes one scanned day.
type Report struct {
	Day     time.Time
	Scanned int
	Notices int
	Failed  int
}

// Scanner evaluates STORED matchings against the calendar once per interval.
type Scanner struct {
	matchings matchingRepo
	notices   noticeRepo
	tx        txManager
	notifier  notifier
	clock     clock.Clock
	metrics   *metrics.Metrics
	cfg       config.ScannerConfig
	log       *slog.Logger

	// lastDay is the latest day through which every scan succeeded. Only touched by Run.
	lastDay time.Time
}

// NewScanner creates a Scanner. cfg must have passed validation.
func NewScanner(
	log *slog.Logger,
	matchings matchingRepo,
	notices noticeRepo,
	tx txManager,
	notifier notifier,
	clk clock.Clock,
	m *metrics.Metrics,
	cfg config.ScannerConfig,
) *Scanner {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &Scanner{
		matchings: matchings,
		notices:   notices,
		tx:        tx,
		notifier:  notifier,
		clock:     clk,
		metrics:   m,
		cfg:       cfg,
		log:       log.With("service", "expiry"),
	}
}

// Today returns the current calendar day in the scanner's timezone.
func (s *Scanner) Today() time.Time {
	return domain.DateOf(s.clock.Now().In(s.cfg.Location))
}

// Run scans immediately, catching up on recent days, and then once every
// interval until ctx is cancelled. Failed scans are logged and retried on the
// next tick.
func (s *Scanner) Run(ctx context.Context) error {
	ticker := s.clock.Ticker(s.cfg.Interval)
	defer ticker.Stop()

	s.log.InfoContext(ctx, "expiry scanner started",
		slog.Duration("interval", s.cfg.Interval),
		slog.Int("confirm_days", s.cfg.ConfirmDays),
		slog.String("timezone", s.cfg.Location.String()),
	)

	s.scanDue(ctx)
	for {
		select {
		case <-ctx.Done():
			s.log.InfoContext(ctx, "expiry scanner stopped")
			return nil
		case <-ticker.C:
			s.scanDue(ctx)
		}
	}
}

// scanDue scans every day from the one after lastDay up to today, looking back
// at most CatchUpDays. Today is always rescanned so matchings confirmed since
// the last tick get their start-day notices. lastDay stops before the first
// failed day, so the next tick scans it again; claimed markers keep the days
// after it from sending twice.
func (s *Scanner) scanDue(ctx context.Context) {
	today := s.Today()

	from := today.AddDate(0, 0, -s.cfg.CatchUpDays)
	if !s.lastDay.IsZero() && s.lastDay.AddDate(0, 0, 1).After(from) {
		from = s.lastDay.AddDate(0, 0, 1)
	}
	if from.After(today) {
		from = today
	}

	failed := false
	for day := from; !day.After(today); day = day.AddDate(0, 0, 1) {
		if ctx.Err() != nil {
			return
		}
		if _, err := s.RunOnce(ctx, day); err != nil {
			s.log.ErrorContext(ctx, "expiry scan failed",
				slog.String("day", day.Format(time.DateOnly)),
				slog.String("error", err.Error()),
			)
			failed = true
			continue
		}
		if !failed && day.After(s.lastDay) {
			s.lastDay = day
		}
	}
}

// RunOnce scans one calendar day. A failure on one matching does not stop the
// others; all failures are returned together.
func (s *Scanner) RunOnce(ctx context.Context, day time.Time) (Report, error) {
	day = domain.DateOf(day)
	started := s.clock.Now()
	report := Report{Day: day}

	eligible, err := s.matchings.ListEligible(ctx, day, s.cfg.ConfirmDays)
	if err != nil {
		s.metrics.ScanFailures.Inc()
		return report, fmt.Errorf("list eligible: %w", err)
	}
	report.Scanned = len(eligible)

	var errs error
	for i := range eligible {
		id := eligible[i].ID
		fired, err := s.process(ctx, id, day)
		if err != nil {
			report.Failed++
			s.metrics.ScanFailures.Inc()
			s.log.ErrorContext(ctx, "expiry notice failed",
				slog.String("matching_id", id.String()),
				slog.String("day", day.Format(time.DateOnly)),
				slog.String("error", err.Error()),
			)
			errs = multierr.Append(errs, fmt.Errorf("matching %s: %w", id, err))
			continue
		}
		report.Notices += len(fired)
	}

	s.metrics.ScanRuns.Inc()
	s.metrics.ScanDuration.Observe(s.clock.Since(started).Seconds())

	s.log.InfoContext(ctx, "expiry scan finished",
		slog.String("day", day.Format(time.DateOnly)),
		slog.Int("scanned", report.Scanned),
		slog.Int("notices", report.Notices),
		slog.Int("failed", report.Failed),
	)

	return report, errs
}

// process fires the triggers due for one matching. The row is locked and its
// triggers re-evaluated, so a matching completed since listing is skipped.
// Markers and notifications commit together; pushes follow the commit.
func (s *Scanner) process(ctx context.Context, id uuid.UUID, day time.Time) ([]domain.Trigger, error) {
	var (
		fired []domain.Trigger
		sent  []*domain.Notification
	)

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		fired, sent = nil, nil

		m, err := s.matchings.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}

		for _, trigger := range domain.DueTriggers(m, day, s.cfg.ConfirmDays) {
			claimed, err := s.notices.Claim(ctx, m.ID, trigger, day)
			if err != nil {
				return fmt.Errorf("claim %s: %w", trigger, err)
			}
			if !claimed {
				continue
			}

			for _, msg := range noticesFor(m, trigger, s.cfg.ConfirmDays) {
				n, err := s.notifier.Persist(ctx, msg.to, msg.text)
				if err != nil {
					return fmt.Errorf("notify %s: %w", trigger, err)
				}
				sent = append(sent, n)
			}
			fired = append(fired, trigger)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.PushAll(ctx, sent)
	for _, t := range fired {
		s.metrics.ScanNotices.WithLabelValues(t.String()).Inc()
	}
	return fired, nil
}
