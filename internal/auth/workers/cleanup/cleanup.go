// Package cleanup periodically deletes expired and invalidated guest sessions
// and, when a purger is configured, revocation entries for expired tokens.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/be1500616/zergoqrf/internal/platform/metrics"
)

// SessionCleaner is satisfied by the auth service.
type SessionCleaner interface {
	CleanupExpiredSessions(ctx context.Context) (int, error)
}

// RevocationPurger drops revocation entries whose tokens have expired.
type RevocationPurger interface {
	Purge(ctx context.Context) (int, error)
}

// Result describes one cleanup run.
type Result struct {
	Deleted  int
	Purged   int
	Duration time.Duration
}

type Option func(*Worker)

func WithLogger(logger *slog.Logger) Option {
	return func(w *Worker) {
		if logger != nil {
			w.logger = logger
		}
	}
}

func WithInterval(interval time.Duration) Option {
	return func(w *Worker) {
		if interval > 0 {
			w.interval = interval
		}
	}
}

func WithRevocationPurger(p RevocationPurger) Option {
	return func(w *Worker) {
		w.purger = p
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(w *Worker) {
		w.metrics = m
	}
}

type Worker struct {
	cleaner  SessionCleaner
	purger   RevocationPurger
	logger   *slog.Logger
	interval time.Duration
	metrics  *metrics.Metrics
}

func New(cleaner SessionCleaner, opts ...Option) *Worker {
	w := &Worker{
		cleaner:  cleaner,
		logger:   slog.Default(),
		interval: time.Hour,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Start runs cleanup on every tick until ctx is cancelled. A failed run is
// logged and retried on the next tick.
func (w *Worker) Start(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info("session cleanup worker started", "interval", w.interval)
	for {
		select {
		case <-ticker.C:
			res, err := w.RunOnce(ctx)
			if err != nil {
				w.logger.Error("session_cleanup_failed",
					"error", err,
					"duration_ms", res.Duration.Milliseconds(),
				)
				continue
			}
			w.logger.Info("session_cleanup_completed",
				"deleted", res.Deleted,
				"revocations_purged", res.Purged,
				"duration_ms", res.Duration.Milliseconds(),
			)

		case <-ctx.Done():
			w.logger.Info("session cleanup worker stopping", "reason", ctx.Err())
			return ctx.Err()
		}
	}
}

// RunOnce executes a single cleanup run. The returned Result is never nil.
func (w *Worker) RunOnce(ctx context.Context) (*Result, error) {
	start := time.Now()
	res := &Result{}
	var err error
	res.Deleted, err = w.cleaner.CleanupExpiredSessions(ctx)
	if err == nil && w.purger != nil {
		res.Purged, err = w.purger.Purge(ctx)
	}
	res.Duration = time.Since(start)

	if w.metrics != nil {
		status := "success"
		if err != nil {
			status = "error"
		}
		w.metrics.ObserveCleanupRun(status, res.Duration.Seconds())
	}
	return res, err
}
