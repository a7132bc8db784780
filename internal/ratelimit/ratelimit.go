// Package ratelimit bounds how often OTP codes are sent to a phone number.
package ratelimit

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/be1500616/zergoqrf/internal/platform/metrics"
	"github.com/be1500616/zergoqrf/internal/platform/privacy"
	"github.com/be1500616/zergoqrf/pkg/platform/circuit"
	"github.com/be1500616/zergoqrf/pkg/platform/requestcontext"
)

const otpKeyPrefix = "otp:"

// Result describes the state of a window after a check.
type Result struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetAt    time.Time
	RetryAfter int // seconds
}

// Store records hits in a sliding window.
type Store interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (*Result, error)
	Ping(ctx context.Context) error
}

// Limiter checks the primary store and falls back to an in-process window
// while the primary's breaker is open.
type Limiter struct {
	primary  Store
	fallback Store
	breaker  *circuit.Breaker
	limit    int
	window   time.Duration
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

type Option func(*Limiter)

func WithFallback(store Store) Option {
	return func(l *Limiter) { l.fallback = store }
}

func WithBreaker(b *circuit.Breaker) Option {
	return func(l *Limiter) { l.breaker = b }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(l *Limiter) { l.metrics = m }
}

func WithLogger(logger *slog.Logger) Option {
	return func(l *Limiter) { l.logger = logger }
}

// New builds a limiter allowing limit OTP sends per phone within window.
func New(primary Store, limit int, window time.Duration, opts ...Option) *Limiter {
	l := &Limiter{
		primary: primary,
		limit:   limit,
		window:  window,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.fallback == nil {
		l.fallback = NewInMemoryStore()
	}
	if l.breaker == nil {
		l.breaker = circuit.New("otp_ratelimit", circuit.WithProbeInterval(time.Second))
	}
	return l
}

// AllowOTP counts one OTP send for phone.
func (l *Limiter) AllowOTP(ctx context.Context, phone string) (*Result, error) {
	result, err := l.check(ctx, otpKeyPrefix+phone)
	if err != nil {
		return nil, err
	}
	if !result.Allowed {
		l.logger.WarnContext(ctx, "otp rate limit exceeded",
			"event", "rate_limited",
			"log_type", "security",
			"phone", privacy.MaskPhone(phone),
			"retry_after", result.RetryAfter,
		)
		if l.metrics != nil {
			l.metrics.IncrementRateLimited("otp")
		}
	}
	return result, nil
}

func (l *Limiter) check(ctx context.Context, key string) (*Result, error) {
	if l.breaker.IsOpen() && !(l.breaker.ProbeDue(requestcontext.Now(ctx)) && l.probe(ctx)) {
		return l.fallback.Allow(ctx, key, l.limit, l.window)
	}

	result, err := l.primary.Allow(ctx, key, l.limit, l.window)
	if err == nil {
		l.breaker.RecordSuccess()
		return result, nil
	}

	_, change := l.breaker.RecordFailure()
	if change.Opened {
		l.logger.ErrorContext(ctx, "circuit breaker opened",
			"circuit", l.breaker.Name(),
			"error", err,
		)
	} else {
		l.logger.WarnContext(ctx, "rate limit store failed, using fallback",
			"circuit", l.breaker.Name(),
			"error", err,
		)
	}
	return l.fallback.Allow(ctx, key, l.limit, l.window)
}

// probe pings the primary while the breaker is open and reports whether it
// has recovered.
func (l *Limiter) probe(ctx context.Context) bool {
	if err := l.primary.Ping(ctx); err != nil {
		l.breaker.RecordFailure()
		return false
	}
	usePrimary, change := l.breaker.RecordSuccess()
	if change.Closed {
		l.logger.InfoContext(ctx, "circuit breaker closed", "circuit", l.breaker.Name())
	}
	return usePrimary
}

func retryAfterSeconds(allowed bool, resetAt, now time.Time) int {
	if allowed {
		return 0
	}
	wait := resetAt.Sub(now).Seconds()
	if wait <= 0 {
		return 0
	}
	return int(math.Ceil(wait))
}
