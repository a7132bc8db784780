package service

import (
	"log/slog"
	"time"

	"github.com/be1500616/zergoqrf/internal/auth/models"
	"github.com/be1500616/zergoqrf/internal/platform/metrics"
)

// Service implements the authentication use cases. It holds no per-request
// state and is safe for concurrent use.
type Service struct {
	auth           AuthRepository
	sessions       SessionRepository
	tokens         TokenRepository
	users          UserRepository
	restaurants    RestaurantDirectory
	logger         *slog.Logger
	auditPublisher AuditPublisher
	metrics        *metrics.Metrics
	anonymousTTL   time.Duration
}

const (
	minPasswordLength = 8
	defaultExtendBy   = 24 * time.Hour
)

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) {
		s.auditPublisher = publisher
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithRestaurantDirectory enables tenant existence checks on guest session
// creation and the restaurant-code entry flow.
func WithRestaurantDirectory(dir RestaurantDirectory) Option {
	return func(s *Service) {
		s.restaurants = dir
	}
}

// WithAnonymousSessionTTL overrides the 24 hour guest session lifetime.
func WithAnonymousSessionTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.anonymousTTL = ttl
		}
	}
}

func New(auth AuthRepository, sessions SessionRepository, tokens TokenRepository, users UserRepository, opts ...Option) *Service {
	svc := &Service{
		auth:         auth,
		sessions:     sessions,
		tokens:       tokens,
		users:        users,
		anonymousTTL: models.DefaultAnonymousSessionTTL,
	}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.logger == nil {
		svc.logger = slog.Default()
	}
	return svc
}
