package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/be1500616/zergoqrf/internal/audit"
	"github.com/be1500616/zergoqrf/internal/auth/identity"
	"github.com/be1500616/zergoqrf/internal/auth/service"
	"github.com/be1500616/zergoqrf/internal/auth/store/revocation"
	"github.com/be1500616/zergoqrf/internal/auth/store/session"
	"github.com/be1500616/zergoqrf/internal/auth/store/user"
	"github.com/be1500616/zergoqrf/internal/platform/config"
	"github.com/be1500616/zergoqrf/internal/platform/database"
	"github.com/be1500616/zergoqrf/internal/platform/health"
	"github.com/be1500616/zergoqrf/internal/platform/kafka/producer"
	"github.com/be1500616/zergoqrf/internal/platform/metrics"
	"github.com/be1500616/zergoqrf/internal/platform/redis"
	"github.com/be1500616/zergoqrf/internal/ratelimit"
	"github.com/be1500616/zergoqrf/internal/restaurant"
)

// infra holds the optional external connections. A nil field means the
// dependency is not configured.
type infra struct {
	db    *database.Pool
	redis *redis.Client
	kafka *producer.Producer
}

func openInfra(ctx context.Context, cfg config.Server, log *slog.Logger, checks *health.Handler) (*infra, error) {
	in := &infra{}

	db, err := database.New(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if db != nil {
		in.db = db
		checks.RegisterCheck("database", db.Health)
	}

	rdb, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		in.Close(log)
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	if rdb != nil {
		in.redis = rdb
		checks.RegisterCheck("redis", rdb.Health)
	}

	if cfg.Kafka.Brokers != "" {
		p, err := producer.New(cfg.Kafka.Brokers, producer.WithLogger(log))
		if err != nil {
			in.Close(log)
			return nil, fmt.Errorf("connect kafka: %w", err)
		}
		in.kafka = p
		checks.RegisterCheck("kafka", p.Health)
	}

	log.Info("infrastructure ready",
		"database", in.db != nil,
		"redis", in.redis != nil,
		"kafka", in.kafka != nil,
	)
	return in, nil
}

func (in *infra) Close(log *slog.Logger) {
	if in.kafka != nil {
		if err := in.kafka.Close(); err != nil {
			log.Warn("kafka close failed", "error", err)
		}
	}
	if in.redis != nil {
		if err := in.redis.Close(); err != nil {
			log.Warn("redis close failed", "error", err)
		}
	}
	if in.db != nil {
		if err := in.db.Close(); err != nil {
			log.Warn("database close failed", "error", err)
		}
	}
}

// backends are the store implementations picked for this process. Redis is
// preferred for session and revocation state, Postgres next, memory last.
type backends struct {
	sessions    service.SessionRepository
	revocations revocation.List
	directory   identity.Directory
	restaurants service.RestaurantDirectory
	otpLimiter  *ratelimit.Limiter
	auditSink   audit.Sink
}

func selectBackends(cfg config.Server, in *infra, m *metrics.Metrics, log *slog.Logger) *backends {
	b := &backends{auditSink: audit.NewInMemoryStore()}

	switch {
	case in.redis != nil:
		b.sessions = session.NewRedis(in.redis.Client)
		b.revocations = revocation.NewRedisList(in.redis.Client)
	case in.db != nil:
		b.sessions = session.NewPostgres(in.db.DB())
		b.revocations = revocation.NewPostgresList(in.db.DB())
	default:
		log.Warn("no redis or database configured, guest sessions and revocations are process-local")
		b.sessions = session.NewInMemoryStore()
		b.revocations = revocation.NewInMemoryList()
	}

	if in.db != nil {
		b.directory = user.NewPostgres(in.db.DB())
		b.restaurants = restaurant.NewPostgresStore(in.db.DB())
	}

	var primary ratelimit.Store = ratelimit.NewInMemoryStore()
	if in.redis != nil {
		primary = ratelimit.NewRedisStore(in.redis.Client)
	}
	b.otpLimiter = ratelimit.New(primary, cfg.OTPLimit.Limit, cfg.OTPLimit.Window,
		ratelimit.WithMetrics(m),
		ratelimit.WithLogger(log),
	)

	if in.kafka != nil {
		b.auditSink = audit.NewKafkaSink(in.kafka, cfg.Kafka.AuditTopic)
	}
	return b
}
