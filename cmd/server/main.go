package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/be1500616/zergoqrf/internal/audit"
	"github.com/be1500616/zergoqrf/internal/auth/handler"
	"github.com/be1500616/zergoqrf/internal/auth/identity"
	"github.com/be1500616/zergoqrf/internal/auth/service"
	"github.com/be1500616/zergoqrf/internal/auth/workers/cleanup"
	jwttoken "github.com/be1500616/zergoqrf/internal/jwt_token"
	"github.com/be1500616/zergoqrf/internal/platform/config"
	"github.com/be1500616/zergoqrf/internal/platform/health"
	"github.com/be1500616/zergoqrf/internal/platform/logger"
	"github.com/be1500616/zergoqrf/internal/platform/metrics"
)

const (
	shutdownTimeout   = 10 * time.Second
	poolStatsInterval = 15 * time.Second
)

// main wires dependencies and owns the process lifecycle. Business logic
// lives in the internal service packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	if err := run(cfg, log); err != nil {
		log.Error("server exited with error", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

func run(cfg config.Server, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("initializing zergoqrf auth",
		"addr", cfg.Addr,
		"environment", cfg.Environment,
	)
	if cfg.IsProduction() && cfg.Identity.JWTSecret == config.DevJWTSecret {
		return errors.New("refusing to start in production with the development JWT secret")
	}

	m := metrics.New(prometheus.DefaultRegisterer)
	checks := health.New(cfg.Environment).WithLogger(log)

	deps, err := openInfra(ctx, cfg, log, checks)
	if err != nil {
		return err
	}
	defer deps.Close(log)

	backends := selectBackends(cfg, deps, m, log)

	publisher := audit.NewPublisher(backends.auditSink,
		audit.WithAsyncBuffer(1024),
		audit.WithPublisherLogger(log),
	)
	defer publisher.Close()

	idOpts := []identity.Option{
		identity.WithHTTPClient(&http.Client{Timeout: cfg.Identity.Timeout}),
		identity.WithMetrics(m),
		identity.WithLogger(log),
	}
	if backends.directory != nil {
		idOpts = append(idOpts, identity.WithDirectory(backends.directory))
	}
	provider := identity.New(cfg.Identity.URL, cfg.Identity.AnonKey, cfg.Identity.ServiceRoleKey, idOpts...)

	jwtService := jwttoken.NewJWTService(cfg.Identity.JWTSecret, "", "authenticated", time.Hour)
	tokens := jwttoken.NewRepository(jwtService, backends.revocations, log)

	svcOpts := []service.Option{
		service.WithLogger(log),
		service.WithAuditPublisher(publisher),
		service.WithMetrics(m),
		service.WithAnonymousSessionTTL(cfg.Sessions.AnonymousTTL),
	}
	if backends.restaurants != nil {
		svcOpts = append(svcOpts, service.WithRestaurantDirectory(backends.restaurants))
	}
	authService := service.New(provider, backends.sessions, tokens, provider, svcOpts...)

	authHandler := handler.New(authService, backends.otpLimiter, cfg.AdminAPIToken, log)
	router := newRouter(cfg, log, m, checks, authHandler)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	workerOpts := []cleanup.Option{
		cleanup.WithLogger(log),
		cleanup.WithInterval(cfg.Sessions.CleanupInterval),
		cleanup.WithMetrics(m),
	}
	if purger, ok := backends.revocations.(cleanup.RevocationPurger); ok {
		workerOpts = append(workerOpts, cleanup.WithRevocationPurger(purger))
	}
	worker := cleanup.New(authService, workerOpts...)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting http server", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down server gracefully")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	g.Go(func() error {
		if err := worker.Start(gctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})
	if deps.redis != nil || deps.db != nil {
		g.Go(func() error {
			ticker := time.NewTicker(poolStatsInterval)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					if deps.redis != nil {
						deps.redis.RecordPoolStats(m)
					}
					if deps.db != nil {
						deps.db.RecordStats(m)
					}
				case <-gctx.Done():
					return nil
				}
			}
		})
	}

	return g.Wait()
}
