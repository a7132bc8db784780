package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/be1500616/zergoqrf/internal/auth/store/revocation"
	"github.com/be1500616/zergoqrf/internal/auth/store/session"
	"github.com/be1500616/zergoqrf/internal/platform/config"
	"github.com/be1500616/zergoqrf/internal/platform/database"
	"github.com/be1500616/zergoqrf/internal/platform/logger"
	"github.com/be1500616/zergoqrf/internal/platform/redis"
)

var jsonOutput bool

// NewRootCmd creates the root command for the operator CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "authctl",
		Short: "Operator tooling for the restaurant auth service",
		Long: `authctl talks to the same Redis and Postgres backends as the server,
configured through the server's environment variables.`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")

	cmd.AddCommand(NewTokenCmd())
	cmd.AddCommand(NewSessionsCmd())
	return cmd
}

var errNoBackend = errors.New("no REDIS_URL or DATABASE_URL configured")

// stores are the persistent backends picked with the server's precedence:
// Redis first, then Postgres.
type stores struct {
	sessions    sessionCleaner
	revocations revocation.List
	close       func()
}

type sessionCleaner interface {
	CleanupExpiredSessions(ctx context.Context) (int, error)
}

func openStores(ctx context.Context, cfg config.Server, log *slog.Logger) (*stores, error) {
	rdb, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	if rdb != nil {
		return &stores{
			sessions:    session.NewRedis(rdb.Client),
			revocations: revocation.NewRedisList(rdb.Client),
			close:       func() { closeQuietly(log, "redis", rdb.Close) },
		}, nil
	}

	db, err := database.New(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if db != nil {
		return &stores{
			sessions:    session.NewPostgres(db.DB()),
			revocations: revocation.NewPostgresList(db.DB()),
			close:       func() { closeQuietly(log, "database", db.Close) },
		}, nil
	}
	return nil, errNoBackend
}

func closeQuietly(log *slog.Logger, name string, closeFn func() error) {
	if err := closeFn(); err != nil {
		log.Warn("close failed", "backend", name, "error", err)
	}
}

func newLogger(cmd *cobra.Command, cfg config.Server) *slog.Logger {
	return logger.NewWithWriter(cmd.ErrOrStderr(), cfg.LogLevel)
}
