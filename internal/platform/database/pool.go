// Package database opens the Postgres pool shared by the session,
// revocation, restaurant and user stores.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/be1500616/zergoqrf/internal/platform/config"
	"github.com/be1500616/zergoqrf/internal/platform/metrics"
)

const (
	poolName    = "postgres"
	pingTimeout = 5 * time.Second
)

// Pool wraps *sql.DB opened on the pgx stdlib driver.
type Pool struct {
	db *sql.DB

	mu   sync.Mutex
	last metrics.PoolSnapshot
}

// New opens and pings the database. An empty URL means Postgres is not
// configured and yields a nil pool without an error.
func New(ctx context.Context, cfg config.DatabaseConfig) (*Pool, error) {
	if cfg.URL == "" {
		return nil, nil
	}

	db, err := sql.Open("pgx", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &Pool{db: db}, nil
}

func (p *Pool) DB() *sql.DB {
	return p.db
}

func (p *Pool) Health(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

// RecordStats publishes pool gauges from sql.DBStats.
func (p *Pool) RecordStats(m *metrics.Metrics) {
	stats := p.db.Stats()
	cur := metrics.PoolSnapshot{
		Total: stats.OpenConnections,
		Idle:  stats.Idle,
		InUse: stats.InUse,
		Waits: uint64(stats.WaitCount),
	}

	p.mu.Lock()
	prev := p.last
	p.last = cur
	p.mu.Unlock()

	m.RecordPool(poolName, cur, prev)
}

func (p *Pool) Close() error {
	return p.db.Close()
}
