//go:build integration

package containers

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

//go:embed schema.sql
var schema string

// PostgresContainer wraps a testcontainers Postgres instance.
type PostgresContainer struct {
	Container testcontainers.Container
	DSN       string
	DB        *sql.DB
}

// NewPostgresContainer starts a Postgres container and applies the store schema.
func NewPostgresContainer(t *testing.T) *PostgresContainer {
	t.Helper()

	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:17-alpine",
		postgres.WithDatabase("zergoqrf_test"),
		postgres.WithUsername("zergoqrf"),
		postgres.WithPassword("zergoqrf_test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("failed to get postgres connection string: %v", err)
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("failed to connect to postgres: %v", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		_ = container.Terminate(ctx)
		t.Fatalf("failed to apply schema: %v", err)
	}

	// Shared by the Manager across suites; Ryuk removes the container when
	// the test process exits.
	return &PostgresContainer{
		Container: container,
		DSN:       dsn,
		DB:        db,
	}
}

// TruncateTables clears all data from the specified tables.
func (p *PostgresContainer) TruncateTables(ctx context.Context, tables ...string) error {
	if len(tables) == 0 {
		return nil
	}
	if _, err := p.DB.ExecContext(ctx, "TRUNCATE TABLE "+strings.Join(tables, ", ")+" CASCADE"); err != nil {
		return fmt.Errorf("truncate %s: %w", strings.Join(tables, ", "), err)
	}
	return nil
}

// TruncateAll clears every table in the store schema.
func (p *PostgresContainer) TruncateAll(ctx context.Context) error {
	return p.TruncateTables(ctx,
		"anonymous_sessions",
		"token_revocations",
		"restaurants",
		"auth.users",
	)
}

// Exec runs a SQL statement and returns the result.
func (p *PostgresContainer) Exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return p.DB.ExecContext(ctx, query, args...)
}

// QueryRow runs a SQL query expected to return a single row.
func (p *PostgresContainer) QueryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return p.DB.QueryRowContext(ctx, query, args...)
}

// CreateTestRestaurant inserts an active restaurant with the given code and
// returns its ID.
func (p *PostgresContainer) CreateTestRestaurant(ctx context.Context, t testing.TB, code string) string {
	t.Helper()
	id := uuid.NewString()
	_, err := p.Exec(ctx, `
		INSERT INTO restaurants (id, name, code, primary_color, is_active)
		VALUES ($1, $2, $3, '#D94F30', TRUE)
	`, id, "Test Restaurant "+code, code)
	if err != nil {
		t.Fatalf("CreateTestRestaurant: %v", err)
	}
	return id
}

// TestUser describes a row for CreateTestUser. Phone is stored the way the
// identity provider stores it, without the leading '+'.
type TestUser struct {
	Email        string
	Phone        string
	AppMetadata  map[string]any
	UserMetadata map[string]any
	BannedUntil  *time.Time
	IsAnonymous  bool
}

// CreateTestUser inserts a row into auth.users and returns its ID.
func (p *PostgresContainer) CreateTestUser(ctx context.Context, t testing.TB, u TestUser) string {
	t.Helper()
	appMeta, err := json.Marshal(orEmpty(u.AppMetadata))
	if err != nil {
		t.Fatalf("CreateTestUser: %v", err)
	}
	userMeta, err := json.Marshal(orEmpty(u.UserMetadata))
	if err != nil {
		t.Fatalf("CreateTestUser: %v", err)
	}

	id := uuid.NewString()
	_, err = p.Exec(ctx, `
		INSERT INTO auth.users (id, email, phone, raw_app_meta_data, raw_user_meta_data, banned_until, is_anonymous)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), $4, $5, $6, $7)
	`, id, u.Email, u.Phone, appMeta, userMeta, u.BannedUntil, u.IsAnonymous)
	if err != nil {
		t.Fatalf("CreateTestUser: %v", err)
	}
	return id
}

func orEmpty(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return m
}
