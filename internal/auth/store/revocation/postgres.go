package revocation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/be1500616/zergoqrf/pkg/platform/requestcontext"
)

const (
	revokeQuery = `
INSERT INTO token_revocations (token_hash, expires_at)
VALUES ($1, $2)
ON CONFLICT (token_hash) DO UPDATE SET
	expires_at = GREATEST(token_revocations.expires_at, EXCLUDED.expires_at)`

	isRevokedQuery = `SELECT expires_at FROM token_revocations WHERE token_hash = $1`

	purgeQuery = `DELETE FROM token_revocations WHERE expires_at <= $1`
)

// PostgresList persists revocations in the token_revocations table.
type PostgresList struct {
	db *sql.DB
}

func NewPostgresList(db *sql.DB) *PostgresList {
	return &PostgresList{db: db}
}

func (l *PostgresList) Revoke(ctx context.Context, key string, expiresAt time.Time) error {
	if _, err := l.db.ExecContext(ctx, revokeQuery, key, expiresAt); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

func (l *PostgresList) IsRevoked(ctx context.Context, key string) (bool, error) {
	var expiresAt time.Time
	err := l.db.QueryRowContext(ctx, isRevokedQuery, key).Scan(&expiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("check token revocation: %w", err)
	}
	return requestcontext.Now(ctx).Before(expiresAt), nil
}

// Purge deletes rows for tokens that have expired anyway.
func (l *PostgresList) Purge(ctx context.Context) (int, error) {
	res, err := l.db.ExecContext(ctx, purgeQuery, requestcontext.Now(ctx))
	if err != nil {
		return 0, fmt.Errorf("purge token revocations: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("purge token revocations rows: %w", err)
	}
	return int(n), nil
}
