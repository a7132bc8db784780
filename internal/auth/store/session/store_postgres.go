package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/be1500616/zergoqrf/internal/auth/models"
	"github.com/be1500616/zergoqrf/pkg/platform/requestcontext"
)

// maxInsertAttempts bounds retries on a token collision.
const maxInsertAttempts = 3

const (
	insertSessionQuery = `
INSERT INTO anonymous_sessions (id, session_token, restaurant_id, table_id, expires_at, created_at, is_active)
VALUES ($1, $2, $3, $4, $5, $6, TRUE)`

	selectSession = `
SELECT id, session_token, restaurant_id, table_id, expires_at, created_at, is_active
FROM anonymous_sessions`

	getByIDQuery    = selectSession + ` WHERE id = $1`
	getByTokenQuery = selectSession + ` WHERE session_token = $1`

	invalidateQuery = `UPDATE anonymous_sessions SET is_active = FALSE WHERE id = $1`
	extendQuery     = `UPDATE anonymous_sessions SET expires_at = $2 WHERE id = $1 AND is_active AND expires_at > $3`
	cleanupQuery    = `DELETE FROM anonymous_sessions WHERE expires_at <= $1 OR NOT is_active`
)

// PostgresStore persists guest sessions in the anonymous_sessions table.
type PostgresStore struct {
	db       *sql.DB
	newToken func() (string, error)
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db, newToken: newToken}
}

func (s *PostgresStore) CreateAnonymousSession(ctx context.Context, restaurantID string, tableID *string, ttl time.Duration) (*models.AnonymousSession, error) {
	now := requestcontext.Now(ctx)
	session := &models.AnonymousSession{
		SessionID:    uuid.NewString(),
		RestaurantID: restaurantID,
		TableID:      tableID,
		ExpiresAt:    now.Add(ttl),
		CreatedAt:    now,
		IsActive:     true,
	}

	for attempt := 1; ; attempt++ {
		token, err := s.newToken()
		if err != nil {
			return nil, err
		}
		session.SessionToken = token
		_, err = s.db.ExecContext(ctx, insertSessionQuery,
			session.SessionID, token, restaurantID, nullString(tableID), session.ExpiresAt, session.CreatedAt)
		if err == nil {
			return session, nil
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation && attempt < maxInsertAttempts {
			continue
		}
		return nil, fmt.Errorf("create anonymous session: %w", err)
	}
}

func (s *PostgresStore) ValidateAnonymousSession(ctx context.Context, token models.SessionToken) (bool, error) {
	session, err := s.GetAnonymousSessionByToken(ctx, token)
	if err != nil {
		return false, err
	}
	return session != nil && session.IsValid(requestcontext.Now(ctx)), nil
}

func (s *PostgresStore) GetAnonymousSession(ctx context.Context, sessionID string) (*models.AnonymousSession, error) {
	if _, err := uuid.Parse(sessionID); err != nil {
		return nil, nil
	}
	return s.scanOne(ctx, getByIDQuery, sessionID)
}

func (s *PostgresStore) GetAnonymousSessionByToken(ctx context.Context, token models.SessionToken) (*models.AnonymousSession, error) {
	return s.scanOne(ctx, getByTokenQuery, token.Value())
}

func (s *PostgresStore) InvalidateAnonymousSession(ctx context.Context, sessionID string) (bool, error) {
	return s.update(ctx, invalidateQuery, sessionID)
}

func (s *PostgresStore) ExtendAnonymousSession(ctx context.Context, sessionID string, expiresAt time.Time) (bool, error) {
	return s.update(ctx, extendQuery, sessionID, expiresAt, requestcontext.Now(ctx))
}

func (s *PostgresStore) CleanupExpiredSessions(ctx context.Context) (int, error) {
	res, err := s.db.ExecContext(ctx, cleanupQuery, requestcontext.Now(ctx))
	if err != nil {
		return 0, fmt.Errorf("cleanup anonymous sessions: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("cleanup anonymous sessions: %w", err)
	}
	return int(n), nil
}

func (s *PostgresStore) update(ctx context.Context, query, sessionID string, args ...any) (bool, error) {
	if _, err := uuid.Parse(sessionID); err != nil {
		return false, nil
	}
	res, err := s.db.ExecContext(ctx, query, append([]any{sessionID}, args...)...)
	if err != nil {
		return false, fmt.Errorf("update anonymous session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update anonymous session: %w", err)
	}
	return n > 0, nil
}

func (s *PostgresStore) scanOne(ctx context.Context, query, arg string) (*models.AnonymousSession, error) {
	var (
		session models.AnonymousSession
		tableID sql.NullString
	)
	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&session.SessionID, &session.SessionToken, &session.RestaurantID, &tableID,
		&session.ExpiresAt, &session.CreatedAt, &session.IsActive,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find anonymous session: %w", err)
	}
	if tableID.Valid {
		session.TableID = &tableID.String
	}
	return &session, nil
}

func nullString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}
