package restaurant

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/be1500616/zergoqrf/internal/sentinel"
)

const (
	existsQuery = `SELECT EXISTS (SELECT 1 FROM restaurants WHERE id = $1 AND is_active)`

	findByCodeQuery = `
SELECT id, name, code, logo_url, primary_color, secondary_color, is_active
FROM restaurants
WHERE code = $1 AND is_active`
)

// PostgresStore reads restaurants from the tenant database.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Exists(ctx context.Context, restaurantID string) (bool, error) {
	if _, err := uuid.Parse(restaurantID); err != nil {
		return false, nil
	}
	var exists bool
	if err := s.db.QueryRowContext(ctx, existsQuery, restaurantID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check restaurant exists: %w", err)
	}
	return exists, nil
}

func (s *PostgresStore) FindByCode(ctx context.Context, code string) (*Restaurant, error) {
	var (
		r                           Restaurant
		logoURL, primary, secondary sql.NullString
	)
	err := s.db.QueryRowContext(ctx, findByCodeQuery, NormalizeCode(code)).Scan(
		&r.ID, &r.Name, &r.Code, &logoURL, &primary, &secondary, &r.IsActive,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("restaurant not found: %w", sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("find restaurant by code: %w", err)
	}
	r.LogoURL = nullString(logoURL)
	r.PrimaryColor = nullString(primary)
	r.SecondaryColor = nullString(secondary)
	return &r, nil
}

func nullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}
