package user

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/be1500616/zergoqrf/internal/auth/models"
	"github.com/be1500616/zergoqrf/pkg/platform/requestcontext"
)

// Phones are stored by the provider without the leading '+'.
const (
	selectUser = `
SELECT id, email, phone, raw_app_meta_data, raw_user_meta_data, banned_until, is_anonymous, created_at, updated_at
FROM auth.users
WHERE deleted_at IS NULL`

	findByEmailQuery = selectUser + ` AND lower(email) = $1 LIMIT 1`
	findByPhoneQuery = selectUser + ` AND phone = $1 LIMIT 1`
)

// PostgresStore reads the identity provider's user table directly.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.findOne(ctx, findByEmailQuery, strings.ToLower(strings.TrimSpace(email)))
}

func (s *PostgresStore) FindByPhone(ctx context.Context, phone string) (*models.User, error) {
	return s.findOne(ctx, findByPhoneQuery, strings.TrimPrefix(strings.TrimSpace(phone), "+"))
}

func (s *PostgresStore) findOne(ctx context.Context, query string, arg string) (*models.User, error) {
	var (
		id                   string
		email, phone         sql.NullString
		appMeta, userMeta    []byte
		bannedUntil          sql.NullTime
		isAnonymous          bool
		createdAt, updatedAt time.Time
	)
	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&id, &email, &phone, &appMeta, &userMeta, &bannedUntil, &isAnonymous, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	app, err := decodeMetadata(appMeta)
	if err != nil {
		return nil, fmt.Errorf("decode app metadata: %w", err)
	}
	usr, err := decodeMetadata(userMeta)
	if err != nil {
		return nil, fmt.Errorf("decode user metadata: %w", err)
	}

	user := models.NewUser(id, createdAt)
	if e, err := models.NewEmail(email.String); err == nil {
		user.Email = &e
	}
	if phone.Valid && phone.String != "" {
		if p, err := models.NewPhone("+" + strings.TrimPrefix(phone.String, "+")); err == nil {
			user.Phone = &p
		}
	}
	if name, ok := usr["name"].(string); ok {
		user.Name = name
	}
	uc := models.NewUserContext(&models.Claims{AppMetadata: app, UserMetadata: usr})
	user.Role = uc.Role
	user.RestaurantID = uc.RestaurantID
	user.Permissions = uc.Permissions
	user.IsAnonymous = isAnonymous
	user.IsActive = !bannedUntil.Valid || !bannedUntil.Time.After(requestcontext.Now(ctx))
	user.UpdatedAt = updatedAt
	return user, nil
}

func decodeMetadata(raw []byte) (map[string]any, error) {
	out := map[string]any{}
	if len(raw) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
