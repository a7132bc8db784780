package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/be1500616/zergoqrf/internal/auth/models"
	"github.com/be1500616/zergoqrf/pkg/platform/requestcontext"
)

// maxMutateAttempts bounds optimistic-lock retries when a concurrent write
// touches the same session.
const maxMutateAttempts = 8

const (
	sessionKeyPrefix = "anon_session:"
	tokenKeyPrefix   = "anon_session_token:"
	indexKey         = "anon_sessions"
)

type sessionJSON struct {
	ID           string  `json:"id"`
	Token        string  `json:"session_token"`
	RestaurantID string  `json:"restaurant_id"`
	TableID      *string `json:"table_id,omitempty"`
	ExpiresAt    int64   `json:"expires_at"` // Unix nano
	CreatedAt    int64   `json:"created_at"` // Unix nano
	IsActive     bool    `json:"is_active"`
}

func toJSON(s *models.AnonymousSession) sessionJSON {
	return sessionJSON{
		ID:           s.SessionID,
		Token:        s.SessionToken,
		RestaurantID: s.RestaurantID,
		TableID:      s.TableID,
		ExpiresAt:    s.ExpiresAt.UnixNano(),
		CreatedAt:    s.CreatedAt.UnixNano(),
		IsActive:     s.IsActive,
	}
}

func (j sessionJSON) toModel() *models.AnonymousSession {
	return &models.AnonymousSession{
		SessionID:    j.ID,
		SessionToken: j.Token,
		RestaurantID: j.RestaurantID,
		TableID:      j.TableID,
		ExpiresAt:    time.Unix(0, j.ExpiresAt).UTC(),
		CreatedAt:    time.Unix(0, j.CreatedAt).UTC(),
		IsActive:     j.IsActive,
	}
}

// RedisStore keeps guest sessions in Redis. Keys expire with the session,
// and an index set lets cleanup find invalidated entries.
type RedisStore struct {
	client redis.UniversalClient
}

func NewRedis(client redis.UniversalClient) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) CreateAnonymousSession(ctx context.Context, restaurantID string, tableID *string, ttl time.Duration) (*models.AnonymousSession, error) {
	token, err := newToken()
	if err != nil {
		return nil, err
	}
	now := requestcontext.Now(ctx)
	session := &models.AnonymousSession{
		SessionID:    uuid.NewString(),
		SessionToken: token,
		RestaurantID: restaurantID,
		TableID:      tableID,
		ExpiresAt:    now.Add(ttl),
		CreatedAt:    now,
		IsActive:     true,
	}
	if err := s.write(ctx, session, ttl); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *RedisStore) ValidateAnonymousSession(ctx context.Context, token models.SessionToken) (bool, error) {
	session, err := s.GetAnonymousSessionByToken(ctx, token)
	if err != nil {
		return false, err
	}
	return session != nil && session.IsValid(requestcontext.Now(ctx)), nil
}

func (s *RedisStore) GetAnonymousSession(ctx context.Context, sessionID string) (*models.AnonymousSession, error) {
	data, err := s.client.Get(ctx, sessionKeyPrefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get anonymous session: %w", err)
	}
	var j sessionJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("decode anonymous session: %w", err)
	}
	return j.toModel(), nil
}

func (s *RedisStore) GetAnonymousSessionByToken(ctx context.Context, token models.SessionToken) (*models.AnonymousSession, error) {
	id, err := s.client.Get(ctx, tokenKeyPrefix+token.Value()).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("resolve session token: %w", err)
	}
	return s.GetAnonymousSession(ctx, id)
}

func (s *RedisStore) InvalidateAnonymousSession(ctx context.Context, sessionID string) (bool, error) {
	return s.mutate(ctx, sessionID, func(session *models.AnonymousSession) bool {
		session.IsActive = false
		return true
	})
}

func (s *RedisStore) ExtendAnonymousSession(ctx context.Context, sessionID string, expiresAt time.Time) (bool, error) {
	now := requestcontext.Now(ctx)
	return s.mutate(ctx, sessionID, func(session *models.AnonymousSession) bool {
		if !session.IsValid(now) {
			return false
		}
		session.ExpiresAt = expiresAt
		return true
	})
}

// CleanupExpiredSessions removes invalidated sessions and index entries
// whose keys Redis has already expired.
func (s *RedisStore) CleanupExpiredSessions(ctx context.Context) (int, error) {
	ids, err := s.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return 0, fmt.Errorf("list anonymous sessions: %w", err)
	}
	now := requestcontext.Now(ctx)
	removed := 0
	for _, id := range ids {
		session, err := s.GetAnonymousSession(ctx, id)
		if err != nil {
			return removed, err
		}
		if session != nil && session.IsValid(now) {
			continue
		}
		pipe := s.client.TxPipeline()
		pipe.SRem(ctx, indexKey, id)
		pipe.Del(ctx, sessionKeyPrefix+id)
		if session != nil {
			pipe.Del(ctx, tokenKeyPrefix+session.SessionToken)
		}
		if _, err := pipe.Exec(ctx); err != nil {
			return removed, fmt.Errorf("remove anonymous session: %w", err)
		}
		removed++
	}
	return removed, nil
}

// mutate applies a change under WATCH so a concurrent invalidation or
// extension aborts the write instead of being overwritten.
func (s *RedisStore) mutate(ctx context.Context, sessionID string, apply func(*models.AnonymousSession) bool) (bool, error) {
	key := sessionKeyPrefix + sessionID
	for attempt := 1; ; attempt++ {
		var applied bool
		err := s.client.Watch(ctx, func(tx *redis.Tx) error {
			applied = false
			data, err := tx.Get(ctx, key).Bytes()
			if errors.Is(err, redis.Nil) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("get anonymous session: %w", err)
			}
			var j sessionJSON
			if err := json.Unmarshal(data, &j); err != nil {
				return fmt.Errorf("decode anonymous session: %w", err)
			}
			session := j.toModel()
			if !apply(session) {
				return nil
			}
			ttl := session.ExpiresAt.Sub(requestcontext.Now(ctx))
			if ttl <= 0 {
				ttl = time.Second
			}
			payload, err := json.Marshal(toJSON(session))
			if err != nil {
				return fmt.Errorf("encode anonymous session: %w", err)
			}
			if _, err := tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				queueWrite(ctx, pipe, session, payload, ttl)
				return nil
			}); err != nil {
				return err
			}
			applied = true
			return nil
		}, key)
		if errors.Is(err, redis.TxFailedErr) && attempt < maxMutateAttempts {
			continue
		}
		if err != nil {
			return false, fmt.Errorf("update anonymous session: %w", err)
		}
		return applied, nil
	}
}

func (s *RedisStore) write(ctx context.Context, session *models.AnonymousSession, ttl time.Duration) error {
	data, err := json.Marshal(toJSON(session))
	if err != nil {
		return fmt.Errorf("encode anonymous session: %w", err)
	}
	pipe := s.client.TxPipeline()
	queueWrite(ctx, pipe, session, data, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("store anonymous session: %w", err)
	}
	return nil
}

func queueWrite(ctx context.Context, pipe redis.Pipeliner, session *models.AnonymousSession, data []byte, ttl time.Duration) {
	pipe.Set(ctx, sessionKeyPrefix+session.SessionID, data, ttl)
	pipe.Set(ctx, tokenKeyPrefix+session.SessionToken, session.SessionID, ttl)
	pipe.SAdd(ctx, indexKey, session.SessionID)
}
