package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/be1500616/zergoqrf/internal/auth/models"
	"github.com/be1500616/zergoqrf/pkg/platform/requestcontext"
)

// InMemoryStore keeps guest sessions in process. Returned sessions are copies.
type InMemoryStore struct {
	mu      sync.RWMutex
	byID    map[string]*models.AnonymousSession
	byToken map[string]string
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		byID:    make(map[string]*models.AnonymousSession),
		byToken: make(map[string]string),
	}
}

func (s *InMemoryStore) CreateAnonymousSession(ctx context.Context, restaurantID string, tableID *string, ttl time.Duration) (*models.AnonymousSession, error) {
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

	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[session.SessionID] = session
	s.byToken[token] = session.SessionID
	return clone(session), nil
}

func (s *InMemoryStore) ValidateAnonymousSession(ctx context.Context, token models.SessionToken) (bool, error) {
	session, _ := s.GetAnonymousSessionByToken(ctx, token)
	return session != nil && session.IsValid(requestcontext.Now(ctx)), nil
}

func (s *InMemoryStore) GetAnonymousSession(_ context.Context, sessionID string) (*models.AnonymousSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if session, ok := s.byID[sessionID]; ok {
		return clone(session), nil
	}
	return nil, nil
}

func (s *InMemoryStore) GetAnonymousSessionByToken(_ context.Context, token models.SessionToken) (*models.AnonymousSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byToken[token.Value()]
	if !ok {
		return nil, nil
	}
	return clone(s.byID[id]), nil
}

func (s *InMemoryStore) InvalidateAnonymousSession(_ context.Context, sessionID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.byID[sessionID]
	if !ok {
		return false, nil
	}
	session.IsActive = false
	return true, nil
}

func (s *InMemoryStore) ExtendAnonymousSession(ctx context.Context, sessionID string, expiresAt time.Time) (bool, error) {
	now := requestcontext.Now(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.byID[sessionID]
	if !ok || !session.IsValid(now) {
		return false, nil
	}
	session.ExpiresAt = expiresAt
	return true, nil
}

// CleanupExpiredSessions drops expired and invalidated sessions.
func (s *InMemoryStore) CleanupExpiredSessions(ctx context.Context) (int, error) {
	now := requestcontext.Now(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, session := range s.byID {
		if session.IsValid(now) {
			continue
		}
		delete(s.byID, id)
		delete(s.byToken, session.SessionToken)
		removed++
	}
	return removed, nil
}

func clone(session *models.AnonymousSession) *models.AnonymousSession {
	if session == nil {
		return nil
	}
	out := *session
	if session.TableID != nil {
		table := *session.TableID
		out.TableID = &table
	}
	return &out
}
