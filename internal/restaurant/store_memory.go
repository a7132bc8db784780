package restaurant

import (
	"context"
	"fmt"
	"sync"

	"github.com/be1500616/zergoqrf/internal/sentinel"
)

// InMemoryStore keeps restaurants in memory for tests and local development.
// Inactive restaurants are invisible to lookups.
type InMemoryStore struct {
	mu     sync.RWMutex
	byID   map[string]*Restaurant
	byCode map[string]string
}

func NewInMemoryStore(seed ...*Restaurant) *InMemoryStore {
	s := &InMemoryStore{
		byID:   make(map[string]*Restaurant),
		byCode: make(map[string]string),
	}
	for _, r := range seed {
		s.Put(r)
	}
	return s
}

// Put inserts or replaces a restaurant.
func (s *InMemoryStore) Put(r *Restaurant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *r
	stored.Code = NormalizeCode(r.Code)
	s.byID[stored.ID] = &stored
	if stored.Code != "" {
		s.byCode[stored.Code] = stored.ID
	}
}

func (s *InMemoryStore) Exists(_ context.Context, restaurantID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.byID[restaurantID]
	return ok && r.IsActive, nil
}

func (s *InMemoryStore) FindByCode(_ context.Context, code string) (*Restaurant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byCode[NormalizeCode(code)]
	if !ok {
		return nil, fmt.Errorf("restaurant not found: %w", sentinel.ErrNotFound)
	}
	r := s.byID[id]
	if !r.IsActive {
		return nil, fmt.Errorf("restaurant not found: %w", sentinel.ErrNotFound)
	}
	found := *r
	return &found, nil
}
