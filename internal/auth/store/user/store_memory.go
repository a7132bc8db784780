// Package user is the read-side user directory used to find accounts by
// email or phone before calling the identity provider.
package user

import (
	"context"
	"strings"
	"sync"

	"github.com/be1500616/zergoqrf/internal/auth/models"
)

// InMemoryUserStore indexes users by normalized email and phone.
type InMemoryUserStore struct {
	mu    sync.RWMutex
	users map[string]*models.User
}

func NewInMemoryUserStore() *InMemoryUserStore {
	return &InMemoryUserStore{users: make(map[string]*models.User)}
}

// Save inserts or replaces a user.
func (s *InMemoryUserStore) Save(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *user
	s.users[user.ID] = &stored
	return nil
}

func (s *InMemoryUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	needle := strings.ToLower(strings.TrimSpace(email))
	return s.find(func(u *models.User) bool {
		return u.Email != nil && u.Email.Value() == needle
	}), nil
}

func (s *InMemoryUserStore) FindByPhone(_ context.Context, phone string) (*models.User, error) {
	needle := strings.TrimSpace(phone)
	return s.find(func(u *models.User) bool {
		return u.Phone != nil && u.Phone.Value() == needle
	}), nil
}

func (s *InMemoryUserStore) find(match func(*models.User) bool) *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if match(u) {
			found := *u
			return &found
		}
	}
	return nil
}
