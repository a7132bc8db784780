// Package revocation keeps the list of access tokens revoked before their
// natural expiry. Entries are keyed by a hash of the token so raw bearer
// credentials are never persisted.
package revocation

import (
	"context"
	"encoding/hex"
	"sync"
	"time"

	"golang.org/x/crypto/blake2b"

	"github.com/be1500616/zergoqrf/pkg/platform/requestcontext"
)

// List is implemented by every revocation backend. Revoke is idempotent and
// entries stop being reported once expiresAt has passed.
type List interface {
	Revoke(ctx context.Context, key string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, key string) (bool, error)
}

// Key derives the storage key for a raw token.
func Key(token string) string {
	sum := blake2b.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// InMemoryList is a process-local revocation list for tests and single-node
// development. Expired entries are dropped by Purge.
type InMemoryList struct {
	mu      sync.RWMutex
	revoked map[string]time.Time
}

func NewInMemoryList() *InMemoryList {
	return &InMemoryList{revoked: make(map[string]time.Time)}
}

func (l *InMemoryList) Revoke(_ context.Context, key string, expiresAt time.Time) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if current, ok := l.revoked[key]; ok && current.After(expiresAt) {
		return nil
	}
	l.revoked[key] = expiresAt
	return nil
}

func (l *InMemoryList) IsRevoked(ctx context.Context, key string) (bool, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	expiresAt, ok := l.revoked[key]
	if !ok {
		return false, nil
	}
	return requestcontext.Now(ctx).Before(expiresAt), nil
}

// Purge removes entries whose tokens have expired and returns how many were dropped.
func (l *InMemoryList) Purge(ctx context.Context) (int, error) {
	now := requestcontext.Now(ctx)
	l.mu.Lock()
	defer l.mu.Unlock()
	removed := 0
	for key, expiresAt := range l.revoked {
		if !now.Before(expiresAt) {
			delete(l.revoked, key)
			removed++
		}
	}
	return removed, nil
}
