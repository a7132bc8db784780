package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/be1500616/zergoqrf/pkg/platform/requestcontext"
	psync "github.com/be1500616/zergoqrf/pkg/platform/sync"
)

// InMemoryStore keeps a sliding window of hit timestamps per key. The
// window slice for a key is only touched while that key's lock is held.
type InMemoryStore struct {
	locks   *psync.KeyedMutex
	windows sync.Map // key -> *hitWindow
}

type hitWindow struct {
	hits []time.Time
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{locks: psync.NewKeyedMutex()}
}

func (s *InMemoryStore) Allow(ctx context.Context, key string, limit int, window time.Duration) (*Result, error) {
	now := requestcontext.Now(ctx)

	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	v, _ := s.windows.LoadOrStore(key, &hitWindow{})
	w := v.(*hitWindow)

	hits := prune(w.hits, now.Add(-window))
	result := &Result{Limit: limit}
	if len(hits) >= limit {
		w.hits = hits
		result.ResetAt = hits[0].Add(window)
		result.RetryAfter = retryAfterSeconds(false, result.ResetAt, now)
		return result, nil
	}

	hits = append(hits, now)
	w.hits = hits
	result.Allowed = true
	result.Remaining = limit - len(hits)
	result.ResetAt = hits[0].Add(window)
	return result, nil
}

func (s *InMemoryStore) Ping(context.Context) error { return nil }

// prune drops hits at or before cutoff.
func prune(hits []time.Time, cutoff time.Time) []time.Time {
	i := 0
	for i < len(hits) && !hits[i].After(cutoff) {
		i++
	}
	return hits[i:]
}
