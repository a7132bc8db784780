// Package sync provides locking helpers for per-key state held in memory.
package sync

import (
	"hash/fnv"
	"sync"
)

const shardCount = 32

// KeyedMutex serializes work on the same key while letting unrelated keys
// proceed. Keys are spread over a fixed set of shards, so two keys may share
// a lock; callers must not hold two keys at once.
type KeyedMutex struct {
	shards [shardCount]sync.Mutex
}

func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{}
}

func (m *KeyedMutex) Lock(key string) {
	m.shards[shardFor(key)].Lock()
}

func (m *KeyedMutex) Unlock(key string) {
	m.shards[shardFor(key)].Unlock()
}

func shardFor(key string) uint32 {
	if key == "" {
		return 0
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return h.Sum32() % shardCount
}
