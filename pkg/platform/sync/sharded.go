// Package sync provides keyed locking for per-entity critical sections.
package sync

import (
	"hash/fnv"
	"sync"
)

// DefaultShardCount is enough shards that unrelated companies rarely contend.
const DefaultShardCount = 32

// KeyedMutex serializes work per key by hashing keys onto a fixed set of mutexes.
// Two keys may share a shard; the same key always maps to the same shard.
type KeyedMutex struct {
	shards []sync.Mutex
}

// NewKeyedMutex creates a keyed mutex with n shards (DefaultShardCount when n <= 0).
func NewKeyedMutex(n int) *KeyedMutex {
	if n <= 0 {
		n = DefaultShardCount
	}
	return &KeyedMutex{shards: make([]sync.Mutex, n)}
}

func (m *KeyedMutex) shard(key string) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return &m.shards[h.Sum32()%uint32(len(m.shards))]
}

// Lock acquires the lock for key.
func (m *KeyedMutex) Lock(key string) {
	m.shard(key).Lock()
}

// Unlock releases the lock for key.
func (m *KeyedMutex) Unlock(key string) {
	m.shard(key).Unlock()
}

// With runs fn while holding the lock for key.
func (m *KeyedMutex) With(key string, fn func() error) error {
	mu := m.shard(key)
	mu.Lock()
	defer mu.Unlock()
	return fn()
}
