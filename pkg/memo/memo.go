// Package memo provides in-process, TTL-bounded memo tiers.
package memo

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// DefaultSize bounds the number of keys a tier keeps when no size is given.
const DefaultSize = 512

// Tier is a goroutine-safe TTL cache. Entries expire TTL after they were set.
type Tier[V any] struct {
	lru *expirable.LRU[string, V]
	ttl time.Duration
}

// New creates a tier holding at most size keys for ttl each.
func New[V any](size int, ttl time.Duration) *Tier[V] {
	if size <= 0 {
		size = DefaultSize
	}
	return &Tier[V]{
		lru: expirable.NewLRU[string, V](size, nil, ttl),
		ttl: ttl,
	}
}

// Get returns the value for key if present and not expired.
func (t *Tier[V]) Get(key string) (V, bool) {
	return t.lru.Get(key)
}

// Set stores value under key, restarting its TTL.
func (t *Tier[V]) Set(key string, value V) {
	t.lru.Add(key, value)
}

// Delete drops a single key.
func (t *Tier[V]) Delete(key string) {
	t.lru.Remove(key)
}

// Clear drops every entry. The TTL configuration is kept.
func (t *Tier[V]) Clear() {
	t.lru.Purge()
}

// Len reports the number of live entries.
func (t *Tier[V]) Len() int {
	return t.lru.Len()
}

// TTL reports the configured time-to-live.
func (t *Tier[V]) TTL() time.Duration {
	return t.ttl
}
