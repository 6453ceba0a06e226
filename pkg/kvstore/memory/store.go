// Package memory is an in-process kvstore.Store, used in tests and as a fallback when no
// database path is configured.
package memory

import (
	"context"
	"strings"
	"sync"

	"task-digest/pkg/kvstore"
)

type Store struct {
	mu       sync.RWMutex
	items    map[string]string
	used     int
	maxBytes int
	closed   bool
}

// New creates a store. maxBytes <= 0 means unlimited; otherwise the sum of key and value
// lengths is capped and Set fails with kvstore.ErrQuotaExceeded beyond it.
func New(maxBytes int) *Store {
	return &Store{
		items:    make(map[string]string),
		maxBytes: maxBytes,
	}
}

func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return "", false, kvstore.ErrClosed
	}
	v, ok := s.items[key]
	return v, ok, nil
}

func (s *Store) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return kvstore.ErrClosed
	}

	used := s.used + len(key) + len(value)
	if old, ok := s.items[key]; ok {
		used -= len(key) + len(old)
	}
	if s.maxBytes > 0 && used > s.maxBytes {
		return kvstore.ErrQuotaExceeded
	}

	s.items[key] = value
	s.used = used
	return nil
}

func (s *Store) RemoveMatchingPrefix(_ context.Context, prefix string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, kvstore.ErrClosed
	}

	removed := 0
	for k, v := range s.items {
		if strings.HasPrefix(k, prefix) {
			s.used -= len(k) + len(v)
			delete(s.items, k)
			removed++
		}
	}
	return removed, nil
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// Len reports the number of stored keys.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
