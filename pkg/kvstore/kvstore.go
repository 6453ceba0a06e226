// Package kvstore defines the durable key-value port used by the persistent cache tier.
package kvstore

import (
	"context"
	"errors"
)

var (
	// ErrQuotaExceeded is returned by Set when the store has no room for the value.
	ErrQuotaExceeded = errors.New("kvstore: quota exceeded")
	// ErrClosed is returned by any call on a closed store.
	ErrClosed = errors.New("kvstore: store closed")
)

// Store is a string key-value store that survives process restarts.
// Implementations must be safe for concurrent use.
type Store interface {
	// Get returns the value and true, or "" and false when the key is absent.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set creates or replaces key.
	Set(ctx context.Context, key, value string) error
	// RemoveMatchingPrefix deletes every key starting with prefix and reports how many were removed.
	RemoveMatchingPrefix(ctx context.Context, prefix string) (int, error)
	Close() error
}
