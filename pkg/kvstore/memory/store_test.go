package memory_test

import (
	"context"
	"errors"
	"testing"

	"task-digest/pkg/kvstore"
	"task-digest/pkg/kvstore/memory"
)

func TestStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Get Set", func(t *testing.T) {
		s := memory.New(0)
		if _, ok, err := s.Get(ctx, "k"); ok || err != nil {
			t.Fatalf("expected clean miss, ok=%v err=%v", ok, err)
		}
		if err := s.Set(ctx, "k", "v"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		v, ok, err := s.Get(ctx, "k")
		if err != nil || !ok || v != "v" {
			t.Errorf("expected v, got %q ok=%v err=%v", v, ok, err)
		}
	})

	t.Run("Quota", func(t *testing.T) {
		s := memory.New(10)
		if err := s.Set(ctx, "a", "123456789"); err != nil {
			t.Fatalf("expected first write to fit: %v", err)
		}
		if err := s.Set(ctx, "b", "x"); !errors.Is(err, kvstore.ErrQuotaExceeded) {
			t.Errorf("expected ErrQuotaExceeded, got %v", err)
		}
		// Replacing an existing key only counts the delta.
		if err := s.Set(ctx, "a", "12345678"); err != nil {
			t.Errorf("expected replacement to fit: %v", err)
		}
	})

	t.Run("RemoveMatchingPrefix", func(t *testing.T) {
		s := memory.New(0)
		_ = s.Set(ctx, "p:1", "a")
		_ = s.Set(ctx, "p:2", "b")
		_ = s.Set(ctx, "q:1", "c")
		n, err := s.RemoveMatchingPrefix(ctx, "p:")
		if err != nil || n != 2 {
			t.Fatalf("expected 2 removed, got %d err=%v", n, err)
		}
		if s.Len() != 1 {
			t.Errorf("expected 1 key left, got %d", s.Len())
		}
	})

	t.Run("Closed", func(t *testing.T) {
		s := memory.New(0)
		_ = s.Close()
		if err := s.Set(ctx, "k", "v"); !errors.Is(err, kvstore.ErrClosed) {
			t.Errorf("expected ErrClosed, got %v", err)
		}
	})
}
