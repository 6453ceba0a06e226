package memo_test

import (
	"testing"
	"time"

	"task-digest/pkg/memo"
)

func TestTier(t *testing.T) {
	t.Run("Set and Get", func(t *testing.T) {
		tier := memo.New[string](10, time.Minute)
		tier.Set("a", "1")
		got, ok := tier.Get("a")
		if !ok || got != "1" {
			t.Errorf("expected hit with 1, got %q ok=%v", got, ok)
		}
		if _, ok := tier.Get("missing"); ok {
			t.Errorf("expected miss for unknown key")
		}
	})

	t.Run("Expiry", func(t *testing.T) {
		tier := memo.New[int](10, 30*time.Millisecond)
		tier.Set("k", 42)
		time.Sleep(80 * time.Millisecond)
		if _, ok := tier.Get("k"); ok {
			t.Errorf("expected entry to expire")
		}
	})

	t.Run("Clear keeps TTL", func(t *testing.T) {
		tier := memo.New[int](0, time.Minute)
		tier.Set("a", 1)
		tier.Set("b", 2)
		tier.Clear()
		if tier.Len() != 0 {
			t.Errorf("expected empty tier, got %d", tier.Len())
		}
		if tier.TTL() != time.Minute {
			t.Errorf("expected ttl to survive Clear, got %v", tier.TTL())
		}
		tier.Set("c", 3)
		if v, ok := tier.Get("c"); !ok || v != 3 {
			t.Errorf("tier unusable after Clear")
		}
	})

	t.Run("Delete", func(t *testing.T) {
		tier := memo.New[int](10, time.Minute)
		tier.Set("a", 1)
		tier.Delete("a")
		if _, ok := tier.Get("a"); ok {
			t.Errorf("expected miss after Delete")
		}
	})
}
