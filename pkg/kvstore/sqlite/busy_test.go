package sqlite

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
)

func TestOpenSetsBusyTimeout(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	var ms int
	if err := s.db.QueryRow(`PRAGMA busy_timeout`).Scan(&ms); err != nil {
		t.Fatalf("PRAGMA busy_timeout: %v", err)
	}
	if ms != busyTimeoutMillis {
		t.Errorf("busy_timeout = %d, want %d", ms, busyTimeoutMillis)
	}
}

func TestTwoHandlesWriteConcurrently(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cache.db")

	api, err := Open(path)
	if err != nil {
		t.Fatalf("Open api: %v", err)
	}
	defer api.Close()
	warmer, err := Open(path)
	if err != nil {
		t.Fatalf("Open warmer: %v", err)
	}
	defer warmer.Close()

	var wg sync.WaitGroup
	errs := make(chan error, 100)
	for i, s := range []*Store{api, warmer} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if err := s.Set(ctx, fmt.Sprintf("aqm:v2:k:%d:%d", i, j), "v"); err != nil {
					errs <- err
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("Set: %v", err)
	}
}
