package usecase

import (
	"context"
	"errors"
	"testing"

	"task-digest/internal/model"
	"task-digest/internal/timetrack"
	"task-digest/internal/timetrack/repository"
	"task-digest/pkg/log"
)

type fakeRemote struct {
	calls   int
	entries []model.TimeEntry
	err     error
}

func (f *fakeRemote) ListTimeRecords(ctx context.Context, from, to string) ([]model.TimeEntry, error) {
	f.calls++
	return f.entries, f.err
}

type fakeFactory struct {
	remote *fakeRemote
	keys   []string
}

func (f *fakeFactory) NewRemote(apiKey string) repository.Remote {
	f.keys = append(f.keys, apiKey)
	return f.remote
}

func TestListTimeEntries(t *testing.T) {
	ctx := context.Background()
	remote := &fakeRemote{entries: []model.TimeEntry{{ID: "1", TaskID: "1203456789012", Seconds: 60}}}
	factory := &fakeFactory{remote: remote}
	uc := New(log.NewNop(), factory, Config{})

	t.Run("Unconfigured", func(t *testing.T) {
		if _, err := uc.ListTimeEntries(ctx, timetrack.ListInput{}); !errors.Is(err, timetrack.ErrUnconfigured) {
			t.Errorf("expected ErrUnconfigured, got %v", err)
		}
	})

	uc.SetAPIKey(ctx, "key")
	if k, ok := uc.APIKey(); !ok || k != "key" {
		t.Fatalf("expected api key to be set, got %q %v", k, ok)
	}

	t.Run("Memoized per range", func(t *testing.T) {
		in := timetrack.ListInput{From: "2024-01-01", To: "2024-01-31"}
		for range 3 {
			got, err := uc.ListTimeEntries(ctx, in)
			if err != nil || len(got) != 1 {
				t.Fatalf("unexpected result %+v err %v", got, err)
			}
		}
		if remote.calls != 1 {
			t.Errorf("expected 1 remote call, got %d", remote.calls)
		}

		uc.ListTimeEntries(ctx, timetrack.ListInput{From: "2024-02-01"})
		if remote.calls != 2 {
			t.Errorf("expected a distinct range to miss, got %d calls", remote.calls)
		}
	})

	t.Run("Key change clears memo", func(t *testing.T) {
		before := remote.calls
		uc.SetAPIKey(ctx, "other")
		uc.ListTimeEntries(ctx, timetrack.ListInput{From: "2024-01-01", To: "2024-01-31"})
		if remote.calls != before+1 {
			t.Errorf("expected memo to be cleared on key change")
		}
	})

	t.Run("Invalid date", func(t *testing.T) {
		if _, err := uc.ListTimeEntries(ctx, timetrack.ListInput{From: "01/02/2024"}); !errors.Is(err, timetrack.ErrInvalidDate) {
			t.Errorf("expected ErrInvalidDate, got %v", err)
		}
	})

	t.Run("Remote failure is not memoized", func(t *testing.T) {
		remote.err = errors.New("down")
		in := timetrack.ListInput{From: "2023-01-01"}
		if _, err := uc.ListTimeEntries(ctx, in); !errors.Is(err, timetrack.ErrRemote) {
			t.Fatalf("expected ErrRemote, got %v", err)
		}
		remote.err = nil
		if _, err := uc.ListTimeEntries(ctx, in); err != nil {
			t.Errorf("expected retry to succeed, got %v", err)
		}
	})

	t.Run("Empty key unconfigures", func(t *testing.T) {
		uc.SetAPIKey(ctx, "")
		if _, ok := uc.APIKey(); ok {
			t.Errorf("expected no api key")
		}
		if _, err := uc.ListTimeEntries(ctx, timetrack.ListInput{}); !errors.Is(err, timetrack.ErrUnconfigured) {
			t.Errorf("expected ErrUnconfigured, got %v", err)
		}
	})
}

func TestSummarizeByTaskUsesConfiguredHost(t *testing.T) {
	uc := New(log.NewNop(), &fakeFactory{}, Config{WorkItemHost: "tracker.example"})
	got := uc.SummarizeByTask([]model.TimeEntry{
		{TaskURL: "https://tracker.example/tasks/1203456789012", Seconds: 5},
		{TaskURL: "https://app.asana.com/0/1/1203456789012", Seconds: 7},
	})
	if len(got) != 1 || got[0].TotalSeconds != 5 {
		t.Errorf("expected only the configured host to match, got %+v", got)
	}
}
