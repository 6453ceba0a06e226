package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"task-digest/internal/digest"
	"task-digest/internal/model"
	"task-digest/internal/timetrack"
	"task-digest/pkg/datemath"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

var errBoom = errors.New("boom")

var testNow = time.Date(2026, time.October, 15, 12, 0, 0, 0, time.UTC)

// fakeItems answers listings by cutoff instant.
type fakeItems struct {
	mu sync.Mutex

	me      model.User
	byCut   map[int64][]model.WorkItem
	cached  map[int64][]model.WorkItem
	findErr error

	findCalls []time.Time
}

func newFakeItems() *fakeItems {
	return &fakeItems{
		me:     model.User{ID: "me", Name: "Max Mustermann"},
		byCut:  map[int64][]model.WorkItem{},
		cached: map[int64][]model.WorkItem{},
	}
}

func (f *fakeItems) SetCredential(ctx context.Context, token string) error { return nil }
func (f *fakeItems) ClearCredential(ctx context.Context) error             { return nil }
func (f *fakeItems) Credential() (string, bool)                            { return "tok", true }

func (f *fakeItems) ListWorkspaces(ctx context.Context) ([]model.Workspace, error) {
	return []model.Workspace{{ID: "w1", Name: "Acme"}}, nil
}

func (f *fakeItems) DefaultWorkspace(ctx context.Context) (model.Workspace, error) {
	return model.Workspace{ID: "w1", Name: "Acme"}, nil
}

func (f *fakeItems) ListProjects(ctx context.Context, workspaceID string) ([]model.Project, error) {
	return nil, nil
}

func (f *fakeItems) CurrentUser(ctx context.Context) (model.User, error) { return f.me, nil }

func (f *fakeItems) FindItemsOlderThan(ctx context.Context, workspaceID string, cutoff time.Time) ([]model.WorkItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.findCalls = append(f.findCalls, cutoff)
	if f.findErr != nil {
		return nil, f.findErr
	}
	return model.CloneWorkItems(f.byCut[cutoff.UnixMilli()]), nil
}

func (f *fakeItems) RefreshItemsOlderThan(ctx context.Context, workspaceID string, cutoff time.Time) ([]model.WorkItem, error) {
	return f.FindItemsOlderThan(ctx, workspaceID, cutoff)
}

func (f *fakeItems) CachedItemsOlderThan(ctx context.Context, workspaceID string, cutoff time.Time) ([]model.WorkItem, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	items, ok := f.cached[cutoff.UnixMilli()]
	return model.CloneWorkItems(items), ok
}

func (f *fakeItems) MemoizedItemsOlderThan(workspaceID string, cutoff time.Time) ([]model.WorkItem, bool) {
	return nil, false
}

func (f *fakeItems) ClearPersistentCache(ctx context.Context) int { return 0 }

// fakeTimes returns canned entries and records the requested window.
type fakeTimes struct {
	mu      sync.Mutex
	entries []model.TimeEntry
	err     error
	lastIn  timetrack.ListInput
}

func (f *fakeTimes) SetAPIKey(ctx context.Context, key string) error { return nil }
func (f *fakeTimes) APIKey() (string, bool)                          { return "k", true }

func (f *fakeTimes) ListTimeEntries(ctx context.Context, in timetrack.ListInput) ([]model.TimeEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastIn = in
	if f.err != nil {
		return nil, f.err
	}
	return f.entries, nil
}

func (f *fakeTimes) SummarizeByTask(entries []model.TimeEntry) []model.TaskTimeSummary {
	return timetrack.Summarize(entries, "")
}

func newTestUseCase(items *fakeItems, times *fakeTimes, cfg Config) (*implUseCase, *datemath.Parser) {
	dates, err := datemath.NewParser("UTC")
	if err != nil {
		panic(err)
	}
	cfg.Clock = func() time.Time { return testNow }
	return New(&mockLogger{}, items, times, dates, cfg), dates
}

func ptr[T any](v T) *T { return &v }

type itemOpt func(*model.WorkItem)

func assignee(id, name string) itemOpt {
	return func(it *model.WorkItem) { it.Assignee = &model.User{ID: id, Name: name} }
}

func completed(v bool) itemOpt {
	return func(it *model.WorkItem) { it.Completed = ptr(v) }
}

func inProject(id, name string) itemOpt {
	return func(it *model.WorkItem) {
		it.Memberships = append(it.Memberships, model.Membership{Project: &model.ProjectRef{ID: id, Name: name}})
	}
}

func inSection(projectID, section string) itemOpt {
	return func(it *model.WorkItem) {
		it.Memberships = append(it.Memberships, model.Membership{
			Project: &model.ProjectRef{ID: projectID},
			Section: &model.SectionRef{ID: projectID + "-s", Name: section},
		})
	}
}

func tagged(ids ...string) itemOpt {
	return func(it *model.WorkItem) {
		for _, id := range ids {
			it.Tags = append(it.Tags, model.Tag{ID: id})
		}
	}
}

func item(id, title string, opts ...itemOpt) model.WorkItem {
	it := model.WorkItem{ID: id, Title: title, CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	for _, o := range opts {
		o(&it)
	}
	return it
}

func taskIDs(ts []digest.Task) []string {
	out := make([]string, 0, len(ts))
	for _, t := range ts {
		out = append(out, t.ID)
	}
	return out
}
