package usecase

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"task-digest/internal/model"
	"task-digest/internal/workitem/repository"
	"task-digest/pkg/kvstore"
	"task-digest/pkg/kvstore/memory"
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

// fakeRemote serves canned pages and counts calls.
type fakeRemote struct {
	mu sync.Mutex

	workspaces   []model.Workspace
	projectPages [][]model.Project
	itemPages    map[string][][]model.WorkItem

	// failProject makes the first page of that project fail.
	failProject string
	// started is closed on the first ListItemsPage; release gates every ListItemsPage.
	started     chan struct{}
	startedOnce sync.Once
	release     chan struct{}

	workspaceCalls int
	projectCalls   int
	userCalls      int
	itemCalls      map[string]int
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{
		workspaces: []model.Workspace{{ID: "w1", Name: "Acme"}},
		itemPages:  map[string][][]model.WorkItem{},
		itemCalls:  map[string]int{},
	}
}

func (f *fakeRemote) ListWorkspaces(ctx context.Context) ([]model.Workspace, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.workspaceCalls++
	return append([]model.Workspace(nil), f.workspaces...), nil
}

func (f *fakeRemote) ListProjects(ctx context.Context, workspaceID string, opt repository.ListProjectsOptions) (repository.ProjectPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.projectCalls++
	idx := pageIndex(opt.Offset)
	if idx >= len(f.projectPages) {
		return repository.ProjectPage{}, nil
	}
	page := repository.ProjectPage{Projects: f.projectPages[idx]}
	if idx+1 < len(f.projectPages) {
		page.NextOffset = strconv.Itoa(idx + 1)
	}
	return page, nil
}

func (f *fakeRemote) ListItemsPage(ctx context.Context, projectID string, opt repository.ListItemsOptions) (repository.ItemPage, error) {
	if f.started != nil {
		f.startedOnce.Do(func() { close(f.started) })
	}
	if f.release != nil {
		select {
		case <-f.release:
		case <-ctx.Done():
			return repository.ItemPage{}, ctx.Err()
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.itemCalls[projectID]++
	idx := pageIndex(opt.Offset)
	if projectID == f.failProject && idx == 0 {
		return repository.ItemPage{}, errBoom
	}
	pages := f.itemPages[projectID]
	if idx >= len(pages) {
		return repository.ItemPage{}, nil
	}
	page := repository.ItemPage{Items: model.CloneWorkItems(pages[idx])}
	if idx+1 < len(pages) {
		page.NextOffset = strconv.Itoa(idx + 1)
	}
	return page, nil
}

func (f *fakeRemote) GetUser(ctx context.Context, userID string, opt repository.GetUserOptions) (model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.userCalls++
	return model.User{ID: "u1", Name: "Ada Lovelace"}, nil
}

func (f *fakeRemote) totalItemCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.itemCalls {
		n += c
	}
	return n
}

func (f *fakeRemote) itemCallsFor(projectID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.itemCalls[projectID]
}

func (f *fakeRemote) setFailProject(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failProject = id
}

func pageIndex(offset string) int {
	if offset == "" {
		return 0
	}
	i, _ := strconv.Atoi(offset)
	return i
}

type fakeFactory struct {
	remote *fakeRemote
	tokens []string
}

func (f *fakeFactory) NewRemote(ctx context.Context, token string) (repository.Remote, error) {
	f.tokens = append(f.tokens, token)
	return f.remote, nil
}

type fixedClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fixedClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

func newTestUseCase(remote *fakeRemote, store kvstore.Store, cfg Config) *implUseCase {
	if store == nil {
		store = memory.New(0)
	}
	uc := New(&mockLogger{}, &fakeFactory{remote: remote}, store, cfg)
	_ = uc.SetCredential(context.Background(), "token")
	return uc
}

func item(id, projectID, sectionID string, created time.Time) model.WorkItem {
	it := model.WorkItem{ID: id, Title: "Item " + id, CreatedAt: created}
	if projectID != "" {
		m := model.Membership{Project: &model.ProjectRef{ID: projectID}}
		if sectionID != "" {
			m.Section = &model.SectionRef{ID: sectionID}
		}
		it.Memberships = []model.Membership{m}
	}
	return it
}
