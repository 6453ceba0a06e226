package usecase

import (
	"context"
	"errors"
	"testing"

	"task-digest/internal/model"
	"task-digest/internal/workitem"
)

func TestListProjects(t *testing.T) {
	ctx := context.Background()
	remote := newFakeRemote()
	remote.projectPages = [][]model.Project{
		{{ID: "p1", Name: "One"}},
		{{ID: "p2", Name: "Two"}},
	}
	uc := newTestUseCase(remote, nil, Config{})

	t.Run("Follows continuation", func(t *testing.T) {
		got, err := uc.ListProjects(ctx, "w1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 || got[1].ID != "p2" {
			t.Errorf("unexpected projects %+v", got)
		}
	})

	t.Run("Memoized", func(t *testing.T) {
		before := remote.projectCalls
		uc.ListProjects(ctx, "w1")
		if remote.projectCalls != before {
			t.Errorf("expected memoized projects, got %d new calls", remote.projectCalls-before)
		}
	})

	t.Run("Empty workspace id", func(t *testing.T) {
		if _, err := uc.ListProjects(ctx, ""); !errors.Is(err, workitem.ErrEmptyWorkspaceID) {
			t.Errorf("expected ErrEmptyWorkspaceID, got %v", err)
		}
	})
}

func TestCurrentUserAndDefaultWorkspace(t *testing.T) {
	ctx := context.Background()
	remote := newFakeRemote()
	uc := newTestUseCase(remote, nil, Config{})

	for range 3 {
		u, err := uc.CurrentUser(ctx)
		if err != nil || u.ID != "u1" {
			t.Fatalf("unexpected user %+v err %v", u, err)
		}
	}
	if remote.userCalls != 1 {
		t.Errorf("expected 1 user call, got %d", remote.userCalls)
	}

	ws, err := uc.DefaultWorkspace(ctx)
	if err != nil || ws.ID != "w1" {
		t.Errorf("expected workspace w1, got %+v err %v", ws, err)
	}

	empty := newFakeRemote()
	empty.workspaces = nil
	if _, err := newTestUseCase(empty, nil, Config{}).DefaultWorkspace(ctx); !errors.Is(err, workitem.ErrNoWorkspaces) {
		t.Errorf("expected ErrNoWorkspaces, got %v", err)
	}
}
