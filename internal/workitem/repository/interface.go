package repository

import (
	"context"

	"task-digest/internal/model"
)

// Remote is the work-item system as seen by the engine.
type Remote interface {
	ListWorkspaces(ctx context.Context) ([]model.Workspace, error)
	ListProjects(ctx context.Context, workspaceID string, opt ListProjectsOptions) (ProjectPage, error)
	ListItemsPage(ctx context.Context, projectID string, opt ListItemsOptions) (ItemPage, error)
	GetUser(ctx context.Context, userID string, opt GetUserOptions) (model.User, error)
}

// RemoteFactory builds a Remote bound to one access token.
type RemoteFactory interface {
	NewRemote(ctx context.Context, token string) (Remote, error)
}
