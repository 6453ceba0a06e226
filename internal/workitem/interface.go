package workitem

import (
	"context"
	"time"

	"task-digest/internal/model"
)

// UseCase is the work-item acquisition engine: credential lifecycle, directory lookups,
// the paginated older-than fetch and its cache tiers.
type UseCase interface {
	// SetCredential installs a new client handle for token and drops the in-process tiers.
	// The persistent tier is not credential-scoped and survives.
	SetCredential(ctx context.Context, token string) error
	// ClearCredential installs a handle with an empty token.
	ClearCredential(ctx context.Context) error
	// Credential returns the last token set, false when none (or an empty one) is set.
	Credential() (string, bool)

	ListWorkspaces(ctx context.Context) ([]model.Workspace, error)
	// DefaultWorkspace is the first workspace the remote system returns.
	DefaultWorkspace(ctx context.Context) (model.Workspace, error)
	ListProjects(ctx context.Context, workspaceID string) ([]model.Project, error)
	CurrentUser(ctx context.Context) (model.User, error)

	// FindItemsOlderThan returns deduplicated items created strictly before cutoff,
	// served from the medium or persistent tier when fresh.
	FindItemsOlderThan(ctx context.Context, workspaceID string, cutoff time.Time) ([]model.WorkItem, error)
	// RefreshItemsOlderThan always walks the remote system, skipping both cache reads,
	// and rewrites the medium and persistent tiers. Concurrent refreshes of one listing
	// share a walk.
	RefreshItemsOlderThan(ctx context.Context, workspaceID string, cutoff time.Time) ([]model.WorkItem, error)
	// CachedItemsOlderThan reads the persistent tier only. It never touches the network.
	CachedItemsOlderThan(ctx context.Context, workspaceID string, cutoff time.Time) ([]model.WorkItem, bool)
	// MemoizedItemsOlderThan reads the medium tier only.
	MemoizedItemsOlderThan(workspaceID string, cutoff time.Time) ([]model.WorkItem, bool)
	// ClearPersistentCache removes current and legacy persisted listings, clears the
	// in-process tiers and reports how many persisted keys were removed.
	ClearPersistentCache(ctx context.Context) int
}
