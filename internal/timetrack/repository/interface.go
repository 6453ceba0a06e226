package repository

import (
	"context"

	"task-digest/internal/model"
)

// Remote is the time-tracking system. Bounds are YYYY-MM-DD; empty means open.
type Remote interface {
	ListTimeRecords(ctx context.Context, from, to string) ([]model.TimeEntry, error)
}

// RemoteFactory builds a Remote for one API key.
type RemoteFactory interface {
	NewRemote(apiKey string) Remote
}
