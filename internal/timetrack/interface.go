package timetrack

import (
	"context"

	"task-digest/internal/model"
)

// UseCase reads time entries from the time-tracking system and reduces them per task.
type UseCase interface {
	// SetAPIKey replaces the client; an empty key leaves the aggregator unconfigured.
	SetAPIKey(ctx context.Context, key string) error
	APIKey() (string, bool)
	// ListTimeEntries is memoized per (from, to) pair.
	ListTimeEntries(ctx context.Context, in ListInput) ([]model.TimeEntry, error)
	// SummarizeByTask totals seconds per recovered task id, in first-seen order.
	SummarizeByTask(entries []model.TimeEntry) []model.TaskTimeSummary
}
