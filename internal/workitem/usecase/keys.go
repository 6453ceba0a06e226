package usecase

import (
	"strconv"
	"time"

	"task-digest/internal/workitem"
)

const (
	keyMe                = "me"
	keyWorkspaces        = "workspaces"
	keyWorkspaceProjects = "workspace-projects:"
)

// itemsKey is shared by the medium and persistent tiers. The cutoff is rendered at full
// precision in UTC, so two different instants never share a key.
func itemsKey(workspaceID string, cutoff time.Time) string {
	return workitem.KeyPrefix + workspaceID + ":" + cutoff.UTC().Format(time.RFC3339Nano)
}

func flightKey(key string, gen uint64) string {
	return key + "#" + strconv.FormatUint(gen, 10)
}

// refreshFlightKey keeps forced walks apart from cache-first ones, which may settle from a tier.
func refreshFlightKey(key string, gen uint64) string {
	return flightKey(key, gen) + "#refresh"
}
