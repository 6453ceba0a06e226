package http

import (
	"time"

	"task-digest/internal/model"
)

// --- Request DTOs ---

type setCredentialReq struct {
	Token string `json:"token" binding:"required"`
}

type olderThanReq struct {
	WorkspaceID string    `uri:"id" binding:"required"`
	OlderThan   string    `form:"older_than"`
	cutoff      time.Time // parsed from OlderThan
}

// --- Response DTOs ---

type credentialResp struct {
	Configured bool `json:"configured"`
}

type workspacesResp struct {
	Workspaces []model.Workspace `json:"workspaces"`
}

type projectsResp struct {
	Projects []model.Project `json:"projects"`
}

type userResp struct {
	User model.User `json:"user"`
}

type itemsResp struct {
	Items     []model.WorkItem `json:"items"`
	Count     int              `json:"count"`
	OlderThan string           `json:"older_than"`
}

func newItemsResp(items []model.WorkItem, cutoff time.Time) itemsResp {
	if items == nil {
		items = []model.WorkItem{}
	}
	return itemsResp{
		Items:     items,
		Count:     len(items),
		OlderThan: cutoff.UTC().Format(time.RFC3339Nano),
	}
}

type cachedItemsResp struct {
	itemsResp
	Hit bool `json:"hit"`
}

type clearCacheResp struct {
	Removed int `json:"removed"`
}
