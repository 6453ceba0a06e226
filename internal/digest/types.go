package digest

import "time"

const (
	// OtherTabID selects items that match no configured tab.
	OtherTabID    = "other"
	OtherTabLabel = "Other"

	AssigneeAll        = "ALL"
	AssigneeUnassigned = "UNASSIGNED"

	NoProjectID   = "none"
	NoProjectName = "No project"
)

// Tab is a focus area. Empty lists do not constrain.
type Tab struct {
	ID            string   `json:"id" mapstructure:"id"`
	Label         string   `json:"label" mapstructure:"label"`
	ProjectIDs    []string `json:"project_ids" mapstructure:"project_ids"`
	IncludeTagIDs []string `json:"include_tag_ids" mapstructure:"include_tag_ids"`
	ExcludeTagIDs []string `json:"exclude_tag_ids" mapstructure:"exclude_tag_ids"`
}

type ProjectRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Task is the normalized, display-ready form of a work item.
type Task struct {
	ID                string       `json:"id"`
	Title             string       `json:"title"`
	CreatedAt         time.Time    `json:"created_at"`
	URL               string       `json:"url,omitempty"`
	AssigneeID        string       `json:"assignee_id,omitempty"`
	AssigneeFullName  string       `json:"assignee_full_name,omitempty"`
	AssigneeFirstName string       `json:"assignee_first_name,omitempty"`
	TimeWorkedSeconds int64        `json:"time_worked_seconds"`
	Projects          []ProjectRef `json:"projects,omitempty"`
}

type AssigneeOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CriticalInput struct {
	// Assignee is AssigneeAll, AssigneeUnassigned or a user id. Empty means AssigneeAll.
	Assignee string
}

type CriticalOutput struct {
	Stale         []Task
	OverBudget    []Task
	Assignees     []AssigneeOption
	TimeAvailable bool
}

type WaitingOutput struct {
	Tasks     []Task
	FromCache bool
}

type FocusedInput struct {
	// TabID selects a configured tab or OtherTabID. Empty selects the first tab.
	TabID string
}

type ProjectGroup struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Tasks []Task `json:"tasks"`
}

type FocusedOutput struct {
	TabID         string
	Groups        []ProjectGroup
	FromCache     bool
	TimeAvailable bool
}
