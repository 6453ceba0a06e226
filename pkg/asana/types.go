package asana

import (
	"net/http"
	"time"
)

// Config configures a Client.
type Config struct {
	BaseURL           string
	Token             string
	Timeout           time.Duration
	RequestsPerMinute int
	MaxRetries        int
	RetryDelay        time.Duration
	// HTTPClient is the transport the bearer-token client is layered on (tests inject httptest here).
	HTTPClient *http.Client
}

// Compact is the {gid, name} shape shared by workspaces, projects, sections, tags and users.
type Compact struct {
	GID  string `json:"gid"`
	Name string `json:"name"`
}

// NextPage is the continuation cursor. A nil NextPage means the listing is complete.
type NextPage struct {
	Offset string `json:"offset"`
	Path   string `json:"path"`
	URI    string `json:"uri"`
}

// Page is one page of a paginated collection.
type Page[T any] struct {
	Data     []T       `json:"data"`
	NextPage *NextPage `json:"next_page"`
}

// NextOffset returns the continuation offset, or "" when there is none.
func (p Page[T]) NextOffset() string {
	if p.NextPage == nil {
		return ""
	}
	return p.NextPage.Offset
}

// Membership is a task's project/section pair.
type Membership struct {
	Project *Compact `json:"project"`
	Section *Compact `json:"section"`
}

// Task is the subset of task fields requested through opt_fields.
type Task struct {
	GID          string       `json:"gid"`
	Name         string       `json:"name"`
	CreatedAt    string       `json:"created_at"`
	PermalinkURL string       `json:"permalink_url"`
	Assignee     *Compact     `json:"assignee"`
	Completed    *bool        `json:"completed"`
	Memberships  []Membership `json:"memberships"`
	Tags         []Compact    `json:"tags"`
}

// ListOptions controls pagination of collection endpoints.
type ListOptions struct {
	Limit  int
	Offset string
}

// TaskListOptions controls the project task listing.
type TaskListOptions struct {
	Limit     int
	Offset    string
	OptFields []string
}

type dataEnvelope[T any] struct {
	Data T `json:"data"`
}

type errorEnvelope struct {
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}
