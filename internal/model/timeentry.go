package model

// TimeEntry is one raw record from the time-tracking system.
// TaskID and TaskURL together form the task reference; either may be empty.
type TimeEntry struct {
	ID      string `json:"id"`
	TaskID  string `json:"task_id,omitempty"`
	TaskURL string `json:"task_url,omitempty"`
	UserID  string `json:"user_id"`
	Seconds int64  `json:"seconds"`
	Date    string `json:"date"` // YYYY-MM-DD
}

// TaskTimeSummary is the total tracked time for one work item.
type TaskTimeSummary struct {
	TaskID       string `json:"task_id"`
	TotalSeconds int64  `json:"total_seconds"`
}
