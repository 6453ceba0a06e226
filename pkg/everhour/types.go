package everhour

import (
	"net/http"
	"time"
)

// Config configures a Client.
type Config struct {
	BaseURL           string
	APIKey            string
	Timeout           time.Duration
	RequestsPerMinute int
	MaxRetries        int
	RetryDelay        time.Duration
	PageSize          int
	HTTPClient        *http.Client
}

// TaskRef is the task a record was booked against. Either field may be empty.
type TaskRef struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// TimeRecord is one raw team time record.
type TimeRecord struct {
	ID   int64    `json:"id"`
	Time int64    `json:"time"`
	User int64    `json:"user"`
	Date string   `json:"date"`
	Task *TaskRef `json:"task"`
}

// TimeRange bounds a listing by YYYY-MM-DD dates. Empty bounds are omitted.
type TimeRange struct {
	From string
	To   string
}
