package asana

import "time"

const (
	// DefaultBaseURL is the public REST endpoint.
	DefaultBaseURL = "https://app.asana.com/api/1.0"

	// DefaultPageSize is the largest page the API accepts.
	DefaultPageSize = 100

	DefaultTimeout           = 30 * time.Second
	DefaultRequestsPerMinute = 150
	DefaultMaxRetries        = 3
	DefaultRetryDelay        = time.Second
)
