package everhour

import "time"

const (
	DefaultBaseURL = "https://api.everhour.com"

	// DefaultPageSize is the page size used when walking team time records.
	DefaultPageSize = 1000

	DefaultTimeout           = 30 * time.Second
	DefaultRequestsPerMinute = 100
	DefaultMaxRetries        = 3
	DefaultRetryDelay        = time.Second

	apiKeyHeader     = "X-Api-Key"
	apiVersionHeader = "X-Accept-Version"
	apiVersion       = "1.2"
)
