package usecase

import "time"

const (
	DefaultShortTTL           = 60 * time.Second
	DefaultMediumTTL          = 600 * time.Second
	DefaultPersistentTTL      = 600 * time.Second
	DefaultPageSize           = 100
	DefaultProjectConcurrency = 1
	DefaultFetchTimeout       = 2 * time.Minute
)

// Config tunes the engine. Zero values fall back to the defaults above.
type Config struct {
	ShortTTL           time.Duration
	MediumTTL          time.Duration
	PersistentTTL      time.Duration
	MemoSize           int
	PageSize           int
	ProjectConcurrency int
	FetchTimeout       time.Duration
	ExcludedProjectIDs []string
	// Clock drives persistent-tier freshness; nil means time.Now.
	Clock func() time.Time
}

func (c Config) withDefaults() Config {
	if c.ShortTTL <= 0 {
		c.ShortTTL = DefaultShortTTL
	}
	if c.MediumTTL <= 0 {
		c.MediumTTL = DefaultMediumTTL
	}
	if c.PersistentTTL <= 0 {
		c.PersistentTTL = DefaultPersistentTTL
	}
	if c.PageSize <= 0 {
		c.PageSize = DefaultPageSize
	}
	if c.ProjectConcurrency <= 0 {
		c.ProjectConcurrency = DefaultProjectConcurrency
	}
	if c.FetchTimeout <= 0 {
		c.FetchTimeout = DefaultFetchTimeout
	}
	if c.Clock == nil {
		c.Clock = time.Now
	}
	return c
}

// persistedRecord is the durable JSON shape: {"ts": <unix millis>, "data": [...]}.
type persistedRecord[T any] struct {
	TS   int64 `json:"ts"`
	Data T     `json:"data"`
}
