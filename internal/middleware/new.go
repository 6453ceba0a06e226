package middleware

import (
	"task-digest/pkg/log"
)

// Config tunes the inbound limiter. RequestsPerMinute <= 0 disables it.
type Config struct {
	RequestsPerMinute int
	MaxClients        int
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{l: l}
	if cfg.RequestsPerMinute > 0 {
		mw.limiter = newRateLimiter(cfg.RequestsPerMinute, cfg.MaxClients)
	}
	return mw
}
