package http

import (
	"task-digest/internal/timetrack"
	"task-digest/pkg/log"
)

type handler struct {
	l  log.Logger
	uc timetrack.UseCase
}

// New creates a new HTTP handler for the time-tracking domain.
func New(l log.Logger, uc timetrack.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
