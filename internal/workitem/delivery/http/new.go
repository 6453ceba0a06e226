package http

import (
	"task-digest/internal/workitem"
	"task-digest/pkg/log"
)

type handler struct {
	l  log.Logger
	uc workitem.UseCase
}

// New creates a new HTTP handler for the work-item domain.
func New(l log.Logger, uc workitem.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
