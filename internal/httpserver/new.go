package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"task-digest/internal/digest"
	"task-digest/internal/middleware"
	"task-digest/internal/timetrack"
	"task-digest/internal/workitem"
	"task-digest/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	rateLimit   middleware.Config

	// Domains
	workItemUC  workitem.UseCase
	timeTrackUC timetrack.UseCase
	digestUC    digest.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	RateLimit   middleware.Config

	WorkItemUC  workitem.UseCase
	TimeTrackUC timetrack.UseCase
	DigestUC    digest.UseCase
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		rateLimit:   cfg.RateLimit,
		workItemUC:  cfg.WorkItemUC,
		timeTrackUC: cfg.TimeTrackUC,
		digestUC:    cfg.DigestUC,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.workItemUC == nil {
		return errors.New("work-item use case is required")
	}
	if srv.timeTrackUC == nil {
		return errors.New("time-tracking use case is required")
	}
	if srv.digestUC == nil {
		return errors.New("digest use case is required")
	}
	return nil
}
