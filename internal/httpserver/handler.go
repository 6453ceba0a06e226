package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	digestHTTP "task-digest/internal/digest/delivery/http"
	"task-digest/internal/middleware"
	"task-digest/internal/model"
	timetrackHTTP "task-digest/internal/timetrack/delivery/http"
	workitemHTTP "task-digest/internal/workitem/delivery/http"
)

func (srv HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.rateLimit)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(mw); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.RequestID())
	srv.gin.Use(mw.AccessLog())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "HTTP mode: production")
	} else {
		srv.l.Infof(ctx, "HTTP mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes wires each domain's handler under /api/v1.
//
// Pattern to follow when adding a new domain:
//  1. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  2. Register Routes:     mydomainHTTP.RegisterRoutes(api, h)
func (srv HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	workitemHTTP.RegisterRoutes(api, workitemHTTP.New(srv.l, srv.workItemUC), mw)
	srv.l.Infof(ctx, "Work-item routes registered")

	timetrackHTTP.RegisterRoutes(api, timetrackHTTP.New(srv.l, srv.timeTrackUC))
	srv.l.Infof(ctx, "Time-tracking routes registered")

	digestHTTP.RegisterRoutes(api, digestHTTP.New(srv.l, srv.digestUC))
	srv.l.Infof(ctx, "Digest routes registered")

	return nil
}
