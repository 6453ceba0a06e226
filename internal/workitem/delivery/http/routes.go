package http

import (
	"task-digest/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the work-item endpoints onto the /api/v1 group.
// Listing endpoints that may walk every project sit behind the rate limiter.
func RegisterRoutes(api *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	creds := api.Group("/credentials")
	{
		creds.PUT("/workitem", h.SetCredential)
		creds.DELETE("/workitem", h.ClearCredential)
	}

	api.GET("/me", h.CurrentUser)
	api.DELETE("/cache", h.ClearCache)

	workspaces := api.Group("/workspaces")
	{
		workspaces.GET("", h.ListWorkspaces)
		workspaces.GET("/:id/projects", h.ListProjects)
		workspaces.GET("/:id/items", mw.RateLimit(), h.FindItemsOlderThan)
		workspaces.GET("/:id/items/cached", h.CachedItemsOlderThan)
	}
}
