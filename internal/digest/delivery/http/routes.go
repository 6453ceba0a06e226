package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the digest views onto the /api/v1 group.
func RegisterRoutes(api *gin.RouterGroup, h *handler) {
	views := api.Group("/digest")
	{
		views.GET("/critical", h.Critical)
		views.GET("/waiting", h.WaitingFor)
		views.GET("/focused", h.Focused)
		views.GET("/tabs", h.Tabs)
	}
}
