package http

import "github.com/gin-gonic/gin"

func RegisterRoutes(api *gin.RouterGroup, h *handler) {
	api.PUT("/credentials/timetrack", h.SetAPIKey)

	entries := api.Group("/time")
	{
		entries.GET("/entries", h.ListEntries)
		entries.GET("/summary", h.Summary)
	}
}
