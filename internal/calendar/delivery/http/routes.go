package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	cal := rg.Group("/calendar")
	{
		cal.GET("", h.Get)
		cal.POST("/refresh", h.Refresh)
		cal.POST("/reschedule", h.Reschedule)
		cal.GET("/export.ics", h.Export)
	}
}
