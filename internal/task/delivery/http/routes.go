package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	tasks := rg.Group("/projects/:project_id/tasks")
	{
		tasks.POST("", h.Create)
		tasks.DELETE("/:task_id", h.Delete)
	}
}
