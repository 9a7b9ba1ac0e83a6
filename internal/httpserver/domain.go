package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	calendarHTTP "homestead-calendar/internal/calendar/delivery/http"
	taskHTTP "homestead-calendar/internal/task/delivery/http"
)

// setupCalendarDomain registers /api/v1/calendar.
func (srv HTTPServer) setupCalendarDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := calendarHTTP.New(srv.l, srv.calendarUC, srv.rescheduleUC, srv.dateMath)
	calendarHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Calendar domain registered")
	return nil
}

// setupTaskDomain registers /api/v1/projects/:project_id/tasks.
func (srv HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := taskHTTP.New(srv.l, srv.taskUC)
	taskHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Task domain registered")
	return nil
}
