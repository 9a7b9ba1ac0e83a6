package http

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"homestead-calendar/internal/calendar"
	"homestead-calendar/pkg/icalexport"
	"homestead-calendar/pkg/response"
)

// Get godoc
// @Summary     Get the calendar
// @Description Navigates to the window of view around date and returns the bucketed occurrences.
// @Tags        Calendar
// @Produce     json
// @Param       view       query string false "month, week or day (default: month)"
// @Param       date       query string false "YYYY-MM-DD or relative (today, tomorrow, in 3 days, next monday)"
// @Param       project_id query []string false "Projects in scope (default: all)" collectionFormat(multi)
// @Success     200 {object} calendarResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Unknown project"
// @Router      /api/v1/calendar [GET]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	req, ref, err := h.processGetReq(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	snap, err := h.uc.Navigate(ctx, req.toInput(ref))
	h.renderSnapshot(c, snap, err)
}

// Refresh godoc
// @Summary     Refresh the calendar
// @Description Reloads the most recently navigated window.
// @Tags        Calendar
// @Produce     json
// @Success     200 {object} calendarResp
// @Router      /api/v1/calendar/refresh [POST]
func (h *handler) Refresh(c *gin.Context) {
	snap, err := h.uc.Refresh(c.Request.Context())
	h.renderSnapshot(c, snap, err)
}

// Reschedule godoc
// @Summary     Reschedule a task
// @Description Drops a one-off task on a day cell or an hour slot. Recurring and linked-calendar entries answer with a notice.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       body body rescheduleReq true "Drop target"
// @Success     200 {object} rescheduleResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Task not visible"
// @Failure     502 {object} response.Resp "Task service rejected the update"
// @Router      /api/v1/calendar/reschedule [POST]
func (h *handler) Reschedule(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRescheduleReq(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	res, err := h.rescheduler.RescheduleTask(ctx, req.TaskID, req.toTarget())
	if err != nil {
		if msg, ok := notice(err); ok {
			response.Notice(c, msg, h.newRescheduleResp(res))
			return
		}
		h.l.Errorf(ctx, "rescheduler.RescheduleTask: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newRescheduleResp(res))
}

// Export godoc
// @Summary     Export the calendar
// @Description Returns the task definitions of a window as an iCalendar feed.
// @Tags        Calendar
// @Produce     text/calendar
// @Param       view       query string false "month, week or day (default: month)"
// @Param       date       query string false "YYYY-MM-DD or relative"
// @Param       project_id query []string false "Projects in scope (default: all)" collectionFormat(multi)
// @Success     200 {string} string "text/calendar"
// @Failure     502 {object} response.Resp "Task service unavailable"
// @Router      /api/v1/calendar/export.ics [GET]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	req, ref, err := h.processGetReq(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	snap, err := h.uc.Load(ctx, req.toInput(ref))
	if err != nil {
		h.l.Errorf(ctx, "uc.Load: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	c.Header("Content-Type", "text/calendar; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="calendar-%s.ics"`, snap.Window.Key()))
	if err := icalexport.Write(c.Writer, snap.Definitions, icalexport.Options{Name: "Homestead", Now: h.now()}); err != nil {
		h.l.Errorf(ctx, "icalexport.Write: %v", err)
	}
}

// renderSnapshot answers a navigation. A failed fetch still shows what was
// published; a superseded navigation shows the newer snapshot.
func (h *handler) renderSnapshot(c *gin.Context, snap calendar.Snapshot, err error) {
	ctx := c.Request.Context()

	switch {
	case err == nil:
		response.OK(c, h.newCalendarResp(snap))
	case errors.Is(err, calendar.ErrStaleWindowResponse):
		response.OK(c, h.newCalendarResp(h.uc.Current()))
	default:
		if msg, ok := notice(err); ok {
			h.l.Warnf(ctx, "uc.Navigate: %v", err)
			response.Notice(c, msg, h.newCalendarResp(snap))
			return
		}
		h.l.Errorf(ctx, "uc.Navigate: %v", err)
		response.Error(c, h.mapError(err), nil)
	}
}
