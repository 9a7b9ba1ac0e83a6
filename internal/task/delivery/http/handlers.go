package http

import (
	"github.com/gin-gonic/gin"

	"homestead-calendar/pkg/response"
)

// Create godoc
// @Summary     Create a task
// @Description Adds a task to a project. An empty time makes the task all-day; an empty date means today.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       project_id path string    true "Project ID"
// @Param       body       body createReq true "Task data"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Unknown project"
// @Failure     502 {object} response.Resp "Task service rejected the task"
// @Router      /api/v1/projects/{project_id}/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// Delete godoc
// @Summary     Delete a task
// @Description Removes a task definition and every occurrence it produces.
// @Tags        Tasks
// @Produce     json
// @Param       project_id path string true "Project ID"
// @Param       task_id    path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Unknown project"
// @Failure     502 {object} response.Resp "Task service rejected the delete"
// @Router      /api/v1/projects/{project_id}/tasks/{task_id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processDeleteReq(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	if err := h.uc.Delete(ctx, input); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}
