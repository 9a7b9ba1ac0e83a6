package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"homestead-calendar/internal/task"
	pkgErrors "homestead-calendar/pkg/errors"
)

// processCreateReq binds and validates the create task request body + URI param.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	req.ProjectID = strings.TrimSpace(c.Param("project_id"))
	if req.ProjectID == "" {
		return req, task.ErrProjectRequired
	}
	return req, req.validate()
}

// processDeleteReq reads the URI params of a delete request.
func (h *handler) processDeleteReq(c *gin.Context) (task.DeleteInput, error) {
	input := task.DeleteInput{
		ProjectID: strings.TrimSpace(c.Param("project_id")),
		TaskID:    strings.TrimSpace(c.Param("task_id")),
	}
	if input.ProjectID == "" {
		return input, task.ErrProjectRequired
	}
	if input.TaskID == "" {
		return input, task.ErrTaskRequired
	}
	return input, nil
}
