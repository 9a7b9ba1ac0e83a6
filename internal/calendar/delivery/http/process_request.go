package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"homestead-calendar/internal/model"
	pkgErrors "homestead-calendar/pkg/errors"
)

// processGetReq binds the calendar query and resolves the reference date,
// which may be relative ("tomorrow", "next monday").
func (h *handler) processGetReq(c *gin.Context) (getReq, model.Date, error) {
	var req getReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, model.Date{}, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := req.validate(); err != nil {
		return req, model.Date{}, err
	}

	ref, err := h.dateMath.Parse(req.Date, h.now())
	if err != nil {
		return req, model.Date{}, fmt.Errorf("%w: %v", model.ErrInvalidDate, err)
	}
	return req, model.DateOf(ref), nil
}

// processRescheduleReq binds and validates the reschedule request body.
func (h *handler) processRescheduleReq(c *gin.Context) (rescheduleReq, error) {
	var req rescheduleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return req, req.validate()
}
