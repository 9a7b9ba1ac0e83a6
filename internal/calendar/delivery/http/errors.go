package http

import (
	"errors"
	"net/http"

	"homestead-calendar/internal/calendar"
	"homestead-calendar/internal/model"
	"homestead-calendar/internal/reschedule"
	pkgErrors "homestead-calendar/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	if httpErr, ok := pkgErrors.AsHTTPError(err); ok {
		return httpErr
	}
	switch {
	case errors.Is(err, model.ErrInvalidView),
		errors.Is(err, model.ErrInvalidDate),
		errors.Is(err, reschedule.ErrInvalidTarget):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, calendar.ErrUnknownProject),
		errors.Is(err, reschedule.ErrUnknownTask):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, reschedule.ErrInvalidTransition):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, reschedule.ErrRescheduleFailed),
		errors.Is(err, calendar.ErrFetchFailed):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}

// notice returns the user-facing text for conditions that leave a usable
// result behind.
func notice(err error) (string, bool) {
	switch {
	case errors.Is(err, calendar.ErrFetchFailed):
		return "Could not reach the task service; showing the last known calendar.", true
	case errors.Is(err, reschedule.ErrRecurringTaskNotMovable):
		return "Recurring tasks can't be moved by dragging. Edit the task to change its schedule.", true
	case errors.Is(err, reschedule.ErrReadOnlyTask):
		return "This entry comes from a linked calendar and can't be moved here.", true
	default:
		return "", false
	}
}
