package http

import (
	"errors"
	"net/http"

	"homestead-calendar/internal/model"
	"homestead-calendar/internal/task"
	"homestead-calendar/internal/task/repository"
	pkgErrors "homestead-calendar/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	if httpErr, ok := pkgErrors.AsHTTPError(err); ok {
		return httpErr
	}
	switch {
	case errors.Is(err, task.ErrEmptyTitle),
		errors.Is(err, task.ErrProjectRequired),
		errors.Is(err, task.ErrTaskRequired),
		errors.Is(err, task.ErrInvalidDate),
		errors.Is(err, task.ErrInvalidTime),
		errors.Is(err, model.ErrInvalidRecurrence):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, task.ErrUnknownProject):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, repository.ErrFailedToCreate),
		errors.Is(err, repository.ErrFailedToDelete):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
