package errors

import (
	"errors"
	"net/http"
)

// HTTPError is an error that carries the status and message the delivery
// layer should render.
type HTTPError struct {
	StatusCode int
	Message    string
}

// NewHTTPError creates an HTTPError. Codes outside the HTTP range fall back
// to 400.
func NewHTTPError(statusCode int, message string) *HTTPError {
	if statusCode < 400 || statusCode > 599 {
		statusCode = http.StatusBadRequest
	}
	return &HTTPError{StatusCode: statusCode, Message: message}
}

func (e *HTTPError) Error() string {
	return e.Message
}

// ErrInternalServerError is rendered for anything the delivery layer does
// not map explicitly.
var ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")

// AsHTTPError extracts an HTTPError from err's chain.
func AsHTTPError(err error) (*HTTPError, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}
