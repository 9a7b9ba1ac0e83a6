package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyTitle      = errors.New("task title is empty")
	ErrProjectRequired = errors.New("project is required")
	ErrUnknownProject  = errors.New("unknown project")
	ErrInvalidDate     = errors.New("invalid task date")
	ErrInvalidTime     = errors.New("invalid task time")
	ErrTaskRequired    = errors.New("task id is required")
)
