package reschedule

import "errors"

var (
	// ErrRecurringTaskNotMovable is informational: recurring series are moved
	// by editing the task, never by dragging one occurrence.
	ErrRecurringTaskNotMovable = errors.New("recurring tasks cannot be moved by drag and drop")
	ErrReadOnlyTask            = errors.New("task is read-only")
	ErrRescheduleFailed        = errors.New("failed to reschedule task")
	ErrInvalidTransition       = errors.New("invalid reschedule transition")
	ErrInvalidTarget           = errors.New("invalid drop target")
	ErrUnknownTask             = errors.New("task not found in the visible calendar")
)
