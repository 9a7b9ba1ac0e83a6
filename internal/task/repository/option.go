package repository

import (
	"time"

	"homestead-calendar/internal/model"
)

// ListTasksOptions scopes a window read to one project.
type ListTasksOptions struct {
	ProjectID string
	Window    model.QueryWindow
}

// CreateTaskOptions holds the fields of a new task definition.
type CreateTaskOptions struct {
	ProjectID   string
	Title       string
	Description string
	Anchor      time.Time
	AllDay      bool
	Recurrence  model.Recurrence
}

// UpdateTaskAnchorOptions is a partial update that only moves the anchor.
type UpdateTaskAnchorOptions struct {
	ProjectID string
	TaskID    string
	Anchor    time.Time
}

// DeleteTaskOptions identifies a task definition to remove.
type DeleteTaskOptions struct {
	ProjectID string
	TaskID    string
}
