package task

import "homestead-calendar/internal/model"

// --- UseCase Inputs ---

// CreateInput describes a new task. Date accepts YYYY-MM-DD or a relative
// form such as "tomorrow" or "next monday". An empty Time makes the task
// all-day.
type CreateInput struct {
	ProjectID   string
	Title       string
	Description string
	Date        string
	Time        string // HH:MM
	AllDay      bool
	Recurrence  string
}

type DeleteInput struct {
	ProjectID string
	TaskID    string
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Task model.TaskDefinition
}
