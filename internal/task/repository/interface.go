package repository

import (
	"context"

	"homestead-calendar/internal/model"
)

// TaskRepository is the data access interface for task definitions owned by
// the homestead backend.
type TaskRepository interface {
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.TaskDefinition, error)
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.TaskDefinition, error)
	UpdateTaskAnchor(ctx context.Context, opt UpdateTaskAnchorOptions) error
	DeleteTask(ctx context.Context, opt DeleteTaskOptions) error
}

// OverlaySource supplies read-only definitions from outside the project
// collections, such as a linked Google calendar.
type OverlaySource interface {
	Name() string
	ListDefinitions(ctx context.Context, window model.QueryWindow) ([]model.TaskDefinition, error)
}
