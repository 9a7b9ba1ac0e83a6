package calendar

import (
	"context"

	"homestead-calendar/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Navigation
	Navigate(ctx context.Context, input NavigateInput) (Snapshot, error)
	Refresh(ctx context.Context) (Snapshot, error)
	// Load builds a snapshot for input without publishing it.
	Load(ctx context.Context, input NavigateInput) (Snapshot, error)

	// Reads against the published snapshot
	Current() Snapshot
	Definition(taskID string) (model.TaskDefinition, bool)
	Projects() []model.Project
}

// Refresher is the refresh signal other components raise after they change
// task data.
type Refresher interface {
	Refresh(ctx context.Context) (Snapshot, error)
	// Load builds a snapshot for input without publishing it.
	Load(ctx context.Context, input NavigateInput) (Snapshot, error)
}
