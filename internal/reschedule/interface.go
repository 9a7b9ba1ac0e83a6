package reschedule

import (
	"context"

	"homestead-calendar/internal/model"
)

// Gesture is one drag of one occurrence, driven by DragStart, Drop and
// DragEnd.
type Gesture interface {
	State() State
	Drop(ctx context.Context, target Target) (Result, error)
	DragEnd() error
}

//go:generate mockery --name UseCase
type UseCase interface {
	DragStart(def model.TaskDefinition) (Gesture, error)
	// Reschedule runs a whole gesture for def.
	Reschedule(ctx context.Context, def model.TaskDefinition, target Target) (Result, error)
	// RescheduleTask resolves taskID against the visible calendar first.
	RescheduleTask(ctx context.Context, taskID string, target Target) (Result, error)
}
