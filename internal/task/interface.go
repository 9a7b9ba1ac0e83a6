package task

import (
	"context"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Create adds a task definition to a project and refreshes the calendar.
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)

	// Delete removes a task definition and refreshes the calendar.
	Delete(ctx context.Context, input DeleteInput) error
}
