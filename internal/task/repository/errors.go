package repository

import "errors"

var (
	ErrFailedToList   = errors.New("failed to list tasks")
	ErrFailedToCreate = errors.New("failed to create task")
	ErrFailedToUpdate = errors.New("failed to update task")
	ErrFailedToDelete = errors.New("failed to delete task")
)
