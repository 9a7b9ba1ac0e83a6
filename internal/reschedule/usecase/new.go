package usecase

import (
	"homestead-calendar/internal/calendar"
	"homestead-calendar/internal/reschedule"
	"homestead-calendar/internal/task/repository"
	pkgLog "homestead-calendar/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.TaskRepository
	cal  calendar.UseCase
}

// New creates a new reschedule UseCase. cal resolves task IDs and receives
// the refresh signal after every submitted update.
func New(l pkgLog.Logger, repo repository.TaskRepository, cal calendar.UseCase) *implUseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
		cal:  cal,
	}
}

var _ reschedule.UseCase = (*implUseCase)(nil)
