package usecase

import (
	"time"

	"homestead-calendar/internal/calendar"
	"homestead-calendar/internal/task"
	"homestead-calendar/internal/task/repository"
	"homestead-calendar/pkg/datemath"
	pkgLog "homestead-calendar/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.TaskRepository
	cal      calendar.UseCase
	dateMath *datemath.Parser
	now      func() time.Time
}

// New creates a new task UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.TaskRepository,
	cal calendar.UseCase,
	dateMath *datemath.Parser,
) *implUseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		cal:      cal,
		dateMath: dateMath,
		now:      time.Now,
	}
}

var _ task.UseCase = (*implUseCase)(nil)
