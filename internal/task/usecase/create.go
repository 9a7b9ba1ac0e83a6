package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"homestead-calendar/internal/calendar"
	"homestead-calendar/internal/model"
	"homestead-calendar/internal/task"
	"homestead-calendar/internal/task/repository"
)

// Create validates input, creates the task upstream and raises the refresh
// signal.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateInput) (task.CreateOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return task.CreateOutput{}, task.ErrEmptyTitle
	}
	if err := uc.checkProject(input.ProjectID); err != nil {
		return task.CreateOutput{}, err
	}

	rec, err := model.ParseRecurrence(input.Recurrence)
	if err != nil {
		return task.CreateOutput{}, err
	}

	anchor, allDay, err := uc.resolveAnchor(input)
	if err != nil {
		return task.CreateOutput{}, err
	}

	def, err := uc.repo.CreateTask(ctx, repository.CreateTaskOptions{
		ProjectID:   input.ProjectID,
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		Anchor:      anchor,
		AllDay:      allDay,
		Recurrence:  rec,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Create: %v", err)
		return task.CreateOutput{}, err
	}

	uc.l.Infof(ctx, "task.usecase.Create: created task %s in project %s", def.ID, def.ProjectID)
	uc.refresh(ctx)

	return task.CreateOutput{Task: def}, nil
}

// Delete removes a task upstream and raises the refresh signal.
func (uc *implUseCase) Delete(ctx context.Context, input task.DeleteInput) error {
	if err := uc.checkProject(input.ProjectID); err != nil {
		return err
	}
	if strings.TrimSpace(input.TaskID) == "" {
		return task.ErrTaskRequired
	}

	if err := uc.repo.DeleteTask(ctx, repository.DeleteTaskOptions{
		ProjectID: input.ProjectID,
		TaskID:    input.TaskID,
	}); err != nil {
		uc.l.Errorf(ctx, "task.usecase.Delete: %v", err)
		return err
	}

	uc.l.Infof(ctx, "task.usecase.Delete: deleted task %s from project %s", input.TaskID, input.ProjectID)
	uc.refresh(ctx)
	return nil
}

// resolveAnchor turns the date expression and optional HH:MM into an anchor
// in the configured timezone.
func (uc *implUseCase) resolveAnchor(input task.CreateInput) (time.Time, bool, error) {
	day, err := uc.dateMath.Parse(input.Date, uc.now())
	if err != nil {
		return time.Time{}, false, fmt.Errorf("%w: %q", task.ErrInvalidDate, input.Date)
	}

	clock := strings.TrimSpace(input.Time)
	if input.AllDay || clock == "" {
		return day, true, nil
	}

	tod, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("%w: %q", task.ErrInvalidTime, input.Time)
	}
	y, m, d := day.Date()
	return time.Date(y, m, d, tod.Hour(), tod.Minute(), 0, 0, day.Location()), false, nil
}

func (uc *implUseCase) checkProject(projectID string) error {
	if strings.TrimSpace(projectID) == "" {
		return task.ErrProjectRequired
	}
	for _, p := range uc.cal.Projects() {
		if p.ID == projectID {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", task.ErrUnknownProject, projectID)
}

func (uc *implUseCase) refresh(ctx context.Context) {
	if _, err := uc.cal.Refresh(ctx); err != nil && !errors.Is(err, calendar.ErrStaleWindowResponse) {
		uc.l.Warnf(ctx, "task.usecase.refresh: %v", err)
	}
}
