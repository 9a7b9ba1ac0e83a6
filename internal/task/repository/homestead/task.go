package homestead

import (
	"context"
	"fmt"
	"strings"
	"time"

	"homestead-calendar/internal/model"
	"homestead-calendar/internal/task/repository"
	pkgLog "homestead-calendar/pkg/log"
)

type implRepository struct {
	client *Client
	loc    *time.Location // interpretation of bare local task_datetime values
	l      pkgLog.Logger
}

// New creates a homestead-backed task repository.
func New(client *Client, loc *time.Location, l pkgLog.Logger) repository.TaskRepository {
	if loc == nil {
		loc = time.Local
	}
	return &implRepository{
		client: client,
		loc:    loc,
		l:      l,
	}
}

// ListTasks returns every definition the backend reports for the window. No
// client-side date filter is applied: a recurring task anchored before the
// window still has occurrences inside it.
func (r *implRepository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.TaskDefinition, error) {
	dtos, err := r.client.ListTasks(ctx, opt.ProjectID, opt.Window.Start, opt.Window.End)
	if err != nil {
		r.l.Errorf(ctx, "homestead repository: list project %s: %v", opt.ProjectID, err)
		return nil, fmt.Errorf("%w: %w", repository.ErrFailedToList, err)
	}

	defs := make([]model.TaskDefinition, 0, len(dtos))
	for _, dto := range dtos {
		def, err := r.dtoToTask(dto, opt.ProjectID)
		if err != nil {
			r.l.Warnf(ctx, "homestead repository: skipping task %s: %v", dto.ID, err)
			continue
		}
		defs = append(defs, def)
	}
	return defs, nil
}

func (r *implRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.TaskDefinition, error) {
	req := CreateTaskRequest{
		Title:        opt.Title,
		Description:  opt.Description,
		TaskDateTime: FormatAnchor(opt.Anchor, r.loc),
		IsAllDay:     opt.AllDay,
		Recurrence:   recurrenceToWire(opt.Recurrence),
	}

	dto, err := r.client.CreateTask(ctx, opt.ProjectID, req)
	if err != nil {
		r.l.Errorf(ctx, "homestead repository: create in project %s: %v", opt.ProjectID, err)
		return model.TaskDefinition{}, fmt.Errorf("%w: %w", repository.ErrFailedToCreate, err)
	}

	def, err := r.dtoToTask(*dto, opt.ProjectID)
	if err != nil {
		// The backend accepted the task; fall back to what was sent.
		r.l.Warnf(ctx, "homestead repository: unreadable create response: %v", err)
		def = model.TaskDefinition{
			ID:          string(dto.ID),
			ProjectID:   opt.ProjectID,
			Title:       opt.Title,
			Description: opt.Description,
			Anchor:      opt.Anchor,
			AllDay:      opt.AllDay,
			Recurrence:  opt.Recurrence,
			Source:      model.SourceProject,
		}
	}
	return def, nil
}

func (r *implRepository) UpdateTaskAnchor(ctx context.Context, opt repository.UpdateTaskAnchorOptions) error {
	req := UpdateTaskRequest{TaskDateTime: FormatAnchor(opt.Anchor, r.loc)}
	if err := r.client.UpdateTask(ctx, opt.ProjectID, opt.TaskID, req); err != nil {
		r.l.Errorf(ctx, "homestead repository: update task %s: %v", opt.TaskID, err)
		return fmt.Errorf("%w: %w", repository.ErrFailedToUpdate, err)
	}
	return nil
}

func (r *implRepository) DeleteTask(ctx context.Context, opt repository.DeleteTaskOptions) error {
	if err := r.client.DeleteTask(ctx, opt.ProjectID, opt.TaskID); err != nil {
		r.l.Errorf(ctx, "homestead repository: delete task %s: %v", opt.TaskID, err)
		return fmt.Errorf("%w: %w", repository.ErrFailedToDelete, err)
	}
	return nil
}

// dtoToTask converts the wire form, rejecting rows the expander cannot
// place.
func (r *implRepository) dtoToTask(dto TaskDTO, fallbackProject string) (model.TaskDefinition, error) {
	if dto.ID == "" {
		return model.TaskDefinition{}, fmt.Errorf("missing id")
	}
	title := strings.TrimSpace(dto.Title)
	if title == "" {
		return model.TaskDefinition{}, fmt.Errorf("empty title")
	}

	anchor, err := ParseDateTime(dto.TaskDateTime, r.loc)
	if err != nil {
		return model.TaskDefinition{}, err
	}

	rec := model.RecurrenceNone
	if dto.Recurrence != nil {
		rec, err = model.ParseRecurrence(*dto.Recurrence)
		if err != nil {
			return model.TaskDefinition{}, err
		}
	}

	projectID := string(dto.ProjectID)
	if projectID == "" {
		projectID = fallbackProject
	}

	return model.TaskDefinition{
		ID:          string(dto.ID),
		ProjectID:   projectID,
		Title:       title,
		Description: dto.Description,
		Anchor:      anchor,
		AllDay:      dto.IsAllDay,
		Recurrence:  rec,
		Source:      model.SourceProject,
	}, nil
}

func recurrenceToWire(r model.Recurrence) *string {
	if r == model.RecurrenceNone {
		return nil
	}
	s := r.String()
	return &s
}
