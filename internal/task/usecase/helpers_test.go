package usecase

import (
	"context"
	"time"

	"homestead-calendar/internal/calendar"
	"homestead-calendar/internal/model"
	"homestead-calendar/internal/task/repository"
	"homestead-calendar/pkg/datemath"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock repository recording writes
type mockRepo struct {
	created   []repository.CreateTaskOptions
	deleted   []repository.DeleteTaskOptions
	createErr error
	deleteErr error
}

func (m *mockRepo) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.TaskDefinition, error) {
	return nil, nil
}

func (m *mockRepo) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.TaskDefinition, error) {
	m.created = append(m.created, opt)
	if m.createErr != nil {
		return model.TaskDefinition{}, m.createErr
	}
	return model.TaskDefinition{
		ID:         "new-1",
		ProjectID:  opt.ProjectID,
		Title:      opt.Title,
		Anchor:     opt.Anchor,
		AllDay:     opt.AllDay,
		Recurrence: opt.Recurrence,
		Source:     model.SourceProject,
	}, nil
}

func (m *mockRepo) UpdateTaskAnchor(ctx context.Context, opt repository.UpdateTaskAnchorOptions) error {
	return nil
}

func (m *mockRepo) DeleteTask(ctx context.Context, opt repository.DeleteTaskOptions) error {
	m.deleted = append(m.deleted, opt)
	return m.deleteErr
}

// Mock calendar counting refresh signals
type mockCalendar struct {
	refreshes int
}

func (m *mockCalendar) Navigate(ctx context.Context, input calendar.NavigateInput) (calendar.Snapshot, error) {
	return calendar.Snapshot{}, nil
}

func (m *mockCalendar) Refresh(ctx context.Context) (calendar.Snapshot, error) {
	m.refreshes++
	return calendar.Snapshot{}, nil
}

func (m *mockCalendar) Load(ctx context.Context, input calendar.NavigateInput) (calendar.Snapshot, error) {
	return calendar.Snapshot{}, nil
}

func (m *mockCalendar) Current() calendar.Snapshot { return calendar.Snapshot{} }

func (m *mockCalendar) Definition(taskID string) (model.TaskDefinition, bool) {
	return model.TaskDefinition{}, false
}

func (m *mockCalendar) Projects() []model.Project {
	return []model.Project{{ID: "p1", Name: "Barn"}}
}

func newTestUseCase(repo *mockRepo, cal *mockCalendar) *implUseCase {
	parser, err := datemath.NewParser("UTC")
	if err != nil {
		panic(err)
	}
	uc := New(&mockLogger{}, repo, cal, parser)
	uc.now = func() time.Time { return time.Date(2024, 2, 15, 8, 0, 0, 0, time.UTC) }
	return uc
}
