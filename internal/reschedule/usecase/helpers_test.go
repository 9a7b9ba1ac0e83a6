package usecase

import (
	"context"
	"sync"
	"time"

	"homestead-calendar/internal/calendar"
	"homestead-calendar/internal/model"
	"homestead-calendar/internal/task/repository"
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

// Mock repository recording anchor updates
type mockRepo struct {
	mu        sync.Mutex
	updates   []repository.UpdateTaskAnchorOptions
	updateErr error
}

func (m *mockRepo) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.TaskDefinition, error) {
	return nil, nil
}

func (m *mockRepo) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.TaskDefinition, error) {
	return model.TaskDefinition{}, nil
}

func (m *mockRepo) UpdateTaskAnchor(ctx context.Context, opt repository.UpdateTaskAnchorOptions) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updates = append(m.updates, opt)
	return m.updateErr
}

func (m *mockRepo) DeleteTask(ctx context.Context, opt repository.DeleteTaskOptions) error {
	return nil
}

// Mock calendar counting refresh signals
type mockCalendar struct {
	defs       map[string]model.TaskDefinition
	refreshes  int
	refreshErr error
}

func (m *mockCalendar) Navigate(ctx context.Context, input calendar.NavigateInput) (calendar.Snapshot, error) {
	return calendar.Snapshot{}, nil
}

func (m *mockCalendar) Refresh(ctx context.Context) (calendar.Snapshot, error) {
	m.refreshes++
	return calendar.Snapshot{}, m.refreshErr
}

func (m *mockCalendar) Load(ctx context.Context, input calendar.NavigateInput) (calendar.Snapshot, error) {
	return calendar.Snapshot{}, nil
}

func (m *mockCalendar) Current() calendar.Snapshot { return calendar.Snapshot{} }

func (m *mockCalendar) Definition(taskID string) (model.TaskDefinition, bool) {
	def, ok := m.defs[taskID]
	return def, ok
}

func (m *mockCalendar) Projects() []model.Project { return nil }

func date(s string) model.Date {
	d, err := model.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func at(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02T15:04:05", s, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}
