package usecase

import (
	"context"
	"sync"
	"time"

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

// Mock repository keyed by project. listFn, when set, overrides the map.
type mockRepo struct {
	mu     sync.Mutex
	tasks  map[string][]model.TaskDefinition
	err    error
	calls  int
	listFn func(ctx context.Context, opt repository.ListTasksOptions) ([]model.TaskDefinition, error)
}

func (m *mockRepo) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.TaskDefinition, error) {
	m.mu.Lock()
	m.calls++
	fn, err := m.listFn, m.err
	defs := append([]model.TaskDefinition(nil), m.tasks[opt.ProjectID]...)
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, opt)
	}
	if err != nil {
		return nil, err
	}
	return defs, nil
}

func (m *mockRepo) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.TaskDefinition, error) {
	return model.TaskDefinition{}, nil
}

func (m *mockRepo) UpdateTaskAnchor(ctx context.Context, opt repository.UpdateTaskAnchorOptions) error {
	return nil
}

func (m *mockRepo) DeleteTask(ctx context.Context, opt repository.DeleteTaskOptions) error {
	return nil
}

func (m *mockRepo) setErr(err error) {
	m.mu.Lock()
	m.err = err
	m.mu.Unlock()
}

type mockOverlay struct {
	defs []model.TaskDefinition
	err  error
}

func (m *mockOverlay) Name() string { return "mock" }

func (m *mockOverlay) ListDefinitions(ctx context.Context, w model.QueryWindow) ([]model.TaskDefinition, error) {
	return append([]model.TaskDefinition(nil), m.defs...), m.err
}

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

func newTestUseCase(repo repository.TaskRepository, overlays ...repository.OverlaySource) *implUseCase {
	uc := New(&mockLogger{}, repo, Config{
		Location:  time.UTC,
		WeekStart: time.Sunday,
		Projects: []model.Project{
			{ID: "p1", Name: "Barn"},
			{ID: "p2", Name: "Garden"},
		},
	}, overlays...)
	uc.now = func() time.Time { return at("2024-02-15T08:00:00") }
	return uc
}
