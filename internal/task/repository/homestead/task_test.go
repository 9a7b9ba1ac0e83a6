package homestead_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"homestead-calendar/internal/model"
	"homestead-calendar/internal/task/repository"
	"homestead-calendar/internal/task/repository/homestead"
	pkgLog "homestead-calendar/pkg/log"
)

func TestRepositoryListTasks(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"tasks":[
			{"id": 1, "title": "Feed goats", "task_datetime": "2024-01-02T07:00:00", "recurrence": "daily"},
			{"id": 2, "title": "  ", "task_datetime": "2024-01-02T07:00:00"},
			{"id": 3, "title": "Bad date", "task_datetime": "soon"},
			{"id": 4, "title": "Bad rule", "task_datetime": "2024-01-02T07:00:00", "recurrence": "hourly"},
			{"id": 5, "project_id": "p1", "title": "Harvest", "task_datetime": "2024-02-10T00:00:00", "is_all_day": true}
		]}`))
	})
	repo := homestead.New(client, time.UTC, pkgLog.NewNop())

	first, _ := model.ParseDate("2024-01-28")
	last, _ := model.ParseDate("2024-03-02")
	defs, err := repo.ListTasks(context.Background(), repository.ListTasksOptions{
		ProjectID: "p1",
		Window:    model.NewQueryWindow(first, last, time.UTC),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(defs) != 2 {
		t.Fatalf("expected invalid rows to be skipped, got %d definitions", len(defs))
	}

	goats := defs[0]
	if goats.ID != "1" || goats.ProjectID != "p1" || goats.Recurrence != model.RecurrenceDaily {
		t.Errorf("unexpected definition: %+v", goats)
	}
	if goats.Source != model.SourceProject || goats.ReadOnly {
		t.Errorf("project definitions must be writable, got %+v", goats)
	}
	if !goats.Anchor.Before(first.In(time.UTC)) {
		t.Errorf("definitions anchored before the window must be kept")
	}
	if !defs[1].AllDay {
		t.Errorf("expected all-day flag to be kept")
	}
}

func TestRepositoryErrors(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	repo := homestead.New(client, time.UTC, pkgLog.NewNop())
	ctx := context.Background()

	if _, err := repo.ListTasks(ctx, repository.ListTasksOptions{ProjectID: "p1"}); !errors.Is(err, repository.ErrFailedToList) {
		t.Errorf("expected ErrFailedToList, got %v", err)
	}
	if _, err := repo.CreateTask(ctx, repository.CreateTaskOptions{ProjectID: "p1", Title: "x"}); !errors.Is(err, repository.ErrFailedToCreate) {
		t.Errorf("expected ErrFailedToCreate, got %v", err)
	}
	err := repo.UpdateTaskAnchor(ctx, repository.UpdateTaskAnchorOptions{ProjectID: "p1", TaskID: "1"})
	if !errors.Is(err, repository.ErrFailedToUpdate) {
		t.Errorf("expected ErrFailedToUpdate, got %v", err)
	}
	var apiErr *homestead.APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusBadGateway {
		t.Errorf("expected wrapped APIError, got %v", err)
	}
	if err := repo.DeleteTask(ctx, repository.DeleteTaskOptions{ProjectID: "p1", TaskID: "1"}); !errors.Is(err, repository.ErrFailedToDelete) {
		t.Errorf("expected ErrFailedToDelete, got %v", err)
	}
}

func TestRepositoryCreateTask(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": 42, "title": "Shear sheep", "task_datetime": "2024-03-01T09:00:00", "recurrence": "yearly"}`))
	})
	repo := homestead.New(client, time.UTC, pkgLog.NewNop())

	def, err := repo.CreateTask(context.Background(), repository.CreateTaskOptions{
		ProjectID:  "p1",
		Title:      "Shear sheep",
		Anchor:     time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
		Recurrence: model.RecurrenceYearly,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if def.ID != "42" || def.ProjectID != "p1" || def.Recurrence != model.RecurrenceYearly {
		t.Errorf("unexpected definition: %+v", def)
	}
}
