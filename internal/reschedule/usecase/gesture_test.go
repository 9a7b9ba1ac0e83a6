package usecase

import (
	"context"
	"errors"
	"testing"

	"homestead-calendar/internal/calendar"
	"homestead-calendar/internal/model"
	"homestead-calendar/internal/reschedule"
)

func TestReschedule(t *testing.T) {
	hour := func(h int) *int { return &h }
	oneOff := model.TaskDefinition{ID: "t1", ProjectID: "p1", Title: "Vet visit", Anchor: at("2024-03-01T14:30:00")}

	tests := []struct {
		name        string
		def         model.TaskDefinition
		target      reschedule.Target
		updateErr   error
		wantErr     error
		wantState   reschedule.State
		wantAnchor  string
		wantUpdates int
		wantRefresh int
	}{
		{
			name:        "month view keeps time of day",
			def:         oneOff,
			target:      reschedule.Target{Date: date("2024-03-05")},
			wantState:   reschedule.StateCommitted,
			wantAnchor:  "2024-03-05T14:30:00",
			wantUpdates: 1,
			wantRefresh: 1,
		},
		{
			name:        "hour slot sets the hour",
			def:         oneOff,
			target:      reschedule.Target{Date: date("2024-03-05"), Hour: hour(9)},
			wantState:   reschedule.StateCommitted,
			wantAnchor:  "2024-03-05T09:00:00",
			wantUpdates: 1,
			wantRefresh: 1,
		},
		{
			name:      "weekly task is not movable",
			def:       model.TaskDefinition{ID: "t2", ProjectID: "p1", Title: "Feed", Anchor: at("2024-03-06T07:00:00"), Recurrence: model.RecurrenceWeekly},
			target:    reschedule.Target{Date: date("2024-03-07")},
			wantErr:   reschedule.ErrRecurringTaskNotMovable,
			wantState: reschedule.StateRejected,
		},
		{
			name:      "overlay task is read-only",
			def:       model.TaskDefinition{ID: "google:e1", Title: "Dentist", Anchor: at("2024-03-06T09:00:00"), ReadOnly: true},
			target:    reschedule.Target{Date: date("2024-03-07")},
			wantErr:   reschedule.ErrReadOnlyTask,
			wantState: reschedule.StateRejected,
		},
		{
			name:      "invalid hour is rejected",
			def:       oneOff,
			target:    reschedule.Target{Date: date("2024-03-05"), Hour: hour(25)},
			wantErr:   reschedule.ErrInvalidTarget,
			wantState: reschedule.StateRejected,
		},
		{
			name:        "backend failure still refreshes",
			def:         oneOff,
			target:      reschedule.Target{Date: date("2024-03-05")},
			updateErr:   errors.New("500 internal"),
			wantErr:     reschedule.ErrRescheduleFailed,
			wantState:   reschedule.StateFailed,
			wantAnchor:  "2024-03-05T14:30:00",
			wantUpdates: 1,
			wantRefresh: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepo{updateErr: tt.updateErr}
			cal := &mockCalendar{}
			uc := New(&mockLogger{}, repo, cal)

			res, err := uc.Reschedule(context.Background(), tt.def, tt.target)
			if tt.wantErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if res.State != tt.wantState {
				t.Errorf("state = %s, want %s", res.State, tt.wantState)
			}
			if len(repo.updates) != tt.wantUpdates {
				t.Fatalf("expected %d update calls, got %d", tt.wantUpdates, len(repo.updates))
			}
			if cal.refreshes != tt.wantRefresh {
				t.Errorf("expected %d refreshes, got %d", tt.wantRefresh, cal.refreshes)
			}
			if tt.wantAnchor != "" {
				got := repo.updates[0]
				if got.Anchor.Format("2006-01-02T15:04:05") != tt.wantAnchor {
					t.Errorf("anchor = %v, want %s", got.Anchor, tt.wantAnchor)
				}
				if got.ProjectID != "p1" || got.TaskID != tt.def.ID {
					t.Errorf("update addressed %s/%s", got.ProjectID, got.TaskID)
				}
				if !res.Anchor.Equal(got.Anchor) || !res.PreviousAnchor.Equal(tt.def.Anchor) {
					t.Errorf("unexpected result anchors: %+v", res)
				}
			}
		})
	}
}

func TestGestureLifecycle(t *testing.T) {
	uc := New(&mockLogger{}, &mockRepo{}, &mockCalendar{})
	def := model.TaskDefinition{ID: "t1", ProjectID: "p1", Title: "Vet", Anchor: at("2024-03-01T14:30:00")}
	ctx := context.Background()

	t.Run("cancelled drag", func(t *testing.T) {
		g, err := uc.DragStart(def)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if g.State() != reschedule.StateDragging {
			t.Fatalf("state = %s", g.State())
		}
		if err := g.DragEnd(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if g.State() != reschedule.StateIdle {
			t.Errorf("state = %s, want idle", g.State())
		}
		if _, err := g.Drop(ctx, reschedule.Target{Date: date("2024-03-05")}); !errors.Is(err, reschedule.ErrInvalidTransition) {
			t.Errorf("drop after drag end: expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("double drop", func(t *testing.T) {
		g, _ := uc.DragStart(def)
		if _, err := g.Drop(ctx, reschedule.Target{Date: date("2024-03-05")}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := g.Drop(ctx, reschedule.Target{Date: date("2024-03-06")}); !errors.Is(err, reschedule.ErrInvalidTransition) {
			t.Errorf("second drop: expected ErrInvalidTransition, got %v", err)
		}
		if err := g.DragEnd(); err != nil || g.State() != reschedule.StateIdle {
			t.Errorf("DragEnd() = %v, state %s", err, g.State())
		}
		if err := g.DragEnd(); !errors.Is(err, reschedule.ErrInvalidTransition) {
			t.Errorf("second drag end: expected ErrInvalidTransition, got %v", err)
		}
	})
}

func TestRescheduleTask(t *testing.T) {
	repo := &mockRepo{}
	cal := &mockCalendar{
		defs:       map[string]model.TaskDefinition{"t1": {ID: "t1", ProjectID: "p1", Title: "Vet", Anchor: at("2024-03-01T14:30:00")}},
		refreshErr: calendar.ErrStaleWindowResponse,
	}
	uc := New(&mockLogger{}, repo, cal)

	res, err := uc.RescheduleTask(context.Background(), "t1", reschedule.Target{Date: date("2024-03-05")})
	if err != nil {
		t.Fatalf("a superseded refresh must not fail the reschedule: %v", err)
	}
	if res.State != reschedule.StateCommitted || len(repo.updates) != 1 {
		t.Errorf("unexpected result %+v with %d updates", res, len(repo.updates))
	}

	_, err = uc.RescheduleTask(context.Background(), "missing", reschedule.Target{Date: date("2024-03-05")})
	if !errors.Is(err, reschedule.ErrUnknownTask) {
		t.Errorf("expected ErrUnknownTask, got %v", err)
	}
	if len(repo.updates) != 1 {
		t.Errorf("unknown task must not reach the backend")
	}
}
