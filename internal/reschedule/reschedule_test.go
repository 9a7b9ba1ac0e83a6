package reschedule_test

import (
	"errors"
	"testing"
	"time"

	"homestead-calendar/internal/model"
	"homestead-calendar/internal/reschedule"
)

func TestMachineTransitions(t *testing.T) {
	paths := [][]reschedule.State{
		{reschedule.StateDragging, reschedule.StateDroppedValid, reschedule.StateSubmitting, reschedule.StateCommitted, reschedule.StateIdle},
		{reschedule.StateDragging, reschedule.StateDroppedValid, reschedule.StateSubmitting, reschedule.StateFailed, reschedule.StateIdle},
		{reschedule.StateDragging, reschedule.StateDroppedInvalid, reschedule.StateRejected, reschedule.StateIdle},
		{reschedule.StateDragging, reschedule.StateIdle},
	}
	for _, path := range paths {
		var m reschedule.Machine
		from := reschedule.StateIdle
		for _, to := range path {
			if err := m.Transition(from, to); err != nil {
				t.Fatalf("%s -> %s: %v", from, to, err)
			}
			from = to
		}
		if m.State() != reschedule.StateIdle {
			t.Errorf("path %v must end idle, got %s", path, m.State())
		}
	}
}

func TestMachineRejectsIllegalTransitions(t *testing.T) {
	tests := []struct {
		name string
		path []reschedule.State
		from reschedule.State
		to   reschedule.State
	}{
		{name: "drop without drag", from: reschedule.StateIdle, to: reschedule.StateDroppedValid},
		{name: "submit invalid drop", path: []reschedule.State{reschedule.StateDragging, reschedule.StateDroppedInvalid}, from: reschedule.StateDroppedInvalid, to: reschedule.StateSubmitting},
		{name: "cancel submission", path: []reschedule.State{reschedule.StateDragging, reschedule.StateDroppedValid, reschedule.StateSubmitting}, from: reschedule.StateSubmitting, to: reschedule.StateIdle},
		{name: "wrong expected state", path: []reschedule.State{reschedule.StateDragging}, from: reschedule.StateIdle, to: reschedule.StateDragging},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m reschedule.Machine
			from := reschedule.StateIdle
			for _, to := range tt.path {
				if err := m.Transition(from, to); err != nil {
					t.Fatalf("setup %s -> %s: %v", from, to, err)
				}
				from = to
			}
			before := m.State()
			if err := m.Transition(tt.from, tt.to); !errors.Is(err, reschedule.ErrInvalidTransition) {
				t.Fatalf("expected ErrInvalidTransition, got %v", err)
			}
			if m.State() != before {
				t.Errorf("rejected transition changed state to %s", m.State())
			}
		})
	}
}

func TestIsTerminal(t *testing.T) {
	for _, s := range []reschedule.State{reschedule.StateCommitted, reschedule.StateFailed, reschedule.StateRejected} {
		if !reschedule.IsTerminal(s) {
			t.Errorf("%s should be terminal", s)
		}
	}
	if reschedule.IsTerminal(reschedule.StateSubmitting) {
		t.Errorf("submitting is not terminal")
	}
}

func TestNewAnchor(t *testing.T) {
	loc := time.FixedZone("farm", -6*3600)
	orig := time.Date(2024, 3, 1, 14, 30, 15, 0, loc)
	target, _ := model.ParseDate("2024-03-05")
	hour := func(h int) *int { return &h }

	tests := []struct {
		name    string
		target  reschedule.Target
		want    time.Time
		wantErr bool
	}{
		{name: "day cell keeps time of day", target: reschedule.Target{Date: target}, want: time.Date(2024, 3, 5, 14, 30, 15, 0, loc)},
		{name: "hour slot", target: reschedule.Target{Date: target, Hour: hour(9)}, want: time.Date(2024, 3, 5, 9, 0, 0, 0, loc)},
		{name: "midnight slot", target: reschedule.Target{Date: target, Hour: hour(0)}, want: time.Date(2024, 3, 5, 0, 0, 0, 0, loc)},
		{name: "hour out of range", target: reschedule.Target{Date: target, Hour: hour(24)}, wantErr: true},
		{name: "missing date", target: reschedule.Target{}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reschedule.NewAnchor(orig, tt.target)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, reschedule.ErrInvalidTarget) {
					t.Errorf("expected ErrInvalidTarget, got %v", err)
				}
				return
			}
			if !got.Equal(tt.want) || got.Location() != loc {
				t.Errorf("NewAnchor() = %v, want %v", got, tt.want)
			}
		})
	}
}
