package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"homestead-calendar/internal/calendar"
	"homestead-calendar/internal/model"
	"homestead-calendar/internal/reschedule"
	"homestead-calendar/internal/task/repository"
)

type gesture struct {
	uc  *implUseCase
	def model.TaskDefinition
	m   reschedule.Machine
}

// DragStart begins a gesture on def.
func (uc *implUseCase) DragStart(def model.TaskDefinition) (reschedule.Gesture, error) {
	g := &gesture{uc: uc, def: def}
	if err := g.m.Transition(reschedule.StateIdle, reschedule.StateDragging); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *gesture) State() reschedule.State {
	return g.m.State()
}

// Drop validates the target and, when the task may move, submits the new
// anchor. Invalid drops make no network calls.
func (g *gesture) Drop(ctx context.Context, target reschedule.Target) (reschedule.Result, error) {
	res := reschedule.Result{TaskID: g.def.ID, PreviousAnchor: g.def.Anchor}

	anchor, reason := g.validate(target)
	if reason != nil {
		if err := g.m.Transition(reschedule.StateDragging, reschedule.StateDroppedInvalid); err != nil {
			return res, err
		}
		if err := g.m.Transition(reschedule.StateDroppedInvalid, reschedule.StateRejected); err != nil {
			return res, err
		}
		res.State = reschedule.StateRejected
		g.uc.l.Infof(ctx, "reschedule.usecase.Drop: rejected task %s: %v", g.def.ID, reason)
		return res, reason
	}

	if err := g.m.Transition(reschedule.StateDragging, reschedule.StateDroppedValid); err != nil {
		return res, err
	}
	if err := g.m.Transition(reschedule.StateDroppedValid, reschedule.StateSubmitting); err != nil {
		return res, err
	}
	res.Anchor = anchor

	updateErr := g.uc.repo.UpdateTaskAnchor(ctx, repository.UpdateTaskAnchorOptions{
		ProjectID: g.def.ProjectID,
		TaskID:    g.def.ID,
		Anchor:    anchor,
	})

	next := reschedule.StateCommitted
	if updateErr != nil {
		next = reschedule.StateFailed
	}
	if err := g.m.Transition(reschedule.StateSubmitting, next); err != nil {
		return res, err
	}
	res.State = next

	g.uc.refresh(ctx)

	if updateErr != nil {
		g.uc.l.Errorf(ctx, "reschedule.usecase.Drop: task %s: %v", g.def.ID, updateErr)
		return res, fmt.Errorf("%w: %w", reschedule.ErrRescheduleFailed, updateErr)
	}
	g.uc.l.Infof(ctx, "reschedule.usecase.Drop: task %s moved to %s", g.def.ID, anchor.Format("2006-01-02T15:04:05"))
	return res, nil
}

// DragEnd closes the gesture. It is valid while dragging (a cancelled drag)
// or after a drop has finished.
func (g *gesture) DragEnd() error {
	cur := g.m.State()
	if cur != reschedule.StateDragging && !reschedule.IsTerminal(cur) {
		return fmt.Errorf("%w: drag end while %s", reschedule.ErrInvalidTransition, cur)
	}
	return g.m.Transition(cur, reschedule.StateIdle)
}

func (g *gesture) validate(target reschedule.Target) (anchor time.Time, err error) {
	switch {
	case g.def.ReadOnly:
		return anchor, reschedule.ErrReadOnlyTask
	case g.def.IsRecurring():
		return anchor, reschedule.ErrRecurringTaskNotMovable
	}
	return reschedule.NewAnchor(g.def.Anchor, target)
}

// refresh raises the calendar refresh signal. A superseded refresh is not
// an error here.
func (uc *implUseCase) refresh(ctx context.Context) {
	if uc.cal == nil {
		return
	}
	if _, err := uc.cal.Refresh(ctx); err != nil && !errors.Is(err, calendar.ErrStaleWindowResponse) {
		uc.l.Warnf(ctx, "reschedule.usecase.refresh: %v", err)
	}
}
