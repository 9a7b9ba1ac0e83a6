package usecase

import (
	"context"
	"fmt"

	"homestead-calendar/internal/model"
	"homestead-calendar/internal/reschedule"
)

// Reschedule runs DragStart, Drop and DragEnd for def.
func (uc *implUseCase) Reschedule(ctx context.Context, def model.TaskDefinition, target reschedule.Target) (reschedule.Result, error) {
	g, err := uc.DragStart(def)
	if err != nil {
		return reschedule.Result{}, err
	}

	res, dropErr := g.Drop(ctx, target)
	if err := g.DragEnd(); err != nil {
		uc.l.Errorf(ctx, "reschedule.usecase.Reschedule: %v", err)
	}
	return res, dropErr
}

// RescheduleTask looks taskID up in the published calendar snapshot and
// reschedules it.
func (uc *implUseCase) RescheduleTask(ctx context.Context, taskID string, target reschedule.Target) (reschedule.Result, error) {
	def, ok := uc.cal.Definition(taskID)
	if !ok {
		return reschedule.Result{TaskID: taskID}, fmt.Errorf("%w: %s", reschedule.ErrUnknownTask, taskID)
	}
	return uc.Reschedule(ctx, def, target)
}
