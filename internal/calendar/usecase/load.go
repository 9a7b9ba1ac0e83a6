package usecase

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"homestead-calendar/internal/calendar"
	"homestead-calendar/internal/model"
	"homestead-calendar/internal/task/repository"
)

// LoadWindow reads every project in scope concurrently and merges the
// results in scope order, followed by overlay definitions. Any project
// failure fails the whole load; overlay failures are logged and skipped.
func (uc *implUseCase) LoadWindow(ctx context.Context, scope model.ProjectScope, w model.QueryWindow) ([]model.TaskDefinition, error) {
	projectResults := make([][]model.TaskDefinition, len(scope.ProjectIDs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.cfg.MaxConcurrency)
	for i, projectID := range scope.ProjectIDs {
		g.Go(func() error {
			defs, err := uc.repo.ListTasks(gctx, repository.ListTasksOptions{
				ProjectID: projectID,
				Window:    w,
			})
			if err != nil {
				return fmt.Errorf("project %s: %w", projectID, err)
			}
			projectResults[i] = defs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		uc.l.Errorf(ctx, "calendar.usecase.LoadWindow: %v", err)
		return []model.TaskDefinition{}, fmt.Errorf("%w: %w", calendar.ErrFetchFailed, err)
	}

	overlayResults := uc.loadOverlays(ctx, w)

	var defs []model.TaskDefinition
	for _, r := range projectResults {
		defs = append(defs, r...)
	}
	for _, r := range overlayResults {
		defs = append(defs, r...)
	}
	if defs == nil {
		defs = []model.TaskDefinition{}
	}
	return defs, nil
}

func (uc *implUseCase) loadOverlays(ctx context.Context, w model.QueryWindow) [][]model.TaskDefinition {
	results := make([][]model.TaskDefinition, len(uc.overlays))
	if len(uc.overlays) == 0 {
		return results
	}

	var g errgroup.Group
	for i, src := range uc.overlays {
		g.Go(func() error {
			defs, err := src.ListDefinitions(ctx, w)
			if err != nil {
				uc.l.Warnf(ctx, "calendar.usecase.loadOverlays: %s: %v", src.Name(), err)
				return nil
			}
			for j := range defs {
				defs[j].ReadOnly = true
			}
			results[i] = defs
			return nil
		})
	}
	g.Wait()
	return results
}
