package usecase

import (
	"context"
	"fmt"

	"homestead-calendar/internal/calendar"
	"homestead-calendar/internal/model"
)

// Navigate loads the window for input and publishes it, unless a newer
// navigation started in the meantime.
func (uc *implUseCase) Navigate(ctx context.Context, input calendar.NavigateInput) (calendar.Snapshot, error) {
	input, err := uc.normalize(input)
	if err != nil {
		return calendar.Snapshot{}, err
	}

	uc.mu.Lock()
	gen := uc.gen.Add(1)
	uc.requested = &input
	uc.mu.Unlock()

	return uc.loadAndPublish(ctx, gen, input)
}

func (uc *implUseCase) loadAndPublish(ctx context.Context, gen uint64, input calendar.NavigateInput) (calendar.Snapshot, error) {
	seq := uc.seq.Add(1)
	w := ComputeWindow(input.View, input.Reference, uc.cfg.WeekStart, uc.cfg.Location)
	key := snapshotKey(w, input.Scope)

	defs, loadErr := uc.LoadWindow(ctx, input.Scope, w)

	snap := calendar.Snapshot{
		Key:         key,
		View:        input.View,
		Reference:   input.Reference,
		Window:      w,
		Scope:       input.Scope,
		Definitions: defs,
		Buckets:     BucketByDate(defs, w),
		LoadedAt:    uc.now(),
	}
	if loadErr != nil {
		if cached, ok := uc.cache.Get(key); ok {
			snap.Definitions = cached.Definitions
			snap.Buckets = cached.Buckets
			snap.LoadedAt = cached.LoadedAt
			snap.Stale = true
		}
	}

	current, outcome := uc.publish(gen, seq, snap)
	switch outcome {
	case outcomeSuperseded:
		uc.l.Debugf(ctx, "calendar.usecase.Navigate: discarding generation %d for %s", gen, key)
		return calendar.Snapshot{}, calendar.ErrStaleWindowResponse
	case outcomeOvertaken:
		// A later load of the same window already published.
		return current, nil
	}
	if loadErr != nil {
		return snap, loadErr
	}

	uc.cache.Add(key, snap)
	return snap, nil
}

// Load builds the snapshot for input without publishing or caching it.
func (uc *implUseCase) Load(ctx context.Context, input calendar.NavigateInput) (calendar.Snapshot, error) {
	input, err := uc.normalize(input)
	if err != nil {
		return calendar.Snapshot{}, err
	}

	w := ComputeWindow(input.View, input.Reference, uc.cfg.WeekStart, uc.cfg.Location)
	defs, err := uc.LoadWindow(ctx, input.Scope, w)
	if err != nil {
		return calendar.Snapshot{}, err
	}
	return calendar.Snapshot{
		Key:         snapshotKey(w, input.Scope),
		View:        input.View,
		Reference:   input.Reference,
		Window:      w,
		Scope:       input.Scope,
		Definitions: defs,
		Buckets:     BucketByDate(defs, w),
		LoadedAt:    uc.now(),
	}, nil
}

// Refresh reloads the window of the most recent navigation request. It
// joins that request's generation, so it never supersedes a navigation
// that is still loading.
func (uc *implUseCase) Refresh(ctx context.Context) (calendar.Snapshot, error) {
	uc.mu.Lock()
	if uc.requested == nil {
		uc.mu.Unlock()
		return uc.Navigate(ctx, calendar.NavigateInput{})
	}
	gen, input := uc.gen.Load(), *uc.requested
	uc.mu.Unlock()

	return uc.loadAndPublish(ctx, gen, input)
}

// Current returns the published snapshot without locking.
func (uc *implUseCase) Current() calendar.Snapshot {
	if snap := uc.current.Load(); snap != nil {
		return *snap
	}
	return calendar.Snapshot{}
}

// Definition looks up a task definition in the published snapshot.
func (uc *implUseCase) Definition(taskID string) (model.TaskDefinition, bool) {
	return uc.Current().Definition(taskID)
}

// Projects returns the configured projects.
func (uc *implUseCase) Projects() []model.Project {
	return append([]model.Project(nil), uc.cfg.Projects...)
}

type publishOutcome int

const (
	outcomePublished publishOutcome = iota
	// a newer navigation owns the calendar
	outcomeSuperseded
	// a later load of the same generation has already published
	outcomeOvertaken
)

func (uc *implUseCase) publish(gen, seq uint64, snap calendar.Snapshot) (calendar.Snapshot, publishOutcome) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if gen != uc.gen.Load() {
		return calendar.Snapshot{}, outcomeSuperseded
	}
	if seq < uc.publishedSeq {
		return *uc.current.Load(), outcomeOvertaken
	}
	uc.current.Store(&snap)
	uc.publishedSeq = seq
	return snap, outcomePublished
}

func (uc *implUseCase) normalize(input calendar.NavigateInput) (calendar.NavigateInput, error) {
	if input.View == "" {
		input.View = uc.cfg.DefaultView
	}
	view, err := model.ParseView(string(input.View))
	if err != nil {
		return input, err
	}
	input.View = view

	if input.Reference.IsZero() {
		input.Reference = model.DateOf(uc.now().In(uc.cfg.Location))
	}

	if input.Scope.Empty() {
		ids := make([]string, 0, len(uc.cfg.Projects))
		for _, p := range uc.cfg.Projects {
			ids = append(ids, p.ID)
		}
		input.Scope = model.ProjectScope{ProjectIDs: ids}
	} else if err := uc.checkScope(input.Scope); err != nil {
		return input, err
	}
	return input, nil
}

func (uc *implUseCase) checkScope(scope model.ProjectScope) error {
	known := make(map[string]bool, len(uc.cfg.Projects))
	for _, p := range uc.cfg.Projects {
		known[p.ID] = true
	}
	for _, id := range scope.ProjectIDs {
		if !known[id] {
			return fmt.Errorf("%w: %q", calendar.ErrUnknownProject, id)
		}
	}
	return nil
}

func snapshotKey(w model.QueryWindow, scope model.ProjectScope) string {
	return w.Key() + "|" + scope.Key()
}
