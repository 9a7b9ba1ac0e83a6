package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"homestead-calendar/internal/calendar"
	pkgLog "homestead-calendar/pkg/log"
)

const defaultJobTimeout = 30 * time.Second

// Scheduler raises the calendar refresh signal on a cron schedule.
type Scheduler struct {
	cron       *cron.Cron
	refresher  calendar.Refresher
	l          pkgLog.Logger
	jobTimeout time.Duration
}

// New creates a scheduler evaluating specs in loc. A refresh that is still
// running when the next tick fires is skipped.
func New(refresher calendar.Refresher, loc *time.Location, l pkgLog.Logger) *Scheduler {
	if loc == nil {
		loc = time.Local
	}
	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		refresher:  refresher,
		l:          l,
		jobTimeout: defaultJobTimeout,
	}
}

// ScheduleRefresh registers the periodic refresh. spec is a five-field cron
// expression or a descriptor such as "@every 5m".
func (s *Scheduler) ScheduleRefresh(spec string) (cron.EntryID, error) {
	id, err := s.cron.AddFunc(spec, func() { s.RunOnce(context.Background()) })
	if err != nil {
		return 0, fmt.Errorf("invalid refresh schedule %q: %w", spec, err)
	}
	return id, nil
}

// RunOnce performs a single bounded refresh.
func (s *Scheduler) RunOnce(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, s.jobTimeout)
	defer cancel()

	snap, err := s.refresher.Refresh(ctx)
	switch {
	case err == nil:
		s.l.Debugf(ctx, "scheduler: refreshed %s (%d occurrences)", snap.Key, snap.Buckets.Count())
	case errors.Is(err, calendar.ErrStaleWindowResponse):
		s.l.Debugf(ctx, "scheduler: refresh superseded by a newer navigation")
	default:
		s.l.Warnf(ctx, "scheduler: refresh failed: %v", err)
	}
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts scheduling and waits for a running refresh to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// Entries returns the number of registered jobs.
func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}
