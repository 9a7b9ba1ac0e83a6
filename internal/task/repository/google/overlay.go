package google

import (
	"context"
	"fmt"
	"time"

	"homestead-calendar/internal/model"
	"homestead-calendar/internal/task/repository"
	"homestead-calendar/pkg/gcalendar"
	pkgLog "homestead-calendar/pkg/log"
)

// IDPrefix namespaces overlay task IDs away from project task IDs.
const IDPrefix = "google:"

// EventLister is the part of the Google Calendar client the overlay needs.
type EventLister interface {
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}

type implOverlay struct {
	client     EventLister
	calendarID string
	loc        *time.Location
	l          pkgLog.Logger
}

// New creates a read-only overlay over one Google calendar.
func New(client EventLister, calendarID string, loc *time.Location, l pkgLog.Logger) repository.OverlaySource {
	if loc == nil {
		loc = time.Local
	}
	return &implOverlay{
		client:     client,
		calendarID: calendarID,
		loc:        loc,
		l:          l,
	}
}

func (o *implOverlay) Name() string {
	return "google:" + o.calendarID
}

// ListDefinitions maps the events of w to one-off, read-only definitions.
func (o *implOverlay) ListDefinitions(ctx context.Context, w model.QueryWindow) ([]model.TaskDefinition, error) {
	events, err := o.client.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: o.calendarID,
		TimeMin:    w.Start,
		TimeMax:    w.End,
		Location:   o.loc,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", repository.ErrFailedToList, err)
	}

	defs := make([]model.TaskDefinition, 0, len(events))
	for _, ev := range events {
		if ev.ID == "" {
			continue
		}
		title := ev.Summary
		if title == "" {
			title = "(busy)"
		}
		def := model.TaskDefinition{
			ID:          IDPrefix + ev.ID,
			Title:       title,
			Description: ev.Description,
			Anchor:      ev.StartTime,
			AllDay:      ev.AllDay,
			Recurrence:  model.RecurrenceNone,
			Source:      model.SourceGoogle,
			ReadOnly:    true,
		}
		if !ev.AllDay {
			defs = append(defs, def)
			continue
		}
		defs = append(defs, allDaySpan(def, ev, w)...)
	}
	o.l.Debugf(ctx, "google overlay: %d events for %s", len(defs), w.Key())
	return defs, nil
}

// allDaySpan emits one definition per window date an all-day event covers.
// Google all-day ends are exclusive; a missing end covers the start date only.
func allDaySpan(def model.TaskDefinition, ev gcalendar.Event, w model.QueryWindow) []model.TaskDefinition {
	start := model.DateOf(ev.StartTime)
	last := start
	if end := model.DateOf(ev.EndTime); !ev.EndTime.IsZero() && end.After(start) {
		last = end.AddDays(-1)
	}

	var defs []model.TaskDefinition
	for d := start; !d.After(last); d = d.AddDays(1) {
		if !w.Contains(d) {
			continue
		}
		day := def
		if d != start {
			day.ID = def.ID + "@" + d.String()
			day.Anchor = d.In(ev.StartTime.Location())
		}
		defs = append(defs, day)
	}
	if len(defs) == 0 {
		// Outside the window; expansion drops it.
		defs = append(defs, def)
	}
	return defs
}
