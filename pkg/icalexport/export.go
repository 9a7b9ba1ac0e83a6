// Package icalexport renders task definitions as an iCalendar feed.
package icalexport

import (
	"fmt"
	"io"
	"time"

	ical "github.com/arran4/golang-ical"

	"homestead-calendar/internal/model"
	"homestead-calendar/internal/occurrence"
)

const (
	defaultProductID = "-//homestead-calendar//EN"
	defaultDuration  = time.Hour
)

// Options tunes the exported calendar.
type Options struct {
	Name      string
	ProductID string
	// Duration is the length of timed events; the backend stores no end.
	Duration time.Duration
	Now      time.Time
}

// Build returns a VCALENDAR with one VEVENT per definition. Recurring
// definitions carry an RRULE instead of being expanded.
func Build(defs []model.TaskDefinition, opts Options) *ical.Calendar {
	if opts.ProductID == "" {
		opts.ProductID = defaultProductID
	}
	if opts.Duration <= 0 {
		opts.Duration = defaultDuration
	}
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(opts.ProductID)
	if opts.Name != "" {
		cal.SetXWRCalName(opts.Name)
	}

	for _, def := range defs {
		event := cal.AddEvent(UID(def))
		event.SetDtStampTime(opts.Now)
		event.SetSummary(def.Title)
		if def.Description != "" {
			event.SetDescription(def.Description)
		}

		if def.AllDay {
			day := model.DateOf(def.Anchor).In(def.Anchor.Location())
			event.SetAllDayStartAt(day)
			event.SetAllDayEndAt(day.AddDate(0, 0, 1))
		} else {
			event.SetStartAt(def.Anchor)
			event.SetEndAt(def.Anchor.Add(opts.Duration))
		}

		if rule := occurrence.RRule(def); rule != "" {
			event.AddProperty(ical.ComponentPropertyRrule, rule)
		}
	}
	return cal
}

// Write serializes Build's calendar to w.
func Write(w io.Writer, defs []model.TaskDefinition, opts Options) error {
	if _, err := io.WriteString(w, Build(defs, opts).Serialize()); err != nil {
		return fmt.Errorf("failed to write calendar: %w", err)
	}
	return nil
}

// UID is the stable iCalendar identifier of a definition.
func UID(def model.TaskDefinition) string {
	source := def.Source
	if source == "" {
		source = model.SourceProject
	}
	return fmt.Sprintf("%s-%s-%s@homestead-calendar", source, def.ProjectID, def.ID)
}
