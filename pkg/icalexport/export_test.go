package icalexport_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	ical "github.com/arran4/golang-ical"

	"homestead-calendar/internal/model"
	"homestead-calendar/pkg/icalexport"
)

func TestWrite(t *testing.T) {
	defs := []model.TaskDefinition{
		{ID: "1", ProjectID: "p1", Title: "Feed goats", Anchor: time.Date(2024, 1, 3, 7, 0, 0, 0, time.UTC), Recurrence: model.RecurrenceWeekly},
		{ID: "2", ProjectID: "p1", Title: "Harvest", Description: "North field", Anchor: time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC), AllDay: true},
	}

	var buf bytes.Buffer
	err := icalexport.Write(&buf, defs, icalexport.Options{
		Name: "Barn",
		Now:  time.Date(2024, 2, 15, 8, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cal, err := ical.ParseCalendar(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("exported calendar does not parse: %v", err)
	}
	events := cal.Events()
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}

	byUID := make(map[string]*ical.VEvent)
	for _, ev := range events {
		byUID[ev.GetProperty(ical.ComponentPropertyUniqueId).Value] = ev
	}

	goats := byUID[icalexport.UID(defs[0])]
	if goats == nil {
		t.Fatalf("missing event for %s", icalexport.UID(defs[0]))
	}
	if p := goats.GetProperty(ical.ComponentPropertyRrule); p == nil || p.Value != "FREQ=WEEKLY" {
		t.Errorf("expected weekly RRULE, got %+v", p)
	}
	start, err := goats.GetStartAt()
	if err != nil || !start.Equal(defs[0].Anchor) {
		t.Errorf("DTSTART = %v, %v", start, err)
	}

	harvest := byUID[icalexport.UID(defs[1])]
	if harvest == nil {
		t.Fatalf("missing event for %s", icalexport.UID(defs[1]))
	}
	if p := harvest.GetProperty(ical.ComponentPropertyRrule); p != nil {
		t.Errorf("one-off events must not carry an RRULE")
	}
	if p := harvest.GetProperty(ical.ComponentPropertyDtStart); p == nil || strings.Contains(p.Value, "T") {
		t.Errorf("all-day DTSTART should be a date value, got %+v", p)
	}
	if p := harvest.GetProperty(ical.ComponentPropertyDescription); p == nil || p.Value != "North field" {
		t.Errorf("unexpected description %+v", p)
	}
}

func TestUIDIsStablePerSource(t *testing.T) {
	project := model.TaskDefinition{ID: "e1", ProjectID: "p1"}
	overlay := model.TaskDefinition{ID: "e1", Source: model.SourceGoogle}
	if icalexport.UID(project) == icalexport.UID(overlay) {
		t.Errorf("UIDs of different sources must differ")
	}
	if icalexport.UID(project) != icalexport.UID(project) {
		t.Errorf("UID must be deterministic")
	}
}
