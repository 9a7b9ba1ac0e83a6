package model

import (
	"time"
)

// Definition sources.
const (
	SourceProject = "project"
	SourceGoogle  = "google"
)

// TaskDefinition is the authoritative record for one schedulable item, as
// owned by the homestead backend.
type TaskDefinition struct {
	ID          string
	ProjectID   string
	Title       string
	Description string
	Anchor      time.Time // first/defining occurrence; date + time-of-day
	AllDay      bool
	Recurrence  Recurrence
	Source      string // SourceProject or SourceGoogle
	ReadOnly    bool   // overlay definitions can never be rescheduled
}

// IsRecurring reports whether the definition recurs.
func (t TaskDefinition) IsRecurring() bool {
	return t.Recurrence != RecurrenceNone
}

// TimeOfDay is the offset of the anchor from its own midnight.
func (t TaskDefinition) TimeOfDay() time.Duration {
	return TimeOfDay(t.Anchor)
}

// Occurrence is a projection of a TaskDefinition onto one calendar date. It
// is derived on demand and never stored.
type Occurrence struct {
	TaskID    string
	ProjectID string
	Title     string
	Date      Date
	TimeOfDay time.Duration // zero for all-day occurrences
	AllDay    bool
	Recurring bool
	ReadOnly  bool
	Start     time.Time // Date + TimeOfDay in the anchor's location
}

// TimeOfDay returns the wall-clock offset of t from its own midnight.
func TimeOfDay(t time.Time) time.Duration {
	h, m, s := t.Clock()
	return time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second +
		time.Duration(t.Nanosecond())
}
