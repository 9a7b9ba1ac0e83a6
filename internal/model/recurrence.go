package model

import (
	"fmt"
	"strings"
)

// Recurrence is the closed set of repeat rules a task may carry.
type Recurrence uint8

const (
	RecurrenceNone Recurrence = iota
	RecurrenceDaily
	RecurrenceWeekly
	RecurrenceMonthly
	RecurrenceYearly
)

// ParseRecurrence converts the wire form into a Recurrence.
// Empty and "none" both mean a one-off task.
func ParseRecurrence(s string) (Recurrence, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "null":
		return RecurrenceNone, nil
	case "daily":
		return RecurrenceDaily, nil
	case "weekly":
		return RecurrenceWeekly, nil
	case "monthly":
		return RecurrenceMonthly, nil
	case "yearly":
		return RecurrenceYearly, nil
	default:
		return RecurrenceNone, fmt.Errorf("%w: %q", ErrInvalidRecurrence, s)
	}
}

// String returns the wire form of r.
func (r Recurrence) String() string {
	switch r {
	case RecurrenceNone:
		return "none"
	case RecurrenceDaily:
		return "daily"
	case RecurrenceWeekly:
		return "weekly"
	case RecurrenceMonthly:
		return "monthly"
	case RecurrenceYearly:
		return "yearly"
	default:
		return fmt.Sprintf("recurrence(%d)", uint8(r))
	}
}

// Valid reports whether r is one of the declared variants.
func (r Recurrence) Valid() bool {
	return r <= RecurrenceYearly
}
