package model

import (
	"fmt"
	"strings"
	"time"
)

// View is the calendar presentation that determines the visible window.
type View string

const (
	ViewMonth View = "month"
	ViewWeek  View = "week"
	ViewDay   View = "day"
)

// ParseView validates a view name. Empty defaults to month.
func ParseView(s string) (View, error) {
	switch View(strings.ToLower(strings.TrimSpace(s))) {
	case "", ViewMonth:
		return ViewMonth, nil
	case ViewWeek:
		return ViewWeek, nil
	case ViewDay:
		return ViewDay, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidView, s)
	}
}

// QueryWindow is the contiguous range of whole days visible in a view.
// Start is 00:00:00 of the first day, End is 23:59:59 of the last day.
type QueryWindow struct {
	Start time.Time
	End   time.Time
}

// NewQueryWindow builds a window covering the dates first..last inclusive.
func NewQueryWindow(first, last Date, loc *time.Location) QueryWindow {
	return QueryWindow{
		Start: first.In(loc),
		End:   last.endIn(loc),
	}
}

// First returns the first visible date.
func (w QueryWindow) First() Date { return DateOf(w.Start) }

// Last returns the last visible date.
func (w QueryWindow) Last() Date { return DateOf(w.End) }

// Days lists every date in the window in ascending order.
func (w QueryWindow) Days() []Date {
	if w.End.Before(w.Start) {
		return nil
	}
	first, last := w.First(), w.Last()
	days := make([]Date, 0, 42)
	for d := first; !d.After(last); d = d.AddDays(1) {
		days = append(days, d)
	}
	return days
}

// Contains reports whether d is one of the window's dates.
func (w QueryWindow) Contains(d Date) bool {
	return !d.Before(w.First()) && !d.After(w.Last())
}

// Key identifies the window independent of location pointer identity.
func (w QueryWindow) Key() string {
	return w.First().String() + ".." + w.Last().String()
}
