package homestead

import (
	"fmt"
	"strings"
	"time"
)

// DateTimeLayout is the wire layout of task_datetime: a local date-time
// without offset.
const DateTimeLayout = "2006-01-02T15:04:05"

var localLayouts = []string{
	DateTimeLayout,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// FormatDateTime renders t's wall clock in DateTimeLayout.
func FormatDateTime(t time.Time) string {
	return t.Format(DateTimeLayout)
}

// FormatAnchor renders an anchor for the wire. Anchors in loc are written
// bare; anchors that carried their own offset keep it as RFC 3339.
func FormatAnchor(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	if t.Location() == loc || t.Location().String() == loc.String() {
		return FormatDateTime(t)
	}
	return t.Format(time.RFC3339)
}

// ParseDateTime reads a task_datetime. Values with an offset keep it; bare
// local values are interpreted in loc.
func ParseDateTime(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty task_datetime")
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported task_datetime %q", s)
}
