package reschedule

import (
	"fmt"
	"time"
)

// NewAnchor computes where a dropped task lands. An hour slot sets the time
// to hour:00:00; a day cell keeps the original time of day. The original
// location is kept either way.
func NewAnchor(orig time.Time, target Target) (time.Time, error) {
	if target.Date.IsZero() {
		return time.Time{}, fmt.Errorf("%w: missing date", ErrInvalidTarget)
	}
	loc := orig.Location()

	if target.Hour != nil {
		h := *target.Hour
		if h < 0 || h > 23 {
			return time.Time{}, fmt.Errorf("%w: hour %d", ErrInvalidTarget, h)
		}
		return time.Date(target.Date.Year, target.Date.Month, target.Date.Day, h, 0, 0, 0, loc), nil
	}

	h, m, sec := orig.Clock()
	return time.Date(target.Date.Year, target.Date.Month, target.Date.Day, h, m, sec, orig.Nanosecond(), loc), nil
}
