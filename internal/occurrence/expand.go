package occurrence

import (
	"time"

	"homestead-calendar/internal/model"
)

// Expand projects def onto every date of w on which it is active, in
// ascending date order. It performs no I/O and no timezone conversion: the
// calendar components are read from the stored anchor as-is.
//
//   - None:    the anchor date only
//   - Daily:   every date of the window, including dates before the anchor
//   - Weekly:  dates sharing the anchor's weekday
//   - Monthly: dates sharing the anchor's day-of-month (a 31st never matches
//     a 30-day month)
//   - Yearly:  dates sharing the anchor's month and day-of-month
func Expand(def model.TaskDefinition, w model.QueryWindow) []model.Occurrence {
	days := w.Days()
	out := make([]model.Occurrence, 0, activeHint(def.Recurrence, len(days)))

	anchor := model.DateOf(def.Anchor)
	for _, d := range days {
		if !active(def.Recurrence, anchor, d) {
			continue
		}
		out = append(out, makeOccurrence(def, d))
	}
	return out
}

func active(r model.Recurrence, anchor, d model.Date) bool {
	switch r {
	case model.RecurrenceNone:
		return d == anchor
	case model.RecurrenceDaily:
		return true
	case model.RecurrenceWeekly:
		return d.Weekday() == anchor.Weekday()
	case model.RecurrenceMonthly:
		return d.Day == anchor.Day
	case model.RecurrenceYearly:
		return d.Month == anchor.Month && d.Day == anchor.Day
	}
	return false
}

func makeOccurrence(def model.TaskDefinition, d model.Date) model.Occurrence {
	loc := def.Anchor.Location()

	occ := model.Occurrence{
		TaskID:    def.ID,
		ProjectID: def.ProjectID,
		Title:     def.Title,
		Date:      d,
		AllDay:    def.AllDay,
		Recurring: def.IsRecurring(),
		ReadOnly:  def.ReadOnly,
		Start:     d.In(loc),
	}
	if !def.AllDay {
		h, m, s := def.Anchor.Clock()
		occ.TimeOfDay = def.TimeOfDay()
		occ.Start = time.Date(d.Year, d.Month, d.Day, h, m, s, def.Anchor.Nanosecond(), loc)
	}
	return occ
}

// activeHint sizes the result slice for the common cases.
func activeHint(r model.Recurrence, days int) int {
	switch r {
	case model.RecurrenceDaily:
		return days
	case model.RecurrenceWeekly:
		return days/7 + 1
	default:
		return 1
	}
}
