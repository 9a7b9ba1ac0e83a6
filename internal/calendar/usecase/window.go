package usecase

import (
	"time"

	"homestead-calendar/internal/model"
	"homestead-calendar/pkg/datemath"
)

// ComputeWindow returns the visible range for view around ref. A month is
// padded out to whole display weeks; a week is the seven days containing
// ref; a day is ref alone.
func ComputeWindow(view model.View, ref model.Date, weekStart time.Weekday, loc *time.Location) model.QueryWindow {
	t := ref.In(loc)

	var first, last time.Time
	switch view {
	case model.ViewWeek:
		first = datemath.StartOfWeek(t, weekStart)
		last = datemath.EndOfWeek(t, weekStart)
	case model.ViewDay:
		first = datemath.StartOfDay(t)
		last = datemath.EndOfDay(t)
	default:
		first = datemath.StartOfWeek(datemath.StartOfMonth(t), weekStart)
		last = datemath.EndOfWeek(datemath.EndOfMonth(t), weekStart)
	}
	return model.NewQueryWindow(model.DateOf(first), model.DateOf(last), loc)
}
