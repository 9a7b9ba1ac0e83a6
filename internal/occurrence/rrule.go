package occurrence

import (
	"github.com/teambition/rrule-go"

	"homestead-calendar/internal/model"
)

// RRule renders the recurrence of def as an RFC 5545 RRULE value
// ("FREQ=WEEKLY"). One-off definitions render as "".
func RRule(def model.TaskDefinition) string {
	freq, ok := frequency(def.Recurrence)
	if !ok {
		return ""
	}
	opt := rrule.ROption{Freq: freq}
	return opt.RRuleString()
}

func frequency(r model.Recurrence) (rrule.Frequency, bool) {
	switch r {
	case model.RecurrenceDaily:
		return rrule.DAILY, true
	case model.RecurrenceWeekly:
		return rrule.WEEKLY, true
	case model.RecurrenceMonthly:
		return rrule.MONTHLY, true
	case model.RecurrenceYearly:
		return rrule.YEARLY, true
	case model.RecurrenceNone:
		return 0, false
	}
	return 0, false
}
