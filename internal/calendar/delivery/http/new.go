package http

import (
	"time"

	"homestead-calendar/internal/calendar"
	"homestead-calendar/internal/reschedule"
	"homestead-calendar/pkg/datemath"
	"homestead-calendar/pkg/log"
)

type handler struct {
	l           log.Logger
	uc          calendar.UseCase
	rescheduler reschedule.UseCase
	dateMath    *datemath.Parser
	now         func() time.Time
}

// New creates a new HTTP handler for the calendar domain.
func New(l log.Logger, uc calendar.UseCase, rescheduler reschedule.UseCase, dateMath *datemath.Parser) *handler {
	return &handler{
		l:           l,
		uc:          uc,
		rescheduler: rescheduler,
		dateMath:    dateMath,
		now:         time.Now,
	}
}
