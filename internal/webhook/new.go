package webhook

import (
	"time"

	"homestead-calendar/internal/calendar"
	pkgLog "homestead-calendar/pkg/log"
)

const refreshTimeout = 30 * time.Second

type Handler struct {
	refresher calendar.Refresher
	security  *SecurityValidator
	l         pkgLog.Logger

	// async runs the refresh off the request goroutine; tests replace it.
	async func(func())
}

func NewHandler(
	refresher calendar.Refresher,
	securityConfig SecurityConfig,
	l pkgLog.Logger,
) *Handler {
	return &Handler{
		refresher: refresher,
		security:  NewSecurityValidator(securityConfig),
		l:         l,
		async:     func(fn func()) { go fn() },
	}
}
