package httpserver

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"homestead-calendar/internal/calendar"
	"homestead-calendar/internal/reschedule"
	"homestead-calendar/internal/task"
	"homestead-calendar/pkg/datemath"
	"homestead-calendar/pkg/log"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 15 * time.Second
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Calendar domain
	calendarUC   calendar.UseCase
	rescheduleUC reschedule.UseCase
	dateMath     *datemath.Parser

	// Task domain
	taskUC task.UseCase

	// Task-change webhook, optional
	webhookHandler WebhookHandler
}

// WebhookHandler receives task-change notifications from the backend.
type WebhookHandler interface {
	HandleTaskWebhook(c *gin.Context)
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// TrustedProxies may set X-Forwarded-For; empty trusts none.
	TrustedProxies []string

	CalendarUC   calendar.UseCase
	RescheduleUC reschedule.UseCase
	TaskUC       task.UseCase
	DateMath     *datemath.Parser

	WebhookHandler WebhookHandler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		calendarUC:     cfg.CalendarUC,
		rescheduleUC:   cfg.RescheduleUC,
		dateMath:       cfg.DateMath,
		taskUC:         cfg.TaskUC,
		webhookHandler: cfg.WebhookHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.gin.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.calendarUC == nil {
		return errors.New("calendar usecase is required")
	}
	if srv.rescheduleUC == nil {
		return errors.New("reschedule usecase is required")
	}
	if srv.taskUC == nil {
		return errors.New("task usecase is required")
	}
	if srv.dateMath == nil {
		return errors.New("date parser is required")
	}
	return nil
}
