package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/oauth2"

	"homestead-calendar/config"
	_ "homestead-calendar/docs" // Swagger docs
	"homestead-calendar/internal/calendar"
	calendarUC "homestead-calendar/internal/calendar/usecase"
	"homestead-calendar/internal/httpserver"
	"homestead-calendar/internal/model"
	rescheduleUC "homestead-calendar/internal/reschedule/usecase"
	"homestead-calendar/internal/scheduler"
	"homestead-calendar/internal/task/repository"
	googleRepo "homestead-calendar/internal/task/repository/google"
	"homestead-calendar/internal/task/repository/homestead"
	taskUC "homestead-calendar/internal/task/usecase"
	"homestead-calendar/internal/webhook"
	"homestead-calendar/pkg/datemath"
	"homestead-calendar/pkg/gcalendar"
	"homestead-calendar/pkg/log"
)

// @title       Homestead Calendar API
// @description Recurrence-aware calendar over homestead project tasks.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Homestead Calendar...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Task API: %s", cfg.TaskAPI.BaseURL)

	// 3. DateMath parser
	dateMathParser, err := datemath.NewParser(cfg.Calendar.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Calendar.Timezone, err)
		dateMathParser, _ = datemath.NewParser("UTC")
	}
	loc := dateMathParser.Location()

	// 4. Task repository
	clientCfg := homestead.ClientConfig{
		BaseURL:         cfg.TaskAPI.BaseURL,
		Timeout:         cfg.TaskAPI.Timeout,
		RateLimitPerSec: cfg.TaskAPI.RateLimitPerSec,
		Burst:           cfg.TaskAPI.Burst,
	}
	if cfg.TaskAPI.AccessToken != "" {
		clientCfg.TokenSource = oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: cfg.TaskAPI.AccessToken,
			TokenType:   "Bearer",
		})
	}
	taskRepo := homestead.New(homestead.NewClient(ctx, clientCfg), loc, logger)

	// 5. Google Calendar overlay (optional)
	var overlays []repository.OverlaySource
	if cfg.GoogleCalendar.Enabled {
		calendarClient, gcErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if gcErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", gcErr)
		} else {
			overlays = append(overlays, googleRepo.New(calendarClient, cfg.GoogleCalendar.CalendarID, loc, logger))
			logger.Infof(ctx, "Google Calendar overlay enabled for %s", cfg.GoogleCalendar.CalendarID)
		}
	}

	// 6. Use cases
	projects := make([]model.Project, 0, len(cfg.Calendar.Projects))
	for _, p := range cfg.Calendar.Projects {
		projects = append(projects, model.Project{ID: p.ID, Name: p.Name})
	}
	defaultView, err := model.ParseView(cfg.Calendar.DefaultView)
	if err != nil {
		logger.Warnf(ctx, "Invalid default view %q, using month: %v", cfg.Calendar.DefaultView, err)
		defaultView = model.ViewMonth
	}

	calUC := calendarUC.New(logger, taskRepo, calendarUC.Config{
		Location:    loc,
		WeekStart:   datemath.ParseWeekStart(cfg.Calendar.WeekStart),
		DefaultView: defaultView,
		Projects:    projects,
		CacheSize:   cfg.Calendar.SnapshotCacheSize,
		CacheTTL:    cfg.Calendar.SnapshotCacheTTL,
	}, overlays...)
	reschedUC := rescheduleUC.New(logger, taskRepo, calUC)
	tUC := taskUC.New(logger, taskRepo, calUC, dateMathParser)

	// 7. Periodic refresh
	sched := scheduler.New(calUC, loc, logger)
	if cfg.Calendar.RefreshCron != "" {
		if _, err := sched.ScheduleRefresh(cfg.Calendar.RefreshCron); err != nil {
			logger.Error(ctx, "Invalid calendar.refresh_cron: ", err)
			return
		}
	}

	// 8. Initial load
	if _, err := calUC.Navigate(ctx, calendar.NavigateInput{}); err != nil {
		logger.Warnf(ctx, "Initial calendar load failed: %v", err)
	}

	sched.Start()
	defer sched.Stop()

	// 9. Task-change webhook (optional)
	var webhookHandler httpserver.WebhookHandler
	if cfg.Webhook.Secret != "" {
		webhookHandler = webhook.NewHandler(calUC, webhook.SecurityConfig{
			Secret:          cfg.Webhook.Secret,
			AllowedIPs:      cfg.Webhook.AllowedIPs,
			RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
		}, logger)
	}

	// 10. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:       logger,
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		CalendarUC:   calUC,
		RescheduleUC: reschedUC,
		TaskUC:       tUC,
		DateMath:     dateMathParser,

		TrustedProxies: cfg.HTTPServer.TrustedProxies,
		WebhookHandler: webhookHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 11. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
