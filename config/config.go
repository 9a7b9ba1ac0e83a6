package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Homestead calendar specifics
	TaskAPI        TaskAPIConfig
	Calendar       CalendarConfig
	GoogleCalendar GoogleCalendarConfig
	Webhook        WebhookConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string

	// TrustedProxies may set X-Forwarded-For; empty trusts none.
	TrustedProxies []string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// TaskAPIConfig points at the homestead backend that owns task definitions.
type TaskAPIConfig struct {
	BaseURL         string
	AccessToken     string
	Timeout         time.Duration
	RateLimitPerSec float64
	Burst           int
}

type CalendarConfig struct {
	Timezone          string
	WeekStart         string // sunday or monday
	DefaultView       string
	RefreshCron       string // empty disables the periodic refresh
	SnapshotCacheSize int
	SnapshotCacheTTL  time.Duration
	Projects          []ProjectConfig
}

type ProjectConfig struct {
	ID   string `mapstructure:"id"`
	Name string `mapstructure:"name"`
}

type GoogleCalendarConfig struct {
	Enabled         bool
	CredentialsPath string
	CalendarID      string
}

// WebhookConfig secures the task-change webhook. An empty secret disables it.
type WebhookConfig struct {
	Secret          string
	AllowedIPs      []string
	RateLimitPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.TrustedProxies = viper.GetStringSlice("http_server.trusted_proxies")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Task API
	cfg.TaskAPI.BaseURL = strings.TrimRight(viper.GetString("task_api.base_url"), "/")
	cfg.TaskAPI.AccessToken = expandEnvVar(viper.GetString("task_api.access_token"))
	cfg.TaskAPI.Timeout = viper.GetDuration("task_api.timeout")
	cfg.TaskAPI.RateLimitPerSec = viper.GetFloat64("task_api.rate_limit_per_sec")
	cfg.TaskAPI.Burst = viper.GetInt("task_api.burst")
	if token := viper.GetString("homestead_access_token"); token != "" {
		cfg.TaskAPI.AccessToken = token
	}

	// Calendar
	cfg.Calendar.Timezone = viper.GetString("calendar.timezone")
	cfg.Calendar.WeekStart = strings.ToLower(viper.GetString("calendar.week_start"))
	cfg.Calendar.DefaultView = viper.GetString("calendar.default_view")
	cfg.Calendar.RefreshCron = viper.GetString("calendar.refresh_cron")
	cfg.Calendar.SnapshotCacheSize = viper.GetInt("calendar.snapshot_cache_size")
	cfg.Calendar.SnapshotCacheTTL = viper.GetDuration("calendar.snapshot_cache_ttl")
	if err := viper.UnmarshalKey("calendar.projects", &cfg.Calendar.Projects); err != nil {
		return nil, fmt.Errorf("invalid calendar.projects: %w", err)
	}

	// Google Calendar overlay
	cfg.GoogleCalendar.Enabled = viper.GetBool("google_calendar.enabled")
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// Webhook
	cfg.Webhook.Secret = expandEnvVar(viper.GetString("webhook.secret"))
	cfg.Webhook.AllowedIPs = viper.GetStringSlice("webhook.allowed_ips")
	cfg.Webhook.RateLimitPerMin = viper.GetInt("webhook.rate_limit_per_min")
	if secret := viper.GetString("homestead_webhook_secret"); secret != "" {
		cfg.Webhook.Secret = secret
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("task_api.timeout", "15s")
	viper.SetDefault("task_api.rate_limit_per_sec", 10)
	viper.SetDefault("task_api.burst", 5)

	viper.SetDefault("calendar.timezone", "UTC")
	viper.SetDefault("calendar.week_start", "sunday")
	viper.SetDefault("calendar.default_view", "month")
	viper.SetDefault("calendar.refresh_cron", "*/5 * * * *")
	viper.SetDefault("calendar.snapshot_cache_size", 32)
	viper.SetDefault("calendar.snapshot_cache_ttl", "30m")

	viper.SetDefault("google_calendar.calendar_id", "primary")

	viper.SetDefault("webhook.rate_limit_per_min", 60)
}

// validate checks the values the service cannot start without.
func validate(cfg *Config) error {
	if cfg.TaskAPI.BaseURL == "" {
		return fmt.Errorf("task_api.base_url is required")
	}
	if len(cfg.Calendar.Projects) == 0 {
		return fmt.Errorf("no projects configured - please add calendar.projects to config.yaml")
	}

	seen := make(map[string]bool, len(cfg.Calendar.Projects))
	for i, p := range cfg.Calendar.Projects {
		if p.ID == "" {
			return fmt.Errorf("project %d: id is required", i)
		}
		if seen[p.ID] {
			return fmt.Errorf("project %s: duplicate id", p.ID)
		}
		seen[p.ID] = true
	}

	switch cfg.Calendar.WeekStart {
	case "sunday", "monday":
	default:
		return fmt.Errorf("calendar.week_start must be sunday or monday, got %q", cfg.Calendar.WeekStart)
	}

	if cfg.GoogleCalendar.Enabled && cfg.GoogleCalendar.CredentialsPath == "" {
		return fmt.Errorf("google_calendar.credentials_path is required when the overlay is enabled")
	}

	if cfg.TaskAPI.AccessToken == "" {
		fmt.Println("Warning: task_api.access_token is empty, requests will be unauthenticated")
	}
	return nil
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}
