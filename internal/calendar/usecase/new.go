package usecase

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"homestead-calendar/internal/calendar"
	"homestead-calendar/internal/model"
	"homestead-calendar/internal/task/repository"
	pkgLog "homestead-calendar/pkg/log"
)

const (
	defaultCacheSize   = 32
	defaultCacheTTL    = 30 * time.Minute
	defaultConcurrency = 4
)

// Config holds the calendar settings the use case needs.
type Config struct {
	Location    *time.Location
	WeekStart   time.Weekday
	DefaultView model.View
	Projects    []model.Project
	// CacheSize bounds the last-known-good snapshots kept per window.
	CacheSize int
	CacheTTL  time.Duration
	// MaxConcurrency bounds parallel project reads within one load.
	MaxConcurrency int
}

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.TaskRepository
	overlays []repository.OverlaySource
	cfg      Config
	now      func() time.Time

	cache *expirable.LRU[string, calendar.Snapshot]

	gen     atomic.Uint64
	seq     atomic.Uint64
	current atomic.Pointer[calendar.Snapshot]

	mu           sync.Mutex // guards publish, requested and publishedSeq
	requested    *calendar.NavigateInput
	publishedSeq uint64
}

// New creates a new calendar UseCase implementation.
func New(l pkgLog.Logger, repo repository.TaskRepository, cfg Config, overlays ...repository.OverlaySource) *implUseCase {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.DefaultView == "" {
		cfg.DefaultView = model.ViewMonth
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = defaultCacheSize
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaultCacheTTL
	}
	if cfg.MaxConcurrency <= 0 {
		cfg.MaxConcurrency = defaultConcurrency
	}

	return &implUseCase{
		l:        l,
		repo:     repo,
		overlays: overlays,
		cfg:      cfg,
		now:      time.Now,
		cache:    expirable.NewLRU[string, calendar.Snapshot](cfg.CacheSize, nil, cfg.CacheTTL),
	}
}

var _ calendar.UseCase = (*implUseCase)(nil)
