package calendar

import (
	"sort"
	"time"

	"homestead-calendar/internal/model"
)

// NavigateInput selects the visible window. A zero Reference means today;
// an empty Scope means every configured project.
type NavigateInput struct {
	View      model.View
	Reference model.Date
	Scope     model.ProjectScope
}

// BucketMap groups occurrences by calendar date. Within a date occurrences
// are ordered all-day first, then by time of day.
type BucketMap map[model.Date][]model.Occurrence

// Dates returns the keys of m in ascending order.
func (m BucketMap) Dates() []model.Date {
	dates := make([]model.Date, 0, len(m))
	for d := range m {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// Count returns the total number of occurrences in m.
func (m BucketMap) Count() int {
	n := 0
	for _, occs := range m {
		n += len(occs)
	}
	return n
}

// Snapshot is one published, immutable view of the calendar.
type Snapshot struct {
	Key         string
	View        model.View
	Reference   model.Date
	Window      model.QueryWindow
	Scope       model.ProjectScope
	Definitions []model.TaskDefinition
	Buckets     BucketMap
	LoadedAt    time.Time
	// Stale is set when this snapshot was served from cache after a failed
	// fetch.
	Stale bool
}

// Definition finds a definition by task ID.
func (s Snapshot) Definition(taskID string) (model.TaskDefinition, bool) {
	for _, def := range s.Definitions {
		if def.ID == taskID {
			return def, true
		}
	}
	return model.TaskDefinition{}, false
}

// IsZero reports whether nothing has been published yet.
func (s Snapshot) IsZero() bool {
	return s.Key == ""
}
