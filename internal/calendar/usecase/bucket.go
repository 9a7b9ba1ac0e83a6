package usecase

import (
	"sort"

	"homestead-calendar/internal/calendar"
	"homestead-calendar/internal/model"
	"homestead-calendar/internal/occurrence"
)

// BucketByDate expands every definition over w and groups the occurrences
// by date. Ordering within a date is all-day first, then time of day, and
// stable with respect to defs.
func BucketByDate(defs []model.TaskDefinition, w model.QueryWindow) calendar.BucketMap {
	buckets := make(calendar.BucketMap)
	for _, def := range defs {
		for _, occ := range occurrence.Expand(def, w) {
			buckets[occ.Date] = append(buckets[occ.Date], occ)
		}
	}

	for _, occs := range buckets {
		sort.SliceStable(occs, func(i, j int) bool {
			if occs[i].AllDay != occs[j].AllDay {
				return occs[i].AllDay
			}
			return occs[i].TimeOfDay < occs[j].TimeOfDay
		})
	}
	return buckets
}
