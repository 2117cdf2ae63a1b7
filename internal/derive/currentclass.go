// Package derive holds the pure view-building functions that combine
// API snapshots, preference snapshots, and the wall clock into
// render-ready structures. Everything here is recomputed on read and
// side-effect free.
package derive

import (
	"time"

	"github.com/omripeer/studydeck/internal/domain"
)

// CurrentClass returns the schedule entry in progress at now, or nil.
// Matching is by weekday name and the [start, end) time-of-day window.
// When entries overlap (which the schedule format does not promise
// against), the first match in snapshot order wins.
func CurrentClass(schedule []domain.ScheduleItem, now time.Time) *domain.ScheduleItem {
	for i := range schedule {
		if schedule[i].Contains(now) {
			return &schedule[i]
		}
	}
	return nil
}

// ByDay returns the schedule entries for one weekday, in snapshot order.
func ByDay(schedule []domain.ScheduleItem, day string) []domain.ScheduleItem {
	var out []domain.ScheduleItem
	for _, item := range schedule {
		if item.Day == day {
			out = append(out, item)
		}
	}
	return out
}
