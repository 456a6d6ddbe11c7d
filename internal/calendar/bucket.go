package calendar

import (
	"sort"

	"github.com/noexpect9/course-schedule/internal/models"
)

// BucketByDay groups events under the day their StartDate falls on, keyed by
// DayKey. Within a day, events are ordered ascending by start instant;
// simultaneous starts keep their original relative order. Multi-day events
// bucket under their start day only.
//
// The index is rebuilt in full on every call. The collection is small enough
// (a personal calendar) that incremental maintenance is not worth the
// bookkeeping.
func BucketByDay(events []models.Event) map[string][]models.Event {
	buckets := make(map[string][]models.Event)
	for _, ev := range events {
		key := DayKey(ev.StartDate)
		buckets[key] = append(buckets[key], ev)
	}
	for key := range buckets {
		day := buckets[key]
		sort.SliceStable(day, func(i, j int) bool {
			return day[i].StartDate.Before(day[j].StartDate)
		})
	}
	return buckets
}
