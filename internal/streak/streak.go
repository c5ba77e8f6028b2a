// Package streak turns a user's upload days into streak numbers.
package streak

import (
	"slices"
	"time"

	"github.com/limbo/sketchstreak/pkg/dateutil"
	"github.com/limbo/sketchstreak/pkg/entity"
)

// Calculate computes current and longest streaks from upload days. Days may
// be unsorted, repeated or carry a time of day. Days after today are ignored.
func Calculate(days []time.Time, today time.Time) entity.StreakResult {
	today = dateutil.Normalize(today)
	distinct := distinctDays(days, today)
	if len(distinct) == 0 {
		return entity.StreakResult{}
	}

	result := entity.StreakResult{
		HasUploadedToday: dateutil.IsToday(distinct[0], today),
	}

	// Current streak is anchored at today or yesterday
	if result.HasUploadedToday || dateutil.IsYesterday(distinct[0], today) {
		result.CurrentStreak = 1
		for i := 1; i < len(distinct); i++ {
			if dateutil.DayDifference(distinct[i-1], distinct[i]) != 1 {
				break
			}
			result.CurrentStreak++
		}
	}

	run := 1
	result.LongestStreak = 1
	for i := 1; i < len(distinct); i++ {
		if dateutil.DayDifference(distinct[i-1], distinct[i]) == 1 {
			run++
		} else {
			run = 1
		}
		result.LongestStreak = max(result.LongestStreak, run)
	}
	return result
}

// distinctDays normalizes days, drops duplicates and future days and sorts
// the rest newest first.
func distinctDays(days []time.Time, today time.Time) []time.Time {
	seen := make(map[time.Time]struct{}, len(days))
	result := make([]time.Time, 0, len(days))
	for _, d := range days {
		day := dateutil.Normalize(d)
		if day.After(today) {
			continue
		}
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		result = append(result, day)
	}
	slices.SortFunc(result, func(a, b time.Time) int {
		return b.Compare(a)
	})
	return result
}
