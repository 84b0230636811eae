package service

import (
	"time"

	"wagehire/internal/model"
)

// upcomingWindowDays is the inclusive horizon for the upcoming bucket:
// [today, today+7].
const upcomingWindowDays = 7

// ClassifyInterviews buckets a user's interviews into dashboard counts
// relative to now. Pure function: now is passed in so callers control the
// reference instant.
//
// Calendar comparisons are done in UTC on date-only values. An interview
// scheduled today that is not completed counts as both today's and upcoming.
// Interviews without a scheduled date contribute only to the total and
// completed counts.
func ClassifyInterviews(interviews []model.Interview, now time.Time) model.DashboardStats {
	today := truncateToDay(now)
	windowEnd := today.AddDate(0, 0, upcomingWindowDays)

	stats := model.DashboardStats{TotalInterviews: len(interviews)}
	for _, iv := range interviews {
		if iv.Status == model.StatusCompleted {
			stats.CompletedInterviews++
		}
		if iv.ScheduledDate == nil {
			continue
		}
		day := truncateToDay(*iv.ScheduledDate)
		if day.Equal(today) {
			stats.TodaysInterviews++
		}
		if iv.Status != model.StatusCompleted && !day.Before(today) && !day.After(windowEnd) {
			stats.UpcomingInterviews++
		}
	}
	return stats
}

func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
