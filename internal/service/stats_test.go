package service

import (
	"testing"
	"time"

	"wagehire/internal/model"

	"github.com/stretchr/testify/assert"
)

var statsNow = time.Date(2026, 8, 31, 14, 30, 0, 0, time.UTC)

func datePtr(t time.Time) *time.Time { return &t }

func daysFromNow(d int) *time.Time {
	return datePtr(statsNow.AddDate(0, 0, d))
}

func TestClassifyInterviews_EmptyList(t *testing.T) {
	stats := ClassifyInterviews(nil, statsNow)
	assert.Equal(t, model.DashboardStats{}, stats)
}

func TestClassifyInterviews_CompletedYesterday(t *testing.T) {
	ivs := []model.Interview{
		{Status: model.StatusCompleted, ScheduledDate: daysFromNow(-1)},
	}
	stats := ClassifyInterviews(ivs, statsNow)
	assert.Equal(t, model.DashboardStats{
		TotalInterviews:     1,
		CompletedInterviews: 1,
	}, stats)
}

func TestClassifyInterviews_ScheduledToday(t *testing.T) {
	ivs := []model.Interview{
		{Status: model.StatusScheduled, ScheduledDate: daysFromNow(0)},
	}
	stats := ClassifyInterviews(ivs, statsNow)
	assert.Equal(t, model.DashboardStats{
		TotalInterviews:    1,
		TodaysInterviews:   1,
		UpcomingInterviews: 1,
	}, stats)
}

func TestClassifyInterviews_InsideUpcomingWindow(t *testing.T) {
	ivs := []model.Interview{
		{Status: model.StatusScheduled, ScheduledDate: daysFromNow(5)},
	}
	stats := ClassifyInterviews(ivs, statsNow)
	assert.Equal(t, model.DashboardStats{
		TotalInterviews:    1,
		UpcomingInterviews: 1,
	}, stats)
}

func TestClassifyInterviews_WindowBoundary(t *testing.T) {
	// day 7 is the last day inside the window, day 8 the first outside
	in := ClassifyInterviews([]model.Interview{
		{Status: model.StatusScheduled, ScheduledDate: daysFromNow(7)},
	}, statsNow)
	assert.Equal(t, 1, in.UpcomingInterviews)

	out := ClassifyInterviews([]model.Interview{
		{Status: model.StatusScheduled, ScheduledDate: daysFromNow(8)},
	}, statsNow)
	assert.Equal(t, model.DashboardStats{TotalInterviews: 1}, out)
}

func TestClassifyInterviews_NilDate(t *testing.T) {
	ivs := []model.Interview{
		{Status: model.StatusScheduled},
		{Status: model.StatusUncertain},
	}
	stats := ClassifyInterviews(ivs, statsNow)
	assert.Equal(t, model.DashboardStats{TotalInterviews: 2}, stats)
}

func TestClassifyInterviews_NilDateCompletedStillCounts(t *testing.T) {
	ivs := []model.Interview{
		{Status: model.StatusCompleted},
	}
	stats := ClassifyInterviews(ivs, statsNow)
	assert.Equal(t, model.DashboardStats{
		TotalInterviews:     1,
		CompletedInterviews: 1,
	}, stats)
}

func TestClassifyInterviews_CompletedTodayNotUpcoming(t *testing.T) {
	ivs := []model.Interview{
		{Status: model.StatusCompleted, ScheduledDate: daysFromNow(0)},
	}
	stats := ClassifyInterviews(ivs, statsNow)
	assert.Equal(t, model.DashboardStats{
		TotalInterviews:     1,
		TodaysInterviews:    1,
		CompletedInterviews: 1,
	}, stats)
}

func TestClassifyInterviews_TimeOfDayIgnored(t *testing.T) {
	// 23:59 today is still today even though now is mid-afternoon
	late := time.Date(2026, 8, 31, 23, 59, 0, 0, time.UTC)
	ivs := []model.Interview{
		{Status: model.StatusScheduled, ScheduledDate: datePtr(late)},
	}
	stats := ClassifyInterviews(ivs, statsNow)
	assert.Equal(t, 1, stats.TodaysInterviews)
	assert.Equal(t, 1, stats.UpcomingInterviews)
}

func TestClassifyInterviews_CancelledInWindowStillUpcoming(t *testing.T) {
	// only completed is excluded from the upcoming bucket
	ivs := []model.Interview{
		{Status: model.StatusCancelled, ScheduledDate: daysFromNow(2)},
	}
	stats := ClassifyInterviews(ivs, statsNow)
	assert.Equal(t, 1, stats.UpcomingInterviews)
}

func TestClassifyInterviews_CountBounds(t *testing.T) {
	ivs := []model.Interview{
		{Status: model.StatusScheduled, ScheduledDate: daysFromNow(0)},
		{Status: model.StatusCompleted, ScheduledDate: daysFromNow(-3)},
		{Status: model.StatusScheduled, ScheduledDate: daysFromNow(3)},
		{Status: model.StatusUncertain},
		{Status: model.StatusScheduled, ScheduledDate: daysFromNow(10)},
	}
	stats := ClassifyInterviews(ivs, statsNow)
	assert.Equal(t, 5, stats.TotalInterviews)
	assert.LessOrEqual(t, stats.TodaysInterviews, stats.TotalInterviews)
	assert.LessOrEqual(t, stats.CompletedInterviews, stats.TotalInterviews)
	assert.LessOrEqual(t, stats.UpcomingInterviews, stats.TotalInterviews)
	assert.Equal(t, 1, stats.TodaysInterviews)
	assert.Equal(t, 2, stats.UpcomingInterviews)
	assert.Equal(t, 1, stats.CompletedInterviews)
}
