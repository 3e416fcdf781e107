package calendar

import "github.com/maheshrc27/clipdash/internal/models"

type DayStatus string

const (
	StatusComplete DayStatus = "complete"
	StatusReady    DayStatus = "ready"
	StatusPending  DayStatus = "pending"
	StatusNone     DayStatus = "none"
)

// GetDayStatus classifies a calendar day for display. Precedence:
// complete when every needed post is scheduled, then ready when any
// content is waiting, then pending when posts are still needed. Days
// with nothing needed show no marker.
func GetDayStatus(day models.CalendarDay) DayStatus {
	if day.PostsNeeded > 0 && day.PostsScheduled == day.PostsNeeded {
		return StatusComplete
	}
	if day.PostsReady > 0 {
		return StatusReady
	}
	if day.PostsNeeded > 0 {
		return StatusPending
	}
	return StatusNone
}

// Summarize maps every day of a fetched month to its display status,
// keyed by the backend's YYYY-MM-DD date string. Derived state only,
// recomputed from the month's data on each call.
func Summarize(days []models.CalendarDay) map[string]DayStatus {
	out := make(map[string]DayStatus, len(days))
	for _, day := range days {
		out[day.Date] = GetDayStatus(day)
	}
	return out
}
