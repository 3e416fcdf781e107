package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maheshrc27/clipdash/internal/models"
)

func TestGetDayStatus(t *testing.T) {
	tests := []struct {
		name      string
		needed    int
		ready     int
		scheduled int
		want      DayStatus
	}{
		{"nothing needed or ready", 0, 0, 0, StatusNone},
		{"needed but nothing done", 2, 0, 0, StatusPending},
		{"partially scheduled", 2, 0, 1, StatusPending},
		{"content ready", 2, 1, 0, StatusReady},
		{"ready wins over pending", 3, 2, 1, StatusReady},
		{"fully scheduled", 2, 0, 2, StatusComplete},
		{"complete wins over ready", 2, 1, 2, StatusComplete},
		{"ready with nothing needed", 0, 1, 0, StatusReady},
		{"overscheduled is not complete", 2, 0, 3, StatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day := models.CalendarDay{
				PostsNeeded:    tt.needed,
				PostsReady:     tt.ready,
				PostsScheduled: tt.scheduled,
			}
			assert.Equal(t, tt.want, GetDayStatus(day))
		})
	}
}

func TestSummarize(t *testing.T) {
	days := []models.CalendarDay{
		{Date: "2026-09-01", PostsNeeded: 1, PostsScheduled: 1},
		{Date: "2026-09-02", PostsNeeded: 1},
		{Date: "2026-09-03"},
	}

	got := Summarize(days)
	assert.Equal(t, map[string]DayStatus{
		"2026-09-01": StatusComplete,
		"2026-09-02": StatusPending,
		"2026-09-03": StatusNone,
	}, got)
}
