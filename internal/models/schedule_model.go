package models

import "time"

type ContentSchedule struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"user_id"`
	AccountID       int64     `json:"account_id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	IsActive        bool      `json:"is_active"`
	ScheduleType    string    `json:"schedule_type"`
	DaysOfWeek      []int     `json:"days_of_week"`
	PostingTimes    []string  `json:"posting_times"`
	Timezone        string    `json:"timezone"`
	EngagementScore int       `json:"engagement_score"`
	GrowthRate      int       `json:"growth_rate"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type ScheduledPost struct {
	ID             int64      `json:"id"`
	UserID         int64      `json:"user_id"`
	ScheduleID     int64      `json:"schedule_id"`
	ClipID         *int64     `json:"clip_id"`
	ScheduledFor   time.Time  `json:"scheduled_for"`
	PostedAt       *time.Time `json:"posted_at"`
	Caption        string     `json:"caption"`
	Hashtags       []string   `json:"hashtags"`
	Status         string     `json:"status"`
	PlatformPostID string     `json:"platform_post_id"`
	PlatformURL    string     `json:"platform_url"`
	ErrorMessage   string     `json:"error_message"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type CalendarDay struct {
	Date           string          `json:"date"`
	PostsNeeded    int             `json:"posts_needed"`
	PostsReady     int             `json:"posts_ready"`
	PostsScheduled int             `json:"posts_scheduled"`
	Posts          []ScheduledPost `json:"posts"`
}

type ScheduleSuggestion struct {
	Name                string   `json:"name"`
	Description         string   `json:"description"`
	DaysOfWeek          []int    `json:"days_of_week"`
	PostingTimes        []string `json:"posting_times"`
	EstimatedEngagement int      `json:"estimated_engagement"`
	EstimatedGrowth     int      `json:"estimated_growth"`
	Reasoning           string   `json:"reasoning"`
}

const (
	PostStatusDraft        = "draft"
	PostStatusScheduled    = "scheduled"
	PostStatusContentReady = "content_ready"
	PostStatusPublished    = "published"
	PostStatusFailed       = "failed"
)
