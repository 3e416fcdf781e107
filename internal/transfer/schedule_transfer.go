package transfer

import "time"

type ScheduleCreation struct {
	AccountID    int64    `json:"account_id"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	IsActive     bool     `json:"is_active"`
	ScheduleType string   `json:"schedule_type"`
	DaysOfWeek   []int    `json:"days_of_week"`
	PostingTimes []string `json:"posting_times"`
	Timezone     string   `json:"timezone"`
}

type ScheduleUpdate struct {
	Name         *string  `json:"name,omitempty"`
	Description  *string  `json:"description,omitempty"`
	IsActive     *bool    `json:"is_active,omitempty"`
	DaysOfWeek   []int    `json:"days_of_week,omitempty"`
	PostingTimes []string `json:"posting_times,omitempty"`
	Timezone     *string  `json:"timezone,omitempty"`
}

type ScheduledPostCreation struct {
	ScheduleID   int64     `json:"schedule_id"`
	ClipID       *int64    `json:"clip_id,omitempty"`
	ScheduledFor time.Time `json:"scheduled_for"`
	Caption      string    `json:"caption,omitempty"`
	Hashtags     []string  `json:"hashtags,omitempty"`
}

type ScheduledPostUpdate struct {
	ScheduledFor *time.Time `json:"scheduled_for,omitempty"`
	Caption      *string    `json:"caption,omitempty"`
	Hashtags     []string   `json:"hashtags,omitempty"`
	Status       *string    `json:"status,omitempty"`
	ClipID       *int64     `json:"clip_id,omitempty"`
}

type SocialPostCreation struct {
	ClipID       int64      `json:"clip_id,omitempty"`
	MediaIDs     []int64    `json:"media_ids,omitempty"`
	Platform     string     `json:"platform"`
	Title        string     `json:"title,omitempty"`
	Caption      string     `json:"caption,omitempty"`
	Hashtags     []string   `json:"hashtags,omitempty"`
	ScheduledFor *time.Time `json:"scheduled_for,omitempty"`
}

type PublishResponse struct {
	PostID         int64  `json:"post_id"`
	Status         string `json:"status"`
	PlatformPostID string `json:"platform_post_id"`
	PlatformURL    string `json:"platform_url"`
	Message        string `json:"message"`
}
