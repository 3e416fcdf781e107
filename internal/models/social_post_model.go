package models

import "time"

// SocialPost is the generic cross-platform post record. Hashtags come
// back as a JSON-encoded string, same as on Clip.
type SocialPost struct {
	ID             int64      `json:"id"`
	UserID         int64      `json:"user_id"`
	ClipID         int64      `json:"clip_id"`
	Platform       string     `json:"platform"`
	Title          string     `json:"title"`
	Caption        string     `json:"caption"`
	Hashtags       string     `json:"hashtags"`
	ScheduledFor   *time.Time `json:"scheduled_for"`
	PublishedAt    *time.Time `json:"published_at"`
	Status         string     `json:"status"`
	PlatformPostID string     `json:"platform_post_id"`
	PlatformURL    string     `json:"platform_url"`
	ErrorMessage   string     `json:"error_message"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (p *SocialPost) HashtagList() []string {
	return DecodeStringList(p.Hashtags)
}
