package models

import (
	"encoding/json"
	"time"
)

type Clip struct {
	ID              int64      `json:"id"`
	UserID          int64      `json:"user_id"`
	MediaID         int64      `json:"media_id"`
	Filename        string     `json:"filename"`
	FilePath        string     `json:"file_path"`
	FileSize        int64      `json:"file_size"`
	StartTime       float64    `json:"start_time"`
	EndTime         float64    `json:"end_time"`
	Duration        float64    `json:"duration"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Tags            string     `json:"tags"`
	Hashtags        string     `json:"hashtags"`
	Status          string     `json:"status"`
	IsAutoGenerated bool       `json:"is_auto_generated"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	ProcessedAt     *time.Time `json:"processed_at"`
}

const (
	ClipStatusProcessing = "processing"
	ClipStatusReady      = "ready"
	ClipStatusFailed     = "failed"
)

// HashtagList decodes the JSON-encoded hashtags column. The backend
// stores the list as a string and older rows hold malformed values, so
// anything undecodable is treated as no hashtags.
func (c *Clip) HashtagList() []string {
	return DecodeStringList(c.Hashtags)
}

func (c *Clip) TagList() []string {
	return DecodeStringList(c.Tags)
}

func DecodeStringList(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return []string{}
	}
	if list == nil {
		return []string{}
	}
	return list
}
