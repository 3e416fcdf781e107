package models

import "time"

type Media struct {
	ID               int64      `json:"id"`
	UserID           int64      `json:"user_id"`
	Filename         string     `json:"filename"`
	OriginalFilename string     `json:"original_filename"`
	FilePath         string     `json:"file_path"`
	FileSize         int64      `json:"file_size"`
	MimeType         string     `json:"mime_type"`
	MediaType        string     `json:"media_type"`
	Duration         float64    `json:"duration"`
	Width            int        `json:"width"`
	Height           int        `json:"height"`
	Status           string     `json:"status"`
	Transcription    string     `json:"transcription"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
	ProcessedAt      *time.Time `json:"processed_at"`
}

const (
	MediaTypeVideo = "video"
	MediaTypeAudio = "audio"
	MediaTypeImage = "image"
)

const (
	MediaStatusProcessing = "processing"
	MediaStatusReady      = "ready"
	MediaStatusFailed     = "failed"
)
