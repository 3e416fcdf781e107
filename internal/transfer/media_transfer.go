package transfer

type MediaUploadResponse struct {
	MediaID  int64  `json:"media_id"`
	Filename string `json:"filename"`
	Status   string `json:"status"`
	Message  string `json:"message"`
}

type MediaURLResponse struct {
	MediaID   int64  `json:"media_id"`
	URL       string `json:"url"`
	ExpiresIn int    `json:"expires_in"`
}

type ClipCreation struct {
	MediaID     int64    `json:"media_id"`
	StartTime   float64  `json:"start_time"`
	EndTime     float64  `json:"end_time"`
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Hashtags    []string `json:"hashtags,omitempty"`
}

type ClipUpdate struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Hashtags    []string `json:"hashtags,omitempty"`
	Status      *string  `json:"status,omitempty"`
}

type ClipURLResponse struct {
	ClipID    int64  `json:"clip_id"`
	URL       string `json:"url"`
	ExpiresIn int    `json:"expires_in"`
}
