package transfer

type YoutubeChannelInfo struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	CustomURL       string `json:"custom_url"`
	SubscriberCount int64  `json:"subscriber_count"`
	VideoCount      int64  `json:"video_count"`
	ViewCount       int64  `json:"view_count"`
}

type YoutubeVideo struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	PublishedAt   string `json:"published_at"`
	ThumbnailURL  string `json:"thumbnail_url"`
	PrivacyStatus string `json:"privacy_status"`
	ViewCount     int64  `json:"view_count"`
	LikeCount     int64  `json:"like_count"`
	CommentCount  int64  `json:"comment_count"`
}

// VideoUpload carries the form fields that accompany a video file.
type VideoUpload struct {
	Title              string
	Description        string
	Tags               []string
	CategoryID         string
	PrivacyStatus      string
	IsShort            bool
	ScheduledStartTime string
	NotifySubscribers  bool
}

type YoutubeUploadResponse struct {
	Success bool   `json:"success"`
	VideoID string `json:"video_id"`
	URL     string `json:"url"`
	Message string `json:"message"`
}

type YoutubeThumbnailResponse struct {
	Success bool   `json:"success"`
	VideoID string `json:"video_id"`
}

type YoutubeVideoStats struct {
	VideoID      string `json:"video_id"`
	ViewCount    int64  `json:"view_count"`
	LikeCount    int64  `json:"like_count"`
	CommentCount int64  `json:"comment_count"`
}

type YoutubeCategory struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}
