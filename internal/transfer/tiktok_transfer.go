package transfer

type TiktokAccountInfo struct {
	OpenID         string `json:"open_id"`
	Username       string `json:"username"`
	DisplayName    string `json:"display_name"`
	AvatarURL      string `json:"avatar_url"`
	FollowerCount  int64  `json:"follower_count"`
	FollowingCount int64  `json:"following_count"`
	LikesCount     int64  `json:"likes_count"`
	VideoCount     int64  `json:"video_count"`
}

type TiktokCreatorInfo struct {
	CreatorUsername      string   `json:"creator_username"`
	CreatorNickname      string   `json:"creator_nickname"`
	PrivacyLevelOptions  []string `json:"privacy_level_options"`
	CommentDisabled      bool     `json:"comment_disabled"`
	DuetDisabled         bool     `json:"duet_disabled"`
	StitchDisabled       bool     `json:"stitch_disabled"`
	MaxVideoPostDuration int      `json:"max_video_post_duration_sec"`
}

// TiktokVideoPost carries the form fields sent alongside a video upload
// or URL publish.
type TiktokVideoPost struct {
	Title          string
	PrivacyLevel   string
	DisableComment bool
	DisableDuet    bool
	DisableStitch  bool
	VideoURL       string
}

type TiktokPublishResponse struct {
	Success   bool   `json:"success"`
	PublishID string `json:"publish_id"`
	Message   string `json:"message"`
}

type TiktokPublishStatus struct {
	PublishID     string `json:"publish_id"`
	Status        string `json:"status"`
	FailReason    string `json:"fail_reason"`
	PublicPostIDs []int64 `json:"publicaly_available_post_id"`
}
