package transfer

type InstagramAccountInfo struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Name           string `json:"name"`
	ProfilePicture string `json:"profile_picture_url"`
	FollowersCount int64  `json:"followers_count"`
	FollowsCount   int64  `json:"follows_count"`
	MediaCount     int64  `json:"media_count"`
}

type InstagramMedia struct {
	ID           string `json:"id"`
	Caption      string `json:"caption"`
	MediaType    string `json:"media_type"`
	MediaURL     string `json:"media_url"`
	Permalink    string `json:"permalink"`
	ThumbnailURL string `json:"thumbnail_url"`
	Timestamp    string `json:"timestamp"`
	LikeCount    int64  `json:"like_count"`
	CommentCount int64  `json:"comments_count"`
}

type InstagramMediaList struct {
	Data []InstagramMedia `json:"data"`
}

type InstagramComment struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Username  string `json:"username"`
	Timestamp string `json:"timestamp"`
	LikeCount int64  `json:"like_count"`
	Hidden    bool   `json:"hidden"`
}

type InstagramCommentList struct {
	Data []InstagramComment `json:"data"`
}

type InstagramInsight struct {
	Name   string `json:"name"`
	Period string `json:"period"`
	Values []struct {
		Value   int64  `json:"value"`
		EndTime string `json:"end_time"`
	} `json:"values"`
}

type InstagramInsightList struct {
	Data []InstagramInsight `json:"data"`
}

type InstagramConversation struct {
	ID          string `json:"id"`
	UpdatedTime string `json:"updated_time"`
}

type InstagramMessage struct {
	ID          string `json:"id"`
	Message     string `json:"message"`
	CreatedTime string `json:"created_time"`
	From        struct {
		ID       string `json:"id"`
		Username string `json:"username"`
	} `json:"from"`
}
