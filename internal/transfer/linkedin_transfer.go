package transfer

type LinkedinProfile struct {
	URN            string `json:"urn"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Headline       string `json:"headline"`
	ProfilePicture string `json:"profile_picture"`
}

type LinkedinOrganization struct {
	URN  string `json:"urn"`
	Name string `json:"name"`
}

type LinkedinTextPost struct {
	Text       string `json:"text"`
	AuthorURN  string `json:"author_urn,omitempty"`
	Visibility string `json:"visibility,omitempty"`
}

type LinkedinArticlePost struct {
	Text        string `json:"text"`
	ArticleURL  string `json:"article_url"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	AuthorURN   string `json:"author_urn,omitempty"`
	Visibility  string `json:"visibility,omitempty"`
}

// LinkedinMediaPost carries the form fields for image and video posts.
type LinkedinMediaPost struct {
	Text       string
	Title      string
	AltText    string
	AuthorURN  string
	Visibility string
}

type LinkedinPostResponse struct {
	Success  bool   `json:"success"`
	PostURN  string `json:"post_urn"`
	ImageURN string `json:"image_urn"`
	VideoURN string `json:"video_urn"`
	PostURL  string `json:"post_url"`
}
