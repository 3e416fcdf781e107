package transfer

type AuthorizeResponse struct {
	AuthorizationURL string `json:"authorization_url"`
	State            string `json:"state"`
}

const (
	OAuthMessageSuccess = "OAUTH_SUCCESS"
	OAuthMessageError   = "OAUTH_ERROR"
)

// OAuthResult is the completion message the callback window reports
// back with.
type OAuthResult struct {
	Type     string `json:"type"`
	Platform string `json:"platform"`
	Error    string `json:"error,omitempty"`
}

type OAuthStatus struct {
	Platform  string `json:"platform"`
	Connected bool   `json:"connected"`
	Username  string `json:"username"`
	ExpiresAt string `json:"expires_at"`
}
