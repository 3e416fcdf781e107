package models

import "time"

type Account struct {
	ID              int64                  `json:"id"`
	Platform        string                 `json:"platform"`
	AccountUsername string                 `json:"account_username"`
	IsActive        bool                   `json:"is_active"`
	ConnectedAt     time.Time              `json:"connected_at"`
	TokenExpiresAt  *time.Time             `json:"token_expires_at"`
	MetaInfo        map[string]interface{} `json:"meta_info"`
}

const (
	PlatformInstagram = "instagram"
	PlatformYoutube   = "youtube"
	PlatformTiktok    = "tiktok"
	PlatformLinkedin  = "linkedin"
	PlatformTwitter   = "twitter"
)

func IsKnownPlatform(platform string) bool {
	switch platform {
	case PlatformInstagram, PlatformYoutube, PlatformTiktok, PlatformLinkedin, PlatformTwitter:
		return true
	}
	return false
}
