package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, "http://localhost:8000", cfg.APIBaseURL)
	assert.Equal(t, "/api/v1", cfg.APIVersion)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 600*time.Second, cfg.UploadTimeout)
	assert.Equal(t, 5173, cfg.CallbackPort)
	assert.NotEmpty(t, cfg.AllowedOrigins)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("CLIPDASH_API_URL", "https://api.example.com")
	t.Setenv("CLIPDASH_REQUEST_TIMEOUT", "10s")
	t.Setenv("CLIPDASH_CALLBACK_PORT", "9999")
	t.Setenv("CLIPDASH_OAUTH_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg := LoadConfig()

	assert.Equal(t, "https://api.example.com", cfg.APIBaseURL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 9999, cfg.CallbackPort)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.AllowedOrigins)
}

func TestLoadConfigIgnoresBadValues(t *testing.T) {
	t.Setenv("CLIPDASH_REQUEST_TIMEOUT", "soon")
	t.Setenv("CLIPDASH_CALLBACK_PORT", "not-a-port")

	cfg := LoadConfig()
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 5173, cfg.CallbackPort)
}
