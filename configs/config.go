package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	APIBaseURL     string
	APIVersion     string
	RequestTimeout time.Duration
	UploadTimeout  time.Duration
	CallbackPort   int
	AllowedOrigins []string
	SessionFile    string
}

func LoadConfig() *Config {
	return &Config{
		APIBaseURL:     getEnv("CLIPDASH_API_URL", "http://localhost:8000"),
		APIVersion:     getEnv("CLIPDASH_API_VERSION", "/api/v1"),
		RequestTimeout: getDuration("CLIPDASH_REQUEST_TIMEOUT", 30*time.Second),
		UploadTimeout:  getDuration("CLIPDASH_UPLOAD_TIMEOUT", 600*time.Second),
		CallbackPort:   getInt("CLIPDASH_CALLBACK_PORT", 5173),
		AllowedOrigins: getList("CLIPDASH_OAUTH_ALLOWED_ORIGINS", []string{"http://localhost:8000", "http://localhost:5173"}),
		SessionFile:    getEnv("CLIPDASH_SESSION_FILE", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getList(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return defaultValue
}
