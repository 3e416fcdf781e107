package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeStringList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"valid list", `["#go","#clips"]`, []string{"#go", "#clips"}},
		{"empty string", "", []string{}},
		{"empty list", `[]`, []string{}},
		{"json null", `null`, []string{}},
		{"malformed json", `{"oops`, []string{}},
		{"wrong type", `"just a string"`, []string{}},
		{"list of numbers", `[1,2]`, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeStringList(tt.raw))
		})
	}
}

func TestClipHashtagList(t *testing.T) {
	clip := Clip{Hashtags: `["#a","#b"]`, Tags: "not json"}
	assert.Equal(t, []string{"#a", "#b"}, clip.HashtagList())
	assert.Equal(t, []string{}, clip.TagList())
}

func TestIsKnownPlatform(t *testing.T) {
	for _, p := range []string{PlatformInstagram, PlatformYoutube, PlatformTiktok, PlatformLinkedin, PlatformTwitter} {
		assert.True(t, IsKnownPlatform(p))
	}
	assert.False(t, IsKnownPlatform("myspace"))
	assert.False(t, IsKnownPlatform(""))
}
