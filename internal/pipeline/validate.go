package pipeline

import (
	"errors"
	"fmt"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/matchers"
	"github.com/h2non/filetype/types"
)

// Carousel bounds for Instagram multi-image posts.
const (
	CarouselMin = 2
	CarouselMax = 10
)

var (
	ErrNotJPEG          = errors.New("Instagram images must be JPEG")
	ErrNotVideo         = errors.New("file must be a video")
	ErrCarouselTooSmall = fmt.Errorf("a carousel needs at least %d images", CarouselMin)
)

// ValidateInstagramImage checks the feed-image rules: sniffed content
// must be JPEG.
func ValidateInstagramImage(content []byte) error {
	if len(content) == 0 {
		return errors.New("file is empty")
	}
	kind, err := filetype.Match(content)
	if err != nil || kind == types.Unknown {
		return errors.New("unsupported file type")
	}
	if kind != matchers.TypeJpeg {
		return ErrNotJPEG
	}
	return nil
}

// ValidateVideo checks that the content sniffs as video and, when
// maxSize > 0, fits under it. A file exactly at the limit passes.
func ValidateVideo(content []byte, maxSize int64) error {
	if len(content) == 0 {
		return errors.New("file is empty")
	}
	kind, err := filetype.Match(content)
	if err != nil || kind.MIME.Type != "video" {
		return ErrNotVideo
	}
	if maxSize > 0 && int64(len(content)) > maxSize {
		return fmt.Errorf("video exceeds the %d byte limit", maxSize)
	}
	return nil
}

// ValidateSize enforces a byte ceiling. Exactly at the limit is
// accepted; one byte over is not.
func ValidateSize(content []byte, maxSize int64) error {
	if int64(len(content)) > maxSize {
		return fmt.Errorf("file exceeds the %d byte limit", maxSize)
	}
	return nil
}
