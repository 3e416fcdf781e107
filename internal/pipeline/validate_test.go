package pipeline

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jpegBytes(size int) []byte {
	b := make([]byte, size)
	copy(b, []byte{0xFF, 0xD8, 0xFF, 0xE0})
	return b
}

func pngBytes(size int) []byte {
	b := make([]byte, size)
	copy(b, []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A})
	return b
}

func mp4Bytes(size int) []byte {
	b := make([]byte, size)
	copy(b, []byte{0x00, 0x00, 0x00, 0x18, 'f', 't', 'y', 'p', 'i', 's', 'o', 'm'})
	return b
}

func TestValidateInstagramImage(t *testing.T) {
	assert.NoError(t, ValidateInstagramImage(jpegBytes(64)))
	assert.ErrorIs(t, ValidateInstagramImage(pngBytes(64)), ErrNotJPEG)
	assert.Error(t, ValidateInstagramImage(nil))
	assert.Error(t, ValidateInstagramImage([]byte("plain text, not an image")))
}

func TestValidateVideo(t *testing.T) {
	assert.NoError(t, ValidateVideo(mp4Bytes(1024), 0))
	assert.ErrorIs(t, ValidateVideo(jpegBytes(1024), 0), ErrNotVideo)
	assert.Error(t, ValidateVideo(nil, 0))
}

func TestValidateVideoSizeBoundary(t *testing.T) {
	limit := int64(2048)
	assert.NoError(t, ValidateVideo(mp4Bytes(int(limit)), limit))
	assert.Error(t, ValidateVideo(mp4Bytes(int(limit)+1), limit))
}

func TestValidateSizeBoundary(t *testing.T) {
	limit := int64(10 * 1024 * 1024)
	assert.NoError(t, ValidateSize(make([]byte, limit), limit))
	assert.Error(t, ValidateSize(make([]byte, limit+1), limit))
	assert.NoError(t, ValidateSize(nil, limit))
}

func TestCarouselAddTruncates(t *testing.T) {
	files := make([]File, 12)
	for i := range files {
		files[i] = File{Name: fmt.Sprintf("img%d.jpg", i), Content: jpegBytes(32)}
	}

	c := NewCarousel()
	accepted := c.Add(files...)
	assert.Equal(t, CarouselMax, accepted)
	assert.Equal(t, CarouselMax, c.Count())

	// A full carousel takes nothing more.
	assert.Equal(t, 0, c.Add(File{Name: "extra.jpg", Content: jpegBytes(32)}))
	assert.Equal(t, CarouselMax, c.Count())
}

func TestCarouselAddPartialRoom(t *testing.T) {
	c := NewCarousel()
	first := make([]File, 9)
	for i := range first {
		first[i] = File{Content: jpegBytes(32)}
	}
	require.Equal(t, 9, c.Add(first...))

	// Three offered, one slot left.
	assert.Equal(t, 1, c.Add(File{Content: jpegBytes(32)}, File{Content: jpegBytes(32)}, File{Content: jpegBytes(32)}))
	assert.Equal(t, CarouselMax, c.Count())
}

func TestCarouselValidateBounds(t *testing.T) {
	empty := NewCarousel()
	assert.ErrorIs(t, empty.validate(), ErrCarouselTooSmall)

	single := NewCarousel()
	single.Add(File{Content: jpegBytes(32)})
	assert.ErrorIs(t, single.validate(), ErrCarouselTooSmall)

	pair := NewCarousel()
	pair.Add(File{Content: jpegBytes(32)}, File{Content: jpegBytes(32)})
	assert.NoError(t, pair.validate())

	full := NewCarousel()
	for i := 0; i < CarouselMax; i++ {
		full.Add(File{Content: jpegBytes(32)})
	}
	assert.NoError(t, full.validate())
}

func TestCarouselValidateRejectsNonJPEG(t *testing.T) {
	c := NewCarousel()
	c.Add(File{Content: jpegBytes(32)}, File{Content: pngBytes(32)})
	assert.ErrorIs(t, c.validate(), ErrNotJPEG)
}

func TestSessionProgressNeverDecreases(t *testing.T) {
	sess, err := NewSession("video.mp4")
	require.NoError(t, err)

	sess.setProgress(40)
	sess.setProgress(20)
	assert.Equal(t, 40, sess.Progress())

	sess.setProgress(250)
	assert.Equal(t, 100, sess.Progress())
}
