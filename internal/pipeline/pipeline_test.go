package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	config "github.com/maheshrc27/clipdash/configs"
	"github.com/maheshrc27/clipdash/internal/models"
	"github.com/maheshrc27/clipdash/internal/notify"
	"github.com/maheshrc27/clipdash/internal/rest"
	"github.com/maheshrc27/clipdash/internal/service"
	"github.com/maheshrc27/clipdash/internal/session"
	"github.com/maheshrc27/clipdash/internal/store"
	"github.com/maheshrc27/clipdash/internal/transfer"
)

// fakeBackend is a minimal dashboard API covering the upload and
// publish endpoints the pipeline touches.
type fakeBackend struct {
	t *testing.T

	uploads   atomic.Int64
	published atomic.Int64

	// observed state at the moment the social post was created
	progressAtPublish int
	stageAtPublish    Stage
	sess              *Session
}

func (b *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /media/upload", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(b.t, r.ParseMultipartForm(32<<20))
		id := b.uploads.Add(1)
		json.NewEncoder(w).Encode(transfer.MediaUploadResponse{
			MediaID: id,
			Status:  models.MediaStatusProcessing,
		})
	})

	mux.HandleFunc("POST /social/", func(w http.ResponseWriter, r *http.Request) {
		var pc transfer.SocialPostCreation
		require.NoError(b.t, json.NewDecoder(r.Body).Decode(&pc))
		assert.Equal(b.t, models.PlatformInstagram, pc.Platform)

		if b.sess != nil {
			b.progressAtPublish = b.sess.Progress()
			b.stageAtPublish = b.sess.Stage()
		}

		json.NewEncoder(w).Encode(models.SocialPost{
			ID:       99,
			Platform: pc.Platform,
			Caption:  pc.Caption,
			Status:   "draft",
		})
	})

	mux.HandleFunc("POST /social/99/publish", func(w http.ResponseWriter, r *http.Request) {
		b.published.Add(1)
		json.NewEncoder(w).Encode(transfer.PublishResponse{
			PostID:         99,
			Status:         "published",
			PlatformPostID: "ig_17890",
			PlatformURL:    "https://instagram.com/p/abc123",
		})
	})

	return mux
}

func newTestPipeline(t *testing.T, serverURL string) (*Pipeline, *store.Store) {
	t.Helper()

	sess, err := session.NewStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)
	require.NoError(t, sess.Save("test-token", nil))

	st := store.New(sess)
	cfg := config.Config{
		APIBaseURL:     serverURL,
		RequestTimeout: 5 * time.Second,
		UploadTimeout:  5 * time.Second,
	}
	client := rest.NewClient(cfg, sess, notify.Nop{}, nil)

	media := service.NewMediaService(client, st)
	social := service.NewSocialService(client, st)
	yt := service.NewYoutubeService(client)
	tt := service.NewTiktokService(client)
	li := service.NewLinkedinService(client)

	return New(media, social, yt, tt, li, notify.Nop{}), st
}

func TestPublishInstagramImageEndToEnd(t *testing.T) {
	backend := &fakeBackend{t: t}
	srv := httptest.NewServer(backend.handler())
	defer srv.Close()

	p, _ := newTestPipeline(t, srv.URL)

	sess, err := NewSession("photo.jpg")
	require.NoError(t, err)
	backend.sess = sess
	assert.Equal(t, StageIdle, sess.Stage())

	var callbacks int
	content := jpegBytes(5 * 1024 * 1024)
	result, err := p.PublishInstagramImage(context.Background(), sess, File{Name: "photo.jpg", Content: content}, "Hello world", []string{"#hello"}, func(r Result) {
		callbacks++
	})
	require.NoError(t, err)

	assert.Equal(t, StageDone, sess.Stage())
	assert.Equal(t, 100, sess.Progress())
	assert.NoError(t, sess.Err())
	assert.Equal(t, 1, callbacks)

	assert.Equal(t, sess.ID, result.SessionID)
	assert.Equal(t, models.PlatformInstagram, result.Platform)
	assert.Equal(t, int64(99), result.PostID)
	assert.Equal(t, "ig_17890", result.PlatformPostID)
	assert.Equal(t, "https://instagram.com/p/abc123", result.URL)

	// Upload must have fully completed before the publish call went out.
	assert.Equal(t, 100, backend.progressAtPublish)
	assert.Equal(t, StagePublishing, backend.stageAtPublish)
	assert.Equal(t, int64(1), backend.uploads.Load())
	assert.Equal(t, int64(1), backend.published.Load())
}

func TestPublishInstagramImageRejectsNonJPEGBeforeUpload(t *testing.T) {
	var requests atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	}))
	defer srv.Close()

	p, _ := newTestPipeline(t, srv.URL)

	sess, err := NewSession("photo.png")
	require.NoError(t, err)

	var callbacks int
	_, err = p.PublishInstagramImage(context.Background(), sess, File{Name: "photo.png", Content: pngBytes(1024)}, "caption", nil, func(Result) {
		callbacks++
	})
	assert.ErrorIs(t, err, ErrNotJPEG)
	assert.Equal(t, 0, callbacks)
	assert.Equal(t, StageIdle, sess.Stage())
	assert.ErrorIs(t, sess.Err(), ErrNotJPEG)
	assert.Equal(t, int64(0), requests.Load())
}

func TestPublishInstagramImageUploadFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	p, _ := newTestPipeline(t, srv.URL)

	sess, err := NewSession("photo.jpg")
	require.NoError(t, err)

	var callbacks int
	_, err = p.PublishInstagramImage(context.Background(), sess, File{Name: "photo.jpg", Content: jpegBytes(1024)}, "caption", nil, func(Result) {
		callbacks++
	})
	require.Error(t, err)
	assert.Equal(t, 0, callbacks)
	assert.Equal(t, StageIdle, sess.Stage())
	assert.Error(t, sess.Err())
}

func TestPublishInstagramCarouselEndToEnd(t *testing.T) {
	backend := &fakeBackend{t: t}
	srv := httptest.NewServer(backend.handler())
	defer srv.Close()

	p, _ := newTestPipeline(t, srv.URL)

	carousel := NewCarousel()
	for i := 0; i < 3; i++ {
		carousel.Add(File{Name: fmt.Sprintf("img%d.jpg", i), Content: jpegBytes(64 * 1024)})
	}

	sess, err := NewSession("img0.jpg")
	require.NoError(t, err)
	backend.sess = sess

	var callbacks int
	_, err = p.PublishInstagramCarousel(context.Background(), sess, carousel, "trip", nil, func(Result) {
		callbacks++
	})
	require.NoError(t, err)

	assert.Equal(t, 1, callbacks)
	assert.Equal(t, StageDone, sess.Stage())
	assert.Equal(t, 100, sess.Progress())
	assert.Equal(t, int64(3), backend.uploads.Load())
	assert.Equal(t, 100, backend.progressAtPublish)
}

func youtubeBackend(t *testing.T, thumbnailStatus int, thumbnailHits *atomic.Int64) http.Handler {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("POST /youtube/upload", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(32<<20))
		assert.Equal(t, "Launch day", r.FormValue("title"))
		json.NewEncoder(w).Encode(transfer.YoutubeUploadResponse{
			Success: true,
			VideoID: "vid42",
			URL:     "https://youtube.com/watch?v=vid42",
		})
	})

	mux.HandleFunc("POST /youtube/videos/vid42/thumbnail", func(w http.ResponseWriter, r *http.Request) {
		thumbnailHits.Add(1)
		if thumbnailStatus != http.StatusOK {
			w.WriteHeader(thumbnailStatus)
			return
		}
		json.NewEncoder(w).Encode(transfer.YoutubeThumbnailResponse{Success: true, VideoID: "vid42"})
	})

	return mux
}

func TestPublishYoutubeVideoWithThumbnail(t *testing.T) {
	var thumbnailHits atomic.Int64
	srv := httptest.NewServer(youtubeBackend(t, http.StatusOK, &thumbnailHits))
	defer srv.Close()

	p, _ := newTestPipeline(t, srv.URL)

	sess, err := NewSession("launch.mp4")
	require.NoError(t, err)

	var callbacks int
	result, err := p.PublishYoutubeVideo(context.Background(), sess,
		File{Name: "launch.mp4", Content: mp4Bytes(256 * 1024)},
		&transfer.VideoUpload{Title: "Launch day"},
		&File{Name: "thumb.jpg", Content: jpegBytes(1024)},
		func(Result) { callbacks++ })
	require.NoError(t, err)

	assert.Equal(t, 1, callbacks)
	assert.Equal(t, StageDone, sess.Stage())
	assert.False(t, result.Degraded)
	assert.Empty(t, result.Warning)
	assert.Equal(t, "vid42", result.PlatformPostID)
	assert.Equal(t, int64(1), thumbnailHits.Load())
}

func TestPublishYoutubeVideoThumbnailFailureIsDegradedSuccess(t *testing.T) {
	var thumbnailHits atomic.Int64
	srv := httptest.NewServer(youtubeBackend(t, http.StatusInternalServerError, &thumbnailHits))
	defer srv.Close()

	p, _ := newTestPipeline(t, srv.URL)

	sess, err := NewSession("launch.mp4")
	require.NoError(t, err)

	var callbacks int
	result, err := p.PublishYoutubeVideo(context.Background(), sess,
		File{Name: "launch.mp4", Content: mp4Bytes(256 * 1024)},
		&transfer.VideoUpload{Title: "Launch day"},
		&File{Name: "thumb.jpg", Content: jpegBytes(1024)},
		func(Result) { callbacks++ })

	// The video landed, so the run still completes and reports success,
	// just with the thumbnail failure flagged.
	require.NoError(t, err)
	assert.Equal(t, 1, callbacks)
	assert.Equal(t, StageDone, sess.Stage())
	assert.Equal(t, 100, sess.Progress())
	assert.True(t, result.Degraded)
	assert.NotEmpty(t, result.Warning)
	assert.Equal(t, "vid42", result.PlatformPostID)
	assert.Equal(t, "https://youtube.com/watch?v=vid42", result.URL)
	assert.Equal(t, int64(1), thumbnailHits.Load())
}

func TestPublishYoutubeVideoRejectsOversizedThumbnail(t *testing.T) {
	var requests atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	}))
	defer srv.Close()

	p, _ := newTestPipeline(t, srv.URL)

	sess, err := NewSession("launch.mp4")
	require.NoError(t, err)

	_, err = p.PublishYoutubeVideo(context.Background(), sess,
		File{Name: "launch.mp4", Content: mp4Bytes(1024)},
		&transfer.VideoUpload{Title: "Launch day"},
		&File{Name: "thumb.jpg", Content: jpegBytes(service.MaxThumbnailSize + 1)},
		nil)
	require.Error(t, err)
	assert.Equal(t, StageIdle, sess.Stage())
	assert.Equal(t, int64(0), requests.Load())
}

func TestPublishInstagramCarouselRejectsSingleImage(t *testing.T) {
	var requests atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	}))
	defer srv.Close()

	p, _ := newTestPipeline(t, srv.URL)

	carousel := NewCarousel()
	carousel.Add(File{Name: "only.jpg", Content: jpegBytes(1024)})

	sess, err := NewSession("only.jpg")
	require.NoError(t, err)

	_, err = p.PublishInstagramCarousel(context.Background(), sess, carousel, "", nil, nil)
	assert.ErrorIs(t, err, ErrCarouselTooSmall)
	assert.Equal(t, int64(0), requests.Load())
}
