package rest

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	config "github.com/maheshrc27/clipdash/configs"
	"github.com/maheshrc27/clipdash/internal/session"
)

type recordingNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (n *recordingNotifier) record(msg string) {
	n.mu.Lock()
	n.messages = append(n.messages, msg)
	n.mu.Unlock()
}

func (n *recordingNotifier) Info(msg string)    { n.record(msg) }
func (n *recordingNotifier) Success(msg string) { n.record(msg) }
func (n *recordingNotifier) Error(msg string)   { n.record(msg) }

func (n *recordingNotifier) all() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, len(n.messages))
	copy(out, n.messages)
	return out
}

func newTestClient(t *testing.T, serverURL string, onLogout func()) (*Client, *session.Store, *recordingNotifier) {
	t.Helper()

	sess, err := session.NewStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)

	notifier := &recordingNotifier{}
	cfg := config.Config{
		APIBaseURL:     serverURL,
		RequestTimeout: 5 * time.Second,
		UploadTimeout:  5 * time.Second,
	}
	return NewClient(cfg, sess, notifier, onLogout), sess, notifier
}

func TestGetDecodesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/things", r.URL.Path)
		w.Write([]byte(`{"name":"clip"}`))
	}))
	defer srv.Close()

	client, _, _ := newTestClient(t, srv.URL, nil)

	var out struct {
		Name string `json:"name"`
	}
	err := client.Get(context.Background(), "/things", &out)
	require.NoError(t, err)
	assert.Equal(t, "clip", out.Name)
}

func TestAuthorizationHeaderFromSession(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client, sess, _ := newTestClient(t, srv.URL, nil)
	require.NoError(t, sess.Save("token-abc", nil))

	require.NoError(t, client.Get(context.Background(), "/", nil))
	assert.Equal(t, "Bearer token-abc", gotAuth)
}

func TestUnauthorizedLogsOutExactlyOnce(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	var logouts int
	client, sess, notifier := newTestClient(t, srv.URL, func() { logouts++ })
	require.NoError(t, sess.Save("stale-token", nil))

	for i := 0; i < 3; i++ {
		err := client.Get(context.Background(), "/", nil)
		assert.True(t, IsStatus(err, http.StatusUnauthorized))
	}

	assert.Equal(t, 1, logouts)
	assert.Empty(t, sess.Token())

	expired := 0
	for _, msg := range notifier.all() {
		if msg == "Your session has expired. Please log in again." {
			expired++
		}
	}
	assert.Equal(t, 1, expired)
}

func TestUnauthorizedWithoutSessionIsSilent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	var logouts int
	client, sess, notifier := newTestClient(t, srv.URL, func() { logouts++ })

	// No credentials were ever stored; a 401 is just an error.
	err := client.Get(context.Background(), "/", nil)
	assert.True(t, IsStatus(err, http.StatusUnauthorized))
	assert.Equal(t, 0, logouts)
	assert.Empty(t, notifier.all())

	// Once a session exists the forced logout applies as usual.
	require.NoError(t, sess.Save("tok", nil))
	err = client.Get(context.Background(), "/", nil)
	assert.True(t, IsStatus(err, http.StatusUnauthorized))
	assert.Equal(t, 1, logouts)
	assert.Contains(t, notifier.all(), "Your session has expired. Please log in again.")
}

func TestLogoutHookRearmsAfterSuccess(t *testing.T) {
	var unauthorized bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if unauthorized {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	var logouts int
	client, sess, _ := newTestClient(t, srv.URL, func() { logouts++ })
	require.NoError(t, sess.Save("tok-1", nil))

	unauthorized = true
	client.Get(context.Background(), "/", nil)
	assert.Equal(t, 1, logouts)

	unauthorized = false
	require.NoError(t, client.Get(context.Background(), "/", nil))

	// A fresh login followed by another expiry triggers the hook again.
	require.NoError(t, sess.Save("tok-2", nil))
	unauthorized = true
	client.Get(context.Background(), "/", nil)
	assert.Equal(t, 2, logouts)
}

func TestPayloadTooLargeNotification(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusRequestEntityTooLarge)
	}))
	defer srv.Close()

	client, _, notifier := newTestClient(t, srv.URL, nil)

	err := client.Post(context.Background(), "/upload", map[string]string{}, nil)
	assert.True(t, IsStatus(err, http.StatusRequestEntityTooLarge))
	assert.Contains(t, notifier.all(), "File is too large to upload.")
}

func TestAPIErrorCarriesDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail":"start time must be before end time"}`))
	}))
	defer srv.Close()

	client, _, _ := newTestClient(t, srv.URL, nil)

	err := client.Get(context.Background(), "/", nil)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "start time must be before end time", apiErr.Detail)
}

func TestQuietSuppressesGenericNotification(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client, _, notifier := newTestClient(t, srv.URL, nil)

	err := client.Get(context.Background(), "/", nil, Quiet())
	assert.True(t, IsStatus(err, http.StatusInternalServerError))
	assert.Empty(t, notifier.all())
}

func TestTimeoutMapsToErrTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	sess, err := session.NewStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)

	notifier := &recordingNotifier{}
	cfg := config.Config{
		APIBaseURL:     srv.URL,
		RequestTimeout: 50 * time.Millisecond,
		UploadTimeout:  50 * time.Millisecond,
	}
	client := NewClient(cfg, sess, notifier, nil)

	err = client.Get(context.Background(), "/", nil)
	assert.ErrorIs(t, err, ErrTimeout)
	assert.Contains(t, notifier.all(), "Slow connection. The request took too long, please try again.")
}

func TestUploadReportsMonotonicProgress(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "demo", r.FormValue("kind"))
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	client, _, _ := newTestClient(t, srv.URL, nil)

	var pcts []int
	content := make([]byte, 256*1024)
	files := []File{{Field: "file", Name: "video.mp4", ContentType: "video/mp4", Content: content}}

	err := client.Upload(context.Background(), "/upload", map[string]string{"kind": "demo"}, files, nil, func(pct int) {
		pcts = append(pcts, pct)
	})
	require.NoError(t, err)
	require.NotEmpty(t, pcts)

	for i := 1; i < len(pcts); i++ {
		assert.GreaterOrEqual(t, pcts[i], pcts[i-1])
	}
	assert.Equal(t, 100, pcts[len(pcts)-1])
}

func TestProgressReaderClampsAt100(t *testing.T) {
	var pcts []int
	// Understate the total so the raw calculation would exceed 100.
	r := newProgressReader(bytes.NewReader(make([]byte, 300)), 200, func(pct int) {
		pcts = append(pcts, pct)
	})
	_, err := io.Copy(io.Discard, r)
	require.NoError(t, err)
	require.NotEmpty(t, pcts)
	assert.Equal(t, 100, pcts[len(pcts)-1])
	for _, p := range pcts {
		assert.LessOrEqual(t, p, 100)
	}
}
