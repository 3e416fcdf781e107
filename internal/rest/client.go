package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net"
	"net/http"
	"net/textproto"
	"strings"
	"sync"

	config "github.com/maheshrc27/clipdash/configs"
	"github.com/maheshrc27/clipdash/internal/notify"
	"github.com/maheshrc27/clipdash/internal/session"
)

// Client is the shared HTTP wrapper every service goes through. It
// attaches the bearer token from the session store, maps failure
// statuses to notifications and returns the error to the caller so
// specific failures stay branchable.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	uploadClient *http.Client
	session      *session.Store
	notifier     notify.Notifier
	onLogout     func()

	mu        sync.Mutex
	loggedOut bool
}

func NewClient(cfg config.Config, s *session.Store, n notify.Notifier, onLogout func()) *Client {
	return &Client{
		baseURL:      strings.TrimSuffix(cfg.APIBaseURL, "/") + cfg.APIVersion,
		httpClient:   &http.Client{Timeout: cfg.RequestTimeout},
		uploadClient: &http.Client{Timeout: cfg.UploadTimeout},
		session:      s,
		notifier:     n,
		onLogout:     onLogout,
	}
}

type requestOptions struct {
	quiet bool
}

type Option func(*requestOptions)

// Quiet suppresses the generic failure notifications for a call.
// Timeout and 401 handling still apply.
func Quiet() Option {
	return func(o *requestOptions) {
		o.quiet = true
	}
}

func (c *Client) Get(ctx context.Context, path string, out interface{}, opts ...Option) error {
	return c.do(ctx, http.MethodGet, path, nil, "", out, opts)
}

func (c *Client) Post(ctx context.Context, path string, body interface{}, out interface{}, opts ...Option) error {
	raw, err := encodeBody(body)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, raw, "application/json", out, opts)
}

func (c *Client) Put(ctx context.Context, path string, body interface{}, out interface{}, opts ...Option) error {
	raw, err := encodeBody(body)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, path, raw, "application/json", out, opts)
}

func (c *Client) Delete(ctx context.Context, path string, opts ...Option) error {
	return c.do(ctx, http.MethodDelete, path, nil, "", nil, opts)
}

// File is a part of a multipart upload request.
type File struct {
	Field       string
	Name        string
	ContentType string
	Content     []byte
}

// Upload sends a multipart request through the long-timeout client,
// reporting progress as the body is written out.
func (c *Client) Upload(ctx context.Context, path string, fields map[string]string, files []File, out interface{}, progress ProgressFunc, opts ...Option) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return fmt.Errorf("error writing form field: %w", err)
		}
	}

	for _, file := range files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, file.Field, file.Name))
		if file.ContentType != "" {
			header.Set("Content-Type", file.ContentType)
		}
		part, err := writer.CreatePart(header)
		if err != nil {
			return fmt.Errorf("error creating form part: %w", err)
		}
		if _, err := part.Write(file.Content); err != nil {
			return fmt.Errorf("error writing file content: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("error finalizing multipart body: %w", err)
	}

	total := int64(buf.Len())
	body := newProgressReader(&buf, total, progress)

	options := collectOptions(opts)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	req.ContentLength = total
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.setAuth(req)

	resp, err := c.uploadClient.Do(req)
	if err != nil {
		return c.transportError(err, options)
	}
	defer resp.Body.Close()

	return c.handleResponse(resp, out, options)
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, contentType string, out interface{}, opts []Option) error {
	options := collectOptions(opts)

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	c.setAuth(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.transportError(err, options)
	}
	defer resp.Body.Close()

	return c.handleResponse(resp, out, options)
}

func (c *Client) setAuth(req *http.Request) {
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

func (c *Client) transportError(err error, options requestOptions) error {
	if isTimeout(err) {
		c.notifier.Error("Slow connection. The request took too long, please try again.")
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	if !options.quiet {
		c.notifier.Error("Network error. Check your connection and try again.")
	}
	return fmt.Errorf("request failed: %w", err)
}

func (c *Client) handleResponse(resp *http.Response, out interface{}, options requestOptions) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		c.markActive()
		if out == nil || resp.StatusCode == http.StatusNoContent {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			slog.Info(err.Error())
			return fmt.Errorf("error decoding response: %w", err)
		}
		return nil
	}

	apiErr := &APIError{StatusCode: resp.StatusCode, Detail: decodeDetail(resp.Body)}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		c.forceLogout()
	case resp.StatusCode == http.StatusRequestEntityTooLarge:
		c.notifier.Error("File is too large to upload.")
	case resp.StatusCode == http.StatusForbidden,
		resp.StatusCode == http.StatusNotFound,
		resp.StatusCode >= 500:
		if !options.quiet {
			c.notifier.Error("Something went wrong. Please try again later.")
		}
	}

	return apiErr
}

// forceLogout clears the stored credentials and fires the logout hook
// once. Further 401s are swallowed until the next successful request so
// a burst of expired calls cannot loop the redirect.
func (c *Client) forceLogout() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loggedOut {
		return
	}
	// A 401 on an anonymous call has no credentials to clear and no
	// session to report as expired.
	if c.session.Token() == "" {
		return
	}
	c.loggedOut = true

	if err := c.session.Clear(); err != nil {
		slog.Info(err.Error())
	}
	c.notifier.Error("Your session has expired. Please log in again.")
	if c.onLogout != nil {
		c.onLogout()
	}
}

func (c *Client) markActive() {
	c.mu.Lock()
	c.loggedOut = false
	c.mu.Unlock()
}

func collectOptions(opts []Option) requestOptions {
	var options requestOptions
	for _, opt := range opts {
		opt(&options)
	}
	return options
}

func encodeBody(body interface{}) ([]byte, error) {
	if body == nil {
		return nil, nil
	}
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("error marshalling payload: %w", err)
	}
	return raw, nil
}

func decodeDetail(r io.Reader) string {
	raw, err := io.ReadAll(r)
	if err != nil {
		return ""
	}
	var payload struct {
		Detail string `json:"detail"`
		Error  string `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return strings.TrimSpace(string(raw))
	}
	if payload.Detail != "" {
		return payload.Detail
	}
	return payload.Error
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
