package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/h2non/filetype"
	"github.com/maheshrc27/clipdash/internal/rest"
	"github.com/maheshrc27/clipdash/internal/transfer"
)

// MaxTiktokVideoSize is TikTok's direct-upload ceiling.
const MaxTiktokVideoSize = 4 * 1024 * 1024 * 1024 // 4GB

type TiktokService interface {
	Account(ctx context.Context) (*transfer.TiktokAccountInfo, error)
	CreatorInfo(ctx context.Context) (*transfer.TiktokCreatorInfo, error)
	PublishVideoFromURL(ctx context.Context, post *transfer.TiktokVideoPost) (*transfer.TiktokPublishResponse, error)
	UploadVideo(ctx context.Context, filename string, content []byte, post *transfer.TiktokVideoPost, progress rest.ProgressFunc) (*transfer.TiktokPublishResponse, error)
	PublishPhotos(ctx context.Context, title string, photoURLs []string) (*transfer.TiktokPublishResponse, error)
	PublishStoryFromURL(ctx context.Context, videoURL string) (*transfer.TiktokPublishResponse, error)
	UploadStory(ctx context.Context, filename string, content []byte, progress rest.ProgressFunc) (*transfer.TiktokPublishResponse, error)
	PublishStatus(ctx context.Context, publishID string) (*transfer.TiktokPublishStatus, error)
}

type tiktokService struct {
	client *rest.Client
}

func NewTiktokService(client *rest.Client) TiktokService {
	return &tiktokService{client: client}
}

func (tt *tiktokService) Account(ctx context.Context) (*transfer.TiktokAccountInfo, error) {
	var info transfer.TiktokAccountInfo
	if err := tt.client.Get(ctx, "/tiktok/account", &info); err != nil {
		return nil, fmt.Errorf("error fetching TikTok account: %w", err)
	}
	return &info, nil
}

// CreatorInfo returns posting constraints for the connected creator.
// TikTok requires consulting it before every publish.
func (tt *tiktokService) CreatorInfo(ctx context.Context) (*transfer.TiktokCreatorInfo, error) {
	var info transfer.TiktokCreatorInfo
	if err := tt.client.Get(ctx, "/tiktok/creator-info", &info); err != nil {
		return nil, fmt.Errorf("error fetching creator info: %w", err)
	}
	return &info, nil
}

func (tt *tiktokService) PublishVideoFromURL(ctx context.Context, post *transfer.TiktokVideoPost) (*transfer.TiktokPublishResponse, error) {
	if post == nil || post.VideoURL == "" {
		err := errors.New("video URL is required")
		slog.Info(err.Error())
		return nil, err
	}

	payload := map[string]interface{}{
		"title":           post.Title,
		"privacy_level":   post.PrivacyLevel,
		"disable_comment": post.DisableComment,
		"disable_duet":    post.DisableDuet,
		"disable_stitch":  post.DisableStitch,
		"video_url":       post.VideoURL,
	}

	var resp transfer.TiktokPublishResponse
	if err := tt.client.Post(ctx, "/tiktok/publish/video/url", payload, &resp); err != nil {
		return nil, fmt.Errorf("error publishing TikTok video: %w", err)
	}
	return &resp, nil
}

func (tt *tiktokService) UploadVideo(ctx context.Context, filename string, content []byte, post *transfer.TiktokVideoPost, progress rest.ProgressFunc) (*transfer.TiktokPublishResponse, error) {
	if post == nil {
		return nil, errors.New("video post data is nil")
	}
	if int64(len(content)) > MaxTiktokVideoSize {
		err := errors.New("video exceeds TikTok's 4GB limit")
		slog.Info(err.Error())
		return nil, err
	}

	kind, err := filetype.Match(content)
	if err != nil || kind.MIME.Type != "video" {
		return nil, errors.New("file must be a video")
	}

	fields := map[string]string{
		"title":           post.Title,
		"privacy_level":   post.PrivacyLevel,
		"disable_comment": strconv.FormatBool(post.DisableComment),
		"disable_duet":    strconv.FormatBool(post.DisableDuet),
		"disable_stitch":  strconv.FormatBool(post.DisableStitch),
	}

	var resp transfer.TiktokPublishResponse
	files := []rest.File{{
		Field:       "file",
		Name:        filename,
		ContentType: kind.MIME.Value,
		Content:     content,
	}}
	if err := tt.client.Upload(ctx, "/tiktok/upload/video", fields, files, &resp, progress); err != nil {
		return nil, fmt.Errorf("error uploading TikTok video: %w", err)
	}
	return &resp, nil
}

func (tt *tiktokService) PublishPhotos(ctx context.Context, title string, photoURLs []string) (*transfer.TiktokPublishResponse, error) {
	if len(photoURLs) == 0 {
		err := errors.New("no photos provided")
		slog.Info(err.Error())
		return nil, err
	}

	payload := map[string]interface{}{
		"title":      title,
		"photo_urls": photoURLs,
	}

	var resp transfer.TiktokPublishResponse
	if err := tt.client.Post(ctx, "/tiktok/publish/photo", payload, &resp); err != nil {
		return nil, fmt.Errorf("error publishing TikTok photos: %w", err)
	}
	return &resp, nil
}

func (tt *tiktokService) PublishStoryFromURL(ctx context.Context, videoURL string) (*transfer.TiktokPublishResponse, error) {
	if videoURL == "" {
		err := errors.New("video URL is required")
		slog.Info(err.Error())
		return nil, err
	}

	payload := map[string]string{"video_url": videoURL}

	var resp transfer.TiktokPublishResponse
	if err := tt.client.Post(ctx, "/tiktok/publish/story/url", payload, &resp); err != nil {
		return nil, fmt.Errorf("error publishing TikTok story: %w", err)
	}
	return &resp, nil
}

func (tt *tiktokService) UploadStory(ctx context.Context, filename string, content []byte, progress rest.ProgressFunc) (*transfer.TiktokPublishResponse, error) {
	kind, err := filetype.Match(content)
	if err != nil || kind.MIME.Type != "video" {
		return nil, errors.New("file must be a video")
	}

	var resp transfer.TiktokPublishResponse
	files := []rest.File{{
		Field:       "file",
		Name:        filename,
		ContentType: kind.MIME.Value,
		Content:     content,
	}}
	if err := tt.client.Upload(ctx, "/tiktok/upload/story", nil, files, &resp, progress); err != nil {
		return nil, fmt.Errorf("error uploading TikTok story: %w", err)
	}
	return &resp, nil
}

// PublishStatus polls an in-flight publish; TikTok processes uploads
// asynchronously.
func (tt *tiktokService) PublishStatus(ctx context.Context, publishID string) (*transfer.TiktokPublishStatus, error) {
	if publishID == "" {
		err := errors.New("publish id is empty")
		slog.Info(err.Error())
		return nil, err
	}

	payload := map[string]string{"publish_id": publishID}

	var status transfer.TiktokPublishStatus
	if err := tt.client.Post(ctx, "/tiktok/publish/status", payload, &status); err != nil {
		return nil, fmt.Errorf("error fetching publish status: %w", err)
	}
	return &status, nil
}
