package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"github.com/h2non/filetype"
	"github.com/maheshrc27/clipdash/internal/rest"
	"github.com/maheshrc27/clipdash/internal/transfer"
)

// MaxThumbnailSize is YouTube's custom-thumbnail ceiling.
const MaxThumbnailSize = 2 * 1024 * 1024 // 2MB

type YoutubeService interface {
	Channel(ctx context.Context) (*transfer.YoutubeChannelInfo, error)
	Videos(ctx context.Context, limit int) ([]transfer.YoutubeVideo, error)
	Video(ctx context.Context, videoID string) (*transfer.YoutubeVideo, error)
	UploadVideo(ctx context.Context, filename string, content []byte, vu *transfer.VideoUpload, progress rest.ProgressFunc) (*transfer.YoutubeUploadResponse, error)
	UploadShort(ctx context.Context, filename string, content []byte, vu *transfer.VideoUpload, progress rest.ProgressFunc) (*transfer.YoutubeUploadResponse, error)
	UpdateVideo(ctx context.Context, videoID string, vu *transfer.VideoUpload) (*transfer.YoutubeVideo, error)
	DeleteVideo(ctx context.Context, videoID string) error
	SetThumbnail(ctx context.Context, videoID, filename string, image []byte) (*transfer.YoutubeThumbnailResponse, error)
	CommunityPost(ctx context.Context, text string) error
	Comments(ctx context.Context, videoID string) ([]map[string]interface{}, error)
	AddComment(ctx context.Context, videoID, text string) error
	Stats(ctx context.Context, videoID string) (*transfer.YoutubeVideoStats, error)
	Categories(ctx context.Context) ([]transfer.YoutubeCategory, error)
}

type youtubeService struct {
	client *rest.Client
}

func NewYoutubeService(client *rest.Client) YoutubeService {
	return &youtubeService{client: client}
}

func (yt *youtubeService) Channel(ctx context.Context) (*transfer.YoutubeChannelInfo, error) {
	var info transfer.YoutubeChannelInfo
	if err := yt.client.Get(ctx, "/youtube/channel", &info); err != nil {
		return nil, fmt.Errorf("error fetching channel: %w", err)
	}
	return &info, nil
}

func (yt *youtubeService) Videos(ctx context.Context, limit int) ([]transfer.YoutubeVideo, error) {
	path := "/youtube/videos"
	if limit > 0 {
		path = fmt.Sprintf("%s?limit=%d", path, limit)
	}

	var videos []transfer.YoutubeVideo
	if err := yt.client.Get(ctx, path, &videos); err != nil {
		return nil, fmt.Errorf("error listing videos: %w", err)
	}
	return videos, nil
}

func (yt *youtubeService) Video(ctx context.Context, videoID string) (*transfer.YoutubeVideo, error) {
	var video transfer.YoutubeVideo
	if err := yt.client.Get(ctx, "/youtube/videos/"+url.PathEscape(videoID), &video); err != nil {
		return nil, err
	}
	return &video, nil
}

func (yt *youtubeService) UploadVideo(ctx context.Context, filename string, content []byte, vu *transfer.VideoUpload, progress rest.ProgressFunc) (*transfer.YoutubeUploadResponse, error) {
	return yt.upload(ctx, "/youtube/upload", filename, content, vu, progress)
}

func (yt *youtubeService) UploadShort(ctx context.Context, filename string, content []byte, vu *transfer.VideoUpload, progress rest.ProgressFunc) (*transfer.YoutubeUploadResponse, error) {
	return yt.upload(ctx, "/youtube/upload/short", filename, content, vu, progress)
}

func (yt *youtubeService) upload(ctx context.Context, path, filename string, content []byte, vu *transfer.VideoUpload, progress rest.ProgressFunc) (*transfer.YoutubeUploadResponse, error) {
	if vu == nil {
		return nil, errors.New("video upload data is nil")
	}
	if vu.Title == "" {
		err := errors.New("video title cannot be empty")
		slog.Info(err.Error())
		return nil, err
	}

	kind, err := filetype.Match(content)
	if err != nil || kind.MIME.Type != "video" {
		return nil, errors.New("file must be a video")
	}

	fields := map[string]string{
		"title":              vu.Title,
		"description":        vu.Description,
		"category_id":        vu.CategoryID,
		"privacy_status":     vu.PrivacyStatus,
		"notify_subscribers": strconv.FormatBool(vu.NotifySubscribers),
	}
	if len(vu.Tags) > 0 {
		fields["tags"] = strings.Join(vu.Tags, ",")
	}
	if vu.ScheduledStartTime != "" {
		fields["scheduled_start_time"] = vu.ScheduledStartTime
	}

	var resp transfer.YoutubeUploadResponse
	files := []rest.File{{
		Field:       "file",
		Name:        filename,
		ContentType: kind.MIME.Value,
		Content:     content,
	}}
	if err := yt.client.Upload(ctx, path, fields, files, &resp, progress); err != nil {
		return nil, fmt.Errorf("error uploading video: %w", err)
	}
	return &resp, nil
}

func (yt *youtubeService) UpdateVideo(ctx context.Context, videoID string, vu *transfer.VideoUpload) (*transfer.YoutubeVideo, error) {
	if vu == nil {
		return nil, errors.New("video update data is nil")
	}

	payload := map[string]interface{}{}
	if vu.Title != "" {
		payload["title"] = vu.Title
	}
	if vu.Description != "" {
		payload["description"] = vu.Description
	}
	if len(vu.Tags) > 0 {
		payload["tags"] = vu.Tags
	}
	if vu.CategoryID != "" {
		payload["category_id"] = vu.CategoryID
	}
	if vu.PrivacyStatus != "" {
		payload["privacy_status"] = vu.PrivacyStatus
	}

	var video transfer.YoutubeVideo
	if err := yt.client.Put(ctx, "/youtube/videos/"+url.PathEscape(videoID), payload, &video); err != nil {
		return nil, fmt.Errorf("error updating video: %w", err)
	}
	return &video, nil
}

func (yt *youtubeService) DeleteVideo(ctx context.Context, videoID string) error {
	if err := yt.client.Delete(ctx, "/youtube/videos/"+url.PathEscape(videoID)); err != nil {
		return fmt.Errorf("error deleting video: %w", err)
	}
	return nil
}

func (yt *youtubeService) SetThumbnail(ctx context.Context, videoID, filename string, image []byte) (*transfer.YoutubeThumbnailResponse, error) {
	if videoID == "" {
		err := errors.New("video id is empty")
		slog.Info(err.Error())
		return nil, err
	}
	if len(image) > MaxThumbnailSize {
		err := errors.New("thumbnail must be under 2MB")
		slog.Info(err.Error())
		return nil, err
	}

	kind, err := filetype.Match(image)
	if err != nil || kind.MIME.Type != "image" {
		return nil, errors.New("thumbnail must be an image")
	}
	switch kind.Extension {
	case "jpg", "png", "gif":
	default:
		return nil, fmt.Errorf("thumbnail format %s is not allowed", kind.Extension)
	}

	var resp transfer.YoutubeThumbnailResponse
	files := []rest.File{{
		Field:       "file",
		Name:        filename,
		ContentType: kind.MIME.Value,
		Content:     image,
	}}
	if err := yt.client.Upload(ctx, "/youtube/videos/"+url.PathEscape(videoID)+"/thumbnail", nil, files, &resp, nil); err != nil {
		return nil, fmt.Errorf("error setting thumbnail: %w", err)
	}
	return &resp, nil
}

func (yt *youtubeService) CommunityPost(ctx context.Context, text string) error {
	if text == "" {
		err := errors.New("community post text cannot be empty")
		slog.Info(err.Error())
		return err
	}

	payload := map[string]string{"text": text}
	if err := yt.client.Post(ctx, "/youtube/community", payload, nil); err != nil {
		return fmt.Errorf("error creating community post: %w", err)
	}
	return nil
}

func (yt *youtubeService) Comments(ctx context.Context, videoID string) ([]map[string]interface{}, error) {
	var comments []map[string]interface{}
	if err := yt.client.Get(ctx, "/youtube/videos/"+url.PathEscape(videoID)+"/comments", &comments); err != nil {
		return nil, fmt.Errorf("error fetching comments: %w", err)
	}
	return comments, nil
}

func (yt *youtubeService) AddComment(ctx context.Context, videoID, text string) error {
	payload := map[string]string{"text": text}
	if err := yt.client.Post(ctx, "/youtube/videos/"+url.PathEscape(videoID)+"/comments", payload, nil); err != nil {
		return fmt.Errorf("error adding comment: %w", err)
	}
	return nil
}

func (yt *youtubeService) Stats(ctx context.Context, videoID string) (*transfer.YoutubeVideoStats, error) {
	var stats transfer.YoutubeVideoStats
	if err := yt.client.Get(ctx, "/youtube/videos/"+url.PathEscape(videoID)+"/stats", &stats, rest.Quiet()); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (yt *youtubeService) Categories(ctx context.Context) ([]transfer.YoutubeCategory, error) {
	var categories []transfer.YoutubeCategory
	if err := yt.client.Get(ctx, "/youtube/categories", &categories); err != nil {
		return nil, fmt.Errorf("error fetching categories: %w", err)
	}
	return categories, nil
}
