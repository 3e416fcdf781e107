package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
	"github.com/maheshrc27/clipdash/internal/models"
	"github.com/maheshrc27/clipdash/internal/rest"
	"github.com/maheshrc27/clipdash/internal/store"
	"github.com/maheshrc27/clipdash/internal/transfer"
)

// MaxUploadSize mirrors the backend's upload cap.
const MaxUploadSize = 10 * 1024 * 1024 * 1024 // 10GB

type MediaService interface {
	Upload(ctx context.Context, filename string, content []byte, progress rest.ProgressFunc) (*transfer.MediaUploadResponse, error)
	List(ctx context.Context) ([]models.Media, error)
	Get(ctx context.Context, mediaID int64) (*models.Media, error)
	StreamURL(ctx context.Context, mediaID int64, expires int) (*transfer.MediaURLResponse, error)
	Remove(ctx context.Context, mediaID int64) error
}

type mediaService struct {
	client *rest.Client
	st     *store.Store
}

func NewMediaService(client *rest.Client, st *store.Store) MediaService {
	return &mediaService{client: client, st: st}
}

func (s *mediaService) Upload(ctx context.Context, filename string, content []byte, progress rest.ProgressFunc) (*transfer.MediaUploadResponse, error) {
	if len(content) == 0 {
		err := errors.New("file is empty")
		slog.Info(err.Error())
		return nil, err
	}
	if int64(len(content)) > MaxUploadSize {
		err := fmt.Errorf("file exceeds the %dGB upload limit", MaxUploadSize/(1024*1024*1024))
		slog.Info(err.Error())
		return nil, err
	}

	kind, err := filetype.Match(content)
	if err != nil || kind == types.Unknown {
		return nil, errors.New("unsupported file type")
	}
	switch kind.MIME.Type {
	case "video", "audio", "image":
	default:
		return nil, fmt.Errorf("file type %s is not allowed", kind.MIME.Value)
	}

	var resp transfer.MediaUploadResponse
	files := []rest.File{{
		Field:       "file",
		Name:        filename,
		ContentType: kind.MIME.Value,
		Content:     content,
	}}
	if err := s.client.Upload(ctx, "/media/upload", nil, files, &resp, progress); err != nil {
		return nil, fmt.Errorf("error uploading media: %w", err)
	}
	return &resp, nil
}

func (s *mediaService) List(ctx context.Context) ([]models.Media, error) {
	var media []models.Media
	if err := s.client.Get(ctx, "/media/", &media); err != nil {
		return nil, fmt.Errorf("error listing media: %w", err)
	}
	s.st.SetMedia(media)
	return media, nil
}

func (s *mediaService) Get(ctx context.Context, mediaID int64) (*models.Media, error) {
	if mediaID == 0 {
		err := errors.New("media id is not valid")
		slog.Info(err.Error())
		return nil, err
	}

	var media models.Media
	if err := s.client.Get(ctx, fmt.Sprintf("/media/%d", mediaID), &media); err != nil {
		return nil, err
	}
	s.st.UpdateMedia(media)
	return &media, nil
}

func (s *mediaService) StreamURL(ctx context.Context, mediaID int64, expires int) (*transfer.MediaURLResponse, error) {
	var resp transfer.MediaURLResponse
	path := fmt.Sprintf("/media/%d/url", mediaID)
	if expires > 0 {
		path = fmt.Sprintf("%s?expires=%d", path, expires)
	}
	if err := s.client.Get(ctx, path, &resp); err != nil {
		return nil, fmt.Errorf("error fetching stream URL: %w", err)
	}
	return &resp, nil
}

func (s *mediaService) Remove(ctx context.Context, mediaID int64) error {
	if mediaID == 0 {
		err := errors.New("media id is not valid")
		slog.Info(err.Error())
		return err
	}

	if err := s.client.Delete(ctx, fmt.Sprintf("/media/%d", mediaID)); err != nil {
		return fmt.Errorf("error removing media: %w", err)
	}
	s.st.RemoveMedia(mediaID)
	return nil
}
