package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/maheshrc27/clipdash/internal/models"
	"github.com/maheshrc27/clipdash/internal/rest"
	"github.com/maheshrc27/clipdash/internal/store"
	"github.com/maheshrc27/clipdash/internal/transfer"
)

type ClipService interface {
	Create(ctx context.Context, cc *transfer.ClipCreation) (*models.Clip, error)
	List(ctx context.Context) ([]models.Clip, error)
	Get(ctx context.Context, clipID int64) (*models.Clip, error)
	Update(ctx context.Context, clipID int64, cu *transfer.ClipUpdate) (*models.Clip, error)
	Remove(ctx context.Context, clipID int64) error
	GenerateContent(ctx context.Context, clipID int64) (*models.Clip, error)
	StreamURL(ctx context.Context, clipID int64) (*transfer.ClipURLResponse, error)
}

type clipService struct {
	client *rest.Client
	st     *store.Store
}

func NewClipService(client *rest.Client, st *store.Store) ClipService {
	return &clipService{client: client, st: st}
}

func (s *clipService) Create(ctx context.Context, cc *transfer.ClipCreation) (*models.Clip, error) {
	if cc == nil {
		return nil, errors.New("clip creation data is nil")
	}
	if cc.MediaID == 0 {
		err := errors.New("media id is not valid")
		slog.Info(err.Error())
		return nil, err
	}
	if cc.StartTime < 0 || cc.EndTime <= cc.StartTime {
		err := errors.New("clip start must be before end")
		slog.Info(err.Error())
		return nil, err
	}

	var clip models.Clip
	if err := s.client.Post(ctx, "/clips/", cc, &clip); err != nil {
		return nil, fmt.Errorf("error creating clip: %w", err)
	}
	s.st.AddClip(clip)
	return &clip, nil
}

func (s *clipService) List(ctx context.Context) ([]models.Clip, error) {
	var clips []models.Clip
	if err := s.client.Get(ctx, "/clips/", &clips); err != nil {
		return nil, fmt.Errorf("error listing clips: %w", err)
	}
	s.st.SetClips(clips)
	return clips, nil
}

func (s *clipService) Get(ctx context.Context, clipID int64) (*models.Clip, error) {
	if clipID == 0 {
		err := errors.New("clip id is not valid")
		slog.Info(err.Error())
		return nil, err
	}

	var clip models.Clip
	if err := s.client.Get(ctx, fmt.Sprintf("/clips/%d", clipID), &clip); err != nil {
		return nil, err
	}
	s.st.UpdateClip(clip)
	return &clip, nil
}

func (s *clipService) Update(ctx context.Context, clipID int64, cu *transfer.ClipUpdate) (*models.Clip, error) {
	if clipID == 0 {
		err := errors.New("clip id is not valid")
		slog.Info(err.Error())
		return nil, err
	}

	var clip models.Clip
	if err := s.client.Put(ctx, fmt.Sprintf("/clips/%d", clipID), cu, &clip); err != nil {
		return nil, fmt.Errorf("error updating clip: %w", err)
	}
	s.st.UpdateClip(clip)
	return &clip, nil
}

func (s *clipService) Remove(ctx context.Context, clipID int64) error {
	if clipID == 0 {
		err := errors.New("clip id is not valid")
		slog.Info(err.Error())
		return err
	}

	if err := s.client.Delete(ctx, fmt.Sprintf("/clips/%d", clipID)); err != nil {
		return fmt.Errorf("error removing clip: %w", err)
	}
	s.st.RemoveClip(clipID)
	return nil
}

// GenerateContent asks the backend's AI pipeline to fill the clip's
// title, description and hashtags. The call returns the clip record
// immediately; fields settle asynchronously.
func (s *clipService) GenerateContent(ctx context.Context, clipID int64) (*models.Clip, error) {
	if clipID == 0 {
		err := errors.New("clip id is not valid")
		slog.Info(err.Error())
		return nil, err
	}

	var clip models.Clip
	if err := s.client.Post(ctx, fmt.Sprintf("/clips/%d/generate-content", clipID), nil, &clip); err != nil {
		return nil, fmt.Errorf("error generating clip content: %w", err)
	}
	s.st.UpdateClip(clip)
	return &clip, nil
}

func (s *clipService) StreamURL(ctx context.Context, clipID int64) (*transfer.ClipURLResponse, error) {
	var resp transfer.ClipURLResponse
	if err := s.client.Get(ctx, fmt.Sprintf("/clips/%d/url", clipID), &resp); err != nil {
		return nil, fmt.Errorf("error fetching clip URL: %w", err)
	}
	return &resp, nil
}
