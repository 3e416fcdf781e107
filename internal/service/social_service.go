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

type SocialService interface {
	Create(ctx context.Context, pc *transfer.SocialPostCreation) (*models.SocialPost, error)
	List(ctx context.Context) ([]models.SocialPost, error)
	Get(ctx context.Context, postID int64) (*models.SocialPost, error)
	Update(ctx context.Context, postID int64, pu *transfer.ScheduledPostUpdate) (*models.SocialPost, error)
	Remove(ctx context.Context, postID int64) error
	Publish(ctx context.Context, postID int64) (*transfer.PublishResponse, error)
}

type socialService struct {
	client *rest.Client
	st     *store.Store
}

func NewSocialService(client *rest.Client, st *store.Store) SocialService {
	return &socialService{client: client, st: st}
}

func (s *socialService) Create(ctx context.Context, pc *transfer.SocialPostCreation) (*models.SocialPost, error) {
	if pc == nil {
		return nil, errors.New("post creation data is nil")
	}
	if pc.ClipID == 0 && len(pc.MediaIDs) == 0 {
		err := errors.New("post needs a clip or uploaded media")
		slog.Info(err.Error())
		return nil, err
	}
	if !models.IsKnownPlatform(pc.Platform) {
		err := fmt.Errorf("unknown platform %q", pc.Platform)
		slog.Info(err.Error())
		return nil, err
	}

	var post models.SocialPost
	if err := s.client.Post(ctx, "/social/", pc, &post); err != nil {
		return nil, fmt.Errorf("error creating social post: %w", err)
	}
	s.st.UpdateSocialPost(post)
	return &post, nil
}

func (s *socialService) List(ctx context.Context) ([]models.SocialPost, error) {
	var posts []models.SocialPost
	if err := s.client.Get(ctx, "/social/", &posts); err != nil {
		return nil, fmt.Errorf("error listing social posts: %w", err)
	}
	s.st.SetSocialPosts(posts)
	return posts, nil
}

func (s *socialService) Get(ctx context.Context, postID int64) (*models.SocialPost, error) {
	if postID == 0 {
		err := errors.New("post id is not valid")
		slog.Info(err.Error())
		return nil, err
	}

	var post models.SocialPost
	if err := s.client.Get(ctx, fmt.Sprintf("/social/%d", postID), &post); err != nil {
		return nil, err
	}
	s.st.UpdateSocialPost(post)
	return &post, nil
}

func (s *socialService) Update(ctx context.Context, postID int64, pu *transfer.ScheduledPostUpdate) (*models.SocialPost, error) {
	var post models.SocialPost
	if err := s.client.Put(ctx, fmt.Sprintf("/social/%d", postID), pu, &post); err != nil {
		return nil, fmt.Errorf("error updating social post: %w", err)
	}
	s.st.UpdateSocialPost(post)
	return &post, nil
}

func (s *socialService) Remove(ctx context.Context, postID int64) error {
	if postID == 0 {
		err := errors.New("post id is not valid")
		slog.Info(err.Error())
		return err
	}

	if err := s.client.Delete(ctx, fmt.Sprintf("/social/%d", postID)); err != nil {
		return fmt.Errorf("error removing social post: %w", err)
	}
	s.st.RemoveSocialPost(postID)
	return nil
}

// Publish asks the backend to push the post to its platform now.
func (s *socialService) Publish(ctx context.Context, postID int64) (*transfer.PublishResponse, error) {
	if postID == 0 {
		err := errors.New("post id is not valid")
		slog.Info(err.Error())
		return nil, err
	}

	var resp transfer.PublishResponse
	if err := s.client.Post(ctx, fmt.Sprintf("/social/%d/publish", postID), nil, &resp); err != nil {
		return nil, fmt.Errorf("error publishing post: %w", err)
	}
	return &resp, nil
}
