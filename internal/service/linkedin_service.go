package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/h2non/filetype"
	"github.com/maheshrc27/clipdash/internal/rest"
	"github.com/maheshrc27/clipdash/internal/transfer"
)

// LinkedIn media ceilings, checked client-side before the bytes leave
// the machine.
const (
	MaxLinkedinImageSize = 10 * 1024 * 1024  // 10MB
	MaxLinkedinVideoSize = 200 * 1024 * 1024 // 200MB
)

type LinkedinService interface {
	Profile(ctx context.Context) (*transfer.LinkedinProfile, error)
	Organizations(ctx context.Context) ([]transfer.LinkedinOrganization, error)
	PostText(ctx context.Context, post *transfer.LinkedinTextPost) (*transfer.LinkedinPostResponse, error)
	PostImage(ctx context.Context, filename string, image []byte, post *transfer.LinkedinMediaPost, progress rest.ProgressFunc) (*transfer.LinkedinPostResponse, error)
	PostVideo(ctx context.Context, filename string, video []byte, post *transfer.LinkedinMediaPost, progress rest.ProgressFunc) (*transfer.LinkedinPostResponse, error)
	PostArticle(ctx context.Context, post *transfer.LinkedinArticlePost) (*transfer.LinkedinPostResponse, error)
	ListPosts(ctx context.Context) ([]map[string]interface{}, error)
	DeletePost(ctx context.Context, postURN string) error
}

type linkedinService struct {
	client *rest.Client
}

func NewLinkedinService(client *rest.Client) LinkedinService {
	return &linkedinService{client: client}
}

func (li *linkedinService) Profile(ctx context.Context) (*transfer.LinkedinProfile, error) {
	var profile transfer.LinkedinProfile
	if err := li.client.Get(ctx, "/linkedin/profile", &profile); err != nil {
		return nil, fmt.Errorf("error fetching LinkedIn profile: %w", err)
	}
	return &profile, nil
}

func (li *linkedinService) Organizations(ctx context.Context) ([]transfer.LinkedinOrganization, error) {
	var orgs []transfer.LinkedinOrganization
	if err := li.client.Get(ctx, "/linkedin/organizations", &orgs); err != nil {
		return nil, fmt.Errorf("error fetching organizations: %w", err)
	}
	return orgs, nil
}

func (li *linkedinService) PostText(ctx context.Context, post *transfer.LinkedinTextPost) (*transfer.LinkedinPostResponse, error) {
	if post == nil || post.Text == "" {
		err := errors.New("post text cannot be empty")
		slog.Info(err.Error())
		return nil, err
	}

	var resp transfer.LinkedinPostResponse
	if err := li.client.Post(ctx, "/linkedin/posts/text", post, &resp); err != nil {
		return nil, fmt.Errorf("error creating text post: %w", err)
	}
	return &resp, nil
}

func (li *linkedinService) PostImage(ctx context.Context, filename string, image []byte, post *transfer.LinkedinMediaPost, progress rest.ProgressFunc) (*transfer.LinkedinPostResponse, error) {
	if post == nil {
		return nil, errors.New("image post data is nil")
	}
	if int64(len(image)) > MaxLinkedinImageSize {
		err := errors.New("image must be under 10MB")
		slog.Info(err.Error())
		return nil, err
	}

	kind, err := filetype.Match(image)
	if err != nil || kind.MIME.Type != "image" {
		return nil, errors.New("file must be an image")
	}

	fields := map[string]string{
		"text":       post.Text,
		"alt_text":   post.AltText,
		"visibility": post.Visibility,
	}
	if post.AuthorURN != "" {
		fields["author_urn"] = post.AuthorURN
	}

	var resp transfer.LinkedinPostResponse
	files := []rest.File{{
		Field:       "file",
		Name:        filename,
		ContentType: kind.MIME.Value,
		Content:     image,
	}}
	if err := li.client.Upload(ctx, "/linkedin/posts/image", fields, files, &resp, progress); err != nil {
		return nil, fmt.Errorf("error creating image post: %w", err)
	}
	return &resp, nil
}

func (li *linkedinService) PostVideo(ctx context.Context, filename string, video []byte, post *transfer.LinkedinMediaPost, progress rest.ProgressFunc) (*transfer.LinkedinPostResponse, error) {
	if post == nil {
		return nil, errors.New("video post data is nil")
	}
	if int64(len(video)) > MaxLinkedinVideoSize {
		err := errors.New("video must be under 200MB")
		slog.Info(err.Error())
		return nil, err
	}

	kind, err := filetype.Match(video)
	if err != nil || kind.MIME.Type != "video" {
		return nil, errors.New("file must be a video")
	}

	fields := map[string]string{
		"text":       post.Text,
		"title":      post.Title,
		"visibility": post.Visibility,
	}
	if post.AuthorURN != "" {
		fields["author_urn"] = post.AuthorURN
	}

	var resp transfer.LinkedinPostResponse
	files := []rest.File{{
		Field:       "file",
		Name:        filename,
		ContentType: kind.MIME.Value,
		Content:     video,
	}}
	if err := li.client.Upload(ctx, "/linkedin/posts/video", fields, files, &resp, progress); err != nil {
		return nil, fmt.Errorf("error creating video post: %w", err)
	}
	return &resp, nil
}

func (li *linkedinService) PostArticle(ctx context.Context, post *transfer.LinkedinArticlePost) (*transfer.LinkedinPostResponse, error) {
	if post == nil || post.ArticleURL == "" {
		err := errors.New("article URL is required")
		slog.Info(err.Error())
		return nil, err
	}

	var resp transfer.LinkedinPostResponse
	if err := li.client.Post(ctx, "/linkedin/posts/article", post, &resp); err != nil {
		return nil, fmt.Errorf("error creating article post: %w", err)
	}
	return &resp, nil
}

func (li *linkedinService) ListPosts(ctx context.Context) ([]map[string]interface{}, error) {
	var posts []map[string]interface{}
	if err := li.client.Get(ctx, "/linkedin/posts", &posts); err != nil {
		return nil, fmt.Errorf("error listing posts: %w", err)
	}
	return posts, nil
}

func (li *linkedinService) DeletePost(ctx context.Context, postURN string) error {
	if postURN == "" {
		err := errors.New("post urn is empty")
		slog.Info(err.Error())
		return err
	}

	if err := li.client.Delete(ctx, "/linkedin/posts/"+url.PathEscape(postURN)); err != nil {
		return fmt.Errorf("error deleting post: %w", err)
	}
	return nil
}
