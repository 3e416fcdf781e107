package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/maheshrc27/clipdash/internal/rest"
	"github.com/maheshrc27/clipdash/internal/transfer"
)

type InstagramService interface {
	AccountInfo(ctx context.Context) (*transfer.InstagramAccountInfo, error)
	ListMedia(ctx context.Context, limit int) ([]transfer.InstagramMedia, error)
	MediaDetails(ctx context.Context, mediaID string) (*transfer.InstagramMedia, error)
	MediaComments(ctx context.Context, mediaID string) ([]transfer.InstagramComment, error)
	ReplyToComment(ctx context.Context, commentID, message string) error
	DeleteComment(ctx context.Context, commentID string) error
	HideComment(ctx context.Context, commentID string, hide bool) error
	AccountInsights(ctx context.Context, metrics []string, period string) ([]transfer.InstagramInsight, error)
	MediaInsights(ctx context.Context, mediaID string) ([]transfer.InstagramInsight, error)
	Conversations(ctx context.Context) ([]transfer.InstagramConversation, error)
	ConversationMessages(ctx context.Context, conversationID string) ([]transfer.InstagramMessage, error)
	SendMessage(ctx context.Context, recipientID, message string) error
}

type instagramService struct {
	client *rest.Client
}

func NewInstagramService(client *rest.Client) InstagramService {
	return &instagramService{client: client}
}

func (ig *instagramService) AccountInfo(ctx context.Context) (*transfer.InstagramAccountInfo, error) {
	var info transfer.InstagramAccountInfo
	if err := ig.client.Get(ctx, "/instagram/account", &info); err != nil {
		return nil, fmt.Errorf("error fetching Instagram account: %w", err)
	}
	return &info, nil
}

func (ig *instagramService) ListMedia(ctx context.Context, limit int) ([]transfer.InstagramMedia, error) {
	path := "/instagram/media"
	if limit > 0 {
		path = fmt.Sprintf("%s?limit=%d", path, limit)
	}

	var resp transfer.InstagramMediaList
	if err := ig.client.Get(ctx, path, &resp); err != nil {
		return nil, fmt.Errorf("error listing Instagram media: %w", err)
	}
	return resp.Data, nil
}

func (ig *instagramService) MediaDetails(ctx context.Context, mediaID string) (*transfer.InstagramMedia, error) {
	if mediaID == "" {
		err := errors.New("media id is empty")
		slog.Info(err.Error())
		return nil, err
	}

	var media transfer.InstagramMedia
	if err := ig.client.Get(ctx, "/instagram/media/"+url.PathEscape(mediaID), &media); err != nil {
		return nil, err
	}
	return &media, nil
}

func (ig *instagramService) MediaComments(ctx context.Context, mediaID string) ([]transfer.InstagramComment, error) {
	var resp transfer.InstagramCommentList
	if err := ig.client.Get(ctx, "/instagram/media/"+url.PathEscape(mediaID)+"/comments", &resp); err != nil {
		return nil, fmt.Errorf("error fetching comments: %w", err)
	}
	return resp.Data, nil
}

func (ig *instagramService) ReplyToComment(ctx context.Context, commentID, message string) error {
	if message == "" {
		err := errors.New("reply message cannot be empty")
		slog.Info(err.Error())
		return err
	}

	payload := map[string]string{"message": message}
	if err := ig.client.Post(ctx, "/instagram/comments/"+url.PathEscape(commentID)+"/reply", payload, nil); err != nil {
		return fmt.Errorf("error replying to comment: %w", err)
	}
	return nil
}

func (ig *instagramService) DeleteComment(ctx context.Context, commentID string) error {
	if err := ig.client.Delete(ctx, "/instagram/comments/"+url.PathEscape(commentID)); err != nil {
		return fmt.Errorf("error deleting comment: %w", err)
	}
	return nil
}

func (ig *instagramService) HideComment(ctx context.Context, commentID string, hide bool) error {
	payload := map[string]bool{"hide": hide}
	if err := ig.client.Post(ctx, "/instagram/comments/"+url.PathEscape(commentID)+"/hide", payload, nil); err != nil {
		return fmt.Errorf("error hiding comment: %w", err)
	}
	return nil
}

// AccountInsights is an optional dashboard widget; callers fetch it
// quietly and render nothing on failure.
func (ig *instagramService) AccountInsights(ctx context.Context, metrics []string, period string) ([]transfer.InstagramInsight, error) {
	params := url.Values{}
	for _, metric := range metrics {
		params.Add("metrics", metric)
	}
	if period != "" {
		params.Set("period", period)
	}

	path := "/instagram/insights"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var resp transfer.InstagramInsightList
	if err := ig.client.Get(ctx, path, &resp, rest.Quiet()); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (ig *instagramService) MediaInsights(ctx context.Context, mediaID string) ([]transfer.InstagramInsight, error) {
	var resp transfer.InstagramInsightList
	if err := ig.client.Get(ctx, "/instagram/media/"+url.PathEscape(mediaID)+"/insights", &resp, rest.Quiet()); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (ig *instagramService) Conversations(ctx context.Context) ([]transfer.InstagramConversation, error) {
	var resp struct {
		Data []transfer.InstagramConversation `json:"data"`
	}
	if err := ig.client.Get(ctx, "/instagram/conversations", &resp); err != nil {
		return nil, fmt.Errorf("error listing conversations: %w", err)
	}
	return resp.Data, nil
}

func (ig *instagramService) ConversationMessages(ctx context.Context, conversationID string) ([]transfer.InstagramMessage, error) {
	var resp struct {
		Data []transfer.InstagramMessage `json:"data"`
	}
	if err := ig.client.Get(ctx, "/instagram/conversations/"+url.PathEscape(conversationID)+"/messages", &resp); err != nil {
		return nil, fmt.Errorf("error fetching messages: %w", err)
	}
	return resp.Data, nil
}

func (ig *instagramService) SendMessage(ctx context.Context, recipientID, message string) error {
	if recipientID == "" || message == "" {
		err := errors.New("recipient and message are required")
		slog.Info(err.Error())
		return err
	}

	payload := map[string]string{
		"recipient_id": recipientID,
		"message":      message,
	}
	if err := ig.client.Post(ctx, "/instagram/messages", payload, nil); err != nil {
		return fmt.Errorf("error sending message: %w", err)
	}
	return nil
}
