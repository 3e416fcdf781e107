package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/maheshrc27/clipdash/internal/models"
	"github.com/maheshrc27/clipdash/internal/notify"
	"github.com/maheshrc27/clipdash/internal/service"
	"github.com/maheshrc27/clipdash/internal/transfer"
)

// Result is what a completed run reports to the caller. Degraded marks
// runs where the primary action landed but a follow-up step failed,
// like a video that uploaded while its thumbnail didn't.
type Result struct {
	SessionID      string
	Platform       string
	PostID         int64
	PlatformPostID string
	URL            string
	Degraded       bool
	Warning        string
}

// Pipeline drives the select → validate → upload → publish sequence
// for each platform. There is no cancellation mid-flight; once a
// request is on the wire the run either finishes or fails.
type Pipeline struct {
	media    service.MediaService
	social   service.SocialService
	yt       service.YoutubeService
	tt       service.TiktokService
	li       service.LinkedinService
	notifier notify.Notifier
}

func New(
	media service.MediaService,
	social service.SocialService,
	yt service.YoutubeService,
	tt service.TiktokService,
	li service.LinkedinService,
	notifier notify.Notifier) *Pipeline {
	return &Pipeline{
		media:    media,
		social:   social,
		yt:       yt,
		tt:       tt,
		li:       li,
		notifier: notifier,
	}
}

// PublishInstagramImage runs a single-image feed post: JPEG check,
// progress-tracked upload, then the combined create+publish call.
func (p *Pipeline) PublishInstagramImage(ctx context.Context, sess *Session, file File, caption string, hashtags []string, onSuccess func(Result)) (*Result, error) {
	if err := ValidateInstagramImage(file.Content); err != nil {
		sess.fail(err)
		p.notifier.Error(err.Error())
		return nil, err
	}

	sess.setStage(StageUploading)
	upload, err := p.media.Upload(ctx, file.Name, file.Content, sess.setProgress)
	if err != nil {
		sess.fail(err)
		return nil, fmt.Errorf("image upload failed: %w", err)
	}
	sess.setProgress(100)

	sess.setStage(StagePublishing)
	result, err := p.publishSocial(ctx, models.PlatformInstagram, caption, hashtags, []int64{upload.MediaID})
	if err != nil {
		sess.fail(err)
		return nil, err
	}

	result.SessionID = sess.ID
	sess.setStage(StageDone)
	p.notifier.Success("Posted to Instagram.")
	if onSuccess != nil {
		onSuccess(*result)
	}
	return result, nil
}

// PublishInstagramCarousel uploads every image in the carousel and
// publishes them as one unit. Fewer than two images is rejected before
// anything is uploaded.
func (p *Pipeline) PublishInstagramCarousel(ctx context.Context, sess *Session, carousel *Carousel, caption string, hashtags []string, onSuccess func(Result)) (*Result, error) {
	if err := carousel.validate(); err != nil {
		sess.fail(err)
		p.notifier.Error(err.Error())
		return nil, err
	}

	files := carousel.Files()
	var totalBytes int64
	for _, f := range files {
		totalBytes += int64(len(f.Content))
	}

	sess.setStage(StageUploading)
	mediaIDs := make([]int64, 0, len(files))
	var doneBytes int64
	for _, f := range files {
		size := int64(len(f.Content))
		upload, err := p.media.Upload(ctx, f.Name, f.Content, func(pct int) {
			sent := size * int64(pct) / 100
			sess.setProgress(int((doneBytes + sent) * 100 / totalBytes))
		})
		if err != nil {
			sess.fail(err)
			return nil, fmt.Errorf("carousel upload failed at %s: %w", f.Name, err)
		}
		doneBytes += size
		mediaIDs = append(mediaIDs, upload.MediaID)
	}
	sess.setProgress(100)

	sess.setStage(StagePublishing)
	result, err := p.publishSocial(ctx, models.PlatformInstagram, caption, hashtags, mediaIDs)
	if err != nil {
		sess.fail(err)
		return nil, err
	}

	result.SessionID = sess.ID
	sess.setStage(StageDone)
	p.notifier.Success(fmt.Sprintf("Carousel with %d images posted to Instagram.", len(mediaIDs)))
	if onSuccess != nil {
		onSuccess(*result)
	}
	return result, nil
}

// PublishYoutubeVideo uploads a video and optionally sets a custom
// thumbnail. A thumbnail failure after a successful upload is reported
// as a degraded success; the video stays up.
func (p *Pipeline) PublishYoutubeVideo(ctx context.Context, sess *Session, file File, vu *transfer.VideoUpload, thumbnail *File, onSuccess func(Result)) (*Result, error) {
	if err := ValidateVideo(file.Content, 0); err != nil {
		sess.fail(err)
		p.notifier.Error(err.Error())
		return nil, err
	}
	if thumbnail != nil {
		if err := ValidateSize(thumbnail.Content, service.MaxThumbnailSize); err != nil {
			sess.fail(err)
			p.notifier.Error("Thumbnail must be under 2MB.")
			return nil, err
		}
	}

	sess.setStage(StageUploading)
	var upload *transfer.YoutubeUploadResponse
	var err error
	if vu.IsShort {
		upload, err = p.yt.UploadShort(ctx, file.Name, file.Content, vu, sess.setProgress)
	} else {
		upload, err = p.yt.UploadVideo(ctx, file.Name, file.Content, vu, sess.setProgress)
	}
	if err != nil {
		sess.fail(err)
		return nil, fmt.Errorf("video upload failed: %w", err)
	}
	sess.setProgress(100)

	sess.setStage(StagePublishing)
	result := &Result{
		SessionID:      sess.ID,
		Platform:       models.PlatformYoutube,
		PlatformPostID: upload.VideoID,
		URL:            upload.URL,
	}

	if thumbnail != nil {
		if _, err := p.yt.SetThumbnail(ctx, upload.VideoID, thumbnail.Name, thumbnail.Content); err != nil {
			slog.Info(err.Error())
			result.Degraded = true
			result.Warning = "video uploaded, but setting the thumbnail failed"
			p.notifier.Info("Video uploaded. The thumbnail could not be set; you can retry it from the video page.")
		}
	}

	sess.setStage(StageDone)
	if !result.Degraded {
		p.notifier.Success("Video uploaded to YouTube.")
	}
	if onSuccess != nil {
		onSuccess(*result)
	}
	return result, nil
}

// PublishTiktokVideo uploads the video and confirms the publish was
// accepted. TikTok finishes processing asynchronously; the status poll
// here only verifies the handoff.
func (p *Pipeline) PublishTiktokVideo(ctx context.Context, sess *Session, file File, post *transfer.TiktokVideoPost, onSuccess func(Result)) (*Result, error) {
	if err := ValidateVideo(file.Content, service.MaxTiktokVideoSize); err != nil {
		sess.fail(err)
		p.notifier.Error(err.Error())
		return nil, err
	}

	sess.setStage(StageUploading)
	upload, err := p.tt.UploadVideo(ctx, file.Name, file.Content, post, sess.setProgress)
	if err != nil {
		sess.fail(err)
		return nil, fmt.Errorf("video upload failed: %w", err)
	}
	sess.setProgress(100)

	sess.setStage(StagePublishing)
	status, err := p.tt.PublishStatus(ctx, upload.PublishID)
	if err != nil {
		sess.fail(err)
		return nil, err
	}
	if status.FailReason != "" {
		err := fmt.Errorf("TikTok rejected the publish: %s", status.FailReason)
		sess.fail(err)
		p.notifier.Error(err.Error())
		return nil, err
	}

	result := &Result{
		SessionID:      sess.ID,
		Platform:       models.PlatformTiktok,
		PlatformPostID: upload.PublishID,
	}
	sess.setStage(StageDone)
	p.notifier.Success("Video sent to TikTok.")
	if onSuccess != nil {
		onSuccess(*result)
	}
	return result, nil
}

// PublishLinkedinImage posts an image. The backend performs LinkedIn's
// register/upload/post dance in one call, so publishing here is just
// the tail of that request.
func (p *Pipeline) PublishLinkedinImage(ctx context.Context, sess *Session, file File, post *transfer.LinkedinMediaPost, onSuccess func(Result)) (*Result, error) {
	if err := ValidateSize(file.Content, service.MaxLinkedinImageSize); err != nil {
		sess.fail(err)
		p.notifier.Error("Image must be under 10MB.")
		return nil, err
	}

	sess.setStage(StageUploading)
	resp, err := p.li.PostImage(ctx, file.Name, file.Content, post, sess.setProgress)
	if err != nil {
		sess.fail(err)
		return nil, fmt.Errorf("image post failed: %w", err)
	}
	sess.setProgress(100)

	sess.setStage(StagePublishing)
	result := &Result{
		SessionID:      sess.ID,
		Platform:       models.PlatformLinkedin,
		PlatformPostID: resp.PostURN,
		URL:            resp.PostURL,
	}
	sess.setStage(StageDone)
	p.notifier.Success("Posted to LinkedIn.")
	if onSuccess != nil {
		onSuccess(*result)
	}
	return result, nil
}

func (p *Pipeline) PublishLinkedinVideo(ctx context.Context, sess *Session, file File, post *transfer.LinkedinMediaPost, onSuccess func(Result)) (*Result, error) {
	if err := ValidateVideo(file.Content, service.MaxLinkedinVideoSize); err != nil {
		sess.fail(err)
		p.notifier.Error("Video must be under 200MB.")
		return nil, err
	}

	sess.setStage(StageUploading)
	resp, err := p.li.PostVideo(ctx, file.Name, file.Content, post, sess.setProgress)
	if err != nil {
		sess.fail(err)
		return nil, fmt.Errorf("video post failed: %w", err)
	}
	sess.setProgress(100)

	sess.setStage(StagePublishing)
	result := &Result{
		SessionID:      sess.ID,
		Platform:       models.PlatformLinkedin,
		PlatformPostID: resp.PostURN,
		URL:            resp.PostURL,
	}
	sess.setStage(StageDone)
	p.notifier.Success("Posted to LinkedIn.")
	if onSuccess != nil {
		onSuccess(*result)
	}
	return result, nil
}

// publishSocial creates the generic social post and triggers its
// immediate publish.
func (p *Pipeline) publishSocial(ctx context.Context, platform, caption string, hashtags []string, mediaIDs []int64) (*Result, error) {
	post, err := p.social.Create(ctx, &transfer.SocialPostCreation{
		Platform: platform,
		Caption:  caption,
		Hashtags: hashtags,
		MediaIDs: mediaIDs,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating post: %w", err)
	}

	resp, err := p.social.Publish(ctx, post.ID)
	if err != nil {
		return nil, fmt.Errorf("error publishing post: %w", err)
	}

	return &Result{
		Platform:       platform,
		PostID:         post.ID,
		PlatformPostID: resp.PlatformPostID,
		URL:            resp.PlatformURL,
	}, nil
}
