package job

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/maheshrc27/clipdash/internal/models"
	"github.com/maheshrc27/clipdash/internal/notify"
	"github.com/maheshrc27/clipdash/internal/service"
	"github.com/maheshrc27/clipdash/internal/session"
	"github.com/maheshrc27/clipdash/internal/store"
)

// StatusRefreshJob backs the CLI's watch mode. The backend never pushes
// media state, so items stuck in processing are re-fetched on a cron
// tick, and the user is warned shortly before the session token lapses.
type StatusRefreshJob struct {
	media    service.MediaService
	st       *store.Store
	sess     *session.Store
	notifier notify.Notifier

	mu             sync.Mutex
	warnedExpiring bool
}

func NewStatusRefreshJob(
	media service.MediaService,
	st *store.Store,
	sess *session.Store,
	notifier notify.Notifier) *StatusRefreshJob {
	return &StatusRefreshJob{
		media:    media,
		st:       st,
		sess:     sess,
		notifier: notifier,
	}
}

func (j *StatusRefreshJob) RefreshStatuses() {
	ctx := context.Background()

	processing := j.st.ProcessingMedia()
	if len(processing) == 0 {
		return
	}

	var wg sync.WaitGroup

	concurrencyLimit := 5
	semaphore := make(chan struct{}, concurrencyLimit)

	for _, m := range processing {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(m models.Media) {
			defer wg.Done()
			defer func() { <-semaphore }()

			updated, err := j.media.Get(ctx, m.ID)
			if err != nil {
				slog.Info(err.Error())
				return
			}
			if updated.Status == m.Status {
				return
			}

			switch updated.Status {
			case models.MediaStatusReady:
				j.notifier.Success(fmt.Sprintf("%s finished processing.", updated.OriginalFilename))
			case models.MediaStatusFailed:
				j.notifier.Error(fmt.Sprintf("%s failed processing.", updated.OriginalFilename))
			}
		}(m)
	}

	wg.Wait()
}

// CheckSessionExpiry warns once when the token is within 30 minutes of
// expiring.
func (j *StatusRefreshJob) CheckSessionExpiry() {
	expiresAt, err := j.sess.ExpiresAt()
	if err != nil {
		return
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	if j.warnedExpiring {
		return
	}
	if time.Until(expiresAt) < 30*time.Minute {
		j.warnedExpiring = true
		j.notifier.Info("Your session expires soon. Log in again to keep working.")
	}
}
