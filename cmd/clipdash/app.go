package main

import (
	"context"
	"fmt"
	"os"
	"sync"

	config "github.com/maheshrc27/clipdash/configs"
	job "github.com/maheshrc27/clipdash/internal/jobs"
	"github.com/maheshrc27/clipdash/internal/notify"
	"github.com/maheshrc27/clipdash/internal/oauth"
	"github.com/maheshrc27/clipdash/internal/pipeline"
	"github.com/maheshrc27/clipdash/internal/rest"
	"github.com/maheshrc27/clipdash/internal/service"
	"github.com/maheshrc27/clipdash/internal/session"
	"github.com/maheshrc27/clipdash/internal/store"
)

// App bundles the wired services so every command file reaches them
// through one place.
type App struct {
	Cfg   *config.Config
	Sess  *session.Store
	Store *store.Store

	Auth      service.AuthService
	Accounts  service.AccountService
	Media     service.MediaService
	Clips     service.ClipService
	Schedules service.ScheduleService
	Social    service.SocialService
	Instagram service.InstagramService
	Youtube   service.YoutubeService
	Tiktok    service.TiktokService
	Linkedin  service.LinkedinService

	Pipeline *pipeline.Pipeline
	Flow     *oauth.Flow
	Refresh  *job.StatusRefreshJob
}

func NewApp(cfg *config.Config) (*App, error) {
	sess, err := session.NewStore(cfg.SessionFile)
	if err != nil {
		return nil, err
	}

	st := store.New(sess)
	notifier := notify.NewNotifier()

	client := rest.NewClient(*cfg, sess, notifier, func() {
		if err := st.Logout(); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	})

	media := service.NewMediaService(client, st)
	social := service.NewSocialService(client, st)
	yt := service.NewYoutubeService(client)
	tt := service.NewTiktokService(client)
	li := service.NewLinkedinService(client)
	accounts := service.NewAccountService(client, st)

	app := &App{
		Cfg:       cfg,
		Sess:      sess,
		Store:     st,
		Auth:      service.NewAuthService(client, st),
		Accounts:  accounts,
		Media:     media,
		Clips:     service.NewClipService(client, st),
		Schedules: service.NewScheduleService(client, st),
		Social:    social,
		Instagram: service.NewInstagramService(client),
		Youtube:   yt,
		Tiktok:    tt,
		Linkedin:  li,
		Pipeline:  pipeline.New(media, social, yt, tt, li, notifier),
		Flow:      oauth.NewFlow(*cfg, accounts, notifier),
		Refresh:   job.NewStatusRefreshJob(media, st, sess, notifier),
	}
	return app, nil
}

// FetchOverview loads every dashboard collection concurrently. A
// failed fetch leaves its collection empty instead of failing the
// whole command.
func (a *App) FetchOverview(ctx context.Context) {
	var wg sync.WaitGroup

	fetches := []func(context.Context) error{
		func(ctx context.Context) error { _, err := a.Accounts.List(ctx); return err },
		func(ctx context.Context) error { _, err := a.Media.List(ctx); return err },
		func(ctx context.Context) error { _, err := a.Clips.List(ctx); return err },
		func(ctx context.Context) error { _, err := a.Schedules.List(ctx); return err },
		func(ctx context.Context) error { _, err := a.Social.List(ctx); return err },
	}

	for _, fetch := range fetches {
		wg.Add(1)
		go func(fetch func(context.Context) error) {
			defer wg.Done()
			if err := fetch(ctx); err != nil {
				return
			}
		}(fetch)
	}

	wg.Wait()
}

func printProgress(label string) func(int) {
	last := -1
	return func(pct int) {
		if pct == last {
			return
		}
		last = pct
		fmt.Fprintf(os.Stderr, "\r%s %d%%", label, pct)
		if pct >= 100 {
			fmt.Fprintln(os.Stderr)
		}
	}
}
