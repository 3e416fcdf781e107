package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron"
)

type OverviewCommand struct {
	app *App
}

func (c *OverviewCommand) Execute(args []string) error {
	c.app.FetchOverview(context.Background())

	st := c.app.Store
	fmt.Printf("Accounts:  %d\n", len(st.Accounts()))
	fmt.Printf("Media:     %d (%d processing)\n", len(st.Media()), len(st.ProcessingMedia()))
	fmt.Printf("Clips:     %d\n", len(st.Clips()))
	fmt.Printf("Posts:     %d\n", len(st.SocialPosts()))
	return nil
}

type WatchCommand struct {
	app *App

	Interval string `long:"interval" description:"Poll interval" default:"00h00m30s"`
}

func (c *WatchCommand) Execute(args []string) error {
	// Seed the cache so there is something to poll.
	if _, err := c.app.Media.List(context.Background()); err != nil {
		return err
	}

	cr := cron.New()
	if err := cr.AddFunc("@every "+c.Interval, c.app.Refresh.RefreshStatuses); err != nil {
		return fmt.Errorf("invalid interval: %w", err)
	}
	if err := cr.AddFunc("@every 00h05m00s", c.app.Refresh.CheckSessionExpiry); err != nil {
		return err
	}
	cr.Start()
	defer cr.Stop()

	log.Println("Watching for status changes. Press Ctrl+C to stop.")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Stopped.")
	return nil
}
