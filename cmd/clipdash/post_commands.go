package main

import (
	"context"
	"fmt"
	"time"

	"github.com/maheshrc27/clipdash/internal/transfer"
)

type PostsListCommand struct {
	app *App
}

func (c *PostsListCommand) Execute(args []string) error {
	posts, err := c.app.Social.List(context.Background())
	if err != nil {
		return err
	}
	if len(posts) == 0 {
		fmt.Println("No posts.")
		return nil
	}
	for _, p := range posts {
		when := ""
		if p.ScheduledFor != nil {
			when = p.ScheduledFor.Format(time.RFC3339)
		}
		fmt.Printf("%d\t%s\t%s\t%s\n", p.ID, p.Platform, p.Status, when)
	}
	return nil
}

type PostsScheduleCommand struct {
	app *App

	ScheduleID int64  `long:"schedule" description:"Schedule id" required:"true"`
	ClipID     int64  `long:"clip" description:"Clip id" required:"true"`
	At         string `long:"at" description:"Scheduled time, RFC 3339" required:"true"`
	Caption    string `long:"caption" description:"Post caption"`
	Hashtags   string `long:"hashtags" description:"Comma-separated hashtags"`
}

func (c *PostsScheduleCommand) Execute(args []string) error {
	at, err := time.Parse(time.RFC3339, c.At)
	if err != nil {
		return fmt.Errorf("invalid time %q, expected RFC 3339: %w", c.At, err)
	}

	clipID := c.ClipID
	post, err := c.app.Schedules.CreatePost(context.Background(), &transfer.ScheduledPostCreation{
		ScheduleID:   c.ScheduleID,
		ClipID:       &clipID,
		ScheduledFor: at,
		Caption:      c.Caption,
		Hashtags:     splitList(c.Hashtags),
	})
	if err != nil {
		return err
	}
	fmt.Printf("Queued post %d for %s\n", post.ID, post.ScheduledFor.Format(time.RFC3339))
	return nil
}

type PostsPublishCommand struct {
	app *App

	ID int64 `long:"id" description:"Post id" required:"true"`
}

func (c *PostsPublishCommand) Execute(args []string) error {
	resp, err := c.app.Social.Publish(context.Background(), c.ID)
	if err != nil {
		return err
	}
	fmt.Printf("Published (status %s)\n", resp.Status)
	if resp.PlatformURL != "" {
		fmt.Println(resp.PlatformURL)
	}
	return nil
}

type PostsRemoveCommand struct {
	app *App

	ID int64 `long:"id" description:"Post id" required:"true"`
}

func (c *PostsRemoveCommand) Execute(args []string) error {
	if err := c.app.Social.Remove(context.Background(), c.ID); err != nil {
		return err
	}
	fmt.Println("Deleted.")
	return nil
}
