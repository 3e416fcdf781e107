package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/maheshrc27/clipdash/internal/transfer"
)

type ClipsCreateCommand struct {
	app *App

	MediaID  int64   `long:"media" description:"Source media id" required:"true"`
	Start    float64 `long:"start" description:"Clip start in seconds" required:"true"`
	End      float64 `long:"end" description:"Clip end in seconds" required:"true"`
	Title    string  `long:"title" description:"Clip title"`
	Hashtags string  `long:"hashtags" description:"Comma-separated hashtags"`
}

func (c *ClipsCreateCommand) Execute(args []string) error {
	clip, err := c.app.Clips.Create(context.Background(), &transfer.ClipCreation{
		MediaID:   c.MediaID,
		StartTime: c.Start,
		EndTime:   c.End,
		Title:     c.Title,
		Hashtags:  splitList(c.Hashtags),
	})
	if err != nil {
		return err
	}
	fmt.Printf("Created clip %d (%.1fs-%.1fs, status %s)\n", clip.ID, clip.StartTime, clip.EndTime, clip.Status)
	return nil
}

type ClipsListCommand struct {
	app *App
}

func (c *ClipsListCommand) Execute(args []string) error {
	clips, err := c.app.Clips.List(context.Background())
	if err != nil {
		return err
	}
	if len(clips) == 0 {
		fmt.Println("No clips yet.")
		return nil
	}
	for _, cl := range clips {
		title := cl.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Printf("%d\t%s\t%.1fs\t%s\n", cl.ID, title, cl.Duration, cl.Status)
	}
	return nil
}

type ClipsGenerateCommand struct {
	app *App

	ID int64 `long:"id" description:"Clip id" required:"true"`
}

func (c *ClipsGenerateCommand) Execute(args []string) error {
	clip, err := c.app.Clips.GenerateContent(context.Background(), c.ID)
	if err != nil {
		return err
	}
	fmt.Printf("Title: %s\n", clip.Title)
	if desc := clip.Description; desc != "" {
		fmt.Printf("Description: %s\n", desc)
	}
	if tags := clip.HashtagList(); len(tags) > 0 {
		fmt.Printf("Hashtags: %s\n", strings.Join(tags, " "))
	}
	return nil
}

type ClipsURLCommand struct {
	app *App

	ID int64 `long:"id" description:"Clip id" required:"true"`
}

func (c *ClipsURLCommand) Execute(args []string) error {
	resp, err := c.app.Clips.StreamURL(context.Background(), c.ID)
	if err != nil {
		return err
	}
	fmt.Println(resp.URL)
	return nil
}

type ClipsRemoveCommand struct {
	app *App

	ID int64 `long:"id" description:"Clip id" required:"true"`
}

func (c *ClipsRemoveCommand) Execute(args []string) error {
	if err := c.app.Clips.Remove(context.Background(), c.ID); err != nil {
		return err
	}
	fmt.Println("Deleted.")
	return nil
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
