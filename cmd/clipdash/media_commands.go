package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jessevdk/go-flags"
)

type MediaUploadCommand struct {
	app *App

	Args struct {
		File flags.Filename `positional-arg-name:"FILE" description:"Path to the media file"`
	} `positional-args:"yes" required:"yes"`
}

func (c *MediaUploadCommand) Execute(args []string) error {
	path := string(c.Args.File)
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("unable to read %s: %w", path, err)
	}

	name := filepath.Base(path)
	resp, err := c.app.Media.Upload(context.Background(), name, content, printProgress("Uploading"))
	if err != nil {
		return err
	}
	fmt.Printf("Uploaded %s (media id %d, status %s)\n", resp.Filename, resp.MediaID, resp.Status)
	return nil
}

type MediaListCommand struct {
	app *App
}

func (c *MediaListCommand) Execute(args []string) error {
	media, err := c.app.Media.List(context.Background())
	if err != nil {
		return err
	}
	if len(media) == 0 {
		fmt.Println("No media uploaded.")
		return nil
	}
	for _, m := range media {
		fmt.Printf("%d\t%s\t%s\t%s\t%s\n", m.ID, m.OriginalFilename, m.MediaType, formatSize(m.FileSize), m.Status)
	}
	return nil
}

type MediaURLCommand struct {
	app *App

	ID      int64 `long:"id" description:"Media id" required:"true"`
	Expires int   `long:"expires" description:"URL lifetime in seconds" default:"3600"`
}

func (c *MediaURLCommand) Execute(args []string) error {
	resp, err := c.app.Media.StreamURL(context.Background(), c.ID, c.Expires)
	if err != nil {
		return err
	}
	fmt.Println(resp.URL)
	return nil
}

type MediaRemoveCommand struct {
	app *App

	ID int64 `long:"id" description:"Media id" required:"true"`
}

func (c *MediaRemoveCommand) Execute(args []string) error {
	if err := c.app.Media.Remove(context.Background(), c.ID); err != nil {
		return err
	}
	fmt.Println("Deleted.")
	return nil
}

func formatSize(size int64) string {
	const (
		kb = 1 << 10
		mb = 1 << 20
		gb = 1 << 30
	)
	switch {
	case size >= gb:
		return fmt.Sprintf("%.1fGB", float64(size)/gb)
	case size >= mb:
		return fmt.Sprintf("%.1fMB", float64(size)/mb)
	case size >= kb:
		return fmt.Sprintf("%.1fKB", float64(size)/kb)
	}
	return fmt.Sprintf("%dB", size)
}
