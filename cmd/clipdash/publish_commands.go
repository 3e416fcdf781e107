package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jessevdk/go-flags"
	"github.com/maheshrc27/clipdash/internal/pipeline"
	"github.com/maheshrc27/clipdash/internal/transfer"
)

type PublishInstagramCommand struct {
	app *App

	Caption  string `long:"caption" description:"Post caption"`
	Hashtags string `long:"hashtags" description:"Comma-separated hashtags"`

	Args struct {
		Files []flags.Filename `positional-arg-name:"FILE" description:"JPEG images, one for a single post, 2-10 for a carousel" required:"1"`
	} `positional-args:"yes"`
}

func (c *PublishInstagramCommand) Execute(args []string) error {
	files, err := readFiles(c.Args.Files)
	if err != nil {
		return err
	}

	hashtags := splitList(c.Hashtags)
	onSuccess := func(r pipeline.Result) {
		fmt.Printf("Posted to Instagram (post id %d)\n", r.PostID)
	}

	if len(files) == 1 {
		sess, err := pipeline.NewSession(files[0].Name)
		if err != nil {
			return err
		}
		result, err := c.app.Pipeline.PublishInstagramImage(context.Background(), sess, files[0], c.Caption, hashtags, onSuccess)
		if err != nil {
			return err
		}
		printResult(result)
		return nil
	}

	carousel := pipeline.NewCarousel()
	accepted := carousel.Add(files...)
	if accepted < len(files) {
		fmt.Fprintf(os.Stderr, "Carousel is limited to %d images, using the first %d.\n", pipeline.CarouselMax, accepted)
	}

	sess, err := pipeline.NewSession(files[0].Name)
	if err != nil {
		return err
	}
	result, err := c.app.Pipeline.PublishInstagramCarousel(context.Background(), sess, carousel, c.Caption, hashtags, onSuccess)
	if err != nil {
		return err
	}
	printResult(result)
	return nil
}

type PublishYoutubeCommand struct {
	app *App

	Title       string         `long:"title" description:"Video title" required:"true"`
	Description string         `long:"description" description:"Video description"`
	Tags        string         `long:"tags" description:"Comma-separated tags"`
	Privacy     string         `long:"privacy" description:"Privacy status" default:"public" choice:"public" choice:"private" choice:"unlisted"`
	Short       bool           `long:"short" description:"Upload as a Short"`
	Thumbnail   flags.Filename `long:"thumbnail" description:"Thumbnail image, jpg/png/gif up to 2MB"`

	Args struct {
		File flags.Filename `positional-arg-name:"FILE" description:"Video file"`
	} `positional-args:"yes" required:"yes"`
}

func (c *PublishYoutubeCommand) Execute(args []string) error {
	file, err := readFile(c.Args.File)
	if err != nil {
		return err
	}

	var thumbnail *pipeline.File
	if c.Thumbnail != "" {
		t, err := readFile(c.Thumbnail)
		if err != nil {
			return err
		}
		thumbnail = &t
	}

	sess, err := pipeline.NewSession(file.Name)
	if err != nil {
		return err
	}

	result, err := c.app.Pipeline.PublishYoutubeVideo(context.Background(), sess, file, &transfer.VideoUpload{
		Title:         c.Title,
		Description:   c.Description,
		Tags:          splitList(c.Tags),
		PrivacyStatus: c.Privacy,
		IsShort:       c.Short,
	}, thumbnail, func(r pipeline.Result) {
		fmt.Printf("Uploaded to YouTube (%s)\n", r.URL)
	})
	if err != nil {
		return err
	}
	printResult(result)
	return nil
}

type PublishTiktokCommand struct {
	app *App

	Title   string `long:"title" description:"Video title" required:"true"`
	Privacy string `long:"privacy" description:"Privacy level" default:"PUBLIC_TO_EVERYONE"`

	Args struct {
		File flags.Filename `positional-arg-name:"FILE" description:"Video file, up to 4GB"`
	} `positional-args:"yes" required:"yes"`
}

func (c *PublishTiktokCommand) Execute(args []string) error {
	file, err := readFile(c.Args.File)
	if err != nil {
		return err
	}

	sess, err := pipeline.NewSession(file.Name)
	if err != nil {
		return err
	}

	result, err := c.app.Pipeline.PublishTiktokVideo(context.Background(), sess, file, &transfer.TiktokVideoPost{
		Title:        c.Title,
		PrivacyLevel: c.Privacy,
	}, func(r pipeline.Result) {
		fmt.Println("Published to TikTok")
	})
	if err != nil {
		return err
	}
	printResult(result)
	return nil
}

type PublishLinkedinCommand struct {
	app *App

	Text  string `long:"text" description:"Post text" required:"true"`
	Title string `long:"title" description:"Media title"`
	Video bool   `long:"video" description:"Treat the file as a video"`

	Args struct {
		File flags.Filename `positional-arg-name:"FILE" description:"Image up to 10MB or video up to 200MB"`
	} `positional-args:"yes" required:"yes"`
}

func (c *PublishLinkedinCommand) Execute(args []string) error {
	file, err := readFile(c.Args.File)
	if err != nil {
		return err
	}

	sess, err := pipeline.NewSession(file.Name)
	if err != nil {
		return err
	}

	post := &transfer.LinkedinMediaPost{Text: c.Text, Title: c.Title}
	onSuccess := func(r pipeline.Result) {
		fmt.Printf("Posted to LinkedIn (%s)\n", r.URL)
	}

	var result *pipeline.Result
	if c.Video {
		result, err = c.app.Pipeline.PublishLinkedinVideo(context.Background(), sess, file, post, onSuccess)
	} else {
		result, err = c.app.Pipeline.PublishLinkedinImage(context.Background(), sess, file, post, onSuccess)
	}
	if err != nil {
		return err
	}
	printResult(result)
	return nil
}

func readFile(path flags.Filename) (pipeline.File, error) {
	content, err := os.ReadFile(string(path))
	if err != nil {
		return pipeline.File{}, fmt.Errorf("unable to read %s: %w", path, err)
	}
	return pipeline.File{Name: filepath.Base(string(path)), Content: content}, nil
}

func readFiles(paths []flags.Filename) ([]pipeline.File, error) {
	files := make([]pipeline.File, 0, len(paths))
	for _, p := range paths {
		f, err := readFile(p)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

func printResult(r *pipeline.Result) {
	if r.URL != "" {
		fmt.Println(r.URL)
	}
	if r.Degraded && r.Warning != "" {
		fmt.Fprintln(os.Stderr, r.Warning)
	}
}
