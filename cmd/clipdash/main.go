package main

import (
	"log"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	config "github.com/maheshrc27/clipdash/configs"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()

	app, err := NewApp(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}

	parser := flags.NewParser(nil, flags.Default)
	if err := registerCommands(parser, app); err != nil {
		log.Fatalf("Failed to register commands: %v", err)
	}

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return
		}
		os.Exit(1)
	}
}

func registerCommands(parser *flags.Parser, app *App) error {
	parser.AddCommand("register", "Create an account", "Create a new user account.", &RegisterCommand{app: app})
	parser.AddCommand("login", "Log in", "Log in with email and password.", &LoginCommand{app: app})
	parser.AddCommand("logout", "Log out", "Log out and clear the saved session.", &LogoutCommand{app: app})
	parser.AddCommand("whoami", "Show current user", "Show the logged in user's profile.", &WhoamiCommand{app: app})

	accounts, err := parser.AddCommand("accounts", "Manage social accounts", "List, connect and disconnect social accounts.", &struct{}{})
	if err != nil {
		return err
	}
	accounts.AddCommand("list", "List connected accounts", "", &AccountsListCommand{app: app})
	accounts.AddCommand("connect", "Connect a platform account", "Open the browser consent screen and wait for the callback.", &AccountsConnectCommand{app: app})
	accounts.AddCommand("status", "Show connection status", "", &AccountsStatusCommand{app: app})
	accounts.AddCommand("disconnect", "Disconnect a platform account", "", &AccountsDisconnectCommand{app: app})
	accounts.AddCommand("activate", "Toggle an account's active flag", "", &AccountsActivateCommand{app: app})

	media, err := parser.AddCommand("media", "Manage media files", "Upload, list and remove media files.", &struct{}{})
	if err != nil {
		return err
	}
	media.AddCommand("upload", "Upload a media file", "", &MediaUploadCommand{app: app})
	media.AddCommand("list", "List media files", "", &MediaListCommand{app: app})
	media.AddCommand("url", "Get a temporary stream URL", "", &MediaURLCommand{app: app})
	media.AddCommand("rm", "Delete a media file", "", &MediaRemoveCommand{app: app})

	clips, err := parser.AddCommand("clips", "Manage clips", "Create, list and manage clips cut from media.", &struct{}{})
	if err != nil {
		return err
	}
	clips.AddCommand("create", "Cut a clip from a media file", "", &ClipsCreateCommand{app: app})
	clips.AddCommand("list", "List clips", "", &ClipsListCommand{app: app})
	clips.AddCommand("generate", "Generate title and hashtags", "", &ClipsGenerateCommand{app: app})
	clips.AddCommand("url", "Get a temporary stream URL", "", &ClipsURLCommand{app: app})
	clips.AddCommand("rm", "Delete a clip", "", &ClipsRemoveCommand{app: app})

	schedules, err := parser.AddCommand("schedules", "Manage posting schedules", "Create and inspect posting schedules.", &struct{}{})
	if err != nil {
		return err
	}
	schedules.AddCommand("list", "List schedules", "", &SchedulesListCommand{app: app})
	schedules.AddCommand("create", "Create a schedule", "", &SchedulesCreateCommand{app: app})
	schedules.AddCommand("rm", "Delete a schedule", "", &SchedulesRemoveCommand{app: app})
	schedules.AddCommand("suggestions", "Show suggested schedules", "", &SchedulesSuggestionsCommand{app: app})

	parser.AddCommand("calendar", "Show the posting calendar", "Show per-day posting status for a month.", &CalendarCommand{app: app})

	posts, err := parser.AddCommand("posts", "Manage social posts", "List, publish and remove social posts.", &struct{}{})
	if err != nil {
		return err
	}
	posts.AddCommand("list", "List social posts", "", &PostsListCommand{app: app})
	posts.AddCommand("schedule", "Queue a clip on a schedule", "", &PostsScheduleCommand{app: app})
	posts.AddCommand("publish", "Publish an existing post now", "", &PostsPublishCommand{app: app})
	posts.AddCommand("rm", "Delete a social post", "", &PostsRemoveCommand{app: app})

	publish, err := parser.AddCommand("publish", "Publish to a platform", "Upload and publish content in one step.", &struct{}{})
	if err != nil {
		return err
	}
	publish.AddCommand("instagram", "Publish images to Instagram", "One file posts a single image, several post a carousel.", &PublishInstagramCommand{app: app})
	publish.AddCommand("youtube", "Upload a video to YouTube", "", &PublishYoutubeCommand{app: app})
	publish.AddCommand("tiktok", "Publish a video to TikTok", "", &PublishTiktokCommand{app: app})
	publish.AddCommand("linkedin", "Publish to LinkedIn", "", &PublishLinkedinCommand{app: app})

	parser.AddCommand("stats", "Show platform statistics", "Fetch profile and engagement numbers per platform.", &StatsCommand{app: app})
	parser.AddCommand("overview", "Show the dashboard overview", "Fetch and summarize everything at once.", &OverviewCommand{app: app})
	parser.AddCommand("watch", "Watch for status changes", "Poll processing media until interrupted.", &WatchCommand{app: app})
	return nil
}
