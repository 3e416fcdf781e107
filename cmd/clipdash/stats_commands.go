package main

import (
	"context"
	"fmt"
	"strings"
)

type StatsCommand struct {
	app *App

	Platform string `long:"platform" description:"Limit to one platform"`
}

// Execute fetches profile and engagement numbers for every connected
// platform. Failures skip the platform rather than abort; accounts are
// routinely half-connected.
func (c *StatsCommand) Execute(args []string) error {
	ctx := context.Background()
	want := func(platform string) bool {
		return c.Platform == "" || c.Platform == platform
	}

	if want("instagram") {
		if info, err := c.app.Instagram.AccountInfo(ctx); err == nil {
			fmt.Printf("Instagram @%s: %d followers, %d posts\n", info.Username, info.FollowersCount, info.MediaCount)
			if insights, err := c.app.Instagram.AccountInsights(ctx, []string{"reach", "profile_views"}, "day"); err == nil {
				for _, in := range insights {
					if len(in.Values) > 0 {
						fmt.Printf("  %s: %d\n", in.Name, in.Values[len(in.Values)-1].Value)
					}
				}
			}
		}
	}

	if want("youtube") {
		if ch, err := c.app.Youtube.Channel(ctx); err == nil {
			fmt.Printf("YouTube %s: %d subscribers, %d videos, %d views\n", ch.Title, ch.SubscriberCount, ch.VideoCount, ch.ViewCount)
		}
	}

	if want("tiktok") {
		if acc, err := c.app.Tiktok.Account(ctx); err == nil {
			fmt.Printf("TikTok @%s: %d followers, %d likes\n", acc.Username, acc.FollowerCount, acc.LikesCount)
		}
		if info, err := c.app.Tiktok.CreatorInfo(ctx); err == nil && len(info.PrivacyLevelOptions) > 0 {
			fmt.Printf("  privacy options: %s\n", strings.Join(info.PrivacyLevelOptions, ", "))
		}
	}

	if want("linkedin") {
		if profile, err := c.app.Linkedin.Profile(ctx); err == nil {
			fmt.Printf("LinkedIn %s %s", profile.FirstName, profile.LastName)
			if profile.Headline != "" {
				fmt.Printf(" (%s)", profile.Headline)
			}
			fmt.Println()
			if orgs, err := c.app.Linkedin.Organizations(ctx); err == nil {
				for _, org := range orgs {
					fmt.Printf("  org: %s\n", org.Name)
				}
			}
		}
	}

	return nil
}
