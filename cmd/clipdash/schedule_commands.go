package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/maheshrc27/clipdash/internal/calendar"
	"github.com/maheshrc27/clipdash/internal/transfer"
)

type SchedulesListCommand struct {
	app *App
}

func (c *SchedulesListCommand) Execute(args []string) error {
	schedules, err := c.app.Schedules.List(context.Background())
	if err != nil {
		return err
	}
	if len(schedules) == 0 {
		fmt.Println("No schedules.")
		return nil
	}
	for _, s := range schedules {
		state := "paused"
		if s.IsActive {
			state = "active"
		}
		fmt.Printf("%d\t%s\t%s\t%s\t%s\n", s.ID, s.Name, strings.Join(s.PostingTimes, ","), s.Timezone, state)
	}
	return nil
}

type SchedulesCreateCommand struct {
	app *App

	AccountID int64  `long:"account" description:"Social account id" required:"true"`
	Name      string `long:"name" description:"Schedule name" required:"true"`
	Days      string `long:"days" description:"Comma-separated weekdays, 0=Sunday" default:"1,3,5"`
	Times     string `long:"times" description:"Comma-separated posting times, HH:MM" default:"18:00"`
	Timezone  string `long:"tz" description:"IANA timezone" default:"UTC"`
}

func (c *SchedulesCreateCommand) Execute(args []string) error {
	days, err := parseDays(c.Days)
	if err != nil {
		return err
	}

	schedule, err := c.app.Schedules.Create(context.Background(), &transfer.ScheduleCreation{
		AccountID:    c.AccountID,
		Name:         c.Name,
		IsActive:     true,
		ScheduleType: "weekly",
		DaysOfWeek:   days,
		PostingTimes: splitList(c.Times),
		Timezone:     c.Timezone,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Created schedule %d (%s)\n", schedule.ID, schedule.Name)
	return nil
}

type SchedulesRemoveCommand struct {
	app *App

	ID int64 `long:"id" description:"Schedule id" required:"true"`
}

func (c *SchedulesRemoveCommand) Execute(args []string) error {
	if err := c.app.Schedules.Remove(context.Background(), c.ID); err != nil {
		return err
	}
	fmt.Println("Deleted.")
	return nil
}

type SchedulesSuggestionsCommand struct {
	app *App
}

func (c *SchedulesSuggestionsCommand) Execute(args []string) error {
	suggestions, err := c.app.Schedules.Suggestions(context.Background())
	if err != nil {
		return err
	}
	for _, s := range suggestions {
		fmt.Printf("%s: %s at %s\n", s.Name, formatDays(s.DaysOfWeek), strings.Join(s.PostingTimes, ", "))
		if s.Reasoning != "" {
			fmt.Printf("  %s\n", s.Reasoning)
		}
	}
	return nil
}

type CalendarCommand struct {
	app *App

	Year      int   `long:"year" description:"Year, defaults to current"`
	Month     int   `long:"month" description:"Month 1-12, defaults to current"`
	AccountID int64 `long:"account" description:"Filter by social account id"`
}

func (c *CalendarCommand) Execute(args []string) error {
	now := time.Now()
	year, month := c.Year, c.Month
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}
	if month < 1 || month > 12 {
		return fmt.Errorf("month out of range: %d", month)
	}

	days, err := c.app.Schedules.Calendar(context.Background(), year, month, c.AccountID)
	if err != nil {
		return err
	}

	for _, day := range days {
		status := calendar.GetDayStatus(day)
		if status == calendar.StatusNone {
			continue
		}
		fmt.Printf("%s\t%-8s\tneeded %d, ready %d, scheduled %d\n",
			day.Date, status, day.PostsNeeded, day.PostsReady, day.PostsScheduled)
	}
	return nil
}

func parseDays(raw string) ([]int, error) {
	parts := splitList(raw)
	days := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || n > 6 {
			return nil, fmt.Errorf("invalid weekday: %s", p)
		}
		days = append(days, n)
	}
	return days, nil
}

func formatDays(days []int) string {
	names := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	out := make([]string, 0, len(days))
	for _, d := range days {
		if d >= 0 && d < len(names) {
			out = append(out, names[d])
		}
	}
	return strings.Join(out, "/")
}
