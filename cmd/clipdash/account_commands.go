package main

import (
	"context"
	"fmt"

	"github.com/maheshrc27/clipdash/internal/models"
)

type AccountsListCommand struct {
	app *App
}

func (c *AccountsListCommand) Execute(args []string) error {
	accounts, err := c.app.Accounts.List(context.Background())
	if err != nil {
		return err
	}
	if len(accounts) == 0 {
		fmt.Println("No accounts connected.")
		return nil
	}
	for _, a := range accounts {
		state := "inactive"
		if a.IsActive {
			state = "active"
		}
		fmt.Printf("%d\t%s\t@%s\t%s\n", a.ID, a.Platform, a.AccountUsername, state)
	}
	return nil
}

type AccountsConnectCommand struct {
	app *App

	Platform string `long:"platform" description:"Platform to connect" required:"true" choice:"instagram" choice:"youtube" choice:"tiktok" choice:"linkedin" choice:"twitter"`
}

func (c *AccountsConnectCommand) Execute(args []string) error {
	if !models.IsKnownPlatform(c.Platform) {
		return fmt.Errorf("unknown platform: %s", c.Platform)
	}
	if err := c.app.Flow.Connect(context.Background(), c.Platform); err != nil {
		return err
	}
	fmt.Printf("Connected %s.\n", c.Platform)
	return nil
}

type AccountsStatusCommand struct {
	app *App

	Platform string `long:"platform" description:"Platform to check" required:"true"`
}

func (c *AccountsStatusCommand) Execute(args []string) error {
	status, err := c.app.Accounts.Status(context.Background(), c.Platform)
	if err != nil {
		return err
	}
	if !status.Connected {
		fmt.Printf("%s: not connected\n", c.Platform)
		return nil
	}
	fmt.Printf("%s: connected as @%s", c.Platform, status.Username)
	if status.ExpiresAt != "" {
		fmt.Printf(" (token expires %s)", status.ExpiresAt)
	}
	fmt.Println()
	return nil
}

type AccountsDisconnectCommand struct {
	app *App

	Platform string `long:"platform" description:"Platform to disconnect" required:"true"`
}

func (c *AccountsDisconnectCommand) Execute(args []string) error {
	if err := c.app.Accounts.Disconnect(context.Background(), c.Platform); err != nil {
		return err
	}
	fmt.Printf("Disconnected %s.\n", c.Platform)
	return nil
}

type AccountsActivateCommand struct {
	app *App

	ID  int64 `long:"id" description:"Account id" required:"true"`
	Off bool  `long:"off" description:"Deactivate instead of activate"`
}

func (c *AccountsActivateCommand) Execute(args []string) error {
	account, err := c.app.Accounts.SetActive(context.Background(), c.ID, !c.Off)
	if err != nil {
		return err
	}
	state := "active"
	if !account.IsActive {
		state = "inactive"
	}
	fmt.Printf("%s @%s is now %s.\n", account.Platform, account.AccountUsername, state)
	return nil
}
