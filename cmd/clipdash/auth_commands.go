package main

import (
	"context"
	"errors"
	"fmt"
)

type RegisterCommand struct {
	app *App

	Email    string `long:"email" description:"Email address" required:"true"`
	Password string `long:"password" description:"Password" required:"true"`
	FullName string `long:"name" description:"Full name"`
}

func (c *RegisterCommand) Execute(args []string) error {
	user, err := c.app.Auth.Register(context.Background(), c.Email, c.Password, c.FullName)
	if err != nil {
		return err
	}
	fmt.Printf("Registered %s. Run `clipdash login` to sign in.\n", user.Email)
	return nil
}

type LoginCommand struct {
	app *App

	Email    string `long:"email" description:"Email address" required:"true"`
	Password string `long:"password" description:"Password" required:"true"`
}

func (c *LoginCommand) Execute(args []string) error {
	user, err := c.app.Auth.Login(context.Background(), c.Email, c.Password)
	if err != nil {
		return err
	}
	fmt.Printf("Logged in as %s\n", user.Email)
	return nil
}

type LogoutCommand struct {
	app *App
}

func (c *LogoutCommand) Execute(args []string) error {
	if err := c.app.Auth.Logout(context.Background()); err != nil {
		return err
	}
	fmt.Println("Logged out.")
	return nil
}

type WhoamiCommand struct {
	app *App
}

func (c *WhoamiCommand) Execute(args []string) error {
	if !c.app.Store.IsAuthenticated() {
		return errors.New("not logged in")
	}

	// Refresh from the backend; the cached profile may be stale.
	fresh, err := c.app.Auth.Me(context.Background())
	if err != nil {
		return err
	}
	fmt.Printf("%s (%s)\n", fresh.FullName, fresh.Email)
	return nil
}
