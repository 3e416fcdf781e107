package oauth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"
	"time"

	"github.com/gofiber/fiber/v2"
	config "github.com/maheshrc27/clipdash/configs"
	"github.com/maheshrc27/clipdash/internal/notify"
	"github.com/maheshrc27/clipdash/internal/service"
	"github.com/maheshrc27/clipdash/internal/transfer"
)

// ConnectTimeout bounds how long we wait for the user to finish the
// provider's consent screen.
const ConnectTimeout = 5 * time.Minute

// Flow drives the connect-account sequence: fetch the authorize URL
// from the backend, open the browser, and stand in for the opener
// window with a loopback server that receives the completion message.
type Flow struct {
	cfg      config.Config
	accounts service.AccountService
	notifier notify.Notifier

	// openBrowser is swappable in tests.
	openBrowser func(url string) error
}

func NewFlow(cfg config.Config, accounts service.AccountService, notifier notify.Notifier) *Flow {
	return &Flow{
		cfg:         cfg,
		accounts:    accounts,
		notifier:    notifier,
		openBrowser: openInBrowser,
	}
}

// Connect runs the full flow for one platform and blocks until the
// provider reports back or the deadline passes.
func (f *Flow) Connect(ctx context.Context, platform string) error {
	authResp, err := f.accounts.AuthorizeURL(ctx, platform)
	if err != nil {
		return err
	}

	results := make(chan transfer.OAuthResult, 1)
	listenErrs := make(chan error, 1)
	app := f.newCallbackApp(results)

	go func() {
		// Listen returns nil on Shutdown; anything else means the
		// callback can never arrive and waiting would be pointless.
		if err := app.Listen(fmt.Sprintf("127.0.0.1:%d", f.cfg.CallbackPort)); err != nil {
			listenErrs <- err
		}
	}()
	defer func() {
		// Give the callback window a moment to finish rendering its
		// close script before the server goes away.
		time.Sleep(200 * time.Millisecond)
		if err := app.Shutdown(); err != nil {
			slog.Info(err.Error())
		}
	}()

	f.notifier.Info(fmt.Sprintf("Opening browser to connect %s...", platform))
	if err := f.openBrowser(authResp.AuthorizationURL); err != nil {
		return fmt.Errorf("unable to open browser: %w", err)
	}

	select {
	case msg := <-results:
		if msg.Type == transfer.OAuthMessageError {
			f.notifier.Error(fmt.Sprintf("Connecting %s failed: %s", platform, msg.Error))
			return fmt.Errorf("oauth failed: %s", msg.Error)
		}
		f.notifier.Success(fmt.Sprintf("%s account connected.", platform))
		return nil
	case err := <-listenErrs:
		return fmt.Errorf("callback server failed to start: %w", err)
	case <-time.After(ConnectTimeout):
		return errors.New("timed out waiting for the authorization to complete")
	case <-ctx.Done():
		return ctx.Err()
	}
}

// newCallbackApp builds the loopback server. Two entry points: the
// redirect the provider lands on when no opener window exists, and the
// posted completion message, which is only accepted from origins on the
// configured allow-list.
func (f *Flow) newCallbackApp(results chan<- transfer.OAuthResult) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	app.Get("/accounts", func(c *fiber.Ctx) error {
		msg := transfer.OAuthResult{
			Type:     transfer.OAuthMessageSuccess,
			Platform: c.Query("platform"),
		}
		if errMsg := c.Query("error"); errMsg != "" {
			msg.Type = transfer.OAuthMessageError
			msg.Error = errMsg
		} else if c.Query("success") != "true" {
			msg.Type = transfer.OAuthMessageError
			msg.Error = "authorization did not complete"
		}

		deliver(results, msg)
		return c.SendString("Authorization finished. You can close this window and return to the terminal.")
	})

	app.Post("/oauth/result", func(c *fiber.Ctx) error {
		origin := c.Get(fiber.HeaderOrigin)
		if !f.originAllowed(origin) {
			slog.Info("rejected oauth message from origin " + origin)
			return c.SendStatus(fiber.StatusForbidden)
		}

		var msg transfer.OAuthResult
		if err := c.BodyParser(&msg); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "unable to parse message",
			})
		}
		if msg.Type != transfer.OAuthMessageSuccess && msg.Type != transfer.OAuthMessageError {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "unknown message type",
			})
		}

		deliver(results, msg)
		return c.SendStatus(fiber.StatusNoContent)
	})

	return app
}

// originAllowed checks the explicit allow-list. There is no fallback
// to guessing the expected origin from the request.
func (f *Flow) originAllowed(origin string) bool {
	if origin == "" {
		return false
	}
	for _, allowed := range f.cfg.AllowedOrigins {
		if origin == allowed {
			return true
		}
	}
	return false
}

// deliver drops the message if a result already arrived; only the first
// completion counts.
func deliver(results chan<- transfer.OAuthResult, msg transfer.OAuthResult) {
	select {
	case results <- msg:
	default:
	}
}

func openInBrowser(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return exec.Command("xdg-open", url).Start()
	}
}
