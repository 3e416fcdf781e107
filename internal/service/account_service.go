package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/maheshrc27/clipdash/internal/models"
	"github.com/maheshrc27/clipdash/internal/rest"
	"github.com/maheshrc27/clipdash/internal/store"
	"github.com/maheshrc27/clipdash/internal/transfer"
)

type AccountService interface {
	List(ctx context.Context) ([]models.Account, error)
	AuthorizeURL(ctx context.Context, platform string) (*transfer.AuthorizeResponse, error)
	Status(ctx context.Context, platform string) (*transfer.OAuthStatus, error)
	Disconnect(ctx context.Context, platform string) error
	SetActive(ctx context.Context, accountID int64, active bool) (*models.Account, error)
}

type accountService struct {
	client *rest.Client
	st     *store.Store
}

func NewAccountService(client *rest.Client, st *store.Store) AccountService {
	return &accountService{client: client, st: st}
}

func (s *accountService) List(ctx context.Context) ([]models.Account, error) {
	var accounts []models.Account
	if err := s.client.Get(ctx, "/accounts/", &accounts); err != nil {
		return nil, fmt.Errorf("error listing accounts: %w", err)
	}
	s.st.SetAccounts(accounts)
	return accounts, nil
}

func (s *accountService) AuthorizeURL(ctx context.Context, platform string) (*transfer.AuthorizeResponse, error) {
	if !models.IsKnownPlatform(platform) {
		err := fmt.Errorf("unknown platform %q", platform)
		slog.Info(err.Error())
		return nil, err
	}

	var resp transfer.AuthorizeResponse
	if err := s.client.Get(ctx, "/oauth/"+platform+"/authorize", &resp); err != nil {
		return nil, fmt.Errorf("error fetching authorize URL: %w", err)
	}
	if resp.AuthorizationURL == "" {
		return nil, errors.New("backend returned no authorization URL")
	}
	return &resp, nil
}

func (s *accountService) Status(ctx context.Context, platform string) (*transfer.OAuthStatus, error) {
	var status transfer.OAuthStatus
	if err := s.client.Get(ctx, "/oauth/"+platform+"/status", &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (s *accountService) Disconnect(ctx context.Context, platform string) error {
	if !models.IsKnownPlatform(platform) {
		err := fmt.Errorf("unknown platform %q", platform)
		slog.Info(err.Error())
		return err
	}

	if err := s.client.Post(ctx, "/oauth/"+platform+"/disconnect", nil, nil); err != nil {
		return fmt.Errorf("error disconnecting %s: %w", platform, err)
	}

	// Drop cached accounts for the platform; the next list reload is
	// authoritative.
	for _, account := range s.st.Accounts() {
		if account.Platform == platform {
			s.st.RemoveAccount(account.ID)
		}
	}
	return nil
}

func (s *accountService) SetActive(ctx context.Context, accountID int64, active bool) (*models.Account, error) {
	if accountID == 0 {
		err := errors.New("account id is not valid")
		slog.Info(err.Error())
		return nil, err
	}

	var account models.Account
	payload := map[string]bool{"is_active": active}
	if err := s.client.Put(ctx, fmt.Sprintf("/accounts/%d", accountID), payload, &account); err != nil {
		return nil, fmt.Errorf("error updating account: %w", err)
	}
	s.st.UpdateAccount(account)
	return &account, nil
}
