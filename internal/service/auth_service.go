package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/maheshrc27/clipdash/internal/rest"
	"github.com/maheshrc27/clipdash/internal/store"
	"github.com/maheshrc27/clipdash/internal/transfer"
)

type AuthService interface {
	Register(ctx context.Context, email, password, fullName string) (*transfer.UserProfile, error)
	Login(ctx context.Context, email, password string) (*transfer.UserProfile, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*transfer.UserProfile, error)
	UpdateProfile(ctx context.Context, fullName string) (*transfer.UserProfile, error)
}

type authService struct {
	client *rest.Client
	st     *store.Store
}

func NewAuthService(client *rest.Client, st *store.Store) AuthService {
	return &authService{client: client, st: st}
}

func (s *authService) Register(ctx context.Context, email, password, fullName string) (*transfer.UserProfile, error) {
	if email == "" || password == "" {
		err := errors.New("email and password are required")
		slog.Info(err.Error())
		return nil, err
	}

	var user transfer.UserProfile
	payload := map[string]string{
		"email":     email,
		"password":  password,
		"full_name": fullName,
	}
	if err := s.client.Post(ctx, "/auth/", payload, &user); err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}
	return &user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*transfer.UserProfile, error) {
	if email == "" || password == "" {
		err := errors.New("email and password are required")
		slog.Info(err.Error())
		return nil, err
	}

	var resp transfer.LoginResponse
	req := transfer.LoginRequest{Email: email, Password: password}
	if err := s.client.Post(ctx, "/auth/login", req, &resp); err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	if resp.AccessToken == "" {
		return nil, errors.New("login response carried no token")
	}

	if err := s.st.Login(resp.AccessToken, &resp.User); err != nil {
		return nil, fmt.Errorf("unable to persist session: %w", err)
	}
	return &resp.User, nil
}

func (s *authService) Logout(ctx context.Context) error {
	// Best effort on the backend side; the local session is cleared
	// regardless.
	if err := s.client.Post(ctx, "/auth/logout", nil, nil, rest.Quiet()); err != nil {
		slog.Info(err.Error())
	}
	return s.st.Logout()
}

func (s *authService) Me(ctx context.Context) (*transfer.UserProfile, error) {
	var user transfer.UserProfile
	if err := s.client.Get(ctx, "/auth/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *authService) UpdateProfile(ctx context.Context, fullName string) (*transfer.UserProfile, error) {
	var user transfer.UserProfile
	payload := map[string]string{"full_name": fullName}
	if err := s.client.Put(ctx, "/auth/me", payload, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
