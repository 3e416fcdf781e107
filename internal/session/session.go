package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/maheshrc27/clipdash/internal/transfer"
)

// Store persists the auth token and user profile to a JSON file, the
// CLI's stand-in for browser local storage.
type Store struct {
	mu   sync.Mutex
	path string
}

type sessionData struct {
	Token string                `json:"token"`
	User  *transfer.UserProfile `json:"user,omitempty"`
}

func NewStore(path string) (*Store, error) {
	if path == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("unable to resolve config dir: %w", err)
		}
		path = filepath.Join(configDir, "clipdash", "session.json")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("unable to create session dir: %w", err)
	}

	return &Store{path: path}, nil
}

func (s *Store) Token() string {
	data, err := s.load()
	if err != nil {
		return ""
	}
	return data.Token
}

func (s *Store) User() *transfer.UserProfile {
	data, err := s.load()
	if err != nil {
		return nil
	}
	return data.User
}

func (s *Store) Save(token string, user *transfer.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(sessionData{Token: token, User: user})
	if err != nil {
		return err
	}

	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		slog.Info(err.Error())
		return fmt.Errorf("unable to save session: %w", err)
	}
	return nil
}

// Clear removes the persisted session. A missing file is not an error;
// the forced-logout path may run more than it strictly needs to.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("unable to clear session: %w", err)
	}
	return nil
}

func (s *Store) load() (*sessionData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}

	var data sessionData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// ExpiresAt peeks at the stored token's expiry claim without verifying
// the signature. The backend owns verification; this only feeds the
// watch job's expiry warning.
func (s *Store) ExpiresAt() (time.Time, error) {
	token := s.Token()
	if token == "" {
		return time.Time{}, errors.New("no session token")
	}

	parser := jwt.NewParser()
	claims := jwt.RegisteredClaims{}
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		slog.Info(err.Error())
		return time.Time{}, err
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, errors.New("token has no expiry claim")
	}
	return claims.ExpiresAt.Time, nil
}
