package session

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maheshrc27/clipdash/internal/transfer"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)
	return s
}

func TestSaveAndLoad(t *testing.T) {
	s := newTestStore(t)

	user := &transfer.UserProfile{ID: 7, Email: "me@example.com", FullName: "Me"}
	require.NoError(t, s.Save("tok-123", user))

	assert.Equal(t, "tok-123", s.Token())
	got := s.User()
	require.NotNil(t, got)
	assert.Equal(t, "me@example.com", got.Email)
}

func TestEmptyStore(t *testing.T) {
	s := newTestStore(t)
	assert.Empty(t, s.Token())
	assert.Nil(t, s.User())
}

func TestClear(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save("tok", nil))
	require.NoError(t, s.Clear())
	assert.Empty(t, s.Token())

	// Clearing an already-empty store is fine.
	require.NoError(t, s.Clear())
}

func TestExpiresAt(t *testing.T) {
	s := newTestStore(t)

	exp := time.Now().Add(2 * time.Hour).Truncate(time.Second)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	signed, err := token.SignedString([]byte("secret"))
	require.NoError(t, err)
	require.NoError(t, s.Save(signed, nil))

	got, err := s.ExpiresAt()
	require.NoError(t, err)
	assert.True(t, got.Equal(exp))
}

func TestExpiresAtErrors(t *testing.T) {
	s := newTestStore(t)

	_, err := s.ExpiresAt()
	assert.Error(t, err)

	require.NoError(t, s.Save("not-a-jwt", nil))
	_, err = s.ExpiresAt()
	assert.Error(t, err)

	noExp := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{})
	signed, err := noExp.SignedString([]byte("secret"))
	require.NoError(t, err)
	require.NoError(t, s.Save(signed, nil))
	_, err = s.ExpiresAt()
	assert.Error(t, err)
}
