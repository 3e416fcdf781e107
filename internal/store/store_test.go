package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maheshrc27/clipdash/internal/models"
	"github.com/maheshrc27/clipdash/internal/session"
	"github.com/maheshrc27/clipdash/internal/transfer"
)

func newSession(t *testing.T) *session.Store {
	t.Helper()
	s, err := session.NewStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)
	return s
}

func TestLoginPersistsAndHydrates(t *testing.T) {
	sess := newSession(t)

	st := New(sess)
	assert.False(t, st.IsAuthenticated())

	user := &transfer.UserProfile{ID: 1, Email: "me@example.com"}
	require.NoError(t, st.Login("tok", user))
	assert.True(t, st.IsAuthenticated())

	// A fresh store over the same file picks the session back up.
	st2 := New(sess)
	assert.True(t, st2.IsAuthenticated())
	require.NotNil(t, st2.User())
	assert.Equal(t, "me@example.com", st2.User().Email)
}

func TestLogoutClearsEverything(t *testing.T) {
	sess := newSession(t)
	st := New(sess)

	require.NoError(t, st.Login("tok", &transfer.UserProfile{ID: 1}))
	st.SetAccounts([]models.Account{{ID: 1}})
	st.SetMedia([]models.Media{{ID: 1}})
	st.SetClips([]models.Clip{{ID: 1}})
	st.SetSocialPosts([]models.SocialPost{{ID: 1}})

	require.NoError(t, st.Logout())

	assert.False(t, st.IsAuthenticated())
	assert.Nil(t, st.User())
	assert.Empty(t, st.Accounts())
	assert.Empty(t, st.Media())
	assert.Empty(t, st.Clips())
	assert.Empty(t, st.SocialPosts())
	assert.Empty(t, sess.Token())
}

func TestUpdateMediaReplacesOrAppends(t *testing.T) {
	st := New(nil)
	st.SetMedia([]models.Media{{ID: 1, Status: models.MediaStatusProcessing}})

	st.UpdateMedia(models.Media{ID: 1, Status: models.MediaStatusReady})
	media := st.Media()
	require.Len(t, media, 1)
	assert.Equal(t, models.MediaStatusReady, media[0].Status)

	st.UpdateMedia(models.Media{ID: 2, Status: models.MediaStatusProcessing})
	assert.Len(t, st.Media(), 2)
}

func TestRemoveMedia(t *testing.T) {
	st := New(nil)
	st.SetMedia([]models.Media{{ID: 1}, {ID: 2}, {ID: 3}})

	st.RemoveMedia(2)
	media := st.Media()
	require.Len(t, media, 2)
	assert.Equal(t, int64(1), media[0].ID)
	assert.Equal(t, int64(3), media[1].ID)

	// Removing an unknown id is a no-op.
	st.RemoveMedia(42)
	assert.Len(t, st.Media(), 2)
}

func TestProcessingMedia(t *testing.T) {
	st := New(nil)
	st.SetMedia([]models.Media{
		{ID: 1, Status: models.MediaStatusProcessing},
		{ID: 2, Status: models.MediaStatusReady},
		{ID: 3, Status: models.MediaStatusProcessing},
	})

	processing := st.ProcessingMedia()
	require.Len(t, processing, 2)
	assert.Equal(t, int64(1), processing[0].ID)
	assert.Equal(t, int64(3), processing[1].ID)
}

func TestAccessorsCopy(t *testing.T) {
	st := New(nil)
	st.SetAccounts([]models.Account{{ID: 1, Platform: models.PlatformInstagram}})

	got := st.Accounts()
	got[0].Platform = models.PlatformTiktok

	assert.Equal(t, models.PlatformInstagram, st.Accounts()[0].Platform)
}
