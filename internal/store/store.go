package store

import (
	"sync"

	"github.com/maheshrc27/clipdash/internal/models"
	"github.com/maheshrc27/clipdash/internal/session"
	"github.com/maheshrc27/clipdash/internal/transfer"
)

// Store is the client-side cache of backend-owned collections. The
// backend stays authoritative; mutations here are plain replace/filter
// updates applied after each call, no merging.
type Store struct {
	mu sync.RWMutex

	accounts       []models.Account
	media          []models.Media
	clips          []models.Clip
	scheduledPosts []models.ScheduledPost
	socialPosts    []models.SocialPost

	user            *transfer.UserProfile
	isAuthenticated bool

	session *session.Store
}

func New(s *session.Store) *Store {
	st := &Store{session: s}
	if s != nil {
		if user := s.User(); user != nil && s.Token() != "" {
			st.user = user
			st.isAuthenticated = true
		}
	}
	return st
}

// ----- auth slice -----

func (s *Store) Login(token string, user *transfer.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session != nil {
		if err := s.session.Save(token, user); err != nil {
			return err
		}
	}
	s.user = user
	s.isAuthenticated = true
	return nil
}

func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	s.isAuthenticated = false
	s.accounts = nil
	s.media = nil
	s.clips = nil
	s.scheduledPosts = nil
	s.socialPosts = nil

	if s.session != nil {
		return s.session.Clear()
	}
	return nil
}

func (s *Store) User() *transfer.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isAuthenticated
}

// ----- accounts -----

func (s *Store) SetAccounts(accounts []models.Account) {
	s.mu.Lock()
	s.accounts = accounts
	s.mu.Unlock()
}

func (s *Store) Accounts() []models.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Account, len(s.accounts))
	copy(out, s.accounts)
	return out
}

func (s *Store) UpdateAccount(account models.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.accounts {
		if s.accounts[i].ID == account.ID {
			s.accounts[i] = account
			return
		}
	}
	s.accounts = append(s.accounts, account)
}

func (s *Store) RemoveAccount(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	filtered := s.accounts[:0]
	for _, a := range s.accounts {
		if a.ID != id {
			filtered = append(filtered, a)
		}
	}
	s.accounts = filtered
}

// ----- media -----

func (s *Store) SetMedia(media []models.Media) {
	s.mu.Lock()
	s.media = media
	s.mu.Unlock()
}

func (s *Store) Media() []models.Media {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Media, len(s.media))
	copy(out, s.media)
	return out
}

func (s *Store) AddMedia(m models.Media) {
	s.mu.Lock()
	s.media = append(s.media, m)
	s.mu.Unlock()
}

func (s *Store) UpdateMedia(m models.Media) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.media {
		if s.media[i].ID == m.ID {
			s.media[i] = m
			return
		}
	}
	s.media = append(s.media, m)
}

func (s *Store) RemoveMedia(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	filtered := s.media[:0]
	for _, m := range s.media {
		if m.ID != id {
			filtered = append(filtered, m)
		}
	}
	s.media = filtered
}

// ProcessingMedia returns items still waiting on the backend pipeline.
// The watch job polls these until they settle.
func (s *Store) ProcessingMedia() []models.Media {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Media
	for _, m := range s.media {
		if m.Status == models.MediaStatusProcessing {
			out = append(out, m)
		}
	}
	return out
}

// ----- clips -----

func (s *Store) SetClips(clips []models.Clip) {
	s.mu.Lock()
	s.clips = clips
	s.mu.Unlock()
}

func (s *Store) Clips() []models.Clip {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Clip, len(s.clips))
	copy(out, s.clips)
	return out
}

func (s *Store) AddClip(c models.Clip) {
	s.mu.Lock()
	s.clips = append(s.clips, c)
	s.mu.Unlock()
}

func (s *Store) UpdateClip(c models.Clip) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.clips {
		if s.clips[i].ID == c.ID {
			s.clips[i] = c
			return
		}
	}
	s.clips = append(s.clips, c)
}

func (s *Store) RemoveClip(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	filtered := s.clips[:0]
	for _, c := range s.clips {
		if c.ID != id {
			filtered = append(filtered, c)
		}
	}
	s.clips = filtered
}

// ----- scheduled posts -----

func (s *Store) SetScheduledPosts(posts []models.ScheduledPost) {
	s.mu.Lock()
	s.scheduledPosts = posts
	s.mu.Unlock()
}

func (s *Store) ScheduledPosts() []models.ScheduledPost {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ScheduledPost, len(s.scheduledPosts))
	copy(out, s.scheduledPosts)
	return out
}

func (s *Store) UpdateScheduledPost(p models.ScheduledPost) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.scheduledPosts {
		if s.scheduledPosts[i].ID == p.ID {
			s.scheduledPosts[i] = p
			return
		}
	}
	s.scheduledPosts = append(s.scheduledPosts, p)
}

func (s *Store) RemoveScheduledPost(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	filtered := s.scheduledPosts[:0]
	for _, p := range s.scheduledPosts {
		if p.ID != id {
			filtered = append(filtered, p)
		}
	}
	s.scheduledPosts = filtered
}

// ----- social posts -----

func (s *Store) SetSocialPosts(posts []models.SocialPost) {
	s.mu.Lock()
	s.socialPosts = posts
	s.mu.Unlock()
}

func (s *Store) SocialPosts() []models.SocialPost {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.SocialPost, len(s.socialPosts))
	copy(out, s.socialPosts)
	return out
}

func (s *Store) UpdateSocialPost(p models.SocialPost) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.socialPosts {
		if s.socialPosts[i].ID == p.ID {
			s.socialPosts[i] = p
			return
		}
	}
	s.socialPosts = append(s.socialPosts, p)
}

func (s *Store) RemoveSocialPost(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	filtered := s.socialPosts[:0]
	for _, p := range s.socialPosts {
		if p.ID != id {
			filtered = append(filtered, p)
		}
	}
	s.socialPosts = filtered
}
