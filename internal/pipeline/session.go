package pipeline

import (
	"sync"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Stage is the state of an upload modal's run.
type Stage string

const (
	StageIdle       Stage = "idle"
	StageUploading  Stage = "uploading"
	StagePublishing Stage = "publishing"
	StageDone       Stage = "done"
)

// Session tracks one upload/publish run. It exists only for the
// lifetime of the run and is never persisted.
type Session struct {
	ID       string
	Filename string

	mu       sync.Mutex
	stage    Stage
	progress int
	err      error
}

func NewSession(filename string) (*Session, error) {
	id, err := gonanoid.New()
	if err != nil {
		return nil, err
	}
	return &Session{ID: id, Filename: filename, stage: StageIdle}, nil
}

func (s *Session) Stage() Stage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stage
}

func (s *Session) Progress() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.progress
}

func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *Session) setStage(stage Stage) {
	s.mu.Lock()
	s.stage = stage
	s.mu.Unlock()
}

// setProgress clamps to [last, 100] so reported progress never moves
// backwards.
func (s *Session) setProgress(pct int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if pct > 100 {
		pct = 100
	}
	if pct > s.progress {
		s.progress = pct
	}
}

// fail records the error and returns the session to idle, the error
// path out of every stage.
func (s *Session) fail(err error) {
	s.mu.Lock()
	s.stage = StageIdle
	s.err = err
	s.mu.Unlock()
}
