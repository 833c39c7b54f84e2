package state

import (
	"sync"
	"time"

	"github.com/five82/doggallery/internal/dogapi"
)

// Phase identifies which ViewState variant is active.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseFailed
	PhaseReady
)

func (p Phase) String() string {
	switch p {
	case PhaseFailed:
		return "failed"
	case PhaseReady:
		return "ready"
	default:
		return "loading"
	}
}

// ViewState is the tagged variant driving rendering. Message is only
// meaningful in PhaseFailed and Images only in PhaseReady.
type ViewState struct {
	Phase   Phase
	Message string
	Images  dogapi.ImageList
}

// Loading returns the initial state.
func Loading() ViewState {
	return ViewState{Phase: PhaseLoading}
}

// Failed returns the error state carrying message verbatim.
func Failed(message string) ViewState {
	return ViewState{Phase: PhaseFailed, Message: message}
}

// Ready returns the loaded state holding a copy of images.
func Ready(images dogapi.ImageList) ViewState {
	if images == nil {
		images = dogapi.ImageList{}
	}
	return ViewState{Phase: PhaseReady, Images: images.Clone()}
}

// Generation identifies one fetch invocation.
type Generation uint64

// Store holds the single ViewState and guards it against late fetch results.
type Store struct {
	mu          sync.RWMutex
	view        ViewState
	generation  Generation
	closed      bool
	fetches     int
	lastUpdated time.Time
}

// Begin resets the state to Loading and starts a new generation. After Close
// it changes nothing and returns the current generation.
func (s *Store) Begin() Generation {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return s.generation
	}
	s.generation++
	s.fetches++
	s.view = Loading()
	return s.generation
}

// Resolve applies a fetch result when gen is still current and the store is
// open. It reports whether the result was applied.
func (s *Store) Resolve(gen Generation, images dogapi.ImageList, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Begin never issues generation zero.
	if s.closed || gen == 0 || gen != s.generation || s.view.Phase != PhaseLoading {
		return false
	}
	if err != nil {
		s.view = Failed(dogapi.UserMessage(err))
	} else {
		s.view = Ready(images)
	}
	s.lastUpdated = time.Now()
	return true
}

// Close deactivates the store; pending results are discarded from now on.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() ViewState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.view
	snap.Images = s.view.Images.Clone()
	return snap
}

// Generation returns the current generation token.
func (s *Store) Generation() Generation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

// Closed reports whether Close has been called.
func (s *Store) Closed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.closed
}

// Fetches returns how many fetch cycles have been started.
func (s *Store) Fetches() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fetches
}

// LastUpdated is when a result was last applied.
func (s *Store) LastUpdated() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastUpdated
}
