package main

import (
	"sync"

	"github.com/charmbracelet/ssh"
)

// windowSize follows the client's terminal size from SSH window-change requests.
type windowSize struct {
	mu         sync.RWMutex
	cols, rows int
}

func newWindowSize(w ssh.Window) *windowSize {
	return &windowSize{cols: w.Width, rows: w.Height}
}

// follow applies window changes until the channel closes with the session.
func (s *windowSize) follow(changes <-chan ssh.Window) {
	for w := range changes {
		s.set(w.Width, w.Height)
	}
}

func (s *windowSize) set(cols, rows int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cols, s.rows = cols, rows
}

// size reports the current size; it is the frontend's draw.TermSizeFunc.
func (s *windowSize) size() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cols, s.rows, nil
}
