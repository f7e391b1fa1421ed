package session

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vvka-141/termfolio/internal/files/filesystem"
)

// notNavigating is the cursor value outside history navigation.
const notNavigating = -1

// State is the mutable part of a session.
type State struct {
	ID      uuid.UUID
	Started time.Time
	Path    filesystem.Path
	History []string
	Buffer  string

	cursor  int
	pending string
}

func newState(id uuid.UUID, now time.Time) *State {
	return &State{
		ID:      id,
		Started: now,
		Path:    filesystem.Path{},
		cursor:  notNavigating,
	}
}

// Navigating reports whether the buffer currently shows a history entry.
func (s *State) Navigating() bool {
	return s.cursor != notNavigating
}

func (s *State) record(line string) {
	if strings.TrimSpace(line) == "" {
		return
	}
	if n := len(s.History); n > 0 && s.History[n-1] == line {
		return
	}
	s.History = append(s.History, line)
}
