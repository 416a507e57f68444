package editstore

import (
	"errors"
	"sync"

	"github.com/DoyleJ11/color-grid-backend/internal/canvas"
	"github.com/DoyleJ11/color-grid-backend/internal/team"
)

var ErrOutOfBounds = errors.New("coordinate out of bounds")
var ErrUnknownTeam = errors.New("unknown team id")

// Entry is the last edit applied to a coordinate: the team and the
// team's color as copied from the registry at write time.
type Entry struct {
	TeamID int
	Color  canvas.Color
}

// Store holds locally-applied edits keyed by coordinate. In-memory
// only: entries never expire and the whole store is lost on restart.
// Each Store is an independent instance so tests can run isolated.
type Store struct {
	mu      sync.RWMutex
	entries map[canvas.Coord]Entry
	size    int
	teams   *team.Registry
}

func New(size int, teams *team.Registry) *Store {
	return &Store{
		entries: make(map[canvas.Coord]Entry),
		size:    size,
		teams:   teams,
	}
}

// Apply validates the edit and overwrites any existing entry at the
// coordinate. The whole entry is written under the lock, so a
// concurrent Lookup never observes a team id paired with another
// write's color. Invalid input is rejected, never partially applied.
func (s *Store) Apply(x, y, teamID int) (canvas.Color, error) {
	c := canvas.Coord{X: x, Y: y}
	if !canvas.InBounds(c, s.size) {
		return canvas.Color{}, ErrOutOfBounds
	}
	t, ok := s.teams.ByID(teamID)
	if !ok {
		return canvas.Color{}, ErrUnknownTeam
	}

	s.mu.Lock()
	s.entries[c] = Entry{TeamID: t.ID, Color: t.Color}
	s.mu.Unlock()
	return t.Color, nil
}

// Lookup is a pure read: a never-edited coordinate yields (zero,
// false), not an error.
func (s *Store) Lookup(c canvas.Coord) (Entry, bool) {
	s.mu.RLock()
	e, ok := s.entries[c]
	s.mu.RUnlock()
	return e, ok
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
