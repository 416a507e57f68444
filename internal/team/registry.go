package team

import (
	"errors"

	"github.com/DoyleJ11/color-grid-backend/internal/canvas"
)

var ErrNonContiguousIDs = errors.New("team ids must be unique and contiguous from 0")

type Team struct {
	ID    int
	Name  string
	Color canvas.Color
}

// Registry is a fixed catalog populated once at startup. It is
// read-only after construction, so concurrent readers need no locking.
type Registry struct {
	teams []Team
}

func NewRegistry(teams []Team) (*Registry, error) {
	for i, t := range teams {
		if t.ID != i {
			return nil, ErrNonContiguousIDs
		}
	}
	r := &Registry{teams: make([]Team, len(teams))}
	copy(r.teams, teams)
	return r, nil
}

// List returns every team in ID order.
func (r *Registry) List() []Team {
	out := make([]Team, len(r.teams))
	copy(out, r.teams)
	return out
}

func (r *Registry) ByID(id int) (Team, bool) {
	if id < 0 || id >= len(r.teams) {
		return Team{}, false
	}
	return r.teams[id], true
}

func (r *Registry) Len() int { return len(r.teams) }

// Default is the 16-team reference catalog.
func Default() *Registry {
	r, err := NewRegistry([]Team{
		{ID: 0, Name: "Crimson", Color: canvas.Color{Red: 220, Green: 20, Blue: 60}},
		{ID: 1, Name: "Amber", Color: canvas.Color{Red: 255, Green: 191, Blue: 0}},
		{ID: 2, Name: "Emerald", Color: canvas.Color{Red: 80, Green: 200, Blue: 120}},
		{ID: 3, Name: "Lemon", Color: canvas.Color{Red: 255, Green: 255, Blue: 0}},
		{ID: 4, Name: "Cobalt", Color: canvas.Color{Red: 0, Green: 71, Blue: 171}},
		{ID: 5, Name: "Violet", Color: canvas.Color{Red: 143, Green: 0, Blue: 255}},
		{ID: 6, Name: "Coral", Color: canvas.Color{Red: 255, Green: 127, Blue: 80}},
		{ID: 7, Name: "Teal", Color: canvas.Color{Red: 0, Green: 128, Blue: 128}},
		{ID: 8, Name: "Magenta", Color: canvas.Color{Red: 255, Green: 0, Blue: 255}},
		{ID: 9, Name: "Olive", Color: canvas.Color{Red: 128, Green: 128, Blue: 0}},
		{ID: 10, Name: "Navy", Color: canvas.Color{Red: 0, Green: 0, Blue: 128}},
		{ID: 11, Name: "Rose", Color: canvas.Color{Red: 255, Green: 102, Blue: 204}},
		{ID: 12, Name: "Slate", Color: canvas.Color{Red: 112, Green: 128, Blue: 144}},
		{ID: 13, Name: "Mint", Color: canvas.Color{Red: 152, Green: 255, Blue: 152}},
		{ID: 14, Name: "Rust", Color: canvas.Color{Red: 183, Green: 65, Blue: 14}},
		{ID: 15, Name: "Ivory", Color: canvas.Color{Red: 255, Green: 255, Blue: 240}},
	})
	if err != nil {
		panic(err) // static table, cannot fail
	}
	return r
}
