package editstore

import (
	"sync"
	"testing"

	"github.com/DoyleJ11/color-grid-backend/internal/canvas"
	"github.com/DoyleJ11/color-grid-backend/internal/team"
	"github.com/stretchr/testify/require"
)

func TestApply_StoresRegistryColor(t *testing.T) {
	req := require.New(t)
	s := New(16, team.Default())

	color, err := s.Apply(2, 5, 3)
	req.NoError(err)
	req.Equal(canvas.Color{Red: 255, Green: 255, Blue: 0}, color)

	e, ok := s.Lookup(canvas.Coord{X: 2, Y: 5})
	req.True(ok)
	req.Equal(3, e.TeamID)
	req.Equal(color, e.Color)
}

func TestApply_RejectsInvalidInput(t *testing.T) {
	cases := []struct {
		name    string
		x, y    int
		teamID  int
		wantErr error
	}{
		{name: "x below range", x: -1, y: 0, teamID: 0, wantErr: ErrOutOfBounds},
		{name: "x above range", x: 16, y: 0, teamID: 0, wantErr: ErrOutOfBounds},
		{name: "y below range", x: 0, y: -1, teamID: 0, wantErr: ErrOutOfBounds},
		{name: "y above range", x: 0, y: 16, teamID: 0, wantErr: ErrOutOfBounds},
		{name: "team below range", x: 0, y: 0, teamID: -1, wantErr: ErrUnknownTeam},
		{name: "team above range", x: 0, y: 0, teamID: 16, wantErr: ErrUnknownTeam},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := New(16, team.Default())
			_, err := s.Apply(tc.x, tc.y, tc.teamID)
			require.ErrorIs(t, err, tc.wantErr)

			// A rejected edit must leave no trace.
			_, ok := s.Lookup(canvas.Coord{X: tc.x, Y: tc.y})
			require.False(t, ok)
			require.Equal(t, 0, s.Len())
		})
	}
}

func TestApply_Idempotent(t *testing.T) {
	req := require.New(t)
	s := New(16, team.Default())

	c1, err := s.Apply(4, 4, 7)
	req.NoError(err)
	c2, err := s.Apply(4, 4, 7)
	req.NoError(err)
	req.Equal(c1, c2)
	req.Equal(1, s.Len())
}

func TestApply_OverwritesPriorTeam(t *testing.T) {
	req := require.New(t)
	reg := team.Default()
	s := New(16, reg)

	_, err := s.Apply(1, 1, 2)
	req.NoError(err)
	_, err = s.Apply(1, 1, 9)
	req.NoError(err)

	e, ok := s.Lookup(canvas.Coord{X: 1, Y: 1})
	req.True(ok)
	req.Equal(9, e.TeamID)
	want, _ := reg.ByID(9)
	req.Equal(want.Color, e.Color)
	req.Equal(1, s.Len())
}

func TestApply_ConcurrentDistinctCoordsNoLostUpdates(t *testing.T) {
	req := require.New(t)
	reg := team.Default()
	s := New(16, reg)

	var wg sync.WaitGroup
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			x, y := x, y
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := s.Apply(x, y, (x+y)%reg.Len())
				if err != nil {
					t.Error(err)
				}
			}()
		}
	}
	wg.Wait()

	req.Equal(256, s.Len())
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			e, ok := s.Lookup(canvas.Coord{X: x, Y: y})
			req.True(ok)
			req.Equal((x+y)%reg.Len(), e.TeamID)
			want, _ := reg.ByID(e.TeamID)
			req.Equal(want.Color, e.Color)
		}
	}
}

func TestApply_EmptyGridRejectsEverything(t *testing.T) {
	s := New(0, team.Default())
	_, err := s.Apply(0, 0, 0)
	require.ErrorIs(t, err, ErrOutOfBounds)
}
