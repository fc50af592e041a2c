package maze_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/theseus/maze"
)

const (
	W = maze.Wall
	P = maze.Path
	T = maze.Start
	D = maze.Destination
)

// mustParse builds a grid from line-oriented text or fails the test.
func mustParse(t testing.TB, text string) *maze.Grid {
	t.Helper()
	g, err := maze.ParseString(text)
	require.NoError(t, err)
	return g
}

//----------------------------------------------------------------------------//
// New
//----------------------------------------------------------------------------//

func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name  string
		kinds [][]maze.CellKind
		err   error
	}{
		{"EmptyRows", [][]maze.CellKind{}, maze.ErrEmptyGrid},
		{"EmptyCols", [][]maze.CellKind{{}}, maze.ErrEmptyGrid},
		{"NonRectangular", [][]maze.CellKind{{W, P}, {W}}, maze.ErrNonRectangular},
		{"TwoStarts", [][]maze.CellKind{{T, P}, {P, T}}, maze.ErrMultipleStarts},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := maze.New(tc.kinds)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestNew_DeepCopies(t *testing.T) {
	kinds := [][]maze.CellKind{{T, P, D}}
	g, err := maze.New(kinds)
	require.NoError(t, err)

	kinds[0][1] = W
	assert.Equal(t, maze.Path, g.Classify(maze.Position{Row: 0, Col: 1}))
}

//----------------------------------------------------------------------------//
// Classification
//----------------------------------------------------------------------------//

func TestClassify(t *testing.T) {
	g := mustParse(t, "WPD\nWTW\n")

	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 3, g.Cols())
	assert.Equal(t, 6, g.Size())

	cases := []struct {
		p    maze.Position
		want maze.CellKind
	}{
		{maze.Position{Row: 0, Col: 0}, maze.Wall},
		{maze.Position{Row: 0, Col: 1}, maze.Path},
		{maze.Position{Row: 0, Col: 2}, maze.Destination},
		{maze.Position{Row: 1, Col: 1}, maze.Start},
		// out of bounds classifies as wall
		{maze.Position{Row: -1, Col: 0}, maze.Wall},
		{maze.Position{Row: 0, Col: 3}, maze.Wall},
		{maze.Position{Row: 2, Col: 1}, maze.Wall},
		{maze.Position{Row: 1, Col: -1}, maze.Wall},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, g.Classify(tc.p), "Classify%v", tc.p)
	}
}

func TestIsWalkable(t *testing.T) {
	g := mustParse(t, "WPD\nWTW\n")

	assert.False(t, g.IsWalkable(maze.Position{Row: 0, Col: 0}), "wall")
	assert.True(t, g.IsWalkable(maze.Position{Row: 0, Col: 1}), "path")
	assert.True(t, g.IsWalkable(maze.Position{Row: 0, Col: 2}), "destination")
	assert.False(t, g.IsWalkable(maze.Position{Row: 1, Col: 1}), "start is never walkable")
	assert.False(t, g.IsWalkable(maze.Position{Row: 5, Col: 5}), "out of bounds")

	assert.True(t, g.IsDestination(maze.Position{Row: 0, Col: 2}))
	assert.False(t, g.IsDestination(maze.Position{Row: 0, Col: 1}))
}

func TestFindStart(t *testing.T) {
	g := mustParse(t, "WWW\nWPD\nWTW\n")
	start, err := g.FindStart()
	require.NoError(t, err)
	assert.Equal(t, maze.Position{Row: 2, Col: 1}, start)

	noStart := mustParse(t, "PPD\n")
	_, err = noStart.FindStart()
	assert.ErrorIs(t, err, maze.ErrStartNotFound)
}

func TestDestinations(t *testing.T) {
	g := mustParse(t, "DPW\nWTD\nDWW\n")
	want := []maze.Position{{Row: 0, Col: 0}, {Row: 1, Col: 2}, {Row: 2, Col: 0}}
	assert.Equal(t, want, g.Destinations())

	assert.Empty(t, mustParse(t, "TP\n").Destinations())
}

func TestNeighbor(t *testing.T) {
	g := mustParse(t, "TPD\n")
	p := maze.Position{Row: 0, Col: 1}
	assert.Equal(t, maze.Position{Row: -1, Col: 1}, g.Neighbor(p, maze.North))
	assert.Equal(t, maze.Position{Row: 0, Col: 2}, g.Neighbor(p, maze.East))
	assert.Equal(t, maze.Position{Row: 1, Col: 1}, g.Neighbor(p, maze.South))
	assert.Equal(t, maze.Position{Row: 0, Col: 0}, g.Neighbor(p, maze.West))
}

func TestString_ReparsesToSameGrid(t *testing.T) {
	text := "W W W W\nW T P W\nW W D W\n"
	g := mustParse(t, text)
	assert.Equal(t, text, g.String())

	again := mustParse(t, g.String())
	assert.Equal(t, g, again)
}

func TestCellKind_Strings(t *testing.T) {
	assert.Equal(t, byte('W'), maze.Wall.Symbol())
	assert.Equal(t, byte('T'), maze.Start.Symbol())
	assert.Equal(t, "destination", maze.Destination.String())
	assert.Equal(t, "CellKind(9)", maze.CellKind(9).String())

	k, ok := maze.KindOf('D')
	assert.True(t, ok)
	assert.Equal(t, maze.Destination, k)
	_, ok = maze.KindOf('M')
	assert.False(t, ok)
}
