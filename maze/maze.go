package maze

import (
	"fmt"
	"strings"
)

// Grid is an immutable R×C classification of maze cells.
// cells is stored row-major: cells[row*cols+col].
type Grid struct {
	rows, cols int
	cells      []CellKind
	start      Position
	hasStart   bool
}

// New constructs a Grid from a non-empty, rectangular 2D slice of kinds.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if kinds has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrMultipleStarts if more than one Start cell is present.
// Complexity: O(R×C) time and memory.
func New(kinds [][]CellKind) (*Grid, error) {
	if len(kinds) == 0 || len(kinds[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(kinds), len(kinds[0])
	for _, row := range kinds {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	cells := make([]CellKind, 0, rows*cols)
	for _, row := range kinds {
		cells = append(cells, row...)
	}

	return newGrid(rows, cols, cells)
}

// newGrid adopts cells (already row-major, len rows*cols) and indexes the start.
func newGrid(rows, cols int, cells []CellKind) (*Grid, error) {
	g := &Grid{rows: rows, cols: cols, cells: cells}
	for i, k := range cells {
		if k != Start {
			continue
		}
		p := g.position(i)
		if g.hasStart {
			return nil, fmt.Errorf("%w: at %v and %v", ErrMultipleStarts, g.start, p)
		}
		g.start, g.hasStart = p, true
	}

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Size returns rows×cols.
func (g *Grid) Size() int { return g.rows * g.cols }

// InBounds reports whether p lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// Classify returns the kind of the cell at p, or Wall when p is out of bounds.
func (g *Grid) Classify(p Position) CellKind {
	if !g.InBounds(p) {
		return Wall
	}
	return g.cells[g.index(p)]
}

// IsWalkable reports whether an agent may step onto p:
// p is in bounds and holds a Path or Destination cell.
func (g *Grid) IsWalkable(p Position) bool {
	switch g.Classify(p) {
	case Path, Destination:
		return true
	default:
		return false
	}
}

// IsDestination reports whether p holds a Destination cell.
func (g *Grid) IsDestination(p Position) bool {
	return g.Classify(p) == Destination
}

// FindStart returns the Start cell, or ErrStartNotFound.
// The grid never holds more than one Start, so the row-major first match is the only one.
func (g *Grid) FindStart() (Position, error) {
	if !g.hasStart {
		return Position{}, ErrStartNotFound
	}
	return g.start, nil
}

// Destinations returns every Destination cell in row-major order.
func (g *Grid) Destinations() []Position {
	var out []Position
	for i, k := range g.cells {
		if k == Destination {
			out = append(out, g.position(i))
		}
	}
	return out
}

// Neighbor returns the position one step from p in heading h.
// The result may lie outside the grid; check with InBounds or IsWalkable.
func (g *Grid) Neighbor(p Position, h Heading) Position {
	return p.Step(h)
}

// String re-emits the grid in its input format: one row per line,
// symbols separated by single spaces.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.rows * (2*g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			b.WriteByte(g.cells[r*g.cols+c].Symbol())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// index maps p to its row-major offset.
// Complexity: O(1).
func (g *Grid) index(p Position) int {
	return p.Row*g.cols + p.Col
}

// position converts a row-major offset back to a Position.
// Complexity: O(1).
func (g *Grid) position(idx int) Position {
	return Position{Row: idx / g.cols, Col: idx % g.cols}
}
