package maze

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for maze construction and loading.
var (
	// ErrLoad is wrapped by every failure of Parse and Load.
	ErrLoad = errors.New("maze: cannot load maze")

	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("maze: grid must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")

	// ErrTruncated indicates fewer symbols than rows×cols were supplied.
	ErrTruncated = errors.New("maze: input ended before the grid was filled")

	// ErrInvalidSymbol indicates a character outside W, P, T, D.
	ErrInvalidSymbol = errors.New("maze: invalid cell symbol")

	// ErrMultipleStarts indicates more than one Start cell.
	ErrMultipleStarts = errors.New("maze: more than one start cell")

	// ErrStartNotFound is returned by FindStart when no Start cell exists.
	ErrStartNotFound = errors.New("maze: start cell not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("maze: invalid option supplied")
)

// CellKind classifies a single maze cell.
type CellKind uint8

const (
	// Wall blocks movement. It is the zero value, so unknown cells are walls.
	Wall CellKind = iota
	// Path is an open corridor cell.
	Path
	// Start is the agent's entry cell.
	Start
	// Destination is a goal cell.
	Destination
)

var cellSymbols = [...]byte{Wall: 'W', Path: 'P', Start: 'T', Destination: 'D'}

// Symbol returns the single-character input symbol of k.
func (k CellKind) Symbol() byte {
	if int(k) < len(cellSymbols) {
		return cellSymbols[k]
	}
	return '?'
}

// String implements fmt.Stringer.
func (k CellKind) String() string {
	switch k {
	case Wall:
		return "wall"
	case Path:
		return "path"
	case Start:
		return "start"
	case Destination:
		return "destination"
	default:
		return fmt.Sprintf("CellKind(%d)", uint8(k))
	}
}

// KindOf maps an input symbol to its CellKind.
// ok is false for anything other than W, P, T or D.
func KindOf(symbol byte) (kind CellKind, ok bool) {
	switch symbol {
	case 'W':
		return Wall, true
	case 'P':
		return Path, true
	case 'T':
		return Start, true
	case 'D':
		return Destination, true
	}
	return Wall, false
}

// Position addresses a cell by zero-based row and column.
type Position struct {
	Row, Col int
}

// String formats p as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Step returns the position one cell away from p in heading h.
func (p Position) Step(h Heading) Position {
	dr, dc := h.Delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// Option configures Parse and Load via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*LoadOptions)

// LoadOptions holds parameters for the loader.
type LoadOptions struct {
	// Rows and Cols, when both > 0, fix the grid size. The loader then reads
	// exactly Rows×Cols symbols and ignores line structure.
	// When both are 0, the size is inferred from non-blank lines.
	Rows, Cols int

	// internal error recorded during option parsing
	err error
}

// DefaultLoadOptions returns LoadOptions that infer the size from the input.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{}
}

// WithDimensions fixes the grid to rows×cols symbols.
//
//	rows, cols > 0: fixed-size read
//	rows == cols == 0: infer from lines
//	otherwise: ErrOptionViolation
func WithDimensions(rows, cols int) Option {
	return func(o *LoadOptions) {
		switch {
		case rows == 0 && cols == 0:
			o.Rows, o.Cols = 0, 0
		case rows <= 0 || cols <= 0:
			o.err = fmt.Errorf("%w: dimensions must be positive (%dx%d)", ErrOptionViolation, rows, cols)
		case rows > math.MaxInt/cols:
			o.err = fmt.Errorf("%w: %dx%d cells overflow int", ErrOptionViolation, rows, cols)
		default:
			o.Rows, o.Cols = rows, cols
		}
	}
}
