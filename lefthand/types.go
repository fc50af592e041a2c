// Package lefthand provides tunable options and error definitions
// for the left-hand-rule wall follower.
package lefthand

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/theseus/maze"
)

// Sentinel errors for walker execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("lefthand: grid is nil")

	// ErrStuck is returned when no heading leads to a walkable cell.
	ErrStuck = errors.New("lefthand: walker is stuck")

	// ErrStepLimit is returned when the step cap is reached before a destination.
	ErrStepLimit = errors.New("lefthand: step limit reached")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("lefthand: invalid option supplied")
)

// Option configures the walk via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by Walk.
type Option func(*Options)

// Options holds parameters and callbacks for a walk.
type Options struct {
	// Ctx allows cancellation; it is checked once per step.
	Ctx context.Context

	// InitialHeading is the heading the agent faces on the start cell.
	InitialHeading maze.Heading

	// MaxSteps caps the number of committed moves.
	// 0 selects the default of rows×cols×4, the number of distinct
	// (cell, heading) states: a longer walk must be cycling.
	MaxSteps int

	// OnStep is called after every committed move.
	OnStep func(step int, from, to maze.Position, h maze.Heading)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - InitialHeading South
//   - the default step cap
//   - a no-op OnStep hook.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		InitialHeading: maze.South,
		MaxSteps:       0,
		OnStep:         func(int, maze.Position, maze.Position, maze.Heading) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithInitialHeading overrides the South-facing start.
func WithInitialHeading(h maze.Heading) Option {
	return func(o *Options) {
		if !h.Valid() {
			o.err = fmt.Errorf("%w: invalid initial heading %d", ErrOptionViolation, uint8(h))
			return
		}
		o.InitialHeading = h
	}
}

// WithMaxSteps caps the walk length.
//
//	n > 0: stop with ErrStepLimit after n moves
//	n == 0: default cap (rows×cols×4)
//	n < 0: invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithOnStep registers a callback run after every committed move.
func WithOnStep(fn func(step int, from, to maze.Position, h maze.Heading)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// Result holds the outcome of a walk:
//   - Start: the cell the agent left from.
//   - Headings: the heading of every committed move, in order.
//   - Path: the cell entered by every move; Path[i] was reached via Headings[i].
//   - End: the agent's final cell (Start when no move was made).
//
// A Result is also returned alongside ErrStuck and ErrStepLimit and then
// describes the partial walk.
type Result struct {
	Start    maze.Position
	Headings []maze.Heading
	Path     []maze.Position
	End      maze.Position

	reached bool
}

// Steps returns the number of committed moves.
func (r *Result) Steps() int { return len(r.Headings) }

// Reached reports whether the walk ended on a destination cell.
func (r *Result) Reached() bool { return r.reached }

// Trail returns Start followed by Path.
func (r *Result) Trail() []maze.Position {
	out := make([]maze.Position, 0, len(r.Path)+1)
	out = append(out, r.Start)
	return append(out, r.Path...)
}
