// Package lefthand simulates an agent that solves a maze by always
// preferring a left turn.
//
// At every step the agent first turns a quarter counter-clockwise, then
// keeps turning clockwise until the cell ahead is walkable, trying at most
// the four headings. It moves one cell, records the heading, and stops on
// the first destination cell it enters.
package lefthand

import (
	"context"
	"fmt"

	"github.com/katalvlaran/theseus/maze"
)

// walker encapsulates the mutable agent state of one walk.
type walker struct {
	grid     *maze.Grid
	opts     Options
	ctx      context.Context
	pos      maze.Position
	heading  maze.Heading
	maxSteps int
	res      *Result
}

// Walk runs the left-hand rule on g from its Start cell,
// applying any number of functional Options.
// Returns ErrGridNil or a wrapped maze.ErrStartNotFound for invalid input,
// ErrOptionViolation for bad options, ErrStuck or ErrStepLimit (with the
// partial Result) when no destination is reached, or the context error.
func Walk(g *maze.Grid, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	start, err := g.FindStart()
	if err != nil {
		return nil, fmt.Errorf("lefthand: %w", err)
	}

	maxSteps := o.MaxSteps
	if maxSteps == 0 {
		maxSteps = g.Size() * 4
	}
	w := &walker{
		grid:     g,
		opts:     o,
		ctx:      o.Ctx,
		pos:      start,
		heading:  o.InitialHeading,
		maxSteps: maxSteps,
		res:      &Result{Start: start, End: start},
	}

	return w.res, w.loop()
}

// loop advances the agent until it stands on a destination or fails.
func (w *walker) loop() error {
	for !w.res.reached {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		if w.res.Steps() >= w.maxSteps {
			return fmt.Errorf("%w: %d steps without reaching a destination (last cell %v)",
				ErrStepLimit, w.res.Steps(), w.pos)
		}
		if !w.step() {
			return fmt.Errorf("%w: no walkable neighbour at %v after %d steps",
				ErrStuck, w.pos, w.res.Steps())
		}
	}
	return nil
}

// step performs one transition: turn left, then clockwise until a move is
// possible. It reports false when all four headings are blocked.
// On failure the heading is left where it started the step's attempts.
func (w *walker) step() bool {
	h := w.heading.CounterClockwise()
	for attempt := 0; attempt < 4; attempt++ {
		next := w.grid.Neighbor(w.pos, h)
		if w.grid.IsWalkable(next) {
			w.commit(next, h)
			return true
		}
		h = h.Clockwise()
	}
	w.heading = h
	return false
}

// commit moves the agent to next facing h and records the move.
func (w *walker) commit(next maze.Position, h maze.Heading) {
	from := w.pos
	w.pos, w.heading = next, h
	w.res.Headings = append(w.res.Headings, h)
	w.res.Path = append(w.res.Path, next)
	w.res.End = next
	w.res.reached = w.grid.IsDestination(next)
	w.opts.OnStep(w.res.Steps(), from, next, h)
}
