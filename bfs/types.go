// Package bfs provides tunable options and error definitions
// for breadth-first search over a maze.Grid.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/theseus/maze"
)

// Unreachable is the Distance reported when no destination can be reached.
const Unreachable = -1

// Sentinel errors for BFS execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("bfs: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotReached is returned by PathTo for a cell the search never reached.
	ErrNotReached = errors.New("bfs: cell not reached")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when the search is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize the search.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a cell is enqueued, before visiting.
	// Receives the cell and its depth from the start.
	OnEnqueue func(p maze.Position, depth int)

	// OnDequeue is called immediately before visiting a cell.
	OnDequeue func(p maze.Position, depth int)

	// OnVisit is called when visiting a cell. If it returns an error,
	// the search aborts and propagates that error.
	OnVisit func(p maze.Position, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit).
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:       context.Background(),
		OnEnqueue: func(maze.Position, int) {},
		OnDequeue: func(maze.Position, int) {},
		OnVisit:   func(maze.Position, int) error { return nil },
		MaxDepth:  0,
		err:       nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(p maze.Position, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(p maze.Position, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the search.
func WithOnVisit(fn func(p maze.Position, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: do not enqueue cells deeper than d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// BFSResult holds the outcome of a search:
//   - Start: the Start cell the search grew from.
//   - Target: the destination that was reached (meaningful only when Reachable).
//   - Distance: moves from Start to Target, or Unreachable.
//   - Order: cells visited, in visit sequence.
//   - Depth: map from cell to its distance (in moves) from Start.
//   - Parent: map from cell to its predecessor in the BFS tree.
type BFSResult struct {
	Start    maze.Position
	Target   maze.Position
	Distance int
	Order    []maze.Position
	Depth    map[maze.Position]int
	Parent   map[maze.Position]maze.Position
}

// Reachable reports whether a destination was found.
func (r *BFSResult) Reachable() bool {
	return r.Distance != Unreachable
}

// PathTo reconstructs the cells from Start to dest, both included.
// Returns ErrNotReached if dest was never enqueued.
func (r *BFSResult) PathTo(dest maze.Position) ([]maze.Position, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrNotReached, dest)
	}
	// build reversed path
	path := []maze.Position{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Headings returns the move directions along PathTo(Target).
// It returns nil when no destination was reached.
func (r *BFSResult) Headings() []maze.Heading {
	if !r.Reachable() {
		return nil
	}
	path, err := r.PathTo(r.Target)
	if err != nil {
		return nil
	}
	out := make([]maze.Heading, 0, len(path)-1)
	for i := 1; i < len(path); i++ {
		for _, h := range maze.Headings {
			if path[i-1].Step(h) == path[i] {
				out = append(out, h)
				break
			}
		}
	}
	return out
}
