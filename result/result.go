// Package result assembles the walker and solver outputs into one record
// and encodes it for output.
package result

import (
	"slices"

	"github.com/katalvlaran/theseus/maze"
)

// Unreachable mirrors bfs.Unreachable for OptimalSteps.
const Unreachable = -1

// Outcome says how the left-hand walk ended.
type Outcome string

const (
	// OutcomeReached: the walker stood on a destination.
	OutcomeReached Outcome = "reached"
	// OutcomeStuck: every heading was blocked.
	OutcomeStuck Outcome = "stuck"
	// OutcomeStepLimit: the step cap ran out first.
	OutcomeStepLimit Outcome = "step_limit"
)

// Record is the immutable result of solving one maze.
type Record struct {
	// Start is the agent's start cell.
	Start maze.Position
	// LeftSteps is the number of moves the left-hand walker made.
	LeftSteps int
	// Directions is the heading of every walker move, in order.
	Directions []maze.Heading
	// OptimalSteps is the BFS distance, or Unreachable.
	OptimalSteps int
	// Outcome says whether the walk reached a destination.
	Outcome Outcome
	// Source names the input, when known.
	Source string
}

// Assemble builds a Record from the walker and solver outputs.
// The heading slice is copied.
func Assemble(start maze.Position, walkerSteps int, headings []maze.Heading, optimalSteps int) Record {
	return Record{
		Start:        start,
		LeftSteps:    walkerSteps,
		Directions:   slices.Clone(headings),
		OptimalSteps: optimalSteps,
		Outcome:      OutcomeReached,
	}
}

// WithOutcome returns a copy of r with the walk outcome replaced.
func (r Record) WithOutcome(o Outcome) Record {
	r.Outcome = o
	return r
}

// WithSource returns a copy of r naming its input.
func (r Record) WithSource(src string) Record {
	r.Source = src
	return r
}

// Reachable reports whether the solver found a destination.
func (r Record) Reachable() bool { return r.OptimalSteps != Unreachable }

// Labels returns Directions as N/E/S/W strings.
func (r Record) Labels() []string {
	out := make([]string, len(r.Directions))
	for i, h := range r.Directions {
		out[i] = h.String()
	}
	return out
}
