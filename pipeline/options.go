package pipeline

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/theseus/config"
	"github.com/katalvlaran/theseus/lefthand"
	"github.com/katalvlaran/theseus/maze"
)

// Options configures Solve, SolveFile and Batch:
//   - Rows, Cols: fixed grid dimensions for loading; zero infers them.
//   - InitialHeading: the walker's heading before its first turn; nil faces South.
//   - MaxSteps: walker step cap; zero means rows*cols*4.
//   - MaxDepth: BFS depth cap; zero means unlimited.
//   - StrictWalk: report a stuck or capped walk as an error instead of an outcome.
//   - Parallel: mazes solved at once by Batch.
//   - Logger: nil logs nothing.
type Options struct {
	Rows, Cols     int
	InitialHeading *maze.Heading
	MaxSteps       int
	MaxDepth       int
	StrictWalk     bool
	Parallel       int
	Logger         *zap.Logger
}

// DefaultOptions returns the classic behaviour: inferred
// dimensions, heading South, default caps, one maze at a time.
// It differs from the zero Options only in Parallel.
func DefaultOptions() Options {
	return Options{
		Parallel: 1,
	}
}

// FromConfig maps a validated configuration onto Options.
func FromConfig(cfg *config.Config, log *zap.Logger) (Options, error) {
	h, err := cfg.Walker.Heading()
	if err != nil {
		return Options{}, err
	}
	return Options{
		Rows:           cfg.Maze.Rows,
		Cols:           cfg.Maze.Cols,
		InitialHeading: &h,
		MaxSteps:       cfg.Walker.MaxSteps,
		MaxDepth:       cfg.Solver.MaxDepth,
		StrictWalk:     cfg.Walker.Strict,
		Parallel:       cfg.Batch.Parallel,
		Logger:         log,
	}, nil
}

func (o Options) walkOptions() []lefthand.Option {
	if o.InitialHeading == nil {
		return nil
	}
	return []lefthand.Option{lefthand.WithInitialHeading(*o.InitialHeading)}
}

func (o Options) loadOptions() []maze.Option {
	if o.Rows == 0 && o.Cols == 0 {
		return nil
	}
	return []maze.Option{maze.WithDimensions(o.Rows, o.Cols)}
}
