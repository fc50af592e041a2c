// Package pipeline runs the left-hand walker and the BFS solver over a maze
// and assembles their outputs into a result.Record.
//
// The two algorithms are independent: each reads the same immutable grid,
// and neither outcome affects the other. A walk that gets stuck or runs out
// of steps is reported in the record's outcome unless StrictWalk is set.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/theseus/bfs"
	"github.com/katalvlaran/theseus/lefthand"
	"github.com/katalvlaran/theseus/logging"
	"github.com/katalvlaran/theseus/maze"
	"github.com/katalvlaran/theseus/result"
)

// Walk runs the left-hand walker on g and classifies how it ended.
// ErrStuck and ErrStepLimit are folded into the outcome, with the partial
// walk, unless opts.StrictWalk is set.
func Walk(ctx context.Context, g *maze.Grid, opts Options) (*lefthand.Result, result.Outcome, error) {
	log := logging.OrNop(opts.Logger)
	walkOpts := append(opts.walkOptions(),
		lefthand.WithContext(ctx),
		lefthand.WithMaxSteps(opts.MaxSteps),
		lefthand.WithOnStep(func(step int, from, to maze.Position, h maze.Heading) {
			log.Debug("walker step",
				zap.Int("step", step),
				zap.Stringer("from", from),
				zap.Stringer("to", to),
				zap.Stringer("heading", h))
		}),
	)
	res, err := lefthand.Walk(g, walkOpts...)

	var outcome result.Outcome
	switch {
	case err == nil:
		return res, result.OutcomeReached, nil
	case errors.Is(err, lefthand.ErrStuck):
		outcome = result.OutcomeStuck
	case errors.Is(err, lefthand.ErrStepLimit):
		outcome = result.OutcomeStepLimit
	default:
		return nil, "", err
	}
	if opts.StrictWalk {
		return nil, outcome, err
	}
	log.Warn("walker did not reach a destination",
		zap.String("outcome", string(outcome)),
		zap.Int("left_steps", res.Steps()),
		zap.Error(err))
	return res, outcome, nil
}

// Solve runs the walker then the solver on g and assembles the record.
func Solve(ctx context.Context, g *maze.Grid, opts Options) (result.Record, error) {
	log := logging.OrNop(opts.Logger).With(zap.String("run_id", uuid.NewString()))
	opts.Logger = log

	walk, outcome, err := Walk(ctx, g, opts)
	if err != nil {
		return result.Record{}, err
	}

	sp, err := bfs.ShortestPath(g,
		bfs.WithContext(ctx),
		bfs.WithMaxDepth(opts.MaxDepth),
	)
	if err != nil {
		return result.Record{}, err
	}
	if !sp.Reachable() {
		log.Info("no destination reachable from start", zap.Stringer("start", sp.Start))
	}

	rec := result.Assemble(walk.Start, walk.Steps(), walk.Headings, sp.Distance).WithOutcome(outcome)
	log.Info("maze solved",
		zap.Stringer("start", rec.Start),
		zap.Int("left_steps", rec.LeftSteps),
		zap.Int("optimal_steps", rec.OptimalSteps),
		zap.String("walk_outcome", string(rec.Outcome)))
	return rec, nil
}

// SolveFile loads the maze at path and solves it. The record's source is
// path.
func SolveFile(ctx context.Context, path string, opts Options) (result.Record, error) {
	g, err := maze.Load(path, opts.loadOptions()...)
	if err != nil {
		return result.Record{}, err
	}
	logging.OrNop(opts.Logger).Debug("maze loaded",
		zap.String("path", path),
		zap.Int("rows", g.Rows()),
		zap.Int("cols", g.Cols()))

	rec, err := Solve(ctx, g, opts)
	if err != nil {
		return result.Record{}, fmt.Errorf("%s: %w", path, err)
	}
	return rec.WithSource(path), nil
}

// Batch solves every file in paths, at most opts.Parallel at a time.
// Records keep the order of paths. The first error cancels the remaining
// work and is returned alone.
func Batch(ctx context.Context, paths []string, opts Options) ([]result.Record, error) {
	log := logging.OrNop(opts.Logger).With(zap.String("batch_id", uuid.NewString()))
	opts.Logger = log

	limit := opts.Parallel
	if limit < 1 {
		limit = 1
	}
	log.Debug("batch started", zap.Int("mazes", len(paths)), zap.Int("parallel", limit))

	records := make([]result.Record, len(paths))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, path := range paths {
		g.Go(func() error {
			rec, err := SolveFile(gCtx, path, opts)
			if err != nil {
				return err
			}
			records[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Error("batch failed", zap.Error(err))
		return nil, err
	}
	return records, nil
}
