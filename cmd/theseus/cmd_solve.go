package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/theseus/pipeline"
	"github.com/katalvlaran/theseus/result"
)

// defaultMazeFile is read when solve is given no arguments.
const defaultMazeFile = "maze.txt"

func newSolveCmd(a *app) *cobra.Command {
	var flags struct {
		maze     mazeFlags
		format   string
		indent   bool
		heading  string
		maxSteps int
		strict   bool
		parallel int
	}

	cmd := &cobra.Command{
		Use:   "solve [maze files...]",
		Short: "Walk and solve one or more mazes and print the result records",
		Long: `Solve runs the left-hand walker and the shortest-path search on every
maze file (maze.txt when none is given). One file prints one record; several
files print a JSON array, a YAML sequence or consecutive text blocks.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := args
			if len(paths) == 0 {
				paths = []string{defaultMazeFile}
			}

			flags.maze.apply(cmd, a)
			fl := cmd.Flags()
			if fl.Changed("format") {
				a.cfg.Output.Format = flags.format
			}
			if fl.Changed("indent") {
				a.cfg.Output.Indent = flags.indent
			}
			if fl.Changed("heading") {
				a.cfg.Walker.InitialHeading = flags.heading
			}
			if fl.Changed("max-steps") {
				a.cfg.Walker.MaxSteps = flags.maxSteps
			}
			if fl.Changed("strict") {
				a.cfg.Walker.Strict = flags.strict
			}
			if fl.Changed("parallel") {
				a.cfg.Batch.Parallel = flags.parallel
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			format, err := result.ParseFormat(a.cfg.Output.Format)
			if err != nil {
				return err
			}
			opts, err := pipeline.FromConfig(a.cfg, a.log)
			if err != nil {
				return err
			}

			recs, err := pipeline.Batch(cmd.Context(), paths, opts)
			if err != nil {
				return err
			}
			return result.EncodeAll(cmd.OutOrStdout(), format, recs, result.Options{Indent: a.cfg.Output.Indent})
		},
	}

	flags.maze.register(cmd)
	f := cmd.Flags()
	f.StringVarP(&flags.format, "format", "f", "json", "Output format: json, yaml, text")
	f.BoolVar(&flags.indent, "indent", true, "Indent JSON output")
	f.StringVar(&flags.heading, "heading", "S", "Walker heading before the first turn: N, E, S, W")
	f.IntVar(&flags.maxSteps, "max-steps", 0, "Walker step cap (0 = rows*cols*4)")
	f.BoolVar(&flags.strict, "strict", false, "Fail when the walker gets stuck or hits the step cap")
	f.IntVarP(&flags.parallel, "parallel", "p", 4, "Mazes solved concurrently")
	return cmd
}
