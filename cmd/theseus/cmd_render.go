package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/theseus/pipeline"
	"github.com/katalvlaran/theseus/render"
)

func newRenderCmd(a *app) *cobra.Command {
	var flags struct {
		maze  mazeFlags
		color bool
	}

	cmd := &cobra.Command{
		Use:   "render <maze>",
		Short: "Print a maze with the left-hand walker's trail marked",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.maze.apply(cmd, a)
			if cmd.Flags().Changed("color") {
				a.cfg.Output.Color = flags.color
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			g, err := a.loadMaze(args[0])
			if err != nil {
				return err
			}
			opts, err := pipeline.FromConfig(a.cfg, a.log)
			if err != nil {
				return err
			}
			// Show the partial trail of a stuck walk as well.
			opts.StrictWalk = false
			walk, outcome, err := pipeline.Walk(cmd.Context(), g, opts)
			if err != nil {
				return err
			}
			a.log.Info("walk rendered",
				zap.String("outcome", string(outcome)),
				zap.Int("left_steps", walk.Steps()))

			out := cmd.OutOrStdout()
			_, err = fmt.Fprint(out, render.Render(g, walk.Trail(),
				render.WithColor(a.cfg.Output.Color),
				render.WithRenderer(lipgloss.NewRenderer(out))))
			return err
		},
	}

	flags.maze.register(cmd)
	cmd.Flags().BoolVar(&flags.color, "color", false, "Colour walls, trail and endpoints")
	return cmd
}
