package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/theseus/maze"
)

func newInspectCmd(a *app) *cobra.Command {
	var flags struct {
		maze mazeFlags
	}

	cmd := &cobra.Command{
		Use:   "inspect <maze>",
		Short: "Describe a maze: size, start, destinations and open regions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.maze.apply(cmd, a)
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			g, err := a.loadMaze(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Size:          %dx%d\n", g.Rows(), g.Cols())
			start, err := g.FindStart()
			if err != nil {
				fmt.Fprintf(out, "Start:         none\n")
			} else {
				fmt.Fprintf(out, "Start:         %v\n", start)
			}
			fmt.Fprintf(out, "Destinations:  %s\n", joinPositions(g.Destinations()))
			fmt.Fprintf(out, "Open regions:  %d\n", len(g.Regions()))
			if err == nil {
				fmt.Fprintf(out, "Start region:  %d cells\n", len(g.RegionOf(start)))
			}
			return nil
		},
	}

	flags.maze.register(cmd)
	return cmd
}

func joinPositions(ps []maze.Position) string {
	if len(ps) == 0 {
		return "none"
	}
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}
