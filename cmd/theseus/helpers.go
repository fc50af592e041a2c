package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/theseus/maze"
)

// mazeFlags are the grid-sizing flags shared by every subcommand that
// reads a maze.
type mazeFlags struct {
	rows, cols int
}

func (f *mazeFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.IntVar(&f.rows, "rows", 0, "Fixed row count (0 infers from the input lines)")
	fl.IntVar(&f.cols, "cols", 0, "Fixed column count (0 infers from the input lines)")
}

// apply copies explicitly set flags over the loaded configuration.
func (f *mazeFlags) apply(cmd *cobra.Command, a *app) {
	if cmd.Flags().Changed("rows") {
		a.cfg.Maze.Rows = f.rows
	}
	if cmd.Flags().Changed("cols") {
		a.cfg.Maze.Cols = f.cols
	}
}

// loadMaze reads path using the configured dimensions.
func (a *app) loadMaze(path string) (*maze.Grid, error) {
	if a.cfg.Maze.Rows == 0 && a.cfg.Maze.Cols == 0 {
		return maze.Load(path)
	}
	return maze.Load(path, maze.WithDimensions(a.cfg.Maze.Rows, a.cfg.Maze.Cols))
}
