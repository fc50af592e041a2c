// theseus solves grid mazes two ways: by following the left wall, and by
// breadth-first search for the shortest route.
//
// Usage:
//
//	theseus solve [maze files...] [--format json|yaml|text] [--strict]
//	theseus render <maze> [--color]
//	theseus inspect <maze>
//	theseus config
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/theseus/config"
	"github.com/katalvlaran/theseus/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

// app carries state shared by every subcommand once the root has run.
type app struct {
	configPath string
	logLevel   string
	verbose    bool

	cfg *config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:   "theseus",
		Short: "Left-hand-rule walker and shortest-path solver for grid mazes",
		Long: `theseus reads a maze of W (wall), P (path), T (start) and D (destination)
cells, walks it keeping a hand on the left wall, and finds the shortest
route with breadth-first search. Results go to stdout, logs to stderr.`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: a.teardown,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "theseus.yaml", "Config file (YAML); missing file means defaults")
	pf.StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "Debug logging (same as --log-level=debug)")

	cmd.AddCommand(newSolveCmd(a))
	cmd.AddCommand(newRenderCmd(a))
	cmd.AddCommand(newInspectCmd(a))
	cmd.AddCommand(newConfigCmd(a))
	return cmd
}

// setup loads configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	if a.verbose {
		cfg.Logging.Level = "debug"
	}

	log, err := logging.New(cfg.Logging, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, log
	log.Debug("config loaded", zap.String("path", a.configPath))
	return nil
}

func (a *app) teardown(_ *cobra.Command, _ []string) {
	if a.log != nil {
		_ = a.log.Sync()
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "theseus:", err)
		stop()
		os.Exit(1)
	}
}
