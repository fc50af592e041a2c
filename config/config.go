// Package config loads theseus settings from YAML, an optional .env file
// and THESEUS_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/theseus/maze"
	"github.com/katalvlaran/theseus/result"
)

// ErrInvalidConfig wraps every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// DotEnvFile is read before environment overrides are applied, if present.
const DotEnvFile = ".env"

// Config holds all theseus configuration.
type Config struct {
	Maze    MazeConfig    `yaml:"maze"`
	Walker  WalkerConfig  `yaml:"walker"`
	Solver  SolverConfig  `yaml:"solver"`
	Output  OutputConfig  `yaml:"output"`
	Batch   BatchConfig   `yaml:"batch"`
	Logging LoggingConfig `yaml:"logging"`
}

// MazeConfig sets fixed grid dimensions. Zero for both infers them from
// the input lines.
type MazeConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// WalkerConfig configures the left-hand walker.
type WalkerConfig struct {
	InitialHeading string `yaml:"initial_heading"` // N, E, S, W
	MaxSteps       int    `yaml:"max_steps"`       // 0 = rows*cols*4
	Strict         bool   `yaml:"strict"`          // stuck or step limit is fatal
}

// Heading parses InitialHeading.
func (w WalkerConfig) Heading() (maze.Heading, error) {
	return maze.ParseHeading(w.InitialHeading)
}

// SolverConfig configures the BFS solver.
type SolverConfig struct {
	MaxDepth int `yaml:"max_depth"` // 0 = unlimited
}

// OutputConfig configures record encoding.
type OutputConfig struct {
	Format string `yaml:"format"` // json, yaml, text
	Indent bool   `yaml:"indent"`
	Color  bool   `yaml:"color"`
}

// BatchConfig configures multi-file runs.
type BatchConfig struct {
	Parallel int `yaml:"parallel"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level    string `yaml:"level"`    // debug, info, warn, error
	Encoding string `yaml:"encoding"` // console, json
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Walker: WalkerConfig{
			InitialHeading: "S",
		},
		Output: OutputConfig{
			Format: string(result.FormatJSON),
			Indent: true,
		},
		Batch: BatchConfig{
			Parallel: 4,
		},
		Logging: LoggingConfig{
			Level:    "info",
			Encoding: "console",
		},
	}
}

// Load reads configuration from a YAML file layered over DefaultConfig,
// then applies environment overrides. An empty or missing path yields the
// defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := godotenv.Load(DotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", DotEnvFile, err)
	}
	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Write encodes c as YAML.
func (c *Config) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return enc.Close()
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Maze.Rows < 0 || c.Maze.Cols < 0 || (c.Maze.Rows == 0) != (c.Maze.Cols == 0) {
		return fmt.Errorf("%w: maze dimensions %dx%d (set both or neither)",
			ErrInvalidConfig, c.Maze.Rows, c.Maze.Cols)
	}
	if _, err := c.Walker.Heading(); err != nil {
		return fmt.Errorf("%w: walker.initial_heading: %w", ErrInvalidConfig, err)
	}
	if c.Walker.MaxSteps < 0 {
		return fmt.Errorf("%w: walker.max_steps must be >= 0, got %d", ErrInvalidConfig, c.Walker.MaxSteps)
	}
	if c.Solver.MaxDepth < 0 {
		return fmt.Errorf("%w: solver.max_depth must be >= 0, got %d", ErrInvalidConfig, c.Solver.MaxDepth)
	}
	if _, err := result.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("%w: output.format: %w", ErrInvalidConfig, err)
	}
	if c.Batch.Parallel < 1 {
		return fmt.Errorf("%w: batch.parallel must be >= 1, got %d", ErrInvalidConfig, c.Batch.Parallel)
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: logging.level: %w", ErrInvalidConfig, err)
	}
	switch c.Logging.Encoding {
	case "console", "json":
	default:
		return fmt.Errorf("%w: logging.encoding %q (valid: console, json)", ErrInvalidConfig, c.Logging.Encoding)
	}
	return nil
}
