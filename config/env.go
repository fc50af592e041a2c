package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variables that override the file configuration.
const (
	EnvRows     = "THESEUS_ROWS"
	EnvCols     = "THESEUS_COLS"
	EnvHeading  = "THESEUS_HEADING"
	EnvMaxSteps = "THESEUS_MAX_STEPS"
	EnvStrict   = "THESEUS_STRICT"
	EnvFormat   = "THESEUS_FORMAT"
	EnvParallel = "THESEUS_PARALLEL"
	EnvLogLevel = "THESEUS_LOG_LEVEL"
)

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	ints := []struct {
		key string
		dst *int
	}{
		{EnvRows, &c.Maze.Rows},
		{EnvCols, &c.Maze.Cols},
		{EnvMaxSteps, &c.Walker.MaxSteps},
		{EnvParallel, &c.Batch.Parallel},
	}
	for _, e := range ints {
		if err := getEnvAsInt(e.key, e.dst); err != nil {
			return err
		}
	}
	if err := getEnvAsBool(EnvStrict, &c.Walker.Strict); err != nil {
		return err
	}

	c.Walker.InitialHeading = getEnvWithDefault(EnvHeading, c.Walker.InitialHeading)
	c.Output.Format = getEnvWithDefault(EnvFormat, c.Output.Format)
	c.Logging.Level = getEnvWithDefault(EnvLogLevel, c.Logging.Level)
	return nil
}

// getEnvWithDefault returns the variable's value, or def when unset or empty.
func getEnvWithDefault(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

// getEnvAsInt stores the parsed variable in dst when it is set.
func getEnvAsInt(key string, dst *int) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, key, v)
	}
	*dst = n
	return nil
}

// getEnvAsBool stores the parsed variable in dst when it is set.
func getEnvAsBool(key string, dst *bool) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalidConfig, key, v)
	}
	*dst = b
	return nil
}
