package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/theseus/maze"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	h, err := cfg.Walker.Heading()
	require.NoError(t, err)
	assert.Equal(t, maze.South, h)
	assert.Equal(t, 4, cfg.Batch.Parallel)
	assert.Equal(t, "json", cfg.Output.Format)
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	path := writeFile(t, t.TempDir(), "theseus.yaml", `
maze:
  rows: 12
  cols: 12
walker:
  initial_heading: north
  strict: true
output:
  format: yaml
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	want := DefaultConfig()
	want.Maze = MazeConfig{Rows: 12, Cols: 12}
	want.Walker.InitialHeading = "north"
	want.Walker.Strict = true
	want.Output.Format = "yaml"
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
	require.NoError(t, cfg.Validate())
}

func TestLoad_BadYAML(t *testing.T) {
	t.Chdir(t.TempDir())
	path := writeFile(t, t.TempDir(), "bad.yaml", "maze: [unclosed\n")

	_, err := Load(path)
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(EnvRows, "5")
	t.Setenv(EnvCols, "7")
	t.Setenv(EnvMaxSteps, "99")
	t.Setenv(EnvStrict, "true")
	t.Setenv(EnvFormat, "text")
	t.Setenv(EnvParallel, "2")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvHeading, "E")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, MazeConfig{Rows: 5, Cols: 7}, cfg.Maze)
	assert.Equal(t, WalkerConfig{InitialHeading: "E", MaxSteps: 99, Strict: true}, cfg.Walker)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.Equal(t, 2, cfg.Batch.Parallel)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_EnvBadValues(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Run("int", func(t *testing.T) {
		t.Setenv(EnvParallel, "many")
		_, err := Load("")
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
	t.Run("bool", func(t *testing.T) {
		t.Setenv(EnvStrict, "perhaps")
		_, err := Load("")
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeFile(t, dir, DotEnvFile, EnvMaxSteps+"=17\n")
	t.Cleanup(func() { os.Unsetenv(EnvMaxSteps) })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 17, cfg.Walker.MaxSteps)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"rows only", func(c *Config) { c.Maze.Rows = 3 }},
		{"negative cols", func(c *Config) { c.Maze.Rows, c.Maze.Cols = 3, -1 }},
		{"bad heading", func(c *Config) { c.Walker.InitialHeading = "up" }},
		{"negative max steps", func(c *Config) { c.Walker.MaxSteps = -1 }},
		{"negative max depth", func(c *Config) { c.Solver.MaxDepth = -2 }},
		{"bad format", func(c *Config) { c.Output.Format = "xml" }},
		{"zero parallel", func(c *Config) { c.Batch.Parallel = 0 }},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }},
		{"bad encoding", func(c *Config) { c.Logging.Encoding = "xml" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, DefaultConfig().Write(&buf))

	got := &Config{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), got))
	assert.Equal(t, DefaultConfig(), got)
	assert.Contains(t, buf.String(), "initial_heading: S\n")
}
