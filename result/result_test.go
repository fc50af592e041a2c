package result_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/theseus/maze"
	"github.com/katalvlaran/theseus/result"
)

func sample() result.Record {
	return result.Assemble(maze.Position{Row: 1, Col: 1}, 2,
		[]maze.Heading{maze.North, maze.East}, 2)
}

func TestAssemble_CopiesHeadings(t *testing.T) {
	hs := []maze.Heading{maze.North, maze.East}
	rec := result.Assemble(maze.Position{Row: 3, Col: 4}, 2, hs, 5)
	hs[0] = maze.West

	assert.Equal(t, maze.North, rec.Directions[0])
	assert.Equal(t, maze.Position{Row: 3, Col: 4}, rec.Start)
	assert.Equal(t, 2, rec.LeftSteps)
	assert.Equal(t, 5, rec.OptimalSteps)
	assert.Equal(t, result.OutcomeReached, rec.Outcome)
	assert.True(t, rec.Reachable())
}

func TestWithOutcomeAndSource_DoNotMutate(t *testing.T) {
	rec := sample()
	stuck := rec.WithOutcome(result.OutcomeStuck).WithSource("a.txt")

	assert.Equal(t, result.OutcomeReached, rec.Outcome)
	assert.Empty(t, rec.Source)
	assert.Equal(t, result.OutcomeStuck, stuck.Outcome)
	assert.Equal(t, "a.txt", stuck.Source)
}

func TestEncodeJSON_Keys(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, result.EncodeJSON(&buf, sample(), false))
	assert.Equal(t,
		`{"theseus_start":[1,1],"left_steps":2,"directions":["N","E"],"optimal_steps":2,"walk_outcome":"reached"}`+"\n",
		buf.String())
}

func TestEncodeJSON_EmptyDirectionsAndUnreachable(t *testing.T) {
	rec := result.Assemble(maze.Position{}, 0, nil, result.Unreachable).
		WithOutcome(result.OutcomeStuck).WithSource("m.txt")

	var buf bytes.Buffer
	require.NoError(t, result.EncodeJSON(&buf, rec, false))
	assert.Equal(t,
		`{"source":"m.txt","theseus_start":[0,0],"left_steps":0,"directions":[],"optimal_steps":-1,"walk_outcome":"stuck"}`+"\n",
		buf.String())
	assert.False(t, rec.Reachable())
}

func TestEncodeJSON_Indent(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, result.EncodeJSON(&buf, sample(), true))
	assert.Contains(t, buf.String(), "\n  \"left_steps\": 2,\n")
}

func TestEncodeYAML_Keys(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, result.EncodeYAML(&buf, sample()))

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, []any{1, 1}, got["theseus_start"])
	assert.Equal(t, 2, got["left_steps"])
	assert.Equal(t, []any{"N", "E"}, got["directions"])
	assert.Equal(t, 2, got["optimal_steps"])
	assert.Equal(t, "reached", got["walk_outcome"])
	assert.NotContains(t, got, "source")
}

func TestEncodeText(t *testing.T) {
	var buf bytes.Buffer
	rec := sample().WithSource("maze.txt")
	require.NoError(t, result.EncodeText(&buf, rec))

	out := buf.String()
	assert.Contains(t, out, "source:        maze.txt\n")
	assert.Contains(t, out, "start:         1, 1\n")
	assert.Contains(t, out, "directions:    N, E\n")
	assert.Contains(t, out, "optimal steps: 2\n")

	buf.Reset()
	require.NoError(t, result.EncodeText(&buf, result.Assemble(maze.Position{}, 0, nil, result.Unreachable)))
	assert.Contains(t, buf.String(), "optimal steps: unreachable\n")
}

func TestEncodeAll(t *testing.T) {
	a := sample().WithSource("a")
	b := sample().WithSource("b")

	var buf bytes.Buffer
	require.NoError(t, result.EncodeAll(&buf, result.FormatJSON, []result.Record{a, b}, result.Options{}))
	var arr []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &arr))
	require.Len(t, arr, 2)
	assert.Equal(t, "a", arr[0]["source"])
	assert.Equal(t, "b", arr[1]["source"])

	buf.Reset()
	require.NoError(t, result.EncodeAll(&buf, result.FormatJSON, []result.Record{a}, result.Options{}))
	assert.True(t, strings.HasPrefix(buf.String(), "{"), "single record is not wrapped")

	buf.Reset()
	require.NoError(t, result.EncodeAll(&buf, result.FormatText, []result.Record{a, b}, result.Options{}))
	assert.Equal(t, 2, strings.Count(buf.String(), "walk outcome:"))
	assert.Contains(t, buf.String(), "reached\n\nsource:        b\n")

	buf.Reset()
	require.NoError(t, result.EncodeAll(&buf, result.FormatYAML, []result.Record{a, b}, result.Options{}))
	var seq []map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &seq))
	assert.Len(t, seq, 2)
}

func TestParseFormat(t *testing.T) {
	cases := []struct {
		in   string
		want result.Format
	}{
		{"json", result.FormatJSON},
		{"", result.FormatJSON},
		{"YAML", result.FormatYAML},
		{"yml", result.FormatYAML},
		{" text ", result.FormatText},
	}
	for _, tc := range cases {
		got, err := result.ParseFormat(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := result.ParseFormat("xml")
	assert.True(t, errors.Is(err, result.ErrUnknownFormat))

	err = result.Encode(&bytes.Buffer{}, result.Format("xml"), sample(), result.Options{})
	assert.ErrorIs(t, err, result.ErrUnknownFormat)
}
