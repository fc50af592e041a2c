// Package render draws a maze as text, optionally overlaying the cells an
// agent walked through.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/theseus/maze"
)

// TrailSymbol marks a Path cell the agent entered.
const TrailSymbol = "*"

// Cell colours.
var (
	WallColor        = lipgloss.Color("#616161")
	TrailColor       = lipgloss.Color("#FFC107")
	StartColor       = lipgloss.Color("#2196F3")
	DestinationColor = lipgloss.Color("#8BC34A")
)

// Option configures Render.
type Option func(*Options)

// Options holds render parameters:
//   - Color: style cells with lipgloss.
//   - Renderer: lipgloss renderer bound to the output; nil uses the default.
type Options struct {
	Color    bool
	Renderer *lipgloss.Renderer
}

// WithColor toggles styled output.
func WithColor(on bool) Option {
	return func(o *Options) { o.Color = on }
}

// WithRenderer sets the lipgloss renderer used for colour detection.
func WithRenderer(r *lipgloss.Renderer) Option {
	return func(o *Options) { o.Renderer = r }
}

type palette struct {
	wall, path, trail, start, dest lipgloss.Style
}

func newPalette(r *lipgloss.Renderer) palette {
	return palette{
		wall:  r.NewStyle().Foreground(WallColor),
		path:  r.NewStyle(),
		trail: r.NewStyle().Foreground(TrailColor).Bold(true),
		start: r.NewStyle().Foreground(StartColor).Bold(true),
		dest:  r.NewStyle().Foreground(DestinationColor).Bold(true),
	}
}

func (p palette) style(k maze.CellKind, onTrail bool) lipgloss.Style {
	switch k {
	case maze.Wall:
		return p.wall
	case maze.Start:
		return p.start
	case maze.Destination:
		return p.dest
	}
	if onTrail {
		return p.trail
	}
	return p.path
}

// Render returns g one row per line with cells separated by single spaces,
// in the same layout maze.Parse accepts. Path cells listed in trail are
// drawn as TrailSymbol; Start and Destination keep their symbols.
func Render(g *maze.Grid, trail []maze.Position, opts ...Option) string {
	if g == nil {
		return ""
	}
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	onTrail := make(map[maze.Position]bool, len(trail))
	for _, p := range trail {
		onTrail[p] = true
	}

	var pal palette
	if o.Color {
		r := o.Renderer
		if r == nil {
			r = lipgloss.DefaultRenderer()
		}
		pal = newPalette(r)
	}

	var b strings.Builder
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			if col > 0 {
				b.WriteByte(' ')
			}
			p := maze.Position{Row: row, Col: col}
			k := g.Classify(p)
			sym := string(k.Symbol())
			if k == maze.Path && onTrail[p] {
				sym = TrailSymbol
			}
			if o.Color {
				sym = pal.style(k, onTrail[p]).Render(sym)
			}
			b.WriteString(sym)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
