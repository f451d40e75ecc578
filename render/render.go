// Package render implements ASCII sketching of grids with path overlays.
package render

import (
	"errors"
	"strings"

	"github.com/katalvlaran/gridastar/grid"
)

// Sentinel errors for sketching.
var (
	// ErrNilGrid indicates Sketch received a nil *grid.Grid.
	ErrNilGrid = errors.New("render: grid is nil")
	// ErrBadGlyphs indicates a custom glyph set with an empty glyph.
	ErrBadGlyphs = errors.New("render: every glyph must be non-empty")
)

// Glyphs maps cell roles to the strings drawn for them.
type Glyphs struct {
	Start   string // cell holding the start marker
	Goal    string // cell holding the goal marker
	Path    string // cell on the overlaid path
	Blocked string // obstacle cell
	Open    string // plain walkable cell
}

// DefaultGlyphs returns the glyph set S / G / * / # / . used by Sketch
// when no option overrides it.
func DefaultGlyphs() Glyphs {
	return Glyphs{Start: "S", Goal: "G", Path: "*", Blocked: "#", Open: "."}
}

// options holds resolved sketch configuration.
type options struct {
	glyphs Glyphs
	err    error // recorded option violation, surfaced by Sketch
}

// Option configures Sketch via functional arguments. An invalid Option is
// recorded internally and surfaced as ErrBadGlyphs when Sketch runs.
type Option func(*options)

// WithGlyphs substitutes the glyph set. Every glyph must be non-empty.
func WithGlyphs(g Glyphs) Option {
	return func(o *options) {
		if g.Start == "" || g.Goal == "" || g.Path == "" || g.Blocked == "" || g.Open == "" {
			o.err = ErrBadGlyphs
			return
		}
		o.glyphs = g
	}
}

// Sketch renders g as ASCII, one row per line, cells separated by single
// spaces. The path, start, and goal are overlaid with their glyphs; pass
// a nil path to draw the bare grid with markers, or out-of-bounds markers
// to omit them.
// Complexity: O(R×C).
func Sketch(g *grid.Grid, path grid.Path, start, goal grid.Coordinate, opts ...Option) (string, error) {
	if g == nil {
		return "", ErrNilGrid
	}
	cfg := options{glyphs: DefaultGlyphs()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return "", cfg.err
	}

	onPath := make(map[grid.Coordinate]struct{}, len(path))
	for _, c := range path {
		onPath[c] = struct{}{}
	}

	var b strings.Builder
	for r := 0; r < g.Rows(); r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < g.Cols(); c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(cfg.glyphs.forCell(g, onPath, start, goal, grid.Coordinate{Row: r, Col: c}))
		}
	}

	return b.String(), nil
}

// forCell resolves the glyph for one cell under the documented precedence:
// start, goal, blocked, path, open.
func (gl Glyphs) forCell(g *grid.Grid, onPath map[grid.Coordinate]struct{}, start, goal, c grid.Coordinate) string {
	switch {
	case c == start:
		return gl.Start
	case c == goal:
		return gl.Goal
	case g.At(c) == grid.Blocked:
		return gl.Blocked
	default:
		if _, ok := onPath[c]; ok {
			return gl.Path
		}

		return gl.Open
	}
}
