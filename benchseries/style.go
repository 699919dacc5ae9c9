// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchseries

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg/draw"
)

// Glyph names follow the single-character marker codes common in
// plotting tools.
var glyphs = map[string]draw.GlyphDrawer{
	"o": draw.CircleGlyph{},
	"s": draw.SquareGlyph{},
	"^": draw.TriangleGlyph{},
	"x": draw.CrossGlyph{},
	"+": draw.PlusGlyph{},
	"O": draw.RingGlyph{},
	"S": draw.BoxGlyph{},
	"P": draw.PyramidGlyph{},
}

// ParseGlyph returns the point glyph named name: "o" circle, "s"
// square, "^" triangle, "x" cross, "+" plus, "O" ring, "S" box, or "P"
// pyramid. The empty name returns nil.
func ParseGlyph(name string) (draw.GlyphDrawer, error) {
	if name == "" {
		return nil, nil
	}
	if g, ok := glyphs[name]; ok {
		return g, nil
	}
	return nil, fmt.Errorf("unknown glyph %q", name)
}

var colors = map[string]color.Color{
	"b": color.NRGBA{0, 0, 0xFF, 0xFF},
	"g": color.NRGBA{0, 0x80, 0, 0xFF},
	"r": color.NRGBA{0xFF, 0, 0, 0xFF},
	"c": color.NRGBA{0, 0xBF, 0xBF, 0xFF},
	"m": color.NRGBA{0xBF, 0, 0xBF, 0xFF},
	"y": color.NRGBA{0xBF, 0xBF, 0, 0xFF},
	"k": color.NRGBA{0, 0, 0, 0xFF},
}

func init() {
	for long, short := range map[string]string{
		"blue": "b", "green": "g", "red": "r", "cyan": "c",
		"magenta": "m", "yellow": "y", "black": "k",
	} {
		colors[long] = colors[short]
	}
}

// ParseColor returns the color named name: a single-letter or full
// basic color name ("b", "blue", ...) or "#rrggbb". The empty name
// returns nil.
func ParseColor(name string) (color.Color, error) {
	if name == "" {
		return nil, nil
	}
	if c, ok := colors[strings.ToLower(name)]; ok {
		return c, nil
	}
	if hex, ok := strings.CutPrefix(name, "#"); ok && len(hex) == 6 {
		if v, err := strconv.ParseUint(hex, 16, 32); err == nil {
			return color.NRGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 0xFF}, nil
		}
	}
	return nil, fmt.Errorf("unknown color %q", name)
}

func (s *Series) glyph(i int) draw.GlyphDrawer {
	if s.Glyph != nil {
		return s.Glyph
	}
	return plotutil.Shape(i)
}

func (s *Series) color(i int) color.Color {
	if s.Color != nil {
		return s.Color
	}
	return plotutil.Color(i)
}
