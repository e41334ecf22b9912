// Package palette holds the fixed color sets the sketches draw from.
package palette

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"procgen/internal/core"
	"procgen/internal/draw"
)

// Named colors used by the sketches, keyed by their CSS names.
var named = map[string]string{
	"white":        "#ffffff",
	"black":        "#000000",
	"steelblue":    "#4682b4",
	"lightskyblue": "#87cefa",
	"midnightblue": "#191970",
	"slategray":    "#708090",
	"darkorange":   "#ff8c00",
	"crimson":      "#dc143c",
	"gold":         "#ffd700",
	"teal":         "#008080",
	"ivory":        "#fffff0",
}

// Color resolves a named color. Unknown names are an error.
func Color(name string) (draw.Color, error) {
	hex, ok := named[name]
	if !ok {
		return draw.Color{}, fmt.Errorf("unknown color %q", name)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return draw.Color{}, fmt.Errorf("parse %q: %w", name, err)
	}
	return fromColorful(c), nil
}

// MustColor is Color for package-level tables built from known names.
func MustColor(name string) draw.Color {
	c, err := Color(name)
	if err != nil {
		panic(err)
	}
	return c
}

func fromColorful(c colorful.Color) draw.Color {
	c = c.Clamped()
	return draw.Opaque(c.R, c.G, c.B)
}

// Blend mixes a and b in Lab space; t=0 yields a, t=1 yields b. The alpha of
// a is kept.
func Blend(a, b draw.Color, t float64) draw.Color {
	ca := colorful.Color{R: a.R, G: a.G, B: a.B}
	cb := colorful.Color{R: b.R, G: b.G, B: b.B}
	return fromColorful(ca.BlendLab(cb, t)).WithAlpha(a.A)
}

// Palette is an ordered set of colors. Repeated entries make a color more
// likely to be picked.
type Palette struct {
	colors []draw.Color
}

// New resolves names into a palette.
func New(names ...string) (Palette, error) {
	p := Palette{colors: make([]draw.Color, len(names))}
	for i, n := range names {
		c, err := Color(n)
		if err != nil {
			return Palette{}, err
		}
		p.colors[i] = c
	}
	return p, nil
}

// Len returns the number of entries, repeats included.
func (p Palette) Len() int { return len(p.colors) }

// At returns entry i.
func (p Palette) At(i int) draw.Color { return p.colors[i] }

// Pick returns a uniformly chosen entry. An empty palette yields opaque black.
func (p Palette) Pick(src core.Source) draw.Color {
	if len(p.colors) == 0 {
		return draw.Opaque(0, 0, 0)
	}
	return p.At(src.IntN(p.Len()))
}

// Trail is the walk palette. Steel blue appears three times so it dominates.
var Trail = mustPalette("steelblue", "steelblue", "steelblue", "lightskyblue", "midnightblue", "slategray")

func mustPalette(names ...string) Palette {
	p, err := New(names...)
	if err != nil {
		panic(err)
	}
	return p
}
