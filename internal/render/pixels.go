// Package render rasterizes draw commands. Canvas is the software sink backed
// by gogpu/gg; the helpers here are shared with the windowed and terminal
// sinks.
package render

import (
	"image/color"

	"procgen/internal/core"
	"procgen/internal/draw"
)

// Transform maps centered, y-up sketch coordinates onto a top-left, y-down
// pixel grid, optionally scaled.
type Transform struct {
	HalfW, HalfH float64
	Scale        float64
}

// NewTransform builds the mapping for a canvas of the given size.
func NewTransform(size core.Size, scale float64) Transform {
	if scale <= 0 {
		scale = 1
	}
	hw, hh := size.Half()
	return Transform{HalfW: hw, HalfH: hh, Scale: scale}
}

// Point converts a sketch coordinate to a pixel coordinate.
func (t Transform) Point(x, y float64) (float64, float64) {
	return (x + t.HalfW) * t.Scale, (t.HalfH - y) * t.Scale
}

// Length converts a sketch distance to pixels.
func (t Transform) Length(v float64) float64 { return v * t.Scale }

// Box returns the top-left corner and size in pixels of a command centered on
// (c.X, c.Y).
func (t Transform) Box(c draw.Command) (x, y, w, h float64) {
	cx, cy := t.Point(c.X, c.Y)
	w, h = t.Length(c.W), t.Length(c.H)
	return cx - w/2, cy - h/2, w, h
}

// NRGBA converts a draw color to an 8-bit straight-alpha color.
func NRGBA(c draw.Color) color.NRGBA {
	r, g, b, a := c.RGBA8()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// Visible reports whether the command would paint anything.
func Visible(c draw.Command) bool {
	if c.Color.A <= 0 {
		return false
	}
	switch c.Kind {
	case draw.Rect, draw.Ellipse:
		return c.W > 0 && c.H > 0
	case draw.Line:
		return c.Weight > 0
	}
	return true
}
