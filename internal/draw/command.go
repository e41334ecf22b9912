// Package draw defines the render-toolkit-free output of the generators.
//
// Generators emit an ordered slice of Command values per tick. Coordinates are
// centered: the origin is the middle of the canvas and y grows upwards. Sinks
// translate to their own pixel space.
package draw

import (
	"errors"
	"math"
)

// Kind enumerates the primitive shapes a sink must understand.
type Kind uint8

const (
	// Background fills the whole canvas with Color.
	Background Kind = iota
	// Rect is an axis-aligned rectangle centered on (X, Y) with size W×H.
	Rect
	// Ellipse is centered on (X, Y) with diameters W and H.
	Ellipse
	// Line joins (X, Y) and (X2, Y2) with the given Weight.
	Line
)

var kindNames = [...]string{"background", "rect", "ellipse", "line"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Color is a straight-alpha RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

// Opaque returns a fully opaque color.
func Opaque(r, g, b float64) Color { return Color{R: r, G: g, B: b, A: 1} }

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Clamped returns c with every channel clamped to [0, 1]. NaN becomes 0.
func (c Color) Clamped() Color {
	return Color{R: unit(c.R), G: unit(c.G), B: unit(c.B), A: unit(c.A)}
}

// RGBA8 converts the color to 8-bit straight-alpha channels.
func (c Color) RGBA8() (r, g, b, a uint8) {
	c = c.Clamped()
	return uint8(math.Round(c.R * 255)), uint8(math.Round(c.G * 255)),
		uint8(math.Round(c.B * 255)), uint8(math.Round(c.A * 255))
}

func unit(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Command is a single draw primitive.
type Command struct {
	Kind   Kind    `json:"kind"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	W      float64 `json:"w,omitempty"`
	H      float64 `json:"h,omitempty"`
	X2     float64 `json:"x2,omitempty"`
	Y2     float64 `json:"y2,omitempty"`
	Weight float64 `json:"weight,omitempty"`
	Color  Color   `json:"color"`
}

// Fill returns a background command.
func Fill(c Color) Command { return Command{Kind: Background, Color: c} }

// Rectangle returns a rect command centered on (x, y).
func Rectangle(x, y, w, h float64, c Color) Command {
	return Command{Kind: Rect, X: x, Y: y, W: w, H: h, Color: c}
}

// Oval returns an ellipse command centered on (x, y).
func Oval(x, y, w, h float64, c Color) Command {
	return Command{Kind: Ellipse, X: x, Y: y, W: w, H: h, Color: c}
}

// Segment returns a line command from (x1, y1) to (x2, y2).
func Segment(x1, y1, x2, y2, weight float64, c Color) Command {
	return Command{Kind: Line, X: x1, Y: y1, X2: x2, Y2: y2, Weight: weight, Color: c}
}

// Sink consumes the commands of one tick in order.
type Sink interface {
	Draw(cmds []Command) error
}

// Recorder is a Sink that keeps every batch it receives.
type Recorder struct {
	Frames [][]Command
}

// Draw appends a copy of cmds.
func (r *Recorder) Draw(cmds []Command) error {
	r.Frames = append(r.Frames, append([]Command(nil), cmds...))
	return nil
}

// Last returns the most recent batch, or nil.
func (r *Recorder) Last() []Command {
	if len(r.Frames) == 0 {
		return nil
	}
	return r.Frames[len(r.Frames)-1]
}

// Multi fans a batch out to several sinks. Every sink is invoked even when an
// earlier one fails.
type Multi []Sink

// Draw forwards cmds to every sink and joins their errors.
func (m Multi) Draw(cmds []Command) error {
	var errs []error
	for _, s := range m {
		if s == nil {
			continue
		}
		if err := s.Draw(cmds); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
