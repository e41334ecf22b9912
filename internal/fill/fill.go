// Package fill decides, cell by cell, whether and how to draw a shape on a
// regular grid laid over the canvas.
//
// A fill score is a heavy-tailed draw reduced modulo a small span; thresholds
// compare against the reduced value so rare spikes stay rare while the
// comparison stays bounded. Noise samples are folded the same way: absolute
// value modulo 1 (or modulo a per-cell opacity cap).
package fill

import (
	"errors"
	"fmt"
	"strings"

	"procgen/internal/core"
	"procgen/internal/draw"
	"procgen/internal/noise"
	"procgen/internal/palette"
)

// ErrMissingFields is returned when a mode needs more noise fields than given.
var ErrMissingFields = errors.New("not enough noise fields")

// Mode selects the per-cell strategy.
type Mode int

const (
	// BinaryDensity draws a fixed square wherever the fill score passes a
	// single threshold.
	BinaryDensity Mode = iota
	// TieredSize picks between two colors with two thresholds and sizes each
	// ellipse by a static noise sample.
	TieredSize
	// ContinuousMultiChannel draws every cell, coloring it from three animated
	// fields and a fourth, per-cell rescaled field for alpha.
	ContinuousMultiChannel
)

var modeNames = map[Mode]string{
	BinaryDensity:          "binary",
	TieredSize:             "tiered",
	ContinuousMultiChannel: "continuous",
}

func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode accepts the names printed by Mode.String and the letters a, b, c.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "binary", "a":
		return BinaryDensity, nil
	case "tiered", "b":
		return TieredSize, nil
	case "continuous", "c":
		return ContinuousMultiChannel, nil
	}
	return 0, fmt.Errorf("unknown fill mode %q", s)
}

// FieldsRequired reports how many noise fields the mode samples.
func (m Mode) FieldsRequired() int {
	switch m {
	case TieredSize:
		return 1
	case ContinuousMultiChannel:
		return 4
	}
	return 0
}

// Options parameterizes a Filler.
type Options struct {
	Size     core.Size
	CellSize float64
	Mode     Mode

	// Span is the modulus applied to the heavy-tailed fill score.
	Span float64
	// Threshold gates BinaryDensity and selects Primary in TieredSize.
	Threshold float64
	// LowThreshold selects Secondary in TieredSize.
	LowThreshold float64

	// NoiseScale divides canvas coordinates before sampling.
	NoiseScale float64
	// StaticTime is the fixed time coordinate used by TieredSize.
	StaticTime float64
	// TimeScale divides the frame index into the time coordinate used by
	// ContinuousMultiChannel.
	TimeScale float64

	Primary   draw.Color
	Secondary draw.Color
}

// DefaultOptions returns the settings each mode was tuned with on a 4K canvas.
func DefaultOptions(mode Mode) Options {
	o := Options{
		Size:       core.Size{W: 3840, H: 2160},
		CellSize:   16,
		Mode:       mode,
		NoiseScale: 400,
		StaticTime: 0.1,
		TimeScale:  10,
		Primary:    palette.MustColor("steelblue"),
		Secondary:  palette.MustColor("midnightblue"),
	}
	switch mode {
	case BinaryDensity:
		o.Span, o.Threshold = 2, 1
	case TieredSize:
		o.Span, o.Threshold, o.LowThreshold = 10, 9, 8
	}
	return o
}

// Decision is the render decision for one cell.
type Decision struct {
	X, Y  float64
	Shape draw.Kind
	Size  float64
	Color draw.Color
}

// Command converts the decision into a draw command.
func (d Decision) Command() draw.Command {
	if d.Shape == draw.Ellipse {
		return draw.Oval(d.X, d.Y, d.Size, d.Size, d.Color)
	}
	return draw.Rectangle(d.X, d.Y, d.Size, d.Size, d.Color)
}

// Filler evaluates Options against a set of noise fields and a random source.
type Filler struct {
	opts   Options
	fields noise.Set
	src    core.Source
}

// New validates opts and binds the fields and random source.
func New(opts Options, fields noise.Set, src core.Source) (*Filler, error) {
	if opts.CellSize <= 0 {
		return nil, fmt.Errorf("cell size must be positive, got %v", opts.CellSize)
	}
	if opts.Size.W <= 0 || opts.Size.H <= 0 {
		return nil, fmt.Errorf("canvas size must be positive, got %dx%d", opts.Size.W, opts.Size.H)
	}
	if need := opts.Mode.FieldsRequired(); len(fields) < need {
		return nil, fmt.Errorf("%w: %s mode needs %d, got %d", ErrMissingFields, opts.Mode, need, len(fields))
	}
	if opts.NoiseScale <= 0 {
		opts.NoiseScale = 1
	}
	if opts.TimeScale <= 0 {
		opts.TimeScale = 1
	}
	return &Filler{opts: opts, fields: fields, src: src}, nil
}

// Options returns the effective options.
func (f *Filler) Options() Options { return f.opts }

// SetSource swaps the random source, e.g. after a reseed.
func (f *Filler) SetSource(src core.Source) { f.src = src }

// Frame walks the grid row by row and emits a command for every cell that
// draws.
func (f *Filler) Frame(frame int, emit func(draw.Command)) {
	cell := f.opts.CellSize
	w, h := float64(f.opts.Size.W), float64(f.opts.Size.H)
	for i := 0.0; i < h; i += cell {
		for j := 0.0; j < w; j += cell {
			x := j - w/2 + cell/2
			y := i - h/2 + cell/2
			if d, ok := f.Evaluate(x, y, frame); ok {
				emit(d.Command())
			}
		}
	}
}

// Evaluate decides the cell centered at (x, y). It consumes randomness from
// the bound source, so calling it twice for one cell yields two decisions.
func (f *Filler) Evaluate(x, y float64, frame int) (Decision, bool) {
	switch f.opts.Mode {
	case TieredSize:
		return f.tiered(x, y)
	case ContinuousMultiChannel:
		return f.continuous(x, y, frame), true
	default:
		return f.binary(x, y)
	}
}

func (f *Filler) binary(x, y float64) (Decision, bool) {
	if core.Score(f.src, f.opts.Span) <= f.opts.Threshold {
		return Decision{}, false
	}
	return Decision{X: x, Y: y, Shape: draw.Rect, Size: f.opts.CellSize, Color: f.opts.Primary}, true
}

func (f *Filler) tiered(x, y float64) (Decision, bool) {
	score := core.Score(f.src, f.opts.Span)
	var c draw.Color
	switch {
	case score > f.opts.Threshold:
		c = f.opts.Primary
	case score > f.opts.LowThreshold:
		c = f.opts.Secondary
	default:
		return Decision{}, false
	}
	s := f.opts.NoiseScale
	k := noise.Magnitude(f.fields[0], x/s, y/s, f.opts.StaticTime, 1)
	return Decision{X: x, Y: y, Shape: draw.Ellipse, Size: f.opts.CellSize * k, Color: c}, true
}

func (f *Filler) continuous(x, y float64, frame int) Decision {
	s := f.opts.NoiseScale
	t := float64(frame) / f.opts.TimeScale
	r := noise.Magnitude(f.fields[0], x/s, y/s, t, 1)
	g := noise.Magnitude(f.fields[1], x/s, y/s, t, 1)
	b := noise.Magnitude(f.fields[2], x/s, y/s, t, 1)

	as := s * (0.5 + f.src.Float64())
	ceiling := f.src.Float64()
	a := noise.Magnitude(f.fields[3], x/as, y/as, t, ceiling)

	c := draw.Color{R: r, G: g, B: b, A: a}.Clamped()
	return Decision{X: x, Y: y, Shape: draw.Rect, Size: f.opts.CellSize, Color: c}
}
