package walk

import (
	"procgen/internal/core"
	"procgen/internal/draw"
	"procgen/internal/palette"
)

// Trail turns walker movement into draw commands. Each tick produces either a
// faint full-canvas overlay that fades older segments, or a line segment from
// the previous to the current position.
type Trail struct {
	// Canvas is the pixel size the overlay covers.
	Canvas core.Size
	// Scale converts walk units to pixels.
	Scale float64

	Palette palette.Palette
	Accent  draw.Color
	// AccentMix pulls the accent toward the first palette entry in Lab space.
	AccentMix float64
	Overlay   draw.Color

	OverlaySpan, OverlayThreshold float64
	AccentSpan, AccentThreshold   float64

	Weight, AccentWeight float64
}

// DefaultTrail returns the trail policy used by the walk sketch.
func DefaultTrail(canvas core.Size) Trail {
	return Trail{
		Canvas:           canvas,
		Scale:            4,
		Palette:          palette.Trail,
		Accent:           palette.MustColor("darkorange"),
		AccentMix:        0.2,
		Overlay:          palette.MustColor("white").WithAlpha(0.03),
		OverlaySpan:      1000,
		OverlayThreshold: 998,
		AccentSpan:       100,
		AccentThreshold:  98,
		Weight:           1,
		AccentWeight:     4,
	}
}

// Commands renders one tick of the walk. Draws are consumed in order: the
// overlay gate, the accent gate, then a palette pick for common segments.
func (t Trail) Commands(prev, cur Point, src core.Source) []draw.Command {
	if core.Score(src, t.OverlaySpan) > t.OverlayThreshold {
		return []draw.Command{draw.Rectangle(0, 0, float64(t.Canvas.W), float64(t.Canvas.H), t.Overlay)}
	}
	c, weight := t.AccentColor(), t.AccentWeight
	if core.Score(src, t.AccentSpan) <= t.AccentThreshold {
		c, weight = t.Palette.Pick(src), t.Weight
	}
	s := t.Scale
	if s <= 0 {
		s = 1
	}
	return []draw.Command{draw.Segment(prev.X*s, prev.Y*s, cur.X*s, cur.Y*s, weight, c)}
}

// AccentColor returns the accent as drawn, after mixing.
func (t Trail) AccentColor() draw.Color {
	if t.AccentMix <= 0 || t.Palette.Len() == 0 {
		return t.Accent
	}
	return palette.Blend(t.Accent, t.Palette.At(0), t.AccentMix)
}
