// Package walk implements an edge-biased random walk on a centered
// rectangle. Each step moves in one of eight directions; near the boundary an
// outward move is increasingly likely to bounce back inward, and a walker that
// reaches the edge is pushed back one unit.
package walk

import (
	"math"

	"procgen/internal/core"
)

const (
	// SoftMargin is the distance from the edge where bounce checks start.
	SoftMargin = 5
	// BounceSpan is the modulus applied to bounce and step-size draws.
	BounceSpan = 300
	// MaxStep is the largest distance an axis moves in one tick.
	MaxStep = 3
)

// Point is a position in centered coordinates.
type Point struct {
	X, Y float64
}

// directions are indexed by throw-1: +x, +y, -x, -y, then the diagonals
// +x+y, -x+y, -x-y, +x-y.
var directions = [8][2]float64{
	{1, 0}, {0, 1}, {-1, 0}, {0, -1},
	{1, 1}, {-1, 1}, {-1, -1}, {1, -1},
}

// Direction returns the unit move selected by a throw in [1, 8].
func Direction(throw int) (dx, dy float64) {
	d := directions[(throw-1+8)%8]
	return d[0], d[1]
}

// Walker holds the previous and current position of the walk.
type Walker struct {
	halfW, halfH float64
	prev, cur    Point
	src          core.Source
}

// New returns a walker at the origin of a w×h rectangle.
func New(size core.Size, src core.Source) *Walker {
	hw, hh := size.Half()
	return &Walker{halfW: hw, halfH: hh, src: src}
}

// Reset returns the walker to the origin.
func (w *Walker) Reset() {
	w.prev, w.cur = Point{}, Point{}
}

// SetSource swaps the random source.
func (w *Walker) SetSource(src core.Source) { w.src = src }

// Position returns the current position.
func (w *Walker) Position() Point { return w.cur }

// Previous returns the position before the last step.
func (w *Walker) Previous() Point { return w.prev }

// Place moves the walker without recording a step. Both points are set to p.
func (w *Walker) Place(p Point) { w.prev, w.cur = p, p }

type moveKind uint8

const (
	moveFree moveKind = iota
	moveBounce
	moveClamp
)

type axisMove struct {
	kind moveKind
	dir  float64
}

// Step advances the walk by one tick. Draws are consumed in a fixed order:
// the throw, then a bounce draw for each axis moving outward inside the soft
// margin (x before y), then the step size.
func (w *Walker) Step() {
	throw := w.src.IntN(len(directions)) + 1
	dx, dy := Direction(throw)

	mx := w.plan(w.cur.X, dx, w.halfW)
	my := w.plan(w.cur.Y, dy, w.halfH)
	step := StepSize(w.src)

	next := Point{
		X: w.cur.X + mx.delta(w.cur.X, step),
		Y: w.cur.Y + my.delta(w.cur.Y, step),
	}
	w.prev, w.cur = w.cur, next
}

func (w *Walker) plan(c, dir, half float64) axisMove {
	edge := math.Abs(c) >= half
	outward := dir != 0 && c*dir >= 0
	switch {
	case outward && math.Abs(c) > half-SoftMargin:
		if Bounces(w.src, c) {
			return axisMove{kind: moveBounce, dir: -dir}
		}
		if edge {
			return axisMove{kind: moveClamp}
		}
	case edge && dir == 0:
		return axisMove{kind: moveClamp}
	}
	return axisMove{kind: moveFree, dir: dir}
}

func (m axisMove) delta(c float64, step int) float64 {
	if m.kind == moveClamp {
		return -sign(c)
	}
	return m.dir * float64(step)
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

// Bounces draws a heavy-tailed value and reports whether a coordinate at c
// should turn back. The odds rise with |c|.
func Bounces(src core.Source, c float64) bool {
	draw := core.Score(src, BounceSpan)
	return draw-(BounceSpan-math.Abs(c)) > BounceSpan
}

// StepSize draws the distance of the next move: mostly 1, occasionally 2,
// rarely 3.
func StepSize(src core.Source) int {
	v := core.Score(src, BounceSpan)
	switch {
	case v > 299:
		return 3
	case v > 295:
		return 2
	}
	return 1
}
