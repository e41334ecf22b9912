// Package noise wraps seeded 3-D coherent noise behind a bounded sampling
// function. Two spatial axes plus a time axis are sampled; the output is
// always finite and in [-1, 1].
package noise

import (
	"math"

	"github.com/aquilax/go-perlin"
)

// Perlin parameters shared by every field. Visual variety comes from seed
// diversity rather than from mixing noise algorithms.
const (
	alpha   = 2.0
	beta    = 2.0
	octaves = 3
)

// Field is a deterministic function of (x, y, t) parameterized by a seed.
// Sampling has no side effects, so a Field may be shared by readers.
type Field struct {
	seed uint32
	p    *perlin.Perlin
}

// New builds the field for seed.
func New(seed uint32) *Field {
	return &Field{seed: seed, p: perlin.NewPerlin(alpha, beta, octaves, int64(seed))}
}

// Seed returns the seed the field was built from.
func (f *Field) Seed() uint32 { return f.seed }

// Sample returns the noise value at (x, y, t) clamped to [-1, 1]. Non-finite
// inputs or outputs yield 0.
func (f *Field) Sample(x, y, t float64) float64 {
	if !finite(x) || !finite(y) || !finite(t) {
		return 0
	}
	return clamp(f.p.Noise3D(x, y, t))
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func clamp(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v < -1:
		return -1
	case v > 1:
		return 1
	}
	return v
}

// Set is an ordered collection of independent fields.
type Set []*Field

// NewSet builds one field per seed, in order.
func NewSet(seeds []uint32) Set {
	set := make(Set, len(seeds))
	for i, s := range seeds {
		set[i] = New(s)
	}
	return set
}

// Seeds returns the seeds of the set in order.
func (s Set) Seeds() []uint32 {
	seeds := make([]uint32, len(s))
	for i, f := range s {
		seeds[i] = f.seed
	}
	return seeds
}

// Magnitude samples f and folds |value| into [0, span). It is the mapping the
// fill modes use to turn a signed sample into a display channel.
func Magnitude(f *Field, x, y, t, span float64) float64 {
	if span <= 0 {
		return 0
	}
	m := math.Mod(math.Abs(f.Sample(x, y, t)), span)
	if math.IsNaN(m) {
		return 0
	}
	return m
}
