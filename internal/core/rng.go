package core

import (
	"math"
	"math/rand/v2"
)

// Shape parameters of the heavy-tailed draw used throughout the generators.
const (
	HeavyMu    = 2.0
	HeavySigma = 3.0
)

// Source is the randomness consumed by the generators. Implementations need
// not be safe for concurrent use; every sketch draws from its own source on a
// single goroutine.
type Source interface {
	// IntN returns a uniform integer in [0, n).
	IntN(n int) int
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// LogNormal returns a heavy-tailed draw with parameters HeavyMu, HeavySigma.
	LogNormal() float64
}

// RNG is a thin wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// IntN returns a random int in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Float64 returns a random value in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// LogNormal draws exp(mu + sigma*N(0,1)).
func (r *RNG) LogNormal() float64 {
	return math.Exp(HeavyMu + HeavySigma*r.r.NormFloat64())
}

// Reduce folds v into [0, span). Non-finite draws and non-positive spans
// yield 0 so thresholds compare against a bounded value.
func Reduce(v, span float64) float64 {
	if span <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	m := math.Mod(v, span)
	if m < 0 {
		m += span
	}
	if m >= span {
		return 0
	}
	return m
}

// Score draws a heavy-tailed value from src and reduces it modulo span.
func Score(src Source, span float64) float64 {
	return Reduce(src.LogNormal(), span)
}
