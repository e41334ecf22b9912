// Package sweep runs many seeds or rules of a generator off-screen and
// summarizes how each one behaves, so interesting candidates can be picked
// before a long capture run.
package sweep

import (
	"math"
	"runtime"
	"sync"

	"procgen/internal/automaton"
	"procgen/internal/core"
	"procgen/internal/walk"
)

// Run applies fn to every job on a pool of workers and returns the results in
// job order. workers <= 0 uses one worker per CPU.
func Run[J, R any](jobs []J, workers int, fn func(J) R) []R {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	type indexed struct {
		i   int
		job J
	}
	out := make([]R, len(jobs))
	queue := make(chan indexed)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range queue {
				out[j.i] = fn(j.job)
			}
		}()
	}
	for i, job := range jobs {
		queue <- indexed{i: i, job: job}
	}
	close(queue)
	wg.Wait()
	return out
}

// WalkResult summarizes one walker run.
type WalkResult struct {
	Seed        int64
	MaxDistance float64
	// EdgeTicks counts ticks that ended inside the soft margin.
	EdgeTicks int
	// StepSizes[k] counts ticks whose longest axis move was k units.
	StepSizes [walk.MaxStep + 1]int
}

// Walk simulates a walker seeded with seed for steps ticks.
func Walk(size core.Size, seed int64, steps int) WalkResult {
	w := walk.New(size, core.NewRNG(seed))
	hw, hh := size.Half()
	res := WalkResult{Seed: seed}
	for i := 0; i < steps; i++ {
		w.Step()
		prev, cur := w.Previous(), w.Position()
		if d := math.Hypot(cur.X, cur.Y); d > res.MaxDistance {
			res.MaxDistance = d
		}
		if math.Abs(cur.X) > hw-walk.SoftMargin || math.Abs(cur.Y) > hh-walk.SoftMargin {
			res.EdgeTicks++
		}
		moved := int(math.Max(math.Abs(cur.X-prev.X), math.Abs(cur.Y-prev.Y)))
		if moved >= 0 && moved < len(res.StepSizes) {
			res.StepSizes[moved]++
		}
	}
	return res
}

// RuleResult summarizes an elementary automaton run.
type RuleResult struct {
	Code    uint8
	Live    int
	Density float64
	// Extinct is true when every cell died.
	Extinct bool
	// Steady is true when the last generation equals the one before it.
	Steady bool
}

// Rule runs the automaton for gens generations from a single center cell.
func Rule(code uint8, width, gens int) RuleResult {
	g := automaton.NewGrid(width)
	rule := automaton.FromCode(code)
	prev := make([]uint8, g.Len())
	for i := 0; i < gens; i++ {
		copy(prev, g.Cells())
		g.Step(rule)
	}
	res := RuleResult{Code: code, Steady: gens > 0}
	for i, c := range g.Cells() {
		res.Live += int(c)
		if c != prev[i] {
			res.Steady = false
		}
	}
	res.Density = float64(res.Live) / float64(g.Len())
	res.Extinct = res.Live == 0
	return res
}
