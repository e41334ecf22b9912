// Command procgen-sweep scores walker seeds or automaton rules off-screen and
// prints the most interesting candidates.
package main

import (
	"flag"
	"fmt"
	"runtime"
	"sort"
	"time"

	"procgen/internal/sketch"
	"procgen/internal/sweep"
)

func main() {
	target := flag.String("target", "walk", "what to sweep: walk or rules")
	steps := flag.Int("steps", 20000, "ticks (walk) or generations (rules) per run")
	from := flag.Int64("from", 1, "first walker seed")
	count := flag.Int("count", 64, "number of walker seeds")
	width := flag.Int("width", 257, "automaton width for rule sweeps")
	top := flag.Int("top", 5, "results to print")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	start := time.Now()
	switch *target {
	case "walk":
		cfg := sketch.Presets()["walk"]
		size := cfg.WalkBounds()
		seeds := make([]int64, *count)
		for i := range seeds {
			seeds[i] = *from + int64(i)
		}
		fmt.Printf("Sweeping %d walker seeds on %dx%d (%d workers, %d steps)\n", len(seeds), size.W, size.H, *workers, *steps)
		results := sweep.Run(seeds, *workers, func(seed int64) sweep.WalkResult {
			return sweep.Walk(size, seed, *steps)
		})
		sort.Slice(results, func(i, j int) bool { return results[i].MaxDistance > results[j].MaxDistance })
		fmt.Printf("\nTop %d seeds by reach (elapsed %s):\n", *top, time.Since(start).Round(time.Millisecond))
		for i := 0; i < len(results) && i < *top; i++ {
			r := results[i]
			fmt.Printf("%2d) seed=%d reach=%.1f edgeTicks=%d steps[1,2,3]=%v\n",
				i+1, r.Seed, r.MaxDistance, r.EdgeTicks, r.StepSizes[1:])
		}
	case "rules":
		codes := make([]uint8, 256)
		for i := range codes {
			codes[i] = uint8(i)
		}
		fmt.Printf("Sweeping 256 rules on width %d (%d workers, %d generations)\n", *width, *workers, *steps)
		results := sweep.Run(codes, *workers, func(code uint8) sweep.RuleResult {
			return sweep.Rule(code, *width, *steps)
		})
		var live []sweep.RuleResult
		for _, r := range results {
			if !r.Extinct && !r.Steady {
				live = append(live, r)
			}
		}
		// Densest non-trivial rules first; ties keep rule order.
		sort.SliceStable(live, func(i, j int) bool { return live[i].Density > live[j].Density })
		fmt.Printf("\n%d rules stay active; top %d by density (elapsed %s):\n", len(live), *top, time.Since(start).Round(time.Millisecond))
		for i := 0; i < len(live) && i < *top; i++ {
			r := live[i]
			fmt.Printf("%2d) rule %d live=%d density=%.3f\n", i+1, r.Code, r.Live, r.Density)
		}
	default:
		fmt.Printf("unknown sweep target %q (want walk or rules)\n", *target)
	}
}
