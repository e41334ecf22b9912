package sketch

import (
	"strconv"
	"strings"

	"procgen/internal/core"
	"procgen/internal/fill"
	"procgen/internal/walk"
)

// Kind selects which generator drives the sketch.
type Kind string

const (
	// KindGrid fills the canvas cell by cell.
	KindGrid Kind = "grid"
	// KindWalk draws the trail of an edge-biased random walk.
	KindWalk Kind = "walk"
	// KindAutomaton renders the scrolling history of a 1-D automaton.
	KindAutomaton Kind = "automaton"
)

// Config holds every tunable of a sketch.
type Config struct {
	Width    int
	Height   int
	CellSize float64

	Kind Kind
	Fill fill.Mode

	// Seeds lists the noise field seeds, one field per entry.
	Seeds []uint32
	// Rule names the automaton preset, e.g. "rule 90".
	Rule string
	// Seed drives the random source.
	Seed int64
	// Scale converts walk units to pixels.
	Scale float64

	Tag          string
	CaptureEvery int
	Background   string
}

// DefaultConfig returns the 4K scatter configuration.
func DefaultConfig() Config {
	return Config{
		Width:        3840,
		Height:       2160,
		CellSize:     16,
		Kind:         KindGrid,
		Fill:         fill.BinaryDensity,
		Seeds:        []uint32{1, 2, 3, 4},
		Rule:         "rule 90",
		Seed:         1337,
		Scale:        4,
		Tag:          "twee",
		CaptureEvery: 1000,
		Background:   "white",
	}
}

// FromMap overlays a string map (flag-style key/value pairs) onto base.
// Malformed values are ignored and keep the base setting; the rule name is
// kept verbatim and validated when the sketch is built.
func FromMap(base Config, cfg map[string]string) Config {
	c := base
	c.Seeds = append([]uint32(nil), base.Seeds...)
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["cell"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.CellSize = parsed
		}
	}
	if v, ok := cfg["mode"]; ok {
		if parsed, err := fill.ParseMode(v); err == nil {
			c.Fill = parsed
		}
	}
	if v, ok := cfg["seeds"]; ok {
		if parsed, ok := parseSeeds(v); ok {
			c.Seeds = parsed
		}
	}
	if v, ok := cfg["rule"]; ok && strings.TrimSpace(v) != "" {
		c.Rule = v
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Scale = parsed
		}
	}
	if v, ok := cfg["tag"]; ok && v != "" {
		c.Tag = v
	}
	if v, ok := cfg["every"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.CaptureEvery = parsed
		}
	}
	if v, ok := cfg["bg"]; ok && v != "" {
		c.Background = v
	}
	return c
}

func parseSeeds(v string) ([]uint32, bool) {
	parts := strings.Split(v, ",")
	seeds := make([]uint32, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.ParseUint(p, 10, 32)
		if err != nil {
			return nil, false
		}
		seeds = append(seeds, uint32(n))
	}
	return seeds, len(seeds) > 0
}

// WalkBounds returns the canvas size in walk units.
func (c Config) WalkBounds() core.Size {
	scale := c.Scale
	if scale <= 0 {
		scale = walk.DefaultTrail(core.Size{W: c.Width, H: c.Height}).Scale
	}
	return core.Size{W: int(float64(c.Width) / scale), H: int(float64(c.Height) / scale)}
}
