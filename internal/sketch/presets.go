package sketch

import (
	"procgen/internal/core"
	"procgen/internal/fill"
)

// Presets maps each registered sketch name to its base configuration.
func Presets() map[string]Config {
	scatter := DefaultConfig()

	tiered := DefaultConfig()
	tiered.Fill = fill.TieredSize
	tiered.Tag = "tiered"

	spectrum := DefaultConfig()
	spectrum.Fill = fill.ContinuousMultiChannel
	spectrum.Tag = "spectrum"

	walker := DefaultConfig()
	walker.Kind = KindWalk
	walker.Tag = "walk"
	walker.CaptureEvery = 1

	rule := DefaultConfig()
	rule.Kind = KindAutomaton
	rule.Tag = "automaton"

	return map[string]Config{
		"scatter":   scatter,
		"tiered":    tiered,
		"spectrum":  spectrum,
		"walk":      walker,
		"automaton": rule,
	}
}

func init() {
	for name, base := range Presets() {
		core.Register(name, func(cfg map[string]string) (core.Sketch, error) {
			return New(name, FromMap(base, cfg), nil)
		})
	}
}
