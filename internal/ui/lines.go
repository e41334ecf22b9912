package ui

import (
	"fmt"
	"strings"

	"procgen/internal/core"
)

// Style selects the color of a HUD line.
type Style int

const (
	StyleValue Style = iota
	StyleHeader
	StyleDim
)

// Line is one row of HUD text.
type Line struct {
	Text  string
	Style Style
}

// Lines lays out the HUD text for a sketch: title, run state, every
// parameter group reported by the sketch, then the key help.
func Lines(sketch core.Sketch, frame int, seed int64, paused bool) []Line {
	title := "Sketch"
	if sketch != nil && sketch.Name() != "" {
		title = sketch.Name()
	}
	state := "running"
	if paused {
		state = "paused"
	}
	lines := []Line{
		{Text: title, Style: StyleHeader},
		{Text: fmt.Sprintf("frame %d  %s", frame, state)},
		{Text: fmt.Sprintf("seed %d", seed)},
	}

	provider, ok := sketch.(core.ParameterProvider)
	if !ok {
		lines = append(lines, Line{Text: "No parameters", Style: StyleDim})
	} else {
		for _, group := range provider.Parameters().Groups {
			lines = append(lines, Line{})
			lines = append(lines, Line{Text: strings.ToUpper(group.Name), Style: StyleHeader})
			for _, p := range group.Params {
				lines = append(lines, Line{Text: fmt.Sprintf("%-10s %s", p.Label, p.Value)})
			}
		}
	}

	lines = append(lines,
		Line{},
		Line{Text: "space pause  n step", Style: StyleDim},
		Line{Text: "r reset  s reseed  q quit", Style: StyleDim},
	)
	return lines
}
