// Package sketch consolidates the generators into one parameterized engine.
// A Sketch owns its random source, noise fields, walker and automaton, and
// turns a frame index into draw commands.
package sketch

import (
	"fmt"

	"procgen/internal/automaton"
	"procgen/internal/core"
	"procgen/internal/draw"
	"procgen/internal/fill"
	"procgen/internal/noise"
	"procgen/internal/palette"
	"procgen/internal/walk"
)

// Sketch implements core.Sketch.
type Sketch struct {
	name string
	cfg  Config
	src  core.Source

	background draw.Color

	filler *fill.Filler

	walker *walk.Walker
	trail  walk.Trail

	rule    automaton.RuleTable
	cells   *automaton.Grid
	history *core.ByteGrid
	live    draw.Color
}

// New builds a sketch from cfg drawing randomness from src. When src is nil a
// deterministic RNG seeded from cfg.Seed is used.
func New(name string, cfg Config, src core.Source) (*Sketch, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("canvas must be positive, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.CellSize <= 0 {
		return nil, fmt.Errorf("cell size must be positive, got %v", cfg.CellSize)
	}
	if src == nil {
		src = core.NewRNG(cfg.Seed)
	}
	rule, err := automaton.Preset(cfg.Rule)
	if err != nil {
		return nil, err
	}
	bg, err := palette.Color(cfg.Background)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}

	s := &Sketch{name: name, cfg: cfg, src: src, background: bg, rule: rule}
	size := s.Size()

	switch cfg.Kind {
	case KindGrid:
		opts := fill.DefaultOptions(cfg.Fill)
		opts.Size = size
		opts.CellSize = cfg.CellSize
		s.filler, err = fill.New(opts, noise.NewSet(cfg.Seeds), src)
		if err != nil {
			return nil, err
		}
	case KindWalk:
		s.trail = walk.DefaultTrail(size)
		if cfg.Scale > 0 {
			s.trail.Scale = cfg.Scale
		}
		s.walker = walk.New(cfg.WalkBounds(), src)
	case KindAutomaton:
		cols := int(float64(size.W) / cfg.CellSize)
		rows := int(float64(size.H) / cfg.CellSize)
		s.cells = automaton.NewGrid(cols)
		s.history = core.NewByteGrid(s.cells.Len(), rows)
		s.history.Push(s.cells.Cells())
		s.live = palette.MustColor("steelblue")
	default:
		return nil, fmt.Errorf("unknown sketch kind %q", cfg.Kind)
	}
	return s, nil
}

// Name returns the sketch identifier.
func (s *Sketch) Name() string { return s.name }

// Tag names the capture subdirectory.
func (s *Sketch) Tag() string { return s.cfg.Tag }

// Size returns the canvas dimensions.
func (s *Sketch) Size() core.Size { return core.Size{W: s.cfg.Width, H: s.cfg.Height} }

// CaptureEvery reports the capture period in frames.
func (s *Sketch) CaptureEvery() int {
	if s.cfg.CaptureEvery <= 0 {
		return 1
	}
	return s.cfg.CaptureEvery
}

// Reset reseeds the random source and returns every generator to its
// starting state.
func (s *Sketch) Reset(seed int64) {
	s.cfg.Seed = seed
	s.src = core.NewRNG(seed)
	if s.filler != nil {
		s.filler.SetSource(s.src)
	}
	if s.walker != nil {
		s.walker.SetSource(s.src)
		s.walker.Reset()
	}
	if s.cells != nil {
		s.cells.Reset()
		s.history.Clear()
		s.history.Push(s.cells.Cells())
	}
}

// Frame produces the draw commands for frame n. Frame 0 starts with a
// background fill so the canvas has a defined base color.
func (s *Sketch) Frame(n int) []draw.Command {
	var cmds []draw.Command
	if n == 0 {
		cmds = append(cmds, draw.Fill(s.background))
	}
	switch s.cfg.Kind {
	case KindGrid:
		s.filler.Frame(n, func(c draw.Command) { cmds = append(cmds, c) })
	case KindWalk:
		s.walker.Step()
		cmds = append(cmds, s.trail.Commands(s.walker.Previous(), s.walker.Position(), s.src)...)
	case KindAutomaton:
		if n > 0 {
			s.cells.Step(s.rule)
			s.history.Push(s.cells.Cells())
			cmds = append(cmds, draw.Fill(s.background))
		}
		cmds = s.appendHistory(cmds)
	}
	return cmds
}

// appendHistory draws the live cells of every stored generation, newest on
// top.
func (s *Sketch) appendHistory(cmds []draw.Command) []draw.Command {
	cell := s.cfg.CellSize
	hw, hh := s.Size().Half()
	for row := 0; row < s.history.H; row++ {
		y := hh - cell/2 - float64(row)*cell
		for col, v := range s.history.Row(row) {
			if v == 0 {
				continue
			}
			x := float64(col)*cell - hw + cell/2
			cmds = append(cmds, draw.Rectangle(x, y, cell, cell, s.live))
		}
	}
	return cmds
}

// Parameters exposes the configuration for the HUD.
func (s *Sketch) Parameters() core.ParameterSnapshot {
	c := s.cfg
	groups := []core.ParameterGroup{
		{
			Name: "Canvas",
			Params: []core.Parameter{
				core.IntParam("w", "Width", c.Width),
				core.IntParam("h", "Height", c.Height),
				core.FloatParam("cell", "Cell size", c.CellSize),
				core.StringParam("tag", "Capture tag", c.Tag),
				core.IntParam("every", "Capture every", s.CaptureEvery()),
			},
		},
		{
			Name: "Generator",
			Params: []core.Parameter{
				core.StringParam("kind", "Kind", string(c.Kind)),
				core.StringParam("rule", "Rule", c.Rule),
				core.IntParam("seed", "Seed", int(c.Seed)),
			},
		},
	}
	switch c.Kind {
	case KindGrid:
		groups[1].Params = append(groups[1].Params,
			core.StringParam("mode", "Fill mode", c.Fill.String()),
			core.IntParam("fields", "Noise fields", len(c.Seeds)),
		)
	case KindWalk:
		p := s.walker.Position()
		groups[1].Params = append(groups[1].Params,
			core.FloatParam("x", "Walker x", p.X),
			core.FloatParam("y", "Walker y", p.Y),
		)
	case KindAutomaton:
		groups[1].Params = append(groups[1].Params,
			core.IntParam("code", "Rule code", int(s.rule.Code())),
			core.IntParam("generation", "Generation", s.cells.Generation()),
		)
	}
	return core.ParameterSnapshot{Groups: groups}
}
