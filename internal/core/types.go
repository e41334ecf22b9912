package core

import (
	"errors"
	"fmt"
	"sort"

	"procgen/internal/draw"
)

// ErrUnknownSketch is returned when no factory is registered under a name.
var ErrUnknownSketch = errors.New("unknown sketch")

// Size describes the dimensions of a canvas in pixels.
type Size struct {
	W int
	H int
}

// Half returns the half extents used by the centered coordinate system.
func (s Size) Half() (float64, float64) {
	return float64(s.W) / 2, float64(s.H) / 2
}

// Sketch defines the minimal contract a generator must implement. Frame is
// called once per tick with a monotonically increasing frame index.
type Sketch interface {
	Name() string
	// Tag names the capture subdirectory for this sketch.
	Tag() string
	Size() Size
	// CaptureEvery reports how many ticks separate two captured frames.
	CaptureEvery() int
	Reset(seed int64)
	Frame(n int) []draw.Command
}

// Factory constructs a Sketch using an optional configuration map.
type Factory func(cfg map[string]string) (Sketch, error)

var sketches = map[string]Factory{}

// Register adds a sketch factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sketches[name] = f
}

// Names returns the registered sketch names in sorted order.
func Names() []string {
	names := make([]string, 0, len(sketches))
	for name := range sketches {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New builds the named sketch.
func New(name string, cfg map[string]string) (Sketch, error) {
	f, ok := sketches[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownSketch, name)
	}
	s, err := f(cfg)
	if err != nil {
		return nil, fmt.Errorf("build sketch %q: %w", name, err)
	}
	return s, nil
}
