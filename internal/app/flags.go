package app

import (
	"flag"
	"fmt"
	"strings"

	"procgen/internal/core"
)

// Config represents the command-line parameters shared by the drivers.
type Config struct {
	Sketch string
	Scale  float64
	TPS    int
	Seed   int64
	// Params holds comma separated key=value sketch overrides, e.g.
	// "rule=rule 30,cell=8".
	Params string

	Capture    bool
	CaptureDir string
	Frames     int
	Listen     string
	LogLevel   string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sketch: "scatter", Scale: 0.25, TPS: 2, Seed: 1337, LogLevel: "info"}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sketch, "sketch", c.Sketch, "sketch to run: "+strings.Join(core.Names(), ", "))
	fs.Float64Var(&c.Scale, "scale", c.Scale, "display scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second (0 runs headless frames back to back)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for sketch reset")
	fs.StringVar(&c.Params, "params", c.Params, "sketch overrides as key=value,key=value")
	fs.BoolVar(&c.Capture, "capture", c.Capture, "write periodic PNG captures")
	fs.StringVar(&c.CaptureDir, "capture-dir", c.CaptureDir, "capture directory (default <cwd>/<exe>/<tag>)")
	fs.IntVar(&c.Frames, "frames", c.Frames, "stop after this many frames (0 runs until interrupted)")
	fs.StringVar(&c.Listen, "listen", c.Listen, "serve a websocket frame stream on this address")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
}

// Overrides parses Params into the map handed to the sketch factory.
func (c *Config) Overrides() (map[string]string, error) {
	out := map[string]string{}
	if strings.TrimSpace(c.Params) == "" {
		return out, nil
	}
	for _, pair := range strings.Split(c.Params, ",") {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("malformed sketch parameter %q", pair)
		}
		out[key] = strings.TrimSpace(value)
	}
	return out, nil
}
