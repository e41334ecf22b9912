package app

import (
	"errors"
	"flag"
	"image"
	"path/filepath"
	"strings"
	"testing"

	"procgen/internal/capture"
	"procgen/internal/core"
	_ "procgen/internal/sketch"
)

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{"-sketch", "walk", "-tps", "30", "-seed", "9", "-params", "w=200, h=100", "-capture"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Sketch != "walk" || cfg.TPS != 30 || cfg.Seed != 9 || !cfg.Capture {
		t.Fatalf("cfg = %+v", cfg)
	}
	got, err := cfg.Overrides()
	if err != nil {
		t.Fatal(err)
	}
	if got["w"] != "200" || got["h"] != "100" || len(got) != 2 {
		t.Fatalf("overrides = %v", got)
	}
}

func TestOverridesRejectsMalformedPairs(t *testing.T) {
	cfg := NewConfig()
	cfg.Params = "w=10,oops"
	if _, err := cfg.Overrides(); err == nil {
		t.Fatal("expected error for pair without '='")
	}
}

func TestNewSketchUnknownName(t *testing.T) {
	cfg := NewConfig()
	cfg.Sketch = "nope"
	if _, err := cfg.NewSketch(); !errors.Is(err, core.ErrUnknownSketch) {
		t.Fatalf("err = %v, want ErrUnknownSketch", err)
	}
}

func TestNewCapturerUsesConfiguredDir(t *testing.T) {
	cfg := NewConfig()
	cfg.Sketch = "walk"
	cfg.Params = "w=64,h=64"
	sk, err := cfg.NewSketch()
	if err != nil {
		t.Fatal(err)
	}
	if c, err := cfg.NewCapturer(sk); c != nil || err != nil {
		t.Fatalf("capture disabled: got %v, %v", c, err)
	}
	cfg.Capture = true
	cfg.CaptureDir = filepath.Join(t.TempDir(), "out")
	c, err := cfg.NewCapturer(sk)
	if err != nil {
		t.Fatal(err)
	}
	if c.Dir() != cfg.CaptureDir || !c.Due(1) {
		t.Fatalf("dir=%q due(1)=%v", c.Dir(), c.Due(1))
	}
}

func TestParamsSeedWins(t *testing.T) {
	cfg := NewConfig()
	cfg.Sketch = "walk"
	cfg.Params = "w=64,h=64,seed=99"
	sk, err := cfg.NewSketch()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Seed != 99 {
		t.Fatalf("cfg.Seed = %d, want 99", cfg.Seed)
	}
	p, ok := sk.(core.ParameterProvider).Parameters().Lookup("seed")
	if !ok || p.Value != "99" {
		t.Fatalf("sketch seed = %+v, want 99", p)
	}

	cfg.Params = "seed=abc"
	if _, err := cfg.NewSketch(); err == nil {
		t.Fatal("expected error for a non-numeric seed")
	}
}

func TestSketchFlagListsRegisteredNames(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	NewConfig().Bind(fs)
	usage := fs.Lookup("sketch").Usage
	for _, name := range []string{"automaton", "scatter", "spectrum", "tiered", "walk"} {
		if !strings.Contains(usage, name) {
			t.Fatalf("usage %q does not list %q", usage, name)
		}
	}
}

func TestFinishCaptureReportsLastFrame(t *testing.T) {
	if attrs := FinishCapture(nil); attrs != nil {
		t.Fatalf("nil capturer attrs = %v", attrs)
	}
	capt, err := capture.New(t.TempDir(), 5, 2)
	if err != nil {
		t.Fatal(err)
	}
	capt.Capture(0, image.NewRGBA(image.Rect(0, 0, 2, 2)))
	capt.Capture(5, image.NewRGBA(image.Rect(0, 0, 2, 2)))

	attrs := FinishCapture(capt)
	got := map[string]any{}
	for i := 0; i+1 < len(attrs); i += 2 {
		got[attrs[i].(string)] = attrs[i+1]
	}
	if got["captured"] != int64(2) || got["capture_failures"] != int64(0) {
		t.Fatalf("attrs = %v", attrs)
	}
	if got["last_frame"] != 5 {
		t.Fatalf("last_frame = %v, want 5", got["last_frame"])
	}
}
