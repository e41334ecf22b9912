package runner

import (
	"context"
	"errors"
	"testing"
	"time"

	"procgen/internal/capture"
	"procgen/internal/core"
	"procgen/internal/draw"
	"procgen/internal/render"
)

type countSketch struct {
	frames []int
	seeds  []int64
}

func (s *countSketch) Name() string      { return "count" }
func (s *countSketch) Tag() string       { return "count" }
func (s *countSketch) Size() core.Size   { return core.Size{W: 8, H: 8} }
func (s *countSketch) CaptureEvery() int { return 2 }
func (s *countSketch) Reset(seed int64)  { s.seeds = append(s.seeds, seed) }
func (s *countSketch) Frame(n int) []draw.Command {
	s.frames = append(s.frames, n)
	return []draw.Command{draw.Rectangle(0, 0, 2, 2, draw.Opaque(0, 0, 1))}
}

type failSink struct{ calls int }

func (f *failSink) Draw([]draw.Command) error {
	f.calls++
	return errors.New("sink down")
}

func TestStepFeedsSinksInOrder(t *testing.T) {
	sk := &countSketch{}
	rec := &draw.Recorder{}
	r := New(sk, Options{Sinks: []draw.Sink{rec}})
	for i := 0; i < 3; i++ {
		if err := r.Step(); err != nil {
			t.Fatal(err)
		}
	}
	if r.Frame() != 3 || len(rec.Frames) != 3 {
		t.Fatalf("frame=%d recorded=%d", r.Frame(), len(rec.Frames))
	}
	for i, n := range sk.frames {
		if n != i {
			t.Fatalf("frames = %v", sk.frames)
		}
	}
}

func TestSinkFailureDoesNotStop(t *testing.T) {
	sink := &failSink{}
	r := New(&countSketch{}, Options{Sinks: []draw.Sink{sink}})
	for i := 0; i < 4; i++ {
		if err := r.Step(); err == nil {
			t.Fatal("expected sink error")
		}
	}
	if sink.calls != 4 || r.Frame() != 4 || r.Errors() != 4 {
		t.Fatalf("calls=%d frame=%d errors=%d", sink.calls, r.Frame(), r.Errors())
	}
}

func TestRunLimitAndCapture(t *testing.T) {
	sk := &countSketch{}
	canvas := render.NewCanvas(sk.Size(), 1)
	defer canvas.Close()
	capt, err := capture.New(t.TempDir(), sk.CaptureEvery(), 2)
	if err != nil {
		t.Fatal(err)
	}
	r := New(sk, Options{Canvas: canvas, Capture: capt})
	if err := r.Run(context.Background(), 0, 5); err != nil {
		t.Fatal(err)
	}
	if err := capt.Wait(); err != nil {
		t.Fatal(err)
	}
	written, failed := capt.Stats()
	// frames 0, 2, 4
	if written != 3 || failed != 0 {
		t.Fatalf("written=%d failed=%d", written, failed)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	r := New(&countSketch{}, Options{})
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	if err := r.Run(ctx, 1000, 0); err != nil {
		t.Fatal(err)
	}
	if r.Frame() == 0 {
		t.Fatal("expected at least one frame before cancellation")
	}
}

func TestResetRewinds(t *testing.T) {
	sk := &countSketch{}
	r := New(sk, Options{})
	_ = r.Step()
	_ = r.Step()
	r.Reset(7)
	if r.Frame() != 0 || len(sk.seeds) != 1 || sk.seeds[0] != 7 {
		t.Fatalf("frame=%d seeds=%v", r.Frame(), sk.seeds)
	}
}
