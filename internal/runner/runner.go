// Package runner drives a sketch tick by tick, feeding its commands to a
// raster canvas, any number of extra sinks and an optional capturer.
package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"procgen/internal/capture"
	"procgen/internal/core"
	"procgen/internal/draw"
	"procgen/internal/render"
)

// Options configures a Runner. Every field is optional.
type Options struct {
	Canvas  *render.Canvas
	Sinks   []draw.Sink
	Capture *capture.Capturer
}

// Runner owns a sketch and the frame counter. It is not safe for concurrent
// use; one driver goroutine calls Step.
type Runner struct {
	sketch  core.Sketch
	canvas  *render.Canvas
	sinks   draw.Multi
	capture *capture.Capturer

	frame  int
	errors int
}

// New wraps sk.
func New(sk core.Sketch, opts Options) *Runner {
	return &Runner{
		sketch:  sk,
		canvas:  opts.Canvas,
		sinks:   draw.Multi(opts.Sinks),
		capture: opts.Capture,
	}
}

// Sketch returns the driven sketch.
func (r *Runner) Sketch() core.Sketch { return r.sketch }

// Canvas returns the raster canvas, or nil.
func (r *Runner) Canvas() *render.Canvas { return r.canvas }

// Frame returns the index of the next frame to generate.
func (r *Runner) Frame() int { return r.frame }

// Errors returns how many ticks reported a sink failure.
func (r *Runner) Errors() int { return r.errors }

// Reset reseeds the sketch and rewinds to frame 0.
func (r *Runner) Reset(seed int64) {
	r.sketch.Reset(seed)
	r.frame = 0
}

// Step generates one frame and hands it to every sink. Sink failures are
// logged and returned but never stop the animation; the frame counter always
// advances.
func (r *Runner) Step() error {
	n := r.frame
	r.frame++
	cmds := r.sketch.Frame(n)

	var errs []error
	if r.canvas != nil {
		if err := r.canvas.Draw(cmds); err != nil {
			errs = append(errs, fmt.Errorf("raster: %w", err))
		}
	}
	if err := r.sinks.Draw(cmds); err != nil {
		errs = append(errs, err)
	}
	if r.capture != nil && r.canvas != nil && r.capture.Due(n) {
		r.capture.Capture(n, r.canvas.Image())
	}
	err := errors.Join(errs...)
	if err != nil {
		r.errors++
		core.Logger().Warn("frame draw failed", "sketch", r.sketch.Name(), "frame", n, "err", err)
	}
	return err
}

// Run steps until ctx is done or limit frames have been generated (limit <= 0
// means no limit). A positive fps paces the loop; otherwise frames run back to
// back. Cancellation is a normal exit and returns nil.
func (r *Runner) Run(ctx context.Context, fps float64, limit int) error {
	done := func() bool { return limit > 0 && r.frame >= limit }
	if fps <= 0 {
		for !done() {
			if ctx.Err() != nil {
				return nil
			}
			_ = r.Step()
		}
		return nil
	}

	ticker := time.NewTicker(core.NewFixedStep(fps).Interval())
	defer ticker.Stop()
	for !done() {
		_ = r.Step()
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
	return nil
}
