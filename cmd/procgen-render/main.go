// Command procgen-render runs a sketch headless on the software rasterizer,
// writing PNG captures and optionally streaming frames over a websocket.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"procgen/internal/app"
	"procgen/internal/draw"
	"procgen/internal/render"
	"procgen/internal/runner"
	_ "procgen/internal/sketch"
)

func main() {
	cfg := app.NewConfig()
	cfg.Scale = 1
	cfg.TPS = 0
	cfg.Capture = true
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	log := app.NewLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sk, err := cfg.NewSketch()
	if err != nil {
		app.Fatal("build sketch", err)
	}
	capt, err := cfg.NewCapturer(sk)
	if err != nil {
		app.Fatal("prepare capture", err)
	}
	canvas := render.NewCanvas(sk.Size(), cfg.Scale)
	defer canvas.Close()

	var sinks []draw.Sink
	hub, err := cfg.Serve(ctx, sk)
	if err != nil {
		app.Fatal("start stream", err)
	}
	if hub != nil {
		sinks = append(sinks, hub)
	}

	r := runner.New(sk, runner.Options{Canvas: canvas, Sinks: sinks, Capture: capt})
	start := time.Now()
	log.Info("rendering", "sketch", sk.Name(), "size", sk.Size(), "frames", cfg.Frames, "tps", cfg.TPS)
	if err := r.Run(ctx, float64(cfg.TPS), cfg.Frames); err != nil {
		app.Fatal("render", err)
	}

	attrs := []any{"frames", r.Frame(), "draw_errors", r.Errors(), "elapsed", time.Since(start).Round(time.Millisecond)}
	attrs = append(attrs, app.FinishCapture(capt)...)
	log.Info("done", attrs...)
}
