// Command procgen-term previews a sketch in the terminal.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"procgen/internal/app"
	"procgen/internal/draw"
	"procgen/internal/render"
	"procgen/internal/runner"
	_ "procgen/internal/sketch"
	"procgen/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.LogLevel = "error"
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	log := app.NewLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sk, err := cfg.NewSketch()
	if err != nil {
		app.Fatal("build sketch", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		app.Fatal("open terminal", err)
	}
	if err := screen.Init(); err != nil {
		app.Fatal("init terminal", err)
	}

	capt, err := cfg.NewCapturer(sk)
	if err != nil {
		screen.Fini()
		app.Fatal("prepare capture", err)
	}

	// -scale caps the terminal fit so captures can be rendered smaller.
	cols, rows := screen.Size()
	scale := term.FitScale(sk.Size(), cols, rows)
	if cfg.Scale > 0 {
		scale = min(scale, cfg.Scale)
	}
	canvas := render.NewCanvas(sk.Size(), scale)
	defer canvas.Close()
	view := term.NewScreen(screen, canvas)
	sinks := []draw.Sink{view}

	hub, err := cfg.Serve(ctx, sk)
	if err != nil {
		screen.Fini()
		app.Fatal("start stream", err)
	}
	if hub != nil {
		sinks = append(sinks, hub)
	}

	r := runner.New(sk, runner.Options{Canvas: canvas, Sinks: sinks, Capture: capt})
	err = term.Run(ctx, screen, r, view, term.Options{FPS: float64(cfg.TPS), Seed: cfg.Seed, Frames: cfg.Frames})
	screen.Fini()
	if err != nil {
		app.Fatal("terminal loop", err)
	}
	attrs := append([]any{"frames", r.Frame(), "draw_errors", r.Errors()}, app.FinishCapture(capt)...)
	log.Info("done", attrs...)
}
