//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"

	"github.com/hajimehoshi/ebiten/v2"

	"procgen/internal/app"
	"procgen/internal/draw"
	_ "procgen/internal/sketch"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	app.NewLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sk, err := cfg.NewSketch()
	if err != nil {
		app.Fatal("build sketch", err)
	}
	capt, err := cfg.NewCapturer(sk)
	if err != nil {
		app.Fatal("prepare capture", err)
	}
	var extra []draw.Sink
	hub, err := cfg.Serve(ctx, sk)
	if err != nil {
		app.Fatal("start stream", err)
	}
	if hub != nil {
		extra = append(extra, hub)
	}

	game := app.New(sk, cfg.Scale, cfg.Seed, capt, extra...)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("procgen: " + sk.Name())
	ebiten.SetTPS(max(cfg.TPS, 1))
	ebiten.SetWindowSize(w, h)

	runErr := ebiten.RunGame(game)
	stop()
	if capt != nil {
		if err := capt.Wait(); err != nil {
			app.Fatal("flush captures", err)
		}
	}
	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		app.Fatal("run game", runErr)
	}
}
