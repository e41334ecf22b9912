//go:build ebiten

package app

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"procgen/internal/capture"
	"procgen/internal/core"
	"procgen/internal/draw"
	"procgen/internal/runner"
	"procgen/internal/ui"
)

const hudWidth = 240

// Game adapts a sketch to the ebiten.Game interface. Each Update advances the
// sketch by one frame unless paused; ebiten's TPS sets the frame rate.
type Game struct {
	runner  *runner.Runner
	painter *Painter
	hud     *ui.HUD
	capture *capture.Capturer

	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided sketch. extra sinks (for example a
// stream hub) receive every frame after the window painter; capt may be nil.
func New(sk core.Sketch, scale float64, seed int64, capt *capture.Capturer, extra ...draw.Sink) *Game {
	painter := NewPainter(sk.Size(), scale)
	sinks := append([]draw.Sink{painter}, extra...)
	return &Game{
		runner:  runner.New(sk, runner.Options{Sinks: sinks}),
		painter: painter,
		hud:     ui.NewHUD(sk, hudWidth),
		capture: capt,
		seed:    seed,
	}
}

// Reset reinitializes the sketch with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.runner.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the sketch.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	if !g.paused || g.tickOnce {
		n := g.runner.Frame()
		_ = g.runner.Step()
		if g.capture != nil && g.capture.Due(n) {
			g.capture.Capture(n, g.painter.Snapshot())
		}
		g.tickOnce = false
	}
	g.hud.Update(g.runner.Frame(), g.seed, g.paused)
	return nil
}

// Draw renders the offscreen canvas and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.painter.Image(), &ebiten.DrawImageOptions{})
	g.hud.Draw(screen, g.painter.Image().Bounds().Dx())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := g.painter.Image().Bounds()
	return b.Dx() + hudWidth, b.Dy()
}
