//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"procgen/internal/core"
)

// HUD renders the parameter panel to the right of the sketch view.
type HUD struct {
	sketch core.Sketch
	width  int
	panel  *ebiten.Image
	lines  []Line
}

// NewHUD constructs a HUD for the provided sketch and panel width.
func NewHUD(sketch core.Sketch, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{sketch: sketch, width: width}
}

// Update refreshes the panel text.
func (h *HUD) Update(frame int, seed int64, paused bool) {
	if h == nil {
		return
	}
	h.lines = Lines(h.sketch, frame, seed, paused)
}

// Draw paints the HUD panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int) {
	if h == nil || h.width <= 0 {
		return
	}
	height := screen.Bounds().Dy()
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	for _, line := range h.lines {
		if y > height {
			break
		}
		col := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		switch line.Style {
		case StyleHeader:
			col = color.RGBA{R: 200, G: 200, B: 210, A: 255}
		case StyleDim:
			col = color.RGBA{R: 160, G: 160, B: 170, A: 255}
		}
		text.Draw(h.panel, line.Text, face, panelPadding, y, col)
		y += lineHeight
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

const (
	panelPadding   = 12
	lineHeight     = 18
	headerBaseline = 12
)
