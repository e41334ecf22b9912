// Package term previews a sketch in a terminal. The canvas is rasterized at a
// reduced scale and every terminal cell shows two stacked pixels using a
// half-block glyph.
package term

import (
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"procgen/internal/core"
	"procgen/internal/draw"
	"procgen/internal/render"
)

const halfBlock = '▀'

// FitScale returns the largest scale at which a sketch of the given size fits
// cols×rows terminal cells, reserving the last row for the status line.
func FitScale(size core.Size, cols, rows int) float64 {
	rows--
	if size.W <= 0 || size.H <= 0 || cols <= 0 || rows <= 0 {
		return 1
	}
	sx := float64(cols) / float64(size.W)
	sy := float64(2*rows) / float64(size.H)
	return min(sx, sy)
}

// Screen is a draw.Sink that mirrors a render.Canvas onto a tcell screen. The
// canvas must be drawn before Screen.Draw is called for the same frame.
type Screen struct {
	screen tcell.Screen
	canvas *render.Canvas
	status string
}

// NewScreen wraps an initialized tcell screen.
func NewScreen(screen tcell.Screen, canvas *render.Canvas) *Screen {
	return &Screen{screen: screen, canvas: canvas}
}

// SetStatus replaces the text shown on the bottom row.
func (s *Screen) SetStatus(text string) { s.status = text }

// Draw repaints the terminal from the canvas.
func (s *Screen) Draw([]draw.Command) error {
	s.Paint()
	return nil
}

// Paint copies the canvas into terminal cells and shows the result.
func (s *Screen) Paint() {
	cols, rows := s.screen.Size()
	img := s.canvas.Image()
	b := img.Bounds()
	for y := 0; y < rows-1; y++ {
		for x := 0; x < cols; x++ {
			px, py := b.Min.X+x, b.Min.Y+2*y
			if px >= b.Max.X || py >= b.Max.Y {
				s.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
				continue
			}
			top := cellColor(img, px, py)
			bottom := top
			if py+1 < b.Max.Y {
				bottom = cellColor(img, px, py+1)
			}
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			s.screen.SetContent(x, y, halfBlock, nil, style)
		}
	}
	s.drawStatus(cols, rows)
	s.screen.Show()
}

func (s *Screen) drawStatus(cols, rows int) {
	if rows <= 0 {
		return
	}
	style := tcell.StyleDefault.Reverse(true)
	x := 0
	for _, r := range s.status {
		if x >= cols {
			break
		}
		s.screen.SetContent(x, rows-1, r, nil, style)
		x++
	}
	for ; x < cols; x++ {
		s.screen.SetContent(x, rows-1, ' ', nil, style)
	}
}

// Sample returns the 8-bit color of a canvas pixel as shown in the terminal.
func Sample(img image.Image, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

func cellColor(img image.Image, x, y int) tcell.Color {
	c := Sample(img, x, y)
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
