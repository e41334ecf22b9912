//go:build ebiten

package app

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"procgen/internal/core"
	"procgen/internal/draw"
	"procgen/internal/render"
)

// Painter is a draw.Sink that accumulates commands on a persistent offscreen
// ebiten image.
type Painter struct {
	img *ebiten.Image
	tf  render.Transform
	buf []byte
}

// NewPainter allocates an offscreen image for a sketch at the given scale.
func NewPainter(size core.Size, scale float64) *Painter {
	tf := render.NewTransform(size, scale)
	w := max(int(float64(size.W)*tf.Scale), 1)
	h := max(int(float64(size.H)*tf.Scale), 1)
	return &Painter{img: ebiten.NewImage(w, h), tf: tf}
}

// Image returns the offscreen image.
func (p *Painter) Image() *ebiten.Image { return p.img }

// Draw paints cmds in order.
func (p *Painter) Draw(cmds []draw.Command) error {
	for i, cmd := range cmds {
		if cmd.Kind == draw.Background {
			p.img.Fill(render.NRGBA(cmd.Color))
			continue
		}
		if !render.Visible(cmd) {
			continue
		}
		col := render.NRGBA(cmd.Color)
		switch cmd.Kind {
		case draw.Rect:
			x, y, w, h := p.tf.Box(cmd)
			vector.DrawFilledRect(p.img, float32(x), float32(y), float32(w), float32(h), col, false)
		case draw.Ellipse:
			// Sketches only emit circles; the radius averages both axes.
			cx, cy := p.tf.Point(cmd.X, cmd.Y)
			r := p.tf.Length(cmd.W+cmd.H) / 4
			vector.DrawFilledCircle(p.img, float32(cx), float32(cy), float32(r), col, true)
		case draw.Line:
			x1, y1 := p.tf.Point(cmd.X, cmd.Y)
			x2, y2 := p.tf.Point(cmd.X2, cmd.Y2)
			w := max(p.tf.Length(cmd.Weight), 1)
			vector.StrokeLine(p.img, float32(x1), float32(y1), float32(x2), float32(y2), float32(w), col, true)
		default:
			return fmt.Errorf("command %d: unsupported kind %s", i, cmd.Kind)
		}
	}
	return nil
}

// Snapshot copies the offscreen pixels for capture.
func (p *Painter) Snapshot() image.Image {
	b := p.img.Bounds()
	if len(p.buf) != 4*b.Dx()*b.Dy() {
		p.buf = make([]byte, 4*b.Dx()*b.Dy())
	}
	p.img.ReadPixels(p.buf)
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	copy(out.Pix, p.buf)
	return out
}
