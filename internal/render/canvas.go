package render

import (
	"errors"
	"fmt"
	"image"
	imgdraw "image/draw"

	"github.com/gogpu/gg"

	"procgen/internal/core"
	"procgen/internal/draw"
)

// Canvas is a persistent software raster. Commands accumulate on it across
// ticks, so trails and fades behave like a real drawing surface.
type Canvas struct {
	size core.Size
	tf   Transform
	dc   *gg.Context
}

// NewCanvas allocates a canvas for a sketch of the given size. A scale below 1
// renders a downsampled preview.
func NewCanvas(size core.Size, scale float64) *Canvas {
	tf := NewTransform(size, scale)
	w := int(float64(size.W) * tf.Scale)
	h := int(float64(size.H) * tf.Scale)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &Canvas{size: size, tf: tf, dc: gg.NewContext(w, h)}
}

// Bounds returns the pixel dimensions of the raster.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.dc.Width(), c.dc.Height())
}

// Draw rasterizes cmds in order. A failing primitive is reported and the
// remaining commands are still drawn.
func (c *Canvas) Draw(cmds []draw.Command) error {
	var errs []error
	for i, cmd := range cmds {
		if err := c.apply(cmd); err != nil {
			errs = append(errs, fmt.Errorf("command %d (%s): %w", i, cmd.Kind, err))
		}
	}
	return errors.Join(errs...)
}

func (c *Canvas) apply(cmd draw.Command) error {
	if cmd.Kind == draw.Background {
		col := cmd.Color.Clamped()
		c.dc.ClearWithColor(gg.RGBA{R: col.R, G: col.G, B: col.B, A: col.A})
		return nil
	}
	if !Visible(cmd) {
		return nil
	}
	col := cmd.Color.Clamped()
	c.dc.SetRGBA(col.R, col.G, col.B, col.A)
	switch cmd.Kind {
	case draw.Rect:
		x, y, w, h := c.tf.Box(cmd)
		c.dc.DrawRectangle(x, y, w, h)
		return c.dc.Fill()
	case draw.Ellipse:
		cx, cy := c.tf.Point(cmd.X, cmd.Y)
		c.dc.DrawEllipse(cx, cy, c.tf.Length(cmd.W)/2, c.tf.Length(cmd.H)/2)
		return c.dc.Fill()
	case draw.Line:
		x1, y1 := c.tf.Point(cmd.X, cmd.Y)
		x2, y2 := c.tf.Point(cmd.X2, cmd.Y2)
		c.dc.SetLineWidth(max(c.tf.Length(cmd.Weight), 1))
		c.dc.DrawLine(x1, y1, x2, y2)
		return c.dc.Stroke()
	}
	return fmt.Errorf("unsupported command kind %d", cmd.Kind)
}

// Image returns a copy of the raster. Each call allocates a new buffer that
// the caller owns.
func (c *Canvas) Image() *image.RGBA {
	img := c.dc.Image()
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	imgdraw.Draw(out, out.Bounds(), img, b.Min, imgdraw.Src)
	return out
}

// Close releases the drawing context.
func (c *Canvas) Close() error { return c.dc.Close() }
