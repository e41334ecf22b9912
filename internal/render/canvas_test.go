package render

import (
	"image/color"
	"testing"

	"procgen/internal/core"
	"procgen/internal/draw"
)

func rgba(c color.Color) (uint8, uint8, uint8, uint8) {
	r, g, b, a := c.RGBA()
	return uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)
}

func TestTransformCentersAndFlips(t *testing.T) {
	tf := NewTransform(core.Size{W: 100, H: 50}, 1)
	if x, y := tf.Point(0, 0); x != 50 || y != 25 {
		t.Fatalf("origin -> (%v,%v)", x, y)
	}
	if x, y := tf.Point(-50, 25); x != 0 || y != 0 {
		t.Fatalf("top-left -> (%v,%v)", x, y)
	}
	half := NewTransform(core.Size{W: 100, H: 50}, 0.5)
	if x, y := half.Point(50, -25); x != 50 || y != 25 {
		t.Fatalf("scaled bottom-right -> (%v,%v)", x, y)
	}
	x, y, w, h := tf.Box(draw.Rectangle(0, 0, 10, 4, draw.Opaque(0, 0, 0)))
	if x != 45 || y != 23 || w != 10 || h != 4 {
		t.Fatalf("Box = %v,%v,%v,%v", x, y, w, h)
	}
}

func TestVisible(t *testing.T) {
	black := draw.Opaque(0, 0, 0)
	cases := []struct {
		cmd  draw.Command
		want bool
	}{
		{draw.Rectangle(0, 0, 0, 5, black), false},
		{draw.Oval(0, 0, 3, 3, black.WithAlpha(0)), false},
		{draw.Segment(0, 0, 1, 1, 0, black), false},
		{draw.Segment(0, 0, 1, 1, 1, black), true},
		{draw.Fill(black), true},
	}
	for i, c := range cases {
		if got := Visible(c.cmd); got != c.want {
			t.Fatalf("case %d: Visible = %v, want %v", i, got, c.want)
		}
	}
}

func TestCanvasImageIsAFreshBuffer(t *testing.T) {
	c := NewCanvas(core.Size{W: 8, H: 8}, 1)
	defer c.Close()
	if err := c.Draw([]draw.Command{draw.Fill(draw.Opaque(0, 0, 1))}); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	a, b := c.Image(), c.Image()
	a.Pix[0], a.Pix[1], a.Pix[2] = 255, 255, 255
	if r, g, bl, _ := rgba(b.At(0, 0)); r != 0 || g != 0 || bl < 250 {
		t.Fatalf("second image = %d,%d,%d, want blue", r, g, bl)
	}
	if err := c.Draw(nil); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if r, g, _, _ := rgba(c.Image().At(0, 0)); r != 0 || g != 0 {
		t.Fatalf("canvas changed through a returned image: %d,%d", r, g)
	}
}

func TestCanvasPaintsBackgroundAndRect(t *testing.T) {
	c := NewCanvas(core.Size{W: 40, H: 20}, 1)
	defer c.Close()

	err := c.Draw([]draw.Command{
		draw.Fill(draw.Opaque(1, 1, 1)),
		draw.Rectangle(0, 0, 10, 10, draw.Opaque(1, 0, 0)),
	})
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}
	img := c.Image()
	if r, g, b, _ := rgba(img.At(20, 10)); r < 200 || g > 50 || b > 50 {
		t.Fatalf("center pixel = %d,%d,%d, want red", r, g, b)
	}
	if r, g, b, _ := rgba(img.At(2, 2)); r < 250 || g < 250 || b < 250 {
		t.Fatalf("corner pixel = %d,%d,%d, want white", r, g, b)
	}
	if c.Bounds().Dx() != 40 || c.Bounds().Dy() != 20 {
		t.Fatalf("bounds = %v", c.Bounds())
	}
}
