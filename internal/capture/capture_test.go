package capture

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestDirectoryLayout(t *testing.T) {
	got := Directory("/proj", "procgen", "twee")
	if want := filepath.Join("/proj", "procgen", "twee"); got != want {
		t.Fatalf("Directory = %q, want %q", got, want)
	}
}

func TestCaptureWritesDueFrames(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exe", "tag")
	c, err := New(dir, 1000, 2)
	if err != nil {
		t.Fatal(err)
	}
	if !c.Due(0) || c.Due(999) || !c.Due(2000) {
		t.Fatal("Due does not follow the capture period")
	}

	c.Capture(0, solid(4, 3, color.NRGBA{R: 10, G: 20, B: 30, A: 255}))
	c.Capture(1000, solid(4, 3, color.NRGBA{A: 255}))
	if err := c.Wait(); err != nil {
		t.Fatalf("Wait: %v", err)
	}

	f, err := os.Open(c.Path(0))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if r, g, b, _ := decoded.At(0, 0).RGBA(); r>>8 != 10 || g>>8 != 20 || b>>8 != 30 {
		t.Fatalf("pixel = %d,%d,%d", r>>8, g>>8, b>>8)
	}
	if written, failed := c.Stats(); written != 2 || failed != 0 {
		t.Fatalf("stats = %d written, %d failed", written, failed)
	}
	if last, err := Last(dir); err != nil || last != 1000 {
		t.Fatalf("Last = %d, %v", last, err)
	}
}

func TestCaptureFailureIsReported(t *testing.T) {
	dir := t.TempDir()
	c, err := New(dir, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.RemoveAll(dir); err != nil {
		t.Fatal(err)
	}
	c.Capture(1, solid(1, 1, color.NRGBA{A: 255}))
	if err := c.Wait(); err == nil {
		t.Fatal("Wait must report the failed write")
	}
	if _, failed := c.Stats(); failed != 1 {
		t.Fatalf("failed = %d, want 1", failed)
	}
}

func TestLastEmpty(t *testing.T) {
	if _, err := Last(t.TempDir()); !errors.Is(err, ErrNoFrames) {
		t.Fatalf("err = %v, want ErrNoFrames", err)
	}
}
