// Package capture writes periodic PNG snapshots of the canvas. Writes run in
// the background; Wait is the shutdown barrier that flushes them.
package capture

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"procgen/internal/core"
)

// DefaultLimit bounds the number of PNG encodes in flight.
const DefaultLimit = 4

// Directory returns <root>/<exe>/<tag>.
func Directory(root, exe, tag string) string {
	return filepath.Join(root, exe, tag)
}

// DefaultDirectory places captures under the working directory, in a folder
// named after the running executable.
func DefaultDirectory(tag string) (string, error) {
	root, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("locate project path: %w", err)
	}
	exe := filepath.Base(os.Args[0])
	exe = strings.TrimSuffix(exe, filepath.Ext(exe))
	return Directory(root, exe, tag), nil
}

// Capturer schedules frame writes. A failed write is logged and counted; it
// never stops the animation.
type Capturer struct {
	dir   string
	every int
	g     errgroup.Group

	written atomic.Int64
	failed  atomic.Int64
}

// New creates dir and returns a capturer that saves every Nth frame with at
// most limit writes in flight.
func New(dir string, every, limit int) (*Capturer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create capture directory: %w", err)
	}
	if every <= 0 {
		every = 1
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	c := &Capturer{dir: dir, every: every}
	c.g.SetLimit(limit)
	return c, nil
}

// Dir returns the output directory.
func (c *Capturer) Dir() string { return c.dir }

// Due reports whether frame should be captured.
func (c *Capturer) Due(frame int) bool { return frame%c.every == 0 }

// Path returns the file a frame is written to.
func (c *Capturer) Path(frame int) string {
	return filepath.Join(c.dir, strconv.Itoa(frame)+".png")
}

// Capture writes img in the background and takes ownership of it: the caller
// must not modify img afterwards. Canvas and painter snapshots are fresh
// buffers, so no copy is made here. It blocks only while the in-flight limit
// is reached.
func (c *Capturer) Capture(frame int, img image.Image) {
	path := c.Path(frame)
	c.g.Go(func() error {
		if err := writePNG(path, img); err != nil {
			c.failed.Add(1)
			core.Logger().Warn("capture failed", "frame", frame, "path", path, "err", err)
			return nil
		}
		c.written.Add(1)
		core.Logger().Debug("captured frame", "frame", frame, "path", path)
		return nil
	})
}

// Wait blocks until every scheduled write has finished. It returns an error
// summarizing failed writes, if any.
func (c *Capturer) Wait() error {
	_ = c.g.Wait()
	if n := c.failed.Load(); n > 0 {
		return fmt.Errorf("%d of %d captures failed", n, n+c.written.Load())
	}
	return nil
}

// Stats reports how many writes succeeded and failed so far.
func (c *Capturer) Stats() (written, failed int64) {
	return c.written.Load(), c.failed.Load()
}

func writePNG(path string, img image.Image) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".capture-*.png")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	if err = enc.Encode(tmp, img); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("encode: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// ErrNoFrames is returned by Last when nothing has been captured yet.
var ErrNoFrames = errors.New("no captured frames")

// Last returns the highest frame index present in dir.
func Last(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, err
	}
	last := -1
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || filepath.Ext(name) != ".png" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSuffix(name, ".png"))
		if err == nil && n > last {
			last = n
		}
	}
	if last < 0 {
		return 0, ErrNoFrames
	}
	return last, nil
}
