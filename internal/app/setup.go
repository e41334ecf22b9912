package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gogpu/gg"

	"procgen/internal/capture"
	"procgen/internal/core"
	"procgen/internal/stream"
)

// NewLogger builds the stderr text logger and installs it for the library
// packages.
func NewLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	l := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	core.SetLogger(l)
	gg.SetLogger(l)
	return l
}

// Fatal logs err and exits with status 1.
func Fatal(msg string, err error) {
	core.Logger().Error(msg, "err", err)
	os.Exit(1)
}

// NewSketch builds and seeds the configured sketch. A seed given in Params
// takes precedence over Seed and is copied back into it, so reset keys in the
// drivers reuse it.
func (c *Config) NewSketch() (core.Sketch, error) {
	overrides, err := c.Overrides()
	if err != nil {
		return nil, err
	}
	if v, ok := overrides["seed"]; ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("sketch parameter seed: %w", err)
		}
		c.Seed = seed
	}
	sk, err := core.New(c.Sketch, overrides)
	if err != nil {
		return nil, err
	}
	sk.Reset(c.Seed)
	return sk, nil
}

// NewCapturer returns nil when capture is disabled.
func (c *Config) NewCapturer(sk core.Sketch) (*capture.Capturer, error) {
	if !c.Capture {
		return nil, nil
	}
	dir := c.CaptureDir
	if dir == "" {
		var err error
		if dir, err = capture.DefaultDirectory(sk.Tag()); err != nil {
			return nil, err
		}
	}
	return capture.New(dir, sk.CaptureEvery(), capture.DefaultLimit)
}

// FinishCapture waits for pending captures and returns log attributes
// describing them, including the newest frame on disk. A nil capturer yields
// no attributes.
func FinishCapture(capt *capture.Capturer) []any {
	if capt == nil {
		return nil
	}
	err := capt.Wait()
	written, failed := capt.Stats()
	attrs := []any{"captured", written, "capture_failures", failed, "dir", capt.Dir()}
	if err != nil {
		core.Logger().Warn("some captures failed", "err", err)
	}
	if last, err := capture.Last(capt.Dir()); err == nil {
		attrs = append(attrs, "last_frame", last)
	} else if !errors.Is(err, capture.ErrNoFrames) {
		core.Logger().Warn("scan captures", "err", err)
	}
	return attrs
}

// Serve starts the websocket stream when Listen is set. The server shuts
// down when ctx is done. It returns nil, nil when streaming is disabled.
func (c *Config) Serve(ctx context.Context, sk core.Sketch) (*stream.Hub, error) {
	if c.Listen == "" {
		return nil, nil
	}
	ln, err := net.Listen("tcp", c.Listen)
	if err != nil {
		return nil, fmt.Errorf("listen for stream: %w", err)
	}
	hub := stream.NewHub(sk.Name(), sk.Size())
	srv := &http.Server{Handler: hub.Handler(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			core.Logger().Error("stream server stopped", "err", err)
		}
	}()
	go func() {
		<-ctx.Done()
		hub.Close()
		shutdown, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdown)
	}()
	core.Logger().Info("streaming frames", "addr", ln.Addr().String())
	return hub, nil
}
