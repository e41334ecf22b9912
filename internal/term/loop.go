package term

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"procgen/internal/core"
	"procgen/internal/runner"
)

// Options controls the terminal driver.
type Options struct {
	// FPS is the generation rate. Zero uses 2.
	FPS float64
	// Seed is used by the reset key; each reseed increments it.
	Seed int64
	// Frames stops the driver once the runner reaches that frame. Zero runs
	// until the user quits.
	Frames int
}

// Run drives r on screen until ctx is done, the user quits or the frame limit
// is reached. Keys: q, Esc or
// Ctrl-C quit; space pauses; n steps once while paused; r resets; s reseeds.
// The runner's sinks should include a Screen for the same tcell screen.
func Run(ctx context.Context, screen tcell.Screen, r *runner.Runner, view *Screen, opts Options) error {
	if opts.FPS <= 0 {
		opts.FPS = 2
	}
	step := core.NewFixedStep(opts.FPS)
	seed := opts.Seed
	paused := false

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	status := func() {
		state := "running"
		if paused {
			state = "paused"
		}
		view.SetStatus(fmt.Sprintf(" %s  frame %d  seed %d  %s  [q]uit [space] pause [n]ext [r]eset [s]eed",
			r.Sketch().Name(), r.Frame(), seed, state))
	}
	advance := func() bool {
		status()
		_ = r.Step()
		return opts.Frames > 0 && r.Frame() >= opts.Frames
	}

	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()
	status()
	view.Paint()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
					return nil
				case ev.Key() == tcell.KeyRune:
					switch ev.Rune() {
					case 'q':
						return nil
					case ' ':
						paused = !paused
					case 'n':
						if paused && advance() {
							return nil
						}
					case 'r':
						r.Reset(seed)
					case 's':
						seed++
						r.Reset(seed)
					}
				}
				status()
				view.Paint()
			case *tcell.EventResize:
				screen.Sync()
				view.Paint()
			}
		case <-ticker.C:
			if !paused && step.ShouldStep() && advance() {
				return nil
			}
		}
	}
}
