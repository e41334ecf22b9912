package core

import "time"

// FixedStep helps run sketch updates at a steady frames-per-second rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given FPS.
// Fractional rates are allowed; the first call to ShouldStep always fires.
func NewFixedStep(fps float64) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetFPS(fps)
	fs.accumulator = fs.step
	return fs
}

// SetFPS changes the frame rate. Non-positive rates fall back to 60.
func (f *FixedStep) SetFPS(fps float64) {
	if fps <= 0 {
		fps = 60
	}
	f.step = time.Duration(float64(time.Second) / fps)
}

// Interval returns the duration of one step.
func (f *FixedStep) Interval() time.Duration { return f.step }

// ShouldStep reports whether the sketch should advance by one frame.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
