package core

import (
	"testing"
	"time"
)

func TestFixedStepPacesFrames(t *testing.T) {
	fs := NewFixedStep(2)
	clock := time.Unix(0, 0)
	fs.now = func() time.Time { return clock }

	if !fs.ShouldStep() {
		t.Fatal("first call must step")
	}
	clock = clock.Add(250 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("stepped before interval elapsed")
	}
	clock = clock.Add(250 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("expected a step after a full interval")
	}
	if fs.Interval() != 500*time.Millisecond {
		t.Fatalf("interval = %v", fs.Interval())
	}
}
