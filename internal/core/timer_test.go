package core

import (
	"testing"
	"time"
)

func TestFixedStepPacing(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(500 * time.Millisecond)
	fs.now = func() time.Time { return clock }

	if !fs.ShouldStep() {
		t.Fatal("first call should fire immediately")
	}
	clock = clock.Add(200 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("fired before the interval elapsed")
	}
	clock = clock.Add(300 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("did not fire after the interval elapsed")
	}

	// A long stall yields one catch-up step, not a burst.
	clock = clock.Add(10 * time.Second)
	fired := 0
	for i := 0; i < 5; i++ {
		if fs.ShouldStep() {
			fired++
		}
	}
	if fired != 2 {
		t.Fatalf("fired %d times after a stall, want 2", fired)
	}
}

func TestFixedStepSeconds(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Interval() != time.Second {
		t.Fatalf("zero interval should default to 1s, got %v", fs.Interval())
	}
	fs.SetSeconds(0.25)
	if fs.Interval() != 250*time.Millisecond {
		t.Fatalf("interval = %v, want 250ms", fs.Interval())
	}
}
