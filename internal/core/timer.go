package core

import "time"

// FixedStep paces work at a steady interval from inside a frame loop.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep that fires once per interval. The first
// call to ShouldStep fires immediately.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetInterval(interval)
	fs.accumulator = fs.step
	return fs
}

// SetInterval changes the pacing. It is safe to call from the main loop.
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = time.Second
	}
	f.step = interval
}

// SetSeconds sets the interval from a velocity given in seconds.
func (f *FixedStep) SetSeconds(seconds float64) {
	f.SetInterval(time.Duration(seconds * float64(time.Second)))
}

// Interval reports the current pacing.
func (f *FixedStep) Interval() time.Duration { return f.step }

// ShouldStep reports whether the next unit of work is due. At most one step
// is reported per call; backlog beyond one interval is dropped.
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
		if f.accumulator > f.step {
			f.accumulator = f.step
		}
		return true
	}
	return false
}
