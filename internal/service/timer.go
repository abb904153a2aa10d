package service

import "time"

// FixedStep fires at most once per interval for frame-driven loops that poll it every frame.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep returns a FixedStep that fires on its first poll.
func NewFixedStep(step time.Duration) *FixedStep {
	return newFixedStep(step, time.Now)
}

func newFixedStep(step time.Duration, now func() time.Time) *FixedStep {
	if step <= 0 {
		step = time.Second / 60
	}

	return &FixedStep{step: step, accumulator: step, now: now}
}

// Reset makes the next poll fire immediately.
func (that *FixedStep) Reset() {
	that.accumulator = that.step
	that.last = time.Time{}
}

// ShouldStep reports whether a full interval has elapsed since the previous step.
func (that *FixedStep) ShouldStep() bool {
	now := that.now()
	if that.last.IsZero() {
		that.last = now
	}

	that.accumulator += now.Sub(that.last)
	that.last = now

	if that.accumulator >= that.step {
		that.accumulator -= that.step
		// a long stall fires once instead of replaying every missed step
		if that.accumulator > that.step {
			that.accumulator = 0
		}
		return true
	}

	return false
}
