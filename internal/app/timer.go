package app

import "time"

// FixedStep advances the simulation at a steady wall-clock ticks-per-second
// rate, independent of how often the render loop runs. Elapsed time is
// accumulated and one tick is consumed per call once a full step has built
// up.
type FixedStep struct {
	tps         int
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
// The first ShouldStep call fires immediately.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. Rates below one tick per second clamp to
// one. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps < 1 {
		tps = 1
	}
	f.tps = tps
	f.step = time.Second / time.Duration(tps)
}

// TPS returns the current tick rate.
func (f *FixedStep) TPS() int { return f.tps }

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := time.Now()
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
