package atmosphere

import (
	"time"

	"snowglobe/internal/core"
)

// DefaultCycle is the wall-clock duration of one full 24-hour scene cycle
// when auto-advance is enabled.
const DefaultCycle = 4 * time.Minute

const clockTPS = 60

// Clock holds the scene's hour-of-day value and optionally advances it in
// real time at a fixed tick rate.
type Clock struct {
	hour    float64
	cycle   time.Duration
	running bool
	step    *core.FixedStep
}

// NewClock constructs a stopped clock at the given starting hour. A cycle of
// zero or less falls back to DefaultCycle.
func NewClock(hour float64, cycle time.Duration) *Clock {
	if cycle <= 0 {
		cycle = DefaultCycle
	}
	return &Clock{
		hour:  clampHour(hour),
		cycle: cycle,
		step:  core.NewFixedStep(clockTPS),
	}
}

// Hour returns the current hour of day in [0, 24).
func (c *Clock) Hour() float64 { return c.hour }

// SetHour moves the clock to the given hour, clamped into range.
func (c *Clock) SetHour(hour float64) { c.hour = clampHour(hour) }

// Running reports whether auto-advance is active.
func (c *Clock) Running() bool { return c.running }

// SetRunning starts or stops auto-advance.
func (c *Clock) SetRunning(running bool) { c.running = running }

// Toggle flips auto-advance and reports the new state.
func (c *Clock) Toggle() bool {
	c.running = !c.running
	return c.running
}

// Tick advances the clock by at most one fixed step. Call once per frame.
func (c *Clock) Tick() {
	if !c.running {
		return
	}
	if c.step.ShouldStep() {
		c.Advance(time.Second / clockTPS)
	}
}

// Advance moves the clock forward by the given wall-clock duration, wrapping
// at 24 hours.
func (c *Clock) Advance(dt time.Duration) {
	if dt <= 0 {
		return
	}
	c.hour += 24 * dt.Seconds() / c.cycle.Seconds()
	for c.hour >= 24 {
		c.hour -= 24
	}
}
