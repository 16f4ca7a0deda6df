// pkg/timestep/clock.go
package timestep

import "time"

// Clock is a monotonic time source measured from an arbitrary origin.
type Clock interface {
	Now() time.Duration
}

// SystemClock reads the process monotonic clock.
type SystemClock struct {
	start time.Time
}

func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

func (c *SystemClock) Now() time.Duration {
	return time.Since(c.start)
}

// SimulationClock turns irregular frame arrivals into a whole number of
// fixed-size steps. Leftover time is carried in the accumulator.
type SimulationClock struct {
	step        time.Duration
	accumulator time.Duration
	lastPoll    time.Duration
	maxTicks    int
}

// NewSimulationClock creates a clock emitting steps of the given size,
// anchored at now.
func NewSimulationClock(step time.Duration, now time.Duration) *SimulationClock {
	if step <= 0 {
		panic("timestep: step must be positive")
	}
	return &SimulationClock{step: step, lastPoll: now}
}

// StepForRate returns the step duration for a tick rate in Hz.
func StepForRate(hz int) time.Duration {
	return time.Second / time.Duration(hz)
}

// SetMaxTicks caps the ticks returned by a single Poll or Feed. Zero means
// unbounded, in which case a stalled clock catches up with a burst.
func (c *SimulationClock) SetMaxTicks(n int) {
	if n < 0 {
		n = 0
	}
	c.maxTicks = n
}

// Poll adds the time elapsed since the previous poll and returns how many
// steps are due.
func (c *SimulationClock) Poll(now time.Duration) int {
	elapsed := now - c.lastPoll
	c.lastPoll = now
	if elapsed < 0 {
		elapsed = 0
	}
	return c.Feed(elapsed)
}

// Feed adds elapsed time directly and returns how many steps are due.
func (c *SimulationClock) Feed(elapsed time.Duration) int {
	c.accumulator += elapsed
	ticks := 0
	for c.accumulator >= c.step {
		c.accumulator -= c.step
		ticks++
		if c.maxTicks > 0 && ticks == c.maxTicks {
			// Drop the backlog; keep only the sub-step remainder.
			c.accumulator %= c.step
			break
		}
	}
	return ticks
}

// Reanchor moves the poll origin to now without accumulating, so time spent
// paused is not replayed.
func (c *SimulationClock) Reanchor(now time.Duration) {
	c.lastPoll = now
}

func (c *SimulationClock) Accumulator() time.Duration { return c.accumulator }
