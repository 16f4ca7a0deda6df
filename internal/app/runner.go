// internal/app/runner.go
package app

import (
	"jet-fighter/internal/interfaces"
	"jet-fighter/pkg/timestep"
)

// Runner drives a World from a wall clock: each frame it runs however many
// whole ticks have accumulated, polling input once per tick.
type Runner struct {
	world *World
	clock timestep.Clock
	sim   *timestep.SimulationClock
	input interfaces.InputSource
}

// NewRunner anchors a simulation clock at clock's current time. maxTicks
// caps the ticks run in one frame; zero leaves it unbounded.
func NewRunner(world *World, clock timestep.Clock, input interfaces.InputSource, maxTicks int) *Runner {
	sim := timestep.NewSimulationClock(world.Step(), clock.Now())
	sim.SetMaxTicks(maxTicks)
	return &Runner{world: world, clock: clock, sim: sim, input: input}
}

// Frame runs the ticks that are due and returns how many ran.
func (r *Runner) Frame() int {
	n := r.sim.Poll(r.clock.Now())
	for i := 0; i < n; i++ {
		r.world.Tick(r.input.Poll())
	}
	return n
}

// Resume forgets the time spent since the last frame, so a pause does not
// come back as a burst of ticks.
func (r *Runner) Resume() {
	r.sim.Reanchor(r.clock.Now())
}
