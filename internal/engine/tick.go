// Package engine provides the tick-based simulation loop and the
// simulation state it advances.
package engine

import (
	"log/slog"
	"sync/atomic"
	"time"
)

// DefaultTicksPerReport is how often OnReport fires when unset.
const DefaultTicksPerReport = 100

// Engine drives the simulation forward.
type Engine struct {
	Tick     uint64        // Current tick counter (monotonic, never resets)
	Speed    float64       // Multiplier: 1.0 = real-time, 0 = paused
	Interval time.Duration // Base tick interval; 0 runs flat out
	MaxTicks uint64        // Stop after this tick (0 = run until stopped)

	TicksPerReport uint64

	// Callbacks, populated during setup.
	OnTick   func(tick uint64) // Every tick
	OnReport func(tick uint64) // Every TicksPerReport ticks, and once on exit

	running atomic.Bool
	stopped atomic.Bool // Set by Stop; a stopped engine never runs again
}

// NewEngine creates a simulation engine with default settings.
func NewEngine() *Engine {
	return &Engine{
		Speed:          1.0,
		Interval:       100 * time.Millisecond,
		TicksPerReport: DefaultTicksPerReport,
	}
}

// Run starts the simulation loop. Blocks until Stop is called or MaxTicks
// is reached. Returns at once if Stop was called before Run.
func (e *Engine) Run() {
	if e.stopped.Load() {
		slog.Info("simulation engine stopped before start", "tick", e.Tick)
		return
	}
	e.running.Store(true)
	slog.Info("simulation engine started", "tick", e.Tick, "speed", e.Speed)

	for e.running.Load() && !e.stopped.Load() {
		if e.MaxTicks > 0 && e.Tick >= e.MaxTicks {
			break
		}
		if e.Speed <= 0 {
			// Paused; sleep briefly and check again.
			time.Sleep(100 * time.Millisecond)
			continue
		}

		start := time.Now()

		e.step()

		// Sleep for the remainder of the tick interval, adjusted for speed.
		elapsed := time.Since(start)
		target := time.Duration(float64(e.Interval) / e.Speed)
		if elapsed < target {
			time.Sleep(target - elapsed)
		}
	}

	e.running.Store(false)
	if e.OnReport != nil && e.TicksPerReport > 0 && e.Tick%e.TicksPerReport != 0 {
		e.OnReport(e.Tick)
	}
	slog.Info("simulation engine stopped", "tick", e.Tick)
}

// Stop halts the simulation loop. Safe to call from any goroutine.
func (e *Engine) Stop() {
	e.stopped.Store(true)
	e.running.Store(false)
}

// Running reports whether Run is looping.
func (e *Engine) Running() bool {
	return e.running.Load()
}

// step advances the simulation by one tick.
func (e *Engine) step() {
	e.Tick++

	if e.OnTick != nil {
		e.OnTick(e.Tick)
	}

	if e.TicksPerReport > 0 && e.Tick%e.TicksPerReport == 0 && e.OnReport != nil {
		e.OnReport(e.Tick)
	}
}
