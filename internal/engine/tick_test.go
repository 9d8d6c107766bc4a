package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEngineRunsToMaxTicks(t *testing.T) {
	e := NewEngine()
	e.Interval = 0
	e.MaxTicks = 5
	e.TicksPerReport = 2

	var ticks, reports []uint64
	e.OnTick = func(tick uint64) { ticks = append(ticks, tick) }
	e.OnReport = func(tick uint64) { reports = append(reports, tick) }

	e.Run()

	assert.Equal(t, []uint64{1, 2, 3, 4, 5}, ticks)
	assert.Equal(t, []uint64{2, 4, 5}, reports, "final report on exit")
	assert.False(t, e.Running())
}

func TestEngineStop(t *testing.T) {
	e := NewEngine()
	e.Interval = 0
	e.TicksPerReport = 2

	var reports []uint64
	e.OnTick = func(tick uint64) {
		if tick == 4 {
			e.Stop()
		}
	}
	e.OnReport = func(tick uint64) { reports = append(reports, tick) }

	e.Run()

	assert.Equal(t, uint64(4), e.Tick)
	assert.Equal(t, []uint64{2, 4}, reports, "no duplicate report when stopping on a report tick")
}

func TestEngineDrivesSimulation(t *testing.T) {
	s := newSim(t)
	e := NewEngine()
	e.Interval = 0
	e.MaxTicks = 3
	e.OnTick = func(uint64) { s.Tick() }

	e.Run()
	assert.Equal(t, uint64(3), s.CurrentTick())
}

func TestEngineStopBeforeRun(t *testing.T) {
	e := NewEngine()
	e.Interval = 0
	e.MaxTicks = 5

	var ticks int
	e.OnTick = func(uint64) { ticks++ }
	e.Stop()
	e.Run()

	assert.Zero(t, ticks)
	assert.Equal(t, uint64(0), e.Tick)
	assert.False(t, e.Running())
}
