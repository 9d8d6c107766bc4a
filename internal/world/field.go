// Pheromone field: scent intensity derived on demand from the live markers.
// There is no persistent grid; every sample is a linear scan.
package world

import (
	"math"

	"github.com/paulmach/orb"

	"github.com/talgya/ant-world/internal/geom"
	"github.com/talgya/ant-world/internal/shape"
)

// DecayPerTick is how much strength every marker loses each tick.
const DecayPerTick = 0.1

// MaxPheromone caps sampled intensity where the raw field is infinite.
const MaxPheromone = math.MaxFloat32

// Marker is a pheromone source. Its apparent radius equals its strength.
type Marker struct {
	Pos         orb.Point `json:"pos"`
	Strength    float64   `json:"strength"`
	EmittedTick uint64    `json:"emitted_tick"`
}

// Shape returns the marker's current extent.
func (m *Marker) Shape() shape.Shape {
	return shape.Disc{C: m.Pos, R: math.Max(m.Strength, 0)}
}

// Exhausted reports whether the marker has no strength left.
func (m *Marker) Exhausted() bool {
	return m.Strength <= 0
}

// Decay weakens every marker by amount, clamping at zero, and returns the
// handles of markers that are now exhausted. Markers are never removed
// here; culling is the caller's choice.
func (e *Environment) Decay(amount float64) []Handle {
	var exhausted []Handle
	for _, h := range e.markers {
		m := e.objects[h].(*Marker)
		m.Strength = math.Max(m.Strength-amount, 0)
		if m.Exhausted() {
			exhausted = append(exhausted, h)
		}
	}
	return exhausted
}

// PheromoneAt sums strength/distance over every marker whose extent
// contains p. The result is never negative; it is +Inf exactly on a marker
// center.
func (e *Environment) PheromoneAt(p orb.Point) float64 {
	total := 0.0
	for _, h := range e.markers {
		m := e.objects[h].(*Marker)
		if m.Exhausted() || !m.Shape().Contains(p) {
			continue
		}
		total += m.Strength / geom.Dist(m.Pos, p)
	}
	return total
}

// NearestMarker returns the position of the live marker closest to p.
func (e *Environment) NearestMarker(p orb.Point) (orb.Point, bool) {
	best, found := orb.Point{}, false
	bestD := math.Inf(1)
	for _, h := range e.markers {
		m := e.objects[h].(*Marker)
		if m.Exhausted() {
			continue
		}
		if d := geom.DistSq(m.Pos, p); d < bestD {
			best, bestD, found = m.Pos, d, true
		}
	}
	return best, found
}

// NearestFood returns the position of the closest food source with food
// left.
func (e *Environment) NearestFood(p orb.Point) (orb.Point, bool) {
	best, found := orb.Point{}, false
	bestD := math.Inf(1)
	for _, h := range e.food {
		f := e.objects[h].(*Food)
		if f.Amount <= 0 {
			continue
		}
		if d := geom.DistSq(f.Pos, p); d < bestD {
			best, bestD, found = f.Pos, d, true
		}
	}
	return best, found
}

// TotalPheromone returns the summed strength of every marker.
func (e *Environment) TotalPheromone() float64 {
	total := 0.0
	for _, h := range e.markers {
		total += e.objects[h].(*Marker).Strength
	}
	return total
}
