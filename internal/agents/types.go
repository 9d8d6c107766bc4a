// Package agents provides the ant data model, its bounded memory, and the
// rule-driven decision engine that runs every tick.
package agents

import (
	"github.com/paulmach/orb"

	"github.com/talgya/ant-world/internal/shape"
)

// AntID is a unique identifier for an ant.
type AntID uint64

// BodyRadius is the radius of every ant's body disc, in world units.
const BodyRadius = 2.0

// RuleCount is the fixed number of decision rules each ant carries.
const RuleCount = 4

// Ant is a simulated ant.
type Ant struct {
	ID        AntID  `json:"id"`
	Archetype string `json:"archetype,omitempty"`

	// Location
	Pos         orb.Point   `json:"pos"`
	Home        orb.Point   `json:"home"`
	Destination *orb.Point  `json:"destination,omitempty"`
	Route       []orb.Point `json:"route,omitempty"` // Waypoints still ahead, next first

	// Behavior program, fixed for the ant's lifetime.
	Rules [RuleCount]Rule `json:"-"`

	Memory  Memory `json:"-"`
	HasFood bool   `json:"has_food"`

	BornTick uint64 `json:"born_tick"`
}

// Body returns the ant's collision disc at its current position.
func (a *Ant) Body() shape.Disc {
	return shape.Disc{C: a.Pos, R: BodyRadius}
}

// Shape lets the environment store an ant like any other object.
func (a *Ant) Shape() shape.Shape {
	return a.Body()
}

// Advance moves the ant to the next waypoint on its route.
// Returns false when there is nothing left to walk.
func (a *Ant) Advance() bool {
	for len(a.Route) > 0 {
		next := a.Route[0]
		a.Route = a.Route[1:]
		if next != a.Pos {
			a.Pos = next
			return true
		}
	}
	return false
}

// Arrived reports whether the ant stands on its destination.
func (a *Ant) Arrived() bool {
	return a.Destination != nil && *a.Destination == a.Pos
}
