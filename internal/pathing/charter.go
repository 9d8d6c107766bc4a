// Package pathing charts routes for ants with a weighted A* search over a
// ring-shaped candidate grid. Grid points are filtered against every
// collidable in the environment and scored by the pheromone field, so the
// search leans towards scent-rich ground.
package pathing

import (
	"errors"
	"fmt"
	"math"

	"github.com/paulmach/orb"

	"github.com/talgya/ant-world/internal/geom"
	"github.com/talgya/ant-world/internal/shape"
	"github.com/talgya/ant-world/internal/world"
)

// ErrNoPath is returned when the destination cannot be reached through the
// generated grid. It is an ordinary outcome, not a fault.
var ErrNoPath = errors.New("no path")

// DestScore is the desirability given to the destination node.
const DestScore = math.MaxFloat32 / 20

// Config holds the grid and scoring parameters.
type Config struct {
	RingStep      float64 // Radial distance between rings
	RingStop      float64 // Stop adding rings once this close to the destination distance
	MaxRadius     float64 // Hard cap on ring radius (0 = none)
	ConnectRadius float64 // Grid points closer than this are linked
	DestRadius    float64 // Grid points this close to the destination may link to it
	Bonus         float64 // Added to the field sample when markers exist
	Plain         float64 // Score of every point when no markers exist
}

// DefaultConfig returns the standard charting parameters.
func DefaultConfig() Config {
	return Config{
		RingStep:      1,
		RingStop:      10,
		ConnectRadius: 1.5,
		DestRadius:    10,
		Bonus:         2,
		Plain:         1,
	}
}

// Path is an ordered list of waypoints, start first and destination last.
type Path []orb.Point

// Charter plans routes through an environment.
type Charter struct {
	Config Config
}

// NewCharter returns a charter using cfg, filling zero fields from the
// defaults.
func NewCharter(cfg Config) *Charter {
	def := DefaultConfig()
	if cfg.RingStep <= 0 {
		cfg.RingStep = def.RingStep
	}
	if cfg.RingStop <= 0 {
		cfg.RingStop = def.RingStop
	}
	if cfg.ConnectRadius <= 0 {
		cfg.ConnectRadius = def.ConnectRadius
	}
	if cfg.DestRadius <= 0 {
		cfg.DestRadius = def.DestRadius
	}
	if cfg.Bonus == 0 {
		cfg.Bonus = def.Bonus
	}
	if cfg.Plain <= 0 {
		cfg.Plain = def.Plain
	}
	return &Charter{Config: cfg}
}

// Chart plans a route for the ant behind self to dest. The ant's own body
// never blocks its route.
func (c *Charter) Chart(env *world.Environment, self world.Handle, dest orb.Point) (Path, error) {
	ant, ok := env.Ant(self)
	if !ok {
		return nil, fmt.Errorf("chart from %d: %w", self, world.ErrNotFound)
	}
	return c.ChartFrom(env, ant.Body(), self, dest)
}

// ChartFrom plans a route for a body of the given shape standing at its
// center. The object behind skip is ignored by the collision checks; pass
// zero to check against every collidable.
func (c *Charter) ChartFrom(env *world.Environment, body shape.Disc, skip world.Handle, dest orb.Point) (Path, error) {
	if !finitePoint(dest) || !finitePoint(body.C) {
		return nil, ErrNoPath
	}

	g := c.buildGrid(env, body, skip, dest)
	g.link(c.Config)

	path, ok := g.search()
	if !ok {
		return nil, ErrNoPath
	}
	return path, nil
}

func finitePoint(p orb.Point) bool {
	return geom.Finite(p[0]) && geom.Finite(p[1])
}
