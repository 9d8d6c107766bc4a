// Scenario setup: builds a populated simulation from a loaded config.
package engine

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/paulmach/orb"

	"github.com/talgya/ant-world/internal/agents"
	"github.com/talgya/ant-world/internal/config"
	"github.com/talgya/ant-world/internal/pathing"
	"github.com/talgya/ant-world/internal/shape"
	"github.com/talgya/ant-world/internal/world"
)

// nestClearance keeps generated obstacles and food this far beyond the
// nest radius.
const nestClearance = 10.0

// FromConfig generates the world described by cfg and spawns its colonies.
// A zero seed picks a random one; the seed used is kept on the simulation.
func FromConfig(cfg config.Config) (*Simulation, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}

	env := world.New()
	nest := orb.Point{cfg.Nest.X, cfg.Nest.Y}
	h := cfg.World.HalfExtent

	var obstacles []*world.Obstacle
	for _, w := range cfg.Walls {
		obstacles = append(obstacles, world.Wall(orb.Point{w.X, w.Y}, w.W, w.H))
	}

	gen := world.GenConfig{
		Seed:             seed,
		Extent:           orb.Bound{Min: orb.Point{-h, -h}, Max: orb.Point{h, h}},
		Spacing:          cfg.Obstacles.Spacing,
		Frequency:        cfg.Obstacles.Frequency,
		Octaves:          cfg.Obstacles.Octaves,
		Persistence:      cfg.Obstacles.Persistence,
		RockThreshold:    cfg.Obstacles.RockThreshold,
		OutcropThreshold: cfg.Obstacles.OutcropThreshold,
		RockRadius:       cfg.Obstacles.RockRadius,
		KeepOut:          []shape.Disc{{C: nest, R: cfg.Nest.Radius + nestClearance}},
	}
	if cfg.Obstacles.Enabled {
		obstacles = append(obstacles, world.GenerateObstacles(gen)...)
	}
	for _, o := range obstacles {
		env.Insert(o, world.RoleCollidable|world.RoleRenderable)
	}

	food := world.PlaceFood(gen, cfg.Food.Count, cfg.Food.Radius, cfg.Food.Amount, obstacles)
	if len(food) < cfg.Food.Count {
		slog.Warn("placed fewer food sources than requested", "placed", len(food), "requested", cfg.Food.Count)
	}
	for _, f := range food {
		env.Insert(f, world.RoleRenderable)
	}

	chartCfg := pathing.DefaultConfig()
	chartCfg.MaxRadius = cfg.Charting.MaxRadius

	params := DefaultParams()
	params.Decay = cfg.Pheromone.Decay
	params.EmitStrength = cfg.Pheromone.EmitStrength
	params.CullExhausted = cfg.Pheromone.CullExhausted
	params.NestRadius = cfg.Nest.Radius

	sim := NewSimulation(env, pathing.NewCharter(chartCfg), params)
	sim.Seed = seed
	sim.Spawner = agents.NewSpawner(seed)

	for i, col := range cfg.Colonies {
		ants, err := sim.Spawner.SpawnColony(col.Count, nest, col.Spread, col.Archetype, 0)
		if err != nil {
			return nil, fmt.Errorf("colony %d: %w", i, err)
		}
		sim.AddAnts(ants)
		sim.addEvent(0, "colony", "%d %s ants hatched at (%.1f, %.1f)", len(ants), col.Archetype, nest[0], nest[1])
	}

	slog.Info("world ready",
		"seed", seed,
		"obstacles", len(obstacles),
		"food_sources", len(food),
		"ants", sim.Stats.Ants,
	)
	return sim, nil
}
