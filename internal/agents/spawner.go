// Ant spawning: places colonies of ants around their nest.
package agents

import (
	"math"
	"math/rand"

	"github.com/paulmach/orb"

	"github.com/talgya/ant-world/internal/geom"
)

// Spawner creates ants for the simulation.
type Spawner struct {
	rng    *rand.Rand
	nextID AntID
}

// NewSpawner creates an ant spawner with the given seed.
func NewSpawner(seed int64) *Spawner {
	return &Spawner{
		rng:    rand.New(rand.NewSource(seed + 300)),
		nextID: 1,
	}
}

// SpawnColony creates count ants of one archetype scattered within spread
// units of home. Every ant remembers home as its nest.
func (s *Spawner) SpawnColony(count int, home orb.Point, spread float64, archetype string, tick uint64) ([]*Ant, error) {
	rules, err := RulesFor(archetype)
	if err != nil {
		return nil, err
	}

	ants := make([]*Ant, 0, count)
	for i := 0; i < count; i++ {
		ants = append(ants, s.spawnOne(home, spread, archetype, rules, tick))
	}
	return ants, nil
}

func (s *Spawner) spawnOne(home orb.Point, spread float64, archetype string, rules [RuleCount]Rule, tick uint64) *Ant {
	id := s.nextID
	s.nextID++

	// Uniform over the disc, not clustered at the centre.
	r := spread * math.Sqrt(s.rng.Float64())
	pos := geom.Polar(home, r, s.rng.Float64()*360)

	return &Ant{
		ID:        id,
		Archetype: archetype,
		Pos:       pos,
		Home:      home,
		Rules:     rules,
		BornTick:  tick,
	}
}
