// Simulation ties the environment, the charter, and the ants together and
// advances them one tick at a time.
package engine

import (
	"fmt"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/paulmach/orb"

	"github.com/talgya/ant-world/internal/agents"
	"github.com/talgya/ant-world/internal/pathing"
	"github.com/talgya/ant-world/internal/world"
)

// Params are the per-run tuning knobs of a simulation.
type Params struct {
	Decay         float64 // Strength every marker loses per tick
	EmitStrength  float64 // Used when an emit action leaves strength at zero
	CullExhausted bool    // Remove markers once their strength reaches zero
	NestRadius    float64 // Carrying ants inside this radius of home deliver
	RetryAfter    uint64  // Ticks before re-charting a destination that had no path
	MaxEvents     int     // Events kept in memory between flushes
}

// DefaultParams returns the standard tuning.
func DefaultParams() Params {
	return Params{
		Decay:         world.DecayPerTick,
		EmitStrength:  3,
		CullExhausted: true,
		NestRadius:    4,
		RetryAfter:    10,
		MaxEvents:     1000,
	}
}

// Simulation holds the complete world state and wires systems together.
// It is single-threaded: every read and write happens inside Tick or
// between ticks.
type Simulation struct {
	Env      *world.Environment
	Charter  *pathing.Charter
	Params   Params
	Spawner  *agents.Spawner
	Seed     int64
	Events   []Event // Recent events, flushed by the journal
	LastTick uint64  // Most recent tick processed

	// Statistics, refreshed every tick.
	Stats SimStats

	// Destinations that had no path, by ant.
	noPath map[world.Handle]blockedRoute
}

type blockedRoute struct {
	dest  orb.Point
	until uint64
}

// Event is a notable occurrence in the world.
type Event struct {
	Tick        uint64 `json:"tick" db:"tick"`
	Description string `json:"description" db:"description"`
	Category    string `json:"category" db:"category"` // "forage", "food", "colony"
}

// SimStats tracks aggregate world statistics.
type SimStats struct {
	// Gauges.
	Ants          int     `json:"ants" db:"ants"`
	Carrying      int     `json:"carrying" db:"carrying"`
	Markers       int     `json:"markers" db:"markers"`
	Pheromone     float64 `json:"pheromone" db:"pheromone"`
	FoodSources   int     `json:"food_sources" db:"food_sources"`
	FoodRemaining int     `json:"food_remaining" db:"food_remaining"`

	// Running totals.
	FoodCollected  uint64 `json:"food_collected" db:"food_collected"`
	FoodDelivered  uint64 `json:"food_delivered" db:"food_delivered"`
	MarkersEmitted uint64 `json:"markers_emitted" db:"markers_emitted"`
	MarkersCulled  uint64 `json:"markers_culled" db:"markers_culled"`
	PathsCharted   uint64 `json:"paths_charted" db:"paths_charted"`
	PathsFailed    uint64 `json:"paths_failed" db:"paths_failed"`
	RuleErrors     uint64 `json:"rule_errors" db:"rule_errors"`
}

// NewSimulation creates a Simulation over env. A nil charter gets the
// default charting parameters.
func NewSimulation(env *world.Environment, charter *pathing.Charter, params Params) *Simulation {
	if charter == nil {
		charter = pathing.NewCharter(pathing.DefaultConfig())
	}
	sim := &Simulation{
		Env:     env,
		Charter: charter,
		Params:  params,
		noPath:  make(map[world.Handle]blockedRoute),
	}
	sim.updateStats()
	return sim
}

// CurrentTick returns the most recently processed tick number.
func (s *Simulation) CurrentTick() uint64 {
	return s.LastTick
}

// AddAnts inserts ants as agents and returns their handles in order.
func (s *Simulation) AddAnts(ants []*agents.Ant) []world.Handle {
	handles := make([]world.Handle, 0, len(ants))
	for _, a := range ants {
		handles = append(handles, s.Env.Insert(a, world.RoleAgent|world.RoleRenderable))
	}
	s.updateStats()
	return handles
}

// Tick advances the simulation by one step. Markers decay before any ant
// senses the field, then every ant decides and acts in agent index order.
func (s *Simulation) Tick() {
	s.LastTick++
	tick := s.LastTick

	exhausted := s.Env.Decay(s.Params.Decay)
	if s.Params.CullExhausted {
		for _, h := range exhausted {
			if err := s.Env.Remove(h); err == nil {
				s.Stats.MarkersCulled++
			}
		}
	}

	for _, h := range s.Env.Agents() {
		a, ok := s.Env.Ant(h)
		if !ok {
			continue
		}
		s.stepAnt(tick, h, a)
	}

	s.updateStats()
}

// ChartPath plans a route for the ant behind h without moving it.
func (s *Simulation) ChartPath(h world.Handle, dest orb.Point) (pathing.Path, error) {
	return s.Charter.Chart(s.Env, h, dest)
}

// SamplePheromone returns the field intensity at p. The field is infinite
// exactly on a marker center; there the sample is world.MaxPheromone.
func (s *Simulation) SamplePheromone(p orb.Point) float64 {
	return min(s.Env.PheromoneAt(p), world.MaxPheromone)
}

// FlushEvents hands over the buffered events and clears the buffer.
func (s *Simulation) FlushEvents() []Event {
	out := s.Events
	s.Events = nil
	return out
}

func (s *Simulation) addEvent(tick uint64, category, format string, args ...any) {
	s.Events = append(s.Events, Event{
		Tick:        tick,
		Description: fmt.Sprintf(format, args...),
		Category:    category,
	})
	if limit := s.Params.MaxEvents; limit > 0 && len(s.Events) > limit {
		s.Events = s.Events[len(s.Events)-limit:]
	}
}

// Report logs a summary of the world and the most recent notable events.
func (s *Simulation) Report(tick uint64) {
	eventCounts := make(map[string]int)
	for _, e := range s.Events {
		eventCounts[e.Category]++
	}

	slog.Info("tick report",
		"tick", humanize.Comma(int64(tick)),
		"ants", s.Stats.Ants,
		"carrying", s.Stats.Carrying,
		"markers", humanize.Comma(int64(s.Stats.Markers)),
		"pheromone", fmt.Sprintf("%.2f", s.Stats.Pheromone),
		"food_left", humanize.Comma(int64(s.Stats.FoodRemaining)),
		"collected", humanize.Comma(int64(s.Stats.FoodCollected)),
		"delivered", humanize.Comma(int64(s.Stats.FoodDelivered)),
		"charted", humanize.Comma(int64(s.Stats.PathsCharted)),
		"no_path", humanize.Comma(int64(s.Stats.PathsFailed)),
		"rule_errors", s.Stats.RuleErrors,
		"events_forage", eventCounts["forage"],
		"events_food", eventCounts["food"],
	)

	recentStart := 0
	if len(s.Events) > 20 {
		recentStart = len(s.Events) - 20
	}
	for _, e := range s.Events[recentStart:] {
		if e.Category == "food" || e.Category == "colony" {
			slog.Info("event", "category", e.Category, "description", e.Description)
		}
	}
}

func (s *Simulation) updateStats() {
	st := &s.Stats
	st.Ants, st.Carrying = 0, 0
	for _, h := range s.Env.Agents() {
		a, ok := s.Env.Ant(h)
		if !ok {
			continue
		}
		st.Ants++
		if a.HasFood {
			st.Carrying++
		}
	}

	st.Markers = len(s.Env.Markers())
	st.Pheromone = s.Env.TotalPheromone()

	st.FoodSources, st.FoodRemaining = 0, 0
	for _, h := range s.Env.FoodSources() {
		if f, ok := s.Env.Food(h); ok {
			st.FoodSources++
			st.FoodRemaining += f.Amount
		}
	}
}
