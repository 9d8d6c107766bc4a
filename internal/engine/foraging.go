// Per-ant tick work: decisions, route planning, scent, food handling.
package engine

import (
	"errors"
	"log/slog"

	"github.com/paulmach/orb"

	"github.com/talgya/ant-world/internal/agents"
	"github.com/talgya/ant-world/internal/pathing"
	"github.com/talgya/ant-world/internal/shape"
	"github.com/talgya/ant-world/internal/world"
)

// stepAnt runs one ant's decision, applies its effects, walks one waypoint
// and settles food pickup or delivery.
func (s *Simulation) stepAnt(tick uint64, h world.Handle, a *agents.Ant) {
	effects, err := agents.Decide(a, s.Env)
	if err != nil {
		s.Stats.RuleErrors++
		slog.Debug("rules skipped", "ant", a.ID, "tick", tick, "error", err)
	}

	// Later rules override earlier ones, so only the last destination
	// request of the tick is charted.
	var dest *orb.Point
	for _, e := range effects {
		switch e.Kind {
		case agents.EffectSetDestination:
			p := e.Pos
			dest = &p
		case agents.EffectEmitPheromone:
			s.emit(tick, e)
		}
	}
	if dest != nil {
		s.setDestination(tick, h, a, *dest)
	}

	a.Advance()
	s.forage(tick, a)
}

// setDestination charts a route to dest and hands it to the ant. An ant
// already walking to dest keeps its route.
func (s *Simulation) setDestination(tick uint64, h world.Handle, a *agents.Ant, dest orb.Point) {
	if a.Destination != nil && *a.Destination == dest && (len(a.Route) > 0 || a.Pos == dest) {
		return
	}
	if a.Pos == dest {
		a.Destination = &dest
		a.Route = nil
		return
	}
	if b, ok := s.noPath[h]; ok && b.dest == dest && tick < b.until {
		return
	}

	path, err := s.Charter.Chart(s.Env, h, dest)
	if errors.Is(err, pathing.ErrNoPath) {
		s.Stats.PathsFailed++
		s.noPath[h] = blockedRoute{dest: dest, until: tick + s.Params.RetryAfter}
		slog.Debug("no path", "ant", a.ID, "tick", tick, "from", a.Pos, "to", dest)
		return
	}
	if err != nil {
		slog.Warn("chart failed", "ant", a.ID, "tick", tick, "error", err)
		return
	}

	delete(s.noPath, h)
	s.Stats.PathsCharted++
	a.Destination = &dest
	a.Route = path[1:]
}

// emit drops a marker where the decision asked for one.
func (s *Simulation) emit(tick uint64, e agents.Effect) {
	strength := e.Strength
	if strength <= 0 {
		strength = s.Params.EmitStrength
	}
	s.Env.Insert(&world.Marker{Pos: e.Pos, Strength: strength, EmittedTick: tick}, world.RoleRenderable)
	s.Stats.MarkersEmitted++
}

// forage lets an empty-handed ant take from a food source it touches, and a
// loaded ant drop its load at the nest.
func (s *Simulation) forage(tick uint64, a *agents.Ant) {
	body := a.Body()

	if a.HasFood {
		nest := shape.Disc{C: a.Home, R: s.Params.NestRadius}
		if body.Overlaps(nest) {
			a.HasFood = false
			s.Stats.FoodDelivered++
			s.addEvent(tick, "forage", "ant %d delivered food", a.ID)
		}
		return
	}

	for _, fh := range s.Env.FoodSources() {
		f, ok := s.Env.Food(fh)
		if !ok || !body.Overlaps(f.Shape()) || !f.Take() {
			continue
		}
		a.HasFood = true
		s.Stats.FoodCollected++
		s.addEvent(tick, "forage", "ant %d picked up food at (%.1f, %.1f)", a.ID, f.Pos[0], f.Pos[1])
		if f.Amount == 0 {
			s.addEvent(tick, "food", "food source at (%.1f, %.1f) exhausted", f.Pos[0], f.Pos[1])
			if err := s.Env.Remove(fh); err != nil {
				slog.Warn("remove food", "handle", fh, "error", err)
			}
		}
		return
	}
}
