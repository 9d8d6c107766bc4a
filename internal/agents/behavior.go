// Ant behavior: every tick each ant re-runs its four rules from scratch.
// Fired rules feed their action trees through a small interpreter that
// updates memory in place and hands movement and scent effects back to the
// caller.
package agents

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"

	"github.com/talgya/ant-world/internal/geom"
)

// MaxActionDepth bounds how deeply Remember/Forget may nest.
const MaxActionDepth = 32

var (
	// ErrUnsupportedLocation is returned for a location kind the engine
	// does not know how to resolve.
	ErrUnsupportedLocation = errors.New("unsupported location")
	// ErrUnresolvedLocation is returned when a known location has no
	// value right now, such as Dest with no destination set.
	ErrUnresolvedLocation = errors.New("location unresolved")
	ErrUnsupportedSource  = errors.New("unsupported source")
	ErrMalformedRule      = errors.New("malformed rule")
)

// Senses is what an ant can perceive of the environment around it.
type Senses interface {
	PheromoneAt(p orb.Point) float64
	NearestMarker(p orb.Point) (orb.Point, bool)
	NearestFood(p orb.Point) (orb.Point, bool)
}

// EffectKind enumerates effects the simulation applies after a decision.
type EffectKind uint8

const (
	EffectSetDestination EffectKind = iota
	EffectEmitPheromone
)

// Effect is an environment change requested by a rule.
type Effect struct {
	Kind     EffectKind
	Pos      orb.Point
	Strength float64 // EffectEmitPheromone; zero means the default strength
}

// Decide evaluates the ant's rules in order and returns the effects of
// every rule that fired. A rule that fails to evaluate is skipped; its error
// is joined into the returned error and later rules still run.
func Decide(a *Ant, s Senses) ([]Effect, error) {
	var effects []Effect
	var errs []error

	for i, r := range a.Rules {
		fire, err := triggered(a, s, r)
		if err != nil {
			errs = append(errs, fmt.Errorf("rule %d: %w", i, err))
			continue
		}
		if !fire {
			continue
		}
		out, err := perform(a, s, r.Then)
		effects = append(effects, out...)
		if err != nil {
			errs = append(errs, fmt.Errorf("rule %d: %w", i, err))
		}
	}

	return effects, errors.Join(errs...)
}

func triggered(a *Ant, s Senses, r Rule) (bool, error) {
	switch r.Kind {
	case RuleNone:
		return false, nil
	case RuleAlways:
		return true, nil
	case RuleIfHaveFood:
		return a.HasFood, nil
	case RuleIf:
		return evaluateCondition(a, s, r.When)
	default:
		return false, fmt.Errorf("rule kind %d: %w", r.Kind, ErrMalformedRule)
	}
}

// perform walks the action tree outermost first. Memory changes happen as
// each wrapper is visited; the innermost action produces the effect.
func perform(a *Ant, s Senses, act Action) ([]Effect, error) {
	var out []Effect
	depth := 0
	for node := &act; node != nil; node = node.Inner {
		if depth++; depth > MaxActionDepth {
			return out, fmt.Errorf("action nested deeper than %d: %w", MaxActionDepth, ErrMalformedRule)
		}

		switch node.Kind {
		case ActNone:
		case ActRemember:
			v, err := evaluateSource(a, s, node.Value)
			if err != nil {
				return out, err
			}
			a.Memory.Remember(v)
		case ActForget:
			a.Memory.Forget()
		case ActSetDest:
			p, err := resolve(a, s, node.Target)
			if err != nil {
				return out, err
			}
			out = append(out, Effect{Kind: EffectSetDestination, Pos: p})
		case ActEmit:
			out = append(out, Effect{Kind: EffectEmitPheromone, Pos: a.Pos, Strength: node.Strength})
		default:
			return out, fmt.Errorf("action kind %d: %w", node.Kind, ErrMalformedRule)
		}
	}
	return out, nil
}

func resolve(a *Ant, s Senses, l Location) (orb.Point, error) {
	switch l.Kind {
	case LocHere:
		return a.Pos, nil
	case LocHome:
		return a.Home, nil
	case LocPos:
		return l.Pos, nil
	case LocDest:
		if a.Destination == nil {
			return orb.Point{}, fmt.Errorf("no destination: %w", ErrUnresolvedLocation)
		}
		return *a.Destination, nil
	case LocPheromoneSrc:
		p, ok := s.NearestMarker(a.Pos)
		if !ok {
			return orb.Point{}, fmt.Errorf("no pheromone marker: %w", ErrUnresolvedLocation)
		}
		return p, nil
	case LocFoodSrc:
		p, ok := s.NearestFood(a.Pos)
		if !ok {
			return orb.Point{}, fmt.Errorf("no food source: %w", ErrUnresolvedLocation)
		}
		return p, nil
	default:
		return orb.Point{}, fmt.Errorf("location kind %d: %w", l.Kind, ErrUnsupportedLocation)
	}
}

func evaluateSource(a *Ant, s Senses, src Source) (Value, error) {
	switch src.Kind {
	case SrcNumber:
		return NumberValue(src.Number), nil
	case SrcLoc:
		p, err := resolve(a, s, src.Loc)
		if err != nil {
			return Value{}, err
		}
		return PositionValue(p), nil
	case SrcDist:
		if src.Loc.Kind == LocHere {
			return NumberValue(0), nil
		}
		p, err := resolve(a, s, src.Loc)
		if err != nil {
			return Value{}, err
		}
		return NumberValue(geom.Dist(p, a.Pos)), nil
	case SrcPheromone:
		return NumberValue(s.PheromoneAt(a.Pos)), nil
	case SrcMemory:
		return a.Memory.Recall(src.Offset)
	case SrcFood:
		if a.HasFood {
			return NumberValue(1), nil
		}
		return NumberValue(0), nil
	default:
		return Value{}, fmt.Errorf("source kind %d: %w", src.Kind, ErrUnsupportedSource)
	}
}

func evaluateCondition(a *Ant, s Senses, c Condition) (bool, error) {
	negate := false
	depth := 0
	for c.Kind == CondNot {
		if c.Inner == nil {
			return false, fmt.Errorf("negation without a condition: %w", ErrMalformedRule)
		}
		if depth++; depth > MaxActionDepth {
			return false, fmt.Errorf("condition nested deeper than %d: %w", MaxActionDepth, ErrMalformedRule)
		}
		negate = !negate
		c = *c.Inner
	}

	lhs, err := evaluateSource(a, s, c.A)
	if err != nil {
		return false, err
	}
	rhs, err := evaluateSource(a, s, c.B)
	if err != nil {
		return false, err
	}

	var held bool
	switch c.Kind {
	case CondGt:
		held = greater(lhs, rhs)
	case CondLt:
		held = greater(rhs, lhs)
	case CondEq:
		held = lhs == rhs
	default:
		return false, fmt.Errorf("condition kind %d: %w", c.Kind, ErrMalformedRule)
	}
	return held != negate, nil
}

// greater orders numbers normally and positions component-wise. Values of
// different kinds never order.
func greater(a, b Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	if a.Kind == ValuePosition {
		return a.Pos[0] > b.Pos[0] && a.Pos[1] > b.Pos[1]
	}
	return a.Num > b.Num
}
