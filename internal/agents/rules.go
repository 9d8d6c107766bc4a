// Decision rule vocabulary. A rule is a small tree of tagged variants: a
// trigger, an optional condition over two sources, and a nested action.
package agents

import "github.com/paulmach/orb"

// LocationKind enumerates the places a rule can refer to.
type LocationKind uint8

const (
	LocHere         LocationKind = iota // The ant's position
	LocHome                             // The ant's nest
	LocDest                             // The ant's current destination
	LocPheromoneSrc                     // The nearest pheromone marker
	LocFoodSrc                          // The nearest food source
	LocPos                              // A fixed world point
)

// Location is a named place resolved against the ant and its surroundings.
type Location struct {
	Kind LocationKind
	Pos  orb.Point // LocPos only
}

func Here() Location         { return Location{Kind: LocHere} }
func Home() Location         { return Location{Kind: LocHome} }
func Dest() Location         { return Location{Kind: LocDest} }
func PheromoneSrc() Location { return Location{Kind: LocPheromoneSrc} }
func FoodSrc() Location      { return Location{Kind: LocFoodSrc} }
func At(p orb.Point) Location {
	return Location{Kind: LocPos, Pos: p}
}

// SourceKind enumerates what a condition can read.
type SourceKind uint8

const (
	SrcNumber    SourceKind = iota // A literal
	SrcLoc                         // A resolved location, as a position
	SrcDist                        // Distance from the ant to a location
	SrcPheromone                   // Pheromone field at the ant's position
	SrcMemory                      // Memory entry at an offset from the newest
	SrcFood                        // 1 when carrying food, else 0
)

// Source yields a Value when evaluated.
type Source struct {
	Kind   SourceKind
	Number float64
	Loc    Location
	Offset int
}

func Number(n float64) Source  { return Source{Kind: SrcNumber, Number: n} }
func Loc(l Location) Source    { return Source{Kind: SrcLoc, Loc: l} }
func Dist(l Location) Source   { return Source{Kind: SrcDist, Loc: l} }
func Pheromone() Source        { return Source{Kind: SrcPheromone} }
func Recall(offset int) Source { return Source{Kind: SrcMemory, Offset: offset} }
func Food() Source             { return Source{Kind: SrcFood} }

// CondKind enumerates comparisons.
type CondKind uint8

const (
	CondGt CondKind = iota
	CondLt
	CondEq
	CondNot
)

// Condition compares two sources, or negates another condition.
type Condition struct {
	Kind  CondKind
	A, B  Source
	Inner *Condition // CondNot only
}

func Gt(a, b Source) Condition { return Condition{Kind: CondGt, A: a, B: b} }
func Lt(a, b Source) Condition { return Condition{Kind: CondLt, A: a, B: b} }
func Eq(a, b Source) Condition { return Condition{Kind: CondEq, A: a, B: b} }
func Not(c Condition) Condition {
	return Condition{Kind: CondNot, Inner: &c}
}

// ActionKind enumerates action tree nodes.
type ActionKind uint8

const (
	ActNone     ActionKind = iota // Does nothing
	ActSetDest                    // Head for Target
	ActEmit                       // Drop a pheromone marker here
	ActRemember                   // Push Value onto memory, then Inner
	ActForget                     // Drop the oldest memory, then Inner
)

// Action is a node in an action tree. Remember and Forget wrap Inner.
type Action struct {
	Kind     ActionKind
	Target   Location // ActSetDest
	Strength float64  // ActEmit; zero means the simulation default
	Value    Source   // ActRemember
	Inner    *Action
}

func SetDest(l Location) Action    { return Action{Kind: ActSetDest, Target: l} }
func Emit(strength float64) Action { return Action{Kind: ActEmit, Strength: strength} }
func Remember(v Source, then Action) Action {
	return Action{Kind: ActRemember, Value: v, Inner: &then}
}
func Forget(then Action) Action {
	return Action{Kind: ActForget, Inner: &then}
}

// RuleKind enumerates rule triggers.
type RuleKind uint8

const (
	RuleNone       RuleKind = iota // Empty slot
	RuleAlways                     // Fires every tick
	RuleIf                         // Fires when When holds
	RuleIfHaveFood                 // Fires while carrying food
)

// Rule is one entry of an ant's behavior program.
type Rule struct {
	Kind RuleKind
	When Condition
	Then Action
}

func Always(then Action) Rule          { return Rule{Kind: RuleAlways, Then: then} }
func If(c Condition, then Action) Rule { return Rule{Kind: RuleIf, When: c, Then: then} }
func IfHaveFood(then Action) Rule      { return Rule{Kind: RuleIfHaveFood, Then: then} }
