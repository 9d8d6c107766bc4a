// Archetypes: the named behavior programs an ant can be spawned with.
package agents

import (
	"fmt"
	"sort"
)

// Archetype names.
const (
	ArchForager       = "forager"
	ArchTrailFollower = "trail-follower"
	ArchScout         = "scout"
	ArchIdle          = "idle"
)

// ReturnRange is how far a scout strays from the nest before turning back.
const ReturnRange = 60.0

// archetypeRules maps archetype name to its rule program.
var archetypeRules = map[string][RuleCount]Rule{
	// Heads for the nearest food; once loaded it lays a trail home and keeps
	// the pickup spots in memory.
	ArchForager: {
		If(Eq(Food(), Number(0)), SetDest(FoodSrc())),
		IfHaveFood(Emit(0)),
		If(Eq(Dist(Home()), Number(0)), Forget(Action{})),
		IfHaveFood(Remember(Loc(Here()), SetDest(Home()))),
	},
	// Follows scent while there is any, otherwise looks for food itself.
	ArchTrailFollower: {
		If(Eq(Pheromone(), Number(0)), SetDest(FoodSrc())),
		If(Gt(Pheromone(), Number(0)), SetDest(PheromoneSrc())),
		IfHaveFood(Emit(0)),
		IfHaveFood(SetDest(Home())),
	},
	// Like a forager, but returns to the nest when it strays too far.
	ArchScout: {
		Always(SetDest(FoodSrc())),
		If(Gt(Dist(Home()), Number(ReturnRange)), Remember(Loc(Here()), SetDest(Home()))),
		IfHaveFood(Emit(0)),
		IfHaveFood(SetDest(Home())),
	},
	ArchIdle: {},
}

// RulesFor returns the rule program for an archetype.
func RulesFor(archetype string) ([RuleCount]Rule, error) {
	rules, ok := archetypeRules[archetype]
	if !ok {
		return rules, fmt.Errorf("unknown archetype %q", archetype)
	}
	return rules, nil
}

// Archetypes lists the known archetype names in sorted order.
func Archetypes() []string {
	names := make([]string, 0, len(archetypeRules))
	for name := range archetypeRules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
