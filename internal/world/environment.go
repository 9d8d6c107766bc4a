// Package world provides the shared environment store, the objects that
// live in it, and the pheromone field derived from its markers.
package world

import (
	"errors"
	"fmt"
	"slices"

	"github.com/talgya/ant-world/internal/agents"
	"github.com/talgya/ant-world/internal/shape"
)

// Handle identifies an object in the environment. Handles are never reused.
type Handle uint64

// Role flags an object's membership in the derived indices.
type Role uint8

const (
	RoleCollidable Role = 1 << iota // Blocks movement and charting
	RoleRenderable                  // Drawn by the front end
	RoleAgent                       // Runs the decision engine each tick
)

// Has reports whether every bit of x is set in r.
func (r Role) Has(x Role) bool {
	return r&x == x
}

// ErrNotFound is returned when a handle does not name a live object.
var ErrNotFound = errors.New("object not found")

// Entity is anything the environment can hold.
type Entity interface {
	Shape() shape.Shape
}

// Environment stores every object once and keeps ordered handle indices by
// role and by kind. Objects are pointers, so a change to a marker or an ant
// is visible through every index that names it.
type Environment struct {
	lastHandle Handle
	objects    map[Handle]Entity
	roles      map[Handle]Role

	// Role indices, insertion ordered.
	things    []Handle
	colliders []Handle
	renderers []Handle
	agents    []Handle

	// Kind indices, insertion ordered.
	markers []Handle
	food    []Handle
}

// New creates an empty environment.
func New() *Environment {
	return &Environment{
		objects: make(map[Handle]Entity),
		roles:   make(map[Handle]Role),
	}
}

// Insert registers obj under the given roles and returns its handle.
// Only ants may take RoleAgent.
func (e *Environment) Insert(obj Entity, roles Role) Handle {
	if obj == nil {
		panic("world: insert of nil entity")
	}
	if _, isAnt := obj.(*agents.Ant); roles.Has(RoleAgent) && !isAnt {
		panic(fmt.Sprintf("world: RoleAgent on %T", obj))
	}

	e.lastHandle++
	h := e.lastHandle
	e.objects[h] = obj
	e.roles[h] = roles

	e.things = append(e.things, h)
	if roles.Has(RoleCollidable) {
		e.colliders = append(e.colliders, h)
	}
	if roles.Has(RoleRenderable) {
		e.renderers = append(e.renderers, h)
	}
	if roles.Has(RoleAgent) {
		e.agents = append(e.agents, h)
	}

	switch obj.(type) {
	case *Marker:
		e.markers = append(e.markers, h)
	case *Food:
		e.food = append(e.food, h)
	}
	return h
}

// Remove drops the object from every index at once. Removing a handle
// that is already gone returns ErrNotFound and changes nothing.
func (e *Environment) Remove(h Handle) error {
	if _, ok := e.objects[h]; !ok {
		return fmt.Errorf("remove %d: %w", h, ErrNotFound)
	}

	delete(e.objects, h)
	delete(e.roles, h)
	e.things = without(e.things, h)
	e.colliders = without(e.colliders, h)
	e.renderers = without(e.renderers, h)
	e.agents = without(e.agents, h)
	e.markers = without(e.markers, h)
	e.food = without(e.food, h)
	return nil
}

func without(hs []Handle, h Handle) []Handle {
	if i := slices.Index(hs, h); i >= 0 {
		return slices.Delete(hs, i, i+1)
	}
	return hs
}

// Get returns the object behind h.
func (e *Environment) Get(h Handle) (Entity, bool) {
	obj, ok := e.objects[h]
	return obj, ok
}

// Roles returns the roles h was inserted with.
func (e *Environment) Roles(h Handle) (Role, bool) {
	r, ok := e.roles[h]
	return r, ok
}

// Ant returns the ant behind h, if h names one.
func (e *Environment) Ant(h Handle) (*agents.Ant, bool) {
	a, ok := e.objects[h].(*agents.Ant)
	return a, ok
}

// Marker returns the marker behind h, if h names one.
func (e *Environment) Marker(h Handle) (*Marker, bool) {
	m, ok := e.objects[h].(*Marker)
	return m, ok
}

// Food returns the food source behind h, if h names one.
func (e *Environment) Food(h Handle) (*Food, bool) {
	f, ok := e.objects[h].(*Food)
	return f, ok
}

// Len returns the number of live objects.
func (e *Environment) Len() int {
	return len(e.objects)
}

// The index accessors return copies so callers may insert or remove while
// iterating.

func (e *Environment) Things() []Handle    { return slices.Clone(e.things) }
func (e *Environment) Colliders() []Handle { return slices.Clone(e.colliders) }
func (e *Environment) Renderers() []Handle { return slices.Clone(e.renderers) }
func (e *Environment) Agents() []Handle    { return slices.Clone(e.agents) }
func (e *Environment) Markers() []Handle   { return slices.Clone(e.markers) }
func (e *Environment) FoodSources() []Handle {
	return slices.Clone(e.food)
}

// HasMarkers reports whether any pheromone marker is live.
func (e *Environment) HasMarkers() bool {
	return len(e.markers) > 0
}
