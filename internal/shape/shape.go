// Package shape provides the uniform shape abstraction used for spatial
// queries: overlap and containment tests, boundary sampling, and the reduced
// forms the resolver dispatches on.
package shape

import (
	"github.com/paulmach/orb"
)

// SampleCount is the number of boundary points every shape samples.
const SampleCount = 128

// SampleStep is the angular step between boundary samples, in degrees.
const SampleStep = 360.0 / SampleCount

// Shape is anything that occupies space in the environment.
type Shape interface {
	// Overlaps reports whether the two shapes touch or intersect.
	Overlaps(other Shape) bool
	// Contains reports whether p lies inside the shape (boundary included).
	Contains(p orb.Point) bool
	// Samples returns SampleCount points around the perimeter, in order.
	Samples() []orb.Point
	Center() orb.Point
	Form() Form
}

// FormKind names a reduced form.
type FormKind uint8

const (
	FormDisc   FormKind = iota // Center + Radius
	FormBox                    // Axis-aligned Bound
	FormOpaque                 // Only boundary samples are meaningful
	numForms
)

// String returns the form name.
func (k FormKind) String() string {
	switch k {
	case FormDisc:
		return "disc"
	case FormBox:
		return "box"
	case FormOpaque:
		return "opaque"
	default:
		return "unknown"
	}
}

// Form is the normalized representation of a shape used to pick an overlap
// test. Only the fields relevant to Kind are set.
type Form struct {
	Kind   FormKind
	Center orb.Point
	Radius float64
	Bound  orb.Bound
	Ring   orb.Ring // FormOpaque outline, when the shape has one
}
