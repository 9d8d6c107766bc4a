// Package geom provides the 2-D vector helpers used across the simulation.
// Points are orb.Point values; this package only adds the arithmetic the
// orb planar package does not carry.
package geom

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Pt is shorthand for building an orb.Point.
func Pt(x, y float64) orb.Point {
	return orb.Point{x, y}
}

// Add returns a + b.
func Add(a, b orb.Point) orb.Point {
	return orb.Point{a[0] + b[0], a[1] + b[1]}
}

// Sub returns a - b.
func Sub(a, b orb.Point) orb.Point {
	return orb.Point{a[0] - b[0], a[1] - b[1]}
}

// Scale returns p * k.
func Scale(p orb.Point, k float64) orb.Point {
	return orb.Point{p[0] * k, p[1] * k}
}

// Dot returns the dot product of a and b.
func Dot(a, b orb.Point) float64 {
	return a[0]*b[0] + a[1]*b[1]
}

// Dist returns the Euclidean distance between a and b.
func Dist(a, b orb.Point) float64 {
	return planar.Distance(a, b)
}

// DistSq returns the squared Euclidean distance between a and b.
func DistSq(a, b orb.Point) float64 {
	return planar.DistanceSquared(a, b)
}

// Manhattan returns |ax-bx| + |ay-by|.
func Manhattan(a, b orb.Point) float64 {
	return math.Abs(a[0]-b[0]) + math.Abs(a[1]-b[1])
}

// Lerp returns the point t of the way from a to b.
func Lerp(a, b orb.Point, t float64) orb.Point {
	return orb.Point{a[0] + (b[0]-a[0])*t, a[1] + (b[1]-a[1])*t}
}

// Polar returns the point at distance r from center along the bearing deg.
// Bearings are measured from +Y towards +X, so x uses sin and y uses cos.
func Polar(center orb.Point, r, deg float64) orb.Point {
	rad := deg * math.Pi / 180
	return orb.Point{center[0] + r*math.Sin(rad), center[1] + r*math.Cos(rad)}
}

// Finite reports whether v is neither NaN nor infinite.
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
