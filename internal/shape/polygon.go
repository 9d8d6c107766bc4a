package shape

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/talgya/ant-world/internal/geom"
)

// Polygon is an arbitrary simple polygon. It has no closed-form overlap
// test and reduces to FormOpaque.
type Polygon struct {
	Ring orb.Ring
}

// NewPolygon closes the ring if the last vertex does not repeat the first.
func NewPolygon(pts ...orb.Point) Polygon {
	return Polygon{Ring: closeRing(pts)}
}

func (p Polygon) Overlaps(other Shape) bool {
	return Overlaps(p, other)
}

func (p Polygon) Contains(pt orb.Point) bool {
	if len(p.Ring) < 4 {
		return false
	}
	return planar.RingContains(p.Ring, pt) || NearlyEqual(planar.DistanceFrom(p.Ring, pt), 0)
}

func (p Polygon) Samples() []orb.Point {
	return perimeterSamples(p.Ring)
}

func (p Polygon) Center() orb.Point {
	c, _ := planar.CentroidArea(p.Ring)
	return c
}

func (p Polygon) Form() Form {
	return Form{Kind: FormOpaque, Center: p.Center(), Bound: p.Ring.Bound(), Ring: p.Ring}
}

// perimeterSamples spaces SampleCount points evenly by arc length along a
// closed ring.
func perimeterSamples(r orb.Ring) []orb.Point {
	pts := make([]orb.Point, SampleCount)
	if len(r) == 0 {
		return pts[:0]
	}
	if len(r) == 1 {
		for i := range pts {
			pts[i] = r[0]
		}
		return pts
	}

	total := 0.0
	for i := 1; i < len(r); i++ {
		total += geom.Dist(r[i-1], r[i])
	}
	if total == 0 {
		for i := range pts {
			pts[i] = r[0]
		}
		return pts
	}

	step := total / SampleCount
	seg, segStart := 1, 0.0
	segLen := geom.Dist(r[0], r[1])
	for i := range pts {
		at := float64(i) * step
		for at > segStart+segLen && seg < len(r)-1 {
			segStart += segLen
			seg++
			segLen = geom.Dist(r[seg-1], r[seg])
		}
		t := 0.0
		if segLen > 0 {
			t = (at - segStart) / segLen
		}
		pts[i] = geom.Lerp(r[seg-1], r[seg], t)
	}
	return pts
}
