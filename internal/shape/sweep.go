package shape

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// SweepHits reports whether a disc of radius r moving in a straight line
// from a to b touches s anywhere along the way. A zero radius tests the
// bare segment.
func SweepHits(s Shape, a, b orb.Point, r float64) bool {
	f := s.Form()
	switch f.Kind {
	case FormDisc:
		reach := f.Radius + r
		return within(planar.DistanceFromSegmentSquared(a, b, f.Center), reach*reach)
	case FormBox:
		return ringSweep(s, boundRing(f.Bound), a, b, r)
	default:
		ring := f.Ring
		if len(ring) < 2 {
			ring = closeRing(s.Samples())
		}
		return ringSweep(s, ring, a, b, r)
	}
}

// ringSweep covers a segment lying wholly inside the shape through the
// endpoint containment checks, and every crossing or near miss through the
// edge distances.
func ringSweep(s Shape, ring orb.Ring, a, b orb.Point, r float64) bool {
	if s.Contains(a) || s.Contains(b) {
		return true
	}
	r2 := r * r
	for i := 1; i < len(ring); i++ {
		if within(segmentsDistSq(a, b, ring[i-1], ring[i]), r2) {
			return true
		}
	}
	return false
}

// segmentsDistSq is the squared distance between segments ab and cd; zero
// when they cross.
func segmentsDistSq(a, b, c, d orb.Point) float64 {
	d1, d2 := cross(a, b, c), cross(a, b, d)
	d3, d4 := cross(c, d, a), cross(c, d, b)
	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) && ((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return 0
	}
	return min(
		planar.DistanceFromSegmentSquared(a, b, c),
		planar.DistanceFromSegmentSquared(a, b, d),
		planar.DistanceFromSegmentSquared(c, d, a),
		planar.DistanceFromSegmentSquared(c, d, b),
	)
}

// cross is the z component of (q-p) × (t-p).
func cross(p, q, t orb.Point) float64 {
	return (q[0]-p[0])*(t[1]-p[1]) - (q[1]-p[1])*(t[0]-p[0])
}

func closeRing(pts []orb.Point) orb.Ring {
	r := make(orb.Ring, len(pts), len(pts)+1)
	copy(r, pts)
	if len(r) > 0 && !r.Closed() {
		r = append(r, r[0])
	}
	return r
}
