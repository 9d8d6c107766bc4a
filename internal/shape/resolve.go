package shape

import (
	"math"

	"github.com/paulmach/orb"

	"github.com/talgya/ant-world/internal/geom"
)

type overlapFunc func(a, b Shape) bool

// overlapTable is keyed by the reduced forms of (a, b). Every cell is
// symmetric in its arguments, so Overlaps(a, b) == Overlaps(b, a).
var overlapTable = [numForms][numForms]overlapFunc{
	FormDisc: {
		FormDisc:   discDisc,
		FormBox:    discBox,
		FormOpaque: bySamples,
	},
	FormBox: {
		FormDisc:   func(a, b Shape) bool { return discBox(b, a) },
		FormBox:    boxBox,
		FormOpaque: bySamples,
	},
	FormOpaque: {
		FormDisc:   bySamples,
		FormBox:    bySamples,
		FormOpaque: bySamples,
	},
}

// Overlaps resolves an overlap test between any two shapes by their
// reduced forms.
func Overlaps(a, b Shape) bool {
	ka, kb := a.Form().Kind, b.Form().Kind
	if ka >= numForms || kb >= numForms {
		return bySamples(a, b)
	}
	return overlapTable[ka][kb](a, b)
}

// discDisc compares the squared center distance against the squared sum of
// both radii.
func discDisc(a, b Shape) bool {
	fa, fb := a.Form(), b.Form()
	reach := fa.Radius + fb.Radius
	return within(geom.DistSq(fa.Center, fb.Center), reach*reach)
}

// discBox tests the fixed box outline against the disc first. Long edges
// fall between outline points, so a miss falls through to the point of the
// box nearest the disc center.
func discBox(disc, box Shape) bool {
	fd, fb := disc.Form(), box.Form()
	r2 := fd.Radius * fd.Radius
	for _, p := range boxOutline(fb.Bound) {
		if within(geom.DistSq(fd.Center, p), r2) {
			return true
		}
	}
	return within(geom.DistSq(fd.Center, clampToBound(fb.Bound, fd.Center)), r2)
}

func clampToBound(b orb.Bound, p orb.Point) orb.Point {
	return orb.Point{
		math.Max(b.Min[0], math.Min(p[0], b.Max[0])),
		math.Max(b.Min[1], math.Min(p[1], b.Max[1])),
	}
}

func boxBox(a, b Shape) bool {
	ba, bb := a.Form().Bound, b.Form().Bound
	return within(ba.Min[0], bb.Max[0]) && within(bb.Min[0], ba.Max[0]) &&
		within(ba.Min[1], bb.Max[1]) && within(bb.Min[1], ba.Max[1])
}

// bySamples is the fallback for shapes without a closed-form test: each
// shape's boundary samples are checked against the other's containment.
func bySamples(a, b Shape) bool {
	for _, p := range b.Samples() {
		if a.Contains(p) {
			return true
		}
	}
	for _, p := range a.Samples() {
		if b.Contains(p) {
			return true
		}
	}
	return false
}
