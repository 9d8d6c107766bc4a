package shape

import (
	"github.com/paulmach/orb"
)

// Box is an axis-aligned rectangle.
type Box struct {
	B orb.Bound
}

// NewBox builds a box from a corner and an extent.
func NewBox(corner orb.Point, w, h float64) Box {
	far := orb.Point{corner[0] + w, corner[1] + h}
	return Box{B: orb.MultiPoint{corner, far}.Bound()}
}

func (b Box) Overlaps(other Shape) bool {
	return Overlaps(b, other)
}

func (b Box) Contains(p orb.Point) bool {
	return boundContains(b.B, p)
}

func (b Box) Samples() []orb.Point {
	return perimeterSamples(boundRing(b.B))
}

func (b Box) Center() orb.Point {
	return b.B.Center()
}

func (b Box) Form() Form {
	return Form{Kind: FormBox, Center: b.B.Center(), Bound: b.B}
}

func boundContains(b orb.Bound, p orb.Point) bool {
	return within(b.Min[0], p[0]) && within(p[0], b.Max[0]) &&
		within(b.Min[1], p[1]) && within(p[1], b.Max[1])
}

// boxOutline returns the seven points the disc/box test samples: the min
// corner, the midpoints of the two edges meeting there, the three other
// corners, and the center.
func boxOutline(b orb.Bound) [7]orb.Point {
	mid := b.Center()
	return [7]orb.Point{
		b.Min,
		{mid[0], b.Min[1]},
		{b.Min[0], mid[1]},
		{b.Max[0], b.Min[1]},
		b.Max,
		{b.Min[0], b.Max[1]},
		mid,
	}
}

func boundRing(b orb.Bound) orb.Ring {
	return orb.Ring{
		b.Min,
		{b.Max[0], b.Min[1]},
		b.Max,
		{b.Min[0], b.Max[1]},
		b.Min,
	}
}
