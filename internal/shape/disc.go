package shape

import (
	"github.com/paulmach/orb"

	"github.com/talgya/ant-world/internal/geom"
)

// Disc is a circle with a fixed center and radius.
type Disc struct {
	C orb.Point
	R float64
}

// At returns a copy of the disc moved to p.
func (d Disc) At(p orb.Point) Disc {
	return Disc{C: p, R: d.R}
}

func (d Disc) Overlaps(other Shape) bool {
	return Overlaps(d, other)
}

func (d Disc) Contains(p orb.Point) bool {
	return within(geom.DistSq(d.C, p), d.R*d.R)
}

// Samples walks the circle in SampleStep increments, so the ring scales
// with the radius.
func (d Disc) Samples() []orb.Point {
	pts := make([]orb.Point, SampleCount)
	for i := range pts {
		pts[i] = geom.Polar(d.C, d.R, float64(i)*SampleStep)
	}
	return pts
}

func (d Disc) Center() orb.Point {
	return d.C
}

func (d Disc) Form() Form {
	return Form{Kind: FormDisc, Center: d.C, Radius: d.R}
}
