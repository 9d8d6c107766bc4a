package world

import (
	"github.com/paulmach/orb"

	"github.com/talgya/ant-world/internal/shape"
)

// Obstacle is a static object, usually inserted as collidable.
type Obstacle struct {
	Name string
	Body shape.Shape
}

func (o *Obstacle) Shape() shape.Shape {
	return o.Body
}

// Rock is a round obstacle.
func Rock(center orb.Point, radius float64) *Obstacle {
	return &Obstacle{Name: "rock", Body: shape.Disc{C: center, R: radius}}
}

// Wall is a rectangular obstacle anchored at corner.
func Wall(corner orb.Point, w, h float64) *Obstacle {
	return &Obstacle{Name: "wall", Body: shape.NewBox(corner, w, h)}
}

// Outcrop is an irregular polygonal obstacle.
func Outcrop(pts ...orb.Point) *Obstacle {
	return &Obstacle{Name: "outcrop", Body: shape.NewPolygon(pts...)}
}

// Food is a source ants pick food up from, one unit per visit.
type Food struct {
	Pos    orb.Point `json:"pos"`
	Radius float64   `json:"radius"`
	Amount int       `json:"amount"`
}

func (f *Food) Shape() shape.Shape {
	return shape.Disc{C: f.Pos, R: f.Radius}
}

// Take removes one unit. Returns false when the source is empty.
func (f *Food) Take() bool {
	if f.Amount <= 0 {
		return false
	}
	f.Amount--
	return true
}
