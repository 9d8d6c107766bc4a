package pathing

import (
	"math"

	"github.com/paulmach/orb"

	"github.com/talgya/ant-world/internal/geom"
	"github.com/talgya/ant-world/internal/shape"
	"github.com/talgya/ant-world/internal/world"
)

type node struct {
	pos   orb.Point
	score float64
	edges []int
}

// grid is the transient search graph for one charting call. Node 0 is the
// start; the destination is always the last node.
type grid struct {
	nodes     []node
	dest      int
	colliders []shape.Shape
	radius    float64 // Body radius swept along the destination edges
}

func (g *grid) add(p orb.Point, score float64) int {
	g.nodes = append(g.nodes, node{pos: p, score: score})
	return len(g.nodes) - 1
}

// buildGrid lays concentric rings around the body until the outermost ring
// is within RingStop of the destination distance. Ring r carries 6r points,
// so neighbours stay roughly one step apart as the rings grow.
func (c *Charter) buildGrid(env *world.Environment, body shape.Disc, skip world.Handle, dest orb.Point) *grid {
	cfg := c.Config
	g := &grid{colliders: blockers(env, skip), radius: body.R}
	marked := env.HasMarkers()
	start := body.C

	base := cfg.Plain
	if marked {
		base = cfg.Bonus
	}
	s := c.score(env, marked, start)
	if !geom.Finite(s) {
		s = base
	}
	g.add(start, s)

	dist := geom.Dist(start, dest)
	for r := cfg.RingStep; ; r += cfg.RingStep {
		if cfg.MaxRadius > 0 && r > cfg.MaxRadius {
			break
		}

		count := max(int(math.Round(6*r/cfg.RingStep)), 1)
		for i := 0; i < count; i++ {
			p := geom.Polar(start, r, float64(i)*360/float64(count))
			if g.blocked(body.At(p), p) {
				continue
			}
			score := c.score(env, marked, p)
			if !geom.Finite(score) {
				continue
			}
			g.add(p, score)
		}

		if dist-r <= cfg.RingStop {
			break
		}
	}

	g.dest = g.add(dest, DestScore)
	return g
}

func (c *Charter) score(env *world.Environment, marked bool, p orb.Point) float64 {
	if !marked {
		return c.Config.Plain
	}
	return env.PheromoneAt(p) + c.Config.Bonus
}

// blockers collects the shapes of every collidable except skip.
func blockers(env *world.Environment, skip world.Handle) []shape.Shape {
	var out []shape.Shape
	for _, h := range env.Colliders() {
		if h == skip {
			continue
		}
		if obj, ok := env.Get(h); ok {
			out = append(out, obj.Shape())
		}
	}
	return out
}

// blocked reports whether a body placed at p would touch or sit inside any
// collidable.
func (g *grid) blocked(body shape.Disc, p orb.Point) bool {
	for _, s := range g.colliders {
		if s.Overlaps(body) || s.Contains(p) {
			return true
		}
	}
	return false
}

// clear reports whether the body can walk the straight segment from a to b
// without touching any collidable.
func (g *grid) clear(a, b orb.Point) bool {
	for _, s := range g.colliders {
		if shape.SweepHits(s, a, b, g.radius) {
			return false
		}
	}
	return true
}

type cell [2]int

func cellOf(p orb.Point, size float64) cell {
	return cell{int(math.Floor(p[0] / size)), int(math.Floor(p[1] / size))}
}

// link connects grid points within ConnectRadius of each other, bucketing
// them into cells of that size so only neighbouring cells are compared.
// Points within DestRadius of the destination also get an edge to the
// destination node when the body can walk straight there.
func (g *grid) link(cfg Config) {
	size := cfg.ConnectRadius
	buckets := make(map[cell][]int)
	for i := 0; i < g.dest; i++ {
		k := cellOf(g.nodes[i].pos, size)
		buckets[k] = append(buckets[k], i)
	}

	connect2 := cfg.ConnectRadius * cfg.ConnectRadius
	dest2 := cfg.DestRadius * cfg.DestRadius
	destPos := g.nodes[g.dest].pos

	for i := 0; i < g.dest; i++ {
		n := &g.nodes[i]
		k := cellOf(n.pos, size)
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				for _, j := range buckets[cell{k[0] + dx, k[1] + dy}] {
					if j != i && geom.DistSq(n.pos, g.nodes[j].pos) <= connect2 {
						n.edges = append(n.edges, j)
					}
				}
			}
		}
		if geom.DistSq(n.pos, destPos) <= dest2 && g.clear(n.pos, destPos) {
			n.edges = append(n.edges, g.dest)
		}
	}
}
