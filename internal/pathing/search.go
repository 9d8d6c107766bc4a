package pathing

import (
	"container/heap"
	"math"
	"slices"

	"github.com/talgya/ant-world/internal/geom"
)

type entry struct {
	node int
	f    float64
}

// openSet orders entries by estimated total cost, earlier nodes first on
// ties.
type openSet []entry

func (o openSet) Len() int { return len(o) }
func (o openSet) Less(i, j int) bool {
	if o[i].f != o[j].f {
		return o[i].f < o[j].f
	}
	return o[i].node < o[j].node
}
func (o openSet) Swap(i, j int) { o[i], o[j] = o[j], o[i] }
func (o *openSet) Push(x any)   { *o = append(*o, x.(entry)) }
func (o *openSet) Pop() any {
	old := *o
	e := old[len(old)-1]
	*o = old[:len(old)-1]
	return e
}

// heuristic discounts the Manhattan distance by the node's desirability.
func (g *grid) heuristic(i int) float64 {
	n := g.nodes[i]
	return geom.Manhattan(n.pos, g.nodes[g.dest].pos) / n.score
}

// search runs A* from node 0 to the destination node. Stale queue entries
// are skipped rather than updated in place.
func (g *grid) search() (Path, bool) {
	cost := make([]float64, len(g.nodes))
	for i := range cost {
		cost[i] = math.Inf(1)
	}
	prev := make([]int, len(g.nodes))
	for i := range prev {
		prev[i] = -1
	}
	closed := make([]bool, len(g.nodes))

	cost[0] = 0
	open := &openSet{{node: 0, f: g.heuristic(0)}}

	for open.Len() > 0 {
		cur := heap.Pop(open).(entry)
		i := cur.node
		if closed[i] {
			continue
		}
		if i == g.dest {
			return g.trace(prev), true
		}
		closed[i] = true

		for _, j := range g.nodes[i].edges {
			if closed[j] {
				continue
			}
			next := cost[i] + geom.Dist(g.nodes[i].pos, g.nodes[j].pos)
			if next < cost[j] {
				cost[j] = next
				prev[j] = i
				heap.Push(open, entry{node: j, f: next + g.heuristic(j)})
			}
		}
	}
	return nil, false
}

func (g *grid) trace(prev []int) Path {
	var path Path
	for i := g.dest; i >= 0; i = prev[i] {
		path = append(path, g.nodes[i].pos)
	}
	slices.Reverse(path)
	return path
}
