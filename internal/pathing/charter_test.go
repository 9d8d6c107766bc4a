package pathing

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/ant-world/internal/agents"
	"github.com/talgya/ant-world/internal/geom"
	"github.com/talgya/ant-world/internal/shape"
	"github.com/talgya/ant-world/internal/world"
)

func spawnAnt(env *world.Environment, p orb.Point) world.Handle {
	return env.Insert(&agents.Ant{Pos: p, Home: p}, world.RoleAgent|world.RoleCollidable|world.RoleRenderable)
}

func TestChartOpenGround(t *testing.T) {
	env := world.New()
	h := spawnAnt(env, geom.Pt(0, 0))
	dest := geom.Pt(10, 0)

	path, err := NewCharter(DefaultConfig()).Chart(env, h, dest)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(path), 2)
	assert.Equal(t, geom.Pt(0, 0), path[0])
	assert.Equal(t, dest, path[len(path)-1])
}

func TestChartAroundRock(t *testing.T) {
	env := world.New()
	h := spawnAnt(env, geom.Pt(0, 0))
	rock := world.Rock(geom.Pt(12, 0), 1.5)
	env.Insert(rock, world.RoleCollidable|world.RoleRenderable)
	dest := geom.Pt(25, 0)

	path, err := NewCharter(DefaultConfig()).Chart(env, h, dest)
	require.NoError(t, err)
	assert.Equal(t, geom.Pt(0, 0), path[0])
	assert.Equal(t, dest, path[len(path)-1])

	for _, p := range path[1 : len(path)-1] {
		body := shape.Disc{C: p, R: agents.BodyRadius}
		assert.False(t, rock.Body.Overlaps(body), "waypoint %v touches the rock", p)
	}
	for i := 1; i < len(path)-1; i++ {
		assert.LessOrEqual(t, geom.Dist(path[i-1], path[i]), 1.5+1e-9)
	}
}

func TestChartEnclosedDestination(t *testing.T) {
	env := world.New()
	h := spawnAnt(env, geom.Pt(0, 0))
	for _, w := range []*world.Obstacle{
		world.Wall(geom.Pt(25, -5), 2, 10),
		world.Wall(geom.Pt(33, -5), 2, 10),
		world.Wall(geom.Pt(25, -5), 10, 2),
		world.Wall(geom.Pt(25, 3), 10, 2),
	} {
		env.Insert(w, world.RoleCollidable)
	}

	_, err := NewCharter(DefaultConfig()).Chart(env, h, geom.Pt(30, 0))
	assert.ErrorIs(t, err, ErrNoPath)
}

func TestChartThinWalledEnclosure(t *testing.T) {
	for _, thick := range []float64{0.01, 0.05, 0.1, 0.2} {
		for _, dest := range []orb.Point{{30, 0}, {28, -2}, {32, 2}, {26, -2}} {
			env := world.New()
			h := spawnAnt(env, geom.Pt(0, 0))
			for _, w := range []*world.Obstacle{
				world.Wall(geom.Pt(25, -5), thick, 10),
				world.Wall(geom.Pt(35-thick, -5), thick, 10),
				world.Wall(geom.Pt(25, -5), 10, thick),
				world.Wall(geom.Pt(25, 5-thick), 10, thick),
			} {
				env.Insert(w, world.RoleCollidable)
			}

			path, err := NewCharter(DefaultConfig()).Chart(env, h, dest)
			assert.ErrorIs(t, err, ErrNoPath, "thickness %v dest %v: got %v", thick, dest, path)
		}
	}
}

func TestChartLastLegClearsBody(t *testing.T) {
	dest := geom.Pt(9, 0)

	env := world.New()
	h := spawnAnt(env, geom.Pt(0, 0))
	env.Insert(world.Rock(geom.Pt(5, 1.8), 0.5), world.RoleCollidable)
	_, err := NewCharter(DefaultConfig()).Chart(env, h, dest)
	assert.ErrorIs(t, err, ErrNoPath, "every straight leg to the destination grazes the rock")

	env = world.New()
	h = spawnAnt(env, geom.Pt(0, 0))
	rock := world.Rock(geom.Pt(5, 4), 0.5)
	env.Insert(rock, world.RoleCollidable)
	path, err := NewCharter(DefaultConfig()).Chart(env, h, dest)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(path), 2)
	last := path[len(path)-2]
	assert.False(t, shape.SweepHits(rock.Body, last, dest, agents.BodyRadius))
}

func TestChartDestinationInsideRock(t *testing.T) {
	env := world.New()
	h := spawnAnt(env, geom.Pt(0, 0))
	env.Insert(world.Rock(geom.Pt(8, 0), 1), world.RoleCollidable)

	_, err := NewCharter(DefaultConfig()).Chart(env, h, geom.Pt(8, 0))
	assert.ErrorIs(t, err, ErrNoPath)
}

func TestChartIgnoresOwnBody(t *testing.T) {
	env := world.New()
	h := spawnAnt(env, geom.Pt(0, 0))
	c := NewCharter(DefaultConfig())
	a, ok := env.Ant(h)
	require.True(t, ok)

	_, err := c.ChartFrom(env, a.Body(), 0, geom.Pt(10, 0))
	assert.ErrorIs(t, err, ErrNoPath, "own body blocks every ring point")

	_, err = c.ChartFrom(env, a.Body(), h, geom.Pt(10, 0))
	assert.NoError(t, err)
}

func TestChartUnknownAnt(t *testing.T) {
	env := world.New()
	rock := env.Insert(world.Rock(geom.Pt(0, 0), 1), world.RoleCollidable)

	_, err := NewCharter(DefaultConfig()).Chart(env, rock, geom.Pt(5, 5))
	assert.ErrorIs(t, err, world.ErrNotFound)
}

func TestChartRejectsNonFiniteDestination(t *testing.T) {
	env := world.New()
	h := spawnAnt(env, geom.Pt(0, 0))

	_, err := NewCharter(DefaultConfig()).Chart(env, h, geom.Pt(math.NaN(), 0))
	assert.ErrorIs(t, err, ErrNoPath)
}

func TestGridRingLayout(t *testing.T) {
	env := world.New()
	c := NewCharter(DefaultConfig())
	body := shape.Disc{C: geom.Pt(0, 0), R: agents.BodyRadius}

	g := c.buildGrid(env, body, 0, geom.Pt(10, 0))
	assert.Len(t, g.nodes, 1+6+1, "start, ring 1, destination")
	assert.Equal(t, len(g.nodes)-1, g.dest)
	assert.Equal(t, DestScore, g.nodes[g.dest].score)

	g = c.buildGrid(env, body, 0, geom.Pt(13, 0))
	assert.Len(t, g.nodes, 1+6+12+18+1)
}

func TestGridScores(t *testing.T) {
	env := world.New()
	c := NewCharter(DefaultConfig())
	body := shape.Disc{C: geom.Pt(0, 0), R: agents.BodyRadius}

	g := c.buildGrid(env, body, 0, geom.Pt(10, 0))
	for _, n := range g.nodes[:g.dest] {
		assert.Equal(t, 1.0, n.score)
	}

	env.Insert(&world.Marker{Pos: geom.Pt(-50, -50), Strength: 1}, world.RoleRenderable)
	env.Insert(&world.Marker{Pos: geom.Pt(1, 0.5), Strength: 2}, world.RoleRenderable)
	g = c.buildGrid(env, body, 0, geom.Pt(10, 0))

	boosted := 0
	for _, n := range g.nodes[:g.dest] {
		assert.GreaterOrEqual(t, n.score, 2.0)
		if n.score > 2 {
			boosted++
		}
	}
	assert.Positive(t, boosted)
}

func TestGridDropsNonFiniteScores(t *testing.T) {
	env := world.New()
	c := NewCharter(DefaultConfig())
	body := shape.Disc{C: geom.Pt(0, 0), R: agents.BodyRadius}

	// The first ring point sits on a marker center, where the field is
	// infinite.
	onRing := geom.Polar(geom.Pt(0, 0), 1, 0)
	env.Insert(&world.Marker{Pos: onRing, Strength: 0.5}, world.RoleRenderable)

	g := c.buildGrid(env, body, 0, geom.Pt(10, 0))
	assert.Len(t, g.nodes, 1+5+1)
	for _, n := range g.nodes {
		assert.True(t, geom.Finite(n.score))
		assert.NotEqual(t, onRing, n.pos)
	}
}

func TestSearchPrefersCheaperRoute(t *testing.T) {
	g := &grid{}
	g.add(geom.Pt(0, 0), 1)  // 0 start
	g.add(geom.Pt(5, 5), 1)  // 1 detour
	g.add(geom.Pt(5, 0), 1)  // 2 direct
	g.add(geom.Pt(10, 0), 1) // 3 dest
	g.dest = 3
	g.nodes[0].edges = []int{1, 2}
	g.nodes[1].edges = []int{3}
	g.nodes[2].edges = []int{3}

	path, ok := g.search()
	require.True(t, ok)
	assert.Equal(t, Path{geom.Pt(0, 0), geom.Pt(5, 0), geom.Pt(10, 0)}, path)
}

func TestSearchUnreachable(t *testing.T) {
	g := &grid{}
	g.add(geom.Pt(0, 0), 1)
	g.add(geom.Pt(1, 0), 1)
	g.dest = g.add(geom.Pt(10, 0), 1)
	g.nodes[0].edges = []int{1}

	_, ok := g.search()
	assert.False(t, ok)
}

func TestNewCharterFillsDefaults(t *testing.T) {
	c := NewCharter(Config{RingStop: 4})
	assert.Equal(t, 4.0, c.Config.RingStop)
	assert.Equal(t, 1.5, c.Config.ConnectRadius)
	assert.Equal(t, 10.0, c.Config.DestRadius)
}
