package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/ant-world/internal/geom"
	"github.com/talgya/ant-world/internal/shape"
)

func TestGenerateObstaclesDeterministic(t *testing.T) {
	cfg := DefaultGenConfig()
	cfg.Seed = 42
	cfg.RockThreshold = 0.5

	a := GenerateObstacles(cfg)
	b := GenerateObstacles(cfg)
	require.NotEmpty(t, a)
	require.Len(t, b, len(a))
	for i := range a {
		assert.Equal(t, a[i].Name, b[i].Name)
		assert.Equal(t, a[i].Body.Center(), b[i].Body.Center())
	}
}

func TestGenerateObstaclesRespectsKeepOut(t *testing.T) {
	cfg := DefaultGenConfig()
	cfg.Seed = 7
	cfg.RockThreshold = 0
	cfg.OutcropThreshold = 2
	nest := shape.Disc{C: geom.Pt(0, 0), R: 20}
	cfg.KeepOut = []shape.Disc{nest}

	obs := GenerateObstacles(cfg)
	require.NotEmpty(t, obs)
	for _, o := range obs {
		assert.False(t, nest.Overlaps(o.Body), "obstacle at %v", o.Body.Center())
		assert.Equal(t, "rock", o.Name)
	}
}

func TestGenerateObstaclesOutcrops(t *testing.T) {
	cfg := DefaultGenConfig()
	cfg.Seed = 7
	cfg.RockThreshold = 0
	cfg.OutcropThreshold = 0

	obs := GenerateObstacles(cfg)
	require.NotEmpty(t, obs)
	for _, o := range obs {
		assert.Equal(t, shape.FormOpaque, o.Body.Form().Kind)
	}
}

func TestPlaceFoodAvoidsObstacles(t *testing.T) {
	cfg := DefaultGenConfig()
	cfg.Seed = 3
	wall := Wall(geom.Pt(-100, -100), 200, 100)

	food := PlaceFood(cfg, 5, 2, 10, []*Obstacle{wall})
	require.Len(t, food, 5)
	for _, f := range food {
		assert.False(t, wall.Body.Overlaps(f.Shape()))
		assert.Equal(t, 10, f.Amount)
	}
}
