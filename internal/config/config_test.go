package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/ant-world/internal/agents"
)

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, slog.LevelInfo, cfg.Level())
	assert.Equal(t, 100*time.Millisecond, cfg.Interval())
}

func TestParseOverlaysDefaults(t *testing.T) {
	cfg := Defaults()
	err := Parse([]byte(`
seed: 42
log_level: DEBUG
pheromone:
  decay: 0.25
colonies:
  - archetype: scout
    count: 5
`), &cfg)
	require.NoError(t, err)

	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
	assert.Equal(t, 0.25, cfg.Pheromone.Decay)
	assert.True(t, cfg.Pheromone.CullExhausted, "unset fields keep their default")
	assert.Equal(t, 3.0, cfg.Pheromone.EmitStrength)
	require.Len(t, cfg.Colonies, 1)
	assert.Equal(t, agents.ArchScout, cfg.Colonies[0].Archetype)
	assert.Equal(t, cfg.Nest.Radius, cfg.Colonies[0].Spread, "spread defaults to the nest radius")
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown field", "colour: red\n"},
		{"negative decay", "pheromone:\n  decay: -1\n"},
		{"wrong type", "seed: lots\n"},
		{"unknown archetype", "colonies:\n  - archetype: queen\n    count: 1\n"},
		{"missing colony count", "colonies:\n  - archetype: forager\n"},
		{"nest outside world", "world:\n  half_extent: 10\nnest:\n  x: 50\n"},
		{"bad log level", "log_level: loud\n"},
		{"inverted thresholds", "obstacles:\n  rock_threshold: 0.9\n  outcrop_threshold: 0.5\n"},
		{"zero-width wall", "walls:\n  - {x: 0, y: 0, w: 0, h: 5}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			err := Parse([]byte(tt.doc), &cfg)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestParseMalformedYAML(t *testing.T) {
	cfg := Defaults()
	err := Parse([]byte("seed: [1, 2"), &cfg)
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
walls:
  - {x: -20, y: 10, w: 40, h: 2}
journal:
  path: "  run.db  "
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Len(t, cfg.Walls, 1)
	assert.Equal(t, WallSpec{X: -20, Y: 10, W: 40, H: 2}, cfg.Walls[0])
	assert.Equal(t, "run.db", cfg.Journal.Path)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestShippedScenarioLoads(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "configs", "scenario.yaml"))
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.Colonies)
}
