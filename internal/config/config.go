// Package config loads simulation scenarios from YAML. A scenario file is
// overlaid on the defaults, normalized, then checked against the embedded
// JSON Schema and the cross-field rules in Validate.
package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/talgya/ant-world/internal/agents"
)

//go:embed scenario.schema.json
var schemaText string

var scenarioSchema = jsonschema.MustCompileString("scenario.schema.json", schemaText)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid scenario")

type Config struct {
	Seed     int64  `yaml:"seed"`
	LogLevel string `yaml:"log_level"`

	World     WorldSpec     `yaml:"world"`
	Tick      TickSpec      `yaml:"tick"`
	Pheromone PheromoneSpec `yaml:"pheromone"`
	Charting  ChartingSpec  `yaml:"charting"`
	Nest      NestSpec      `yaml:"nest"`
	Colonies  []ColonySpec  `yaml:"colonies"`
	Food      FoodSpec      `yaml:"food"`
	Obstacles ObstacleSpec  `yaml:"obstacles"`
	Walls     []WallSpec    `yaml:"walls,omitempty"`
	Journal   JournalSpec   `yaml:"journal"`
}

type WorldSpec struct {
	HalfExtent float64 `yaml:"half_extent"` // World spans ±HalfExtent on both axes
}

type TickSpec struct {
	IntervalMs     int     `yaml:"interval_ms"`
	Speed          float64 `yaml:"speed"`
	MaxTicks       uint64  `yaml:"max_ticks"` // 0 = run until stopped
	TicksPerReport uint64  `yaml:"ticks_per_report"`
}

type PheromoneSpec struct {
	Decay         float64 `yaml:"decay"`
	EmitStrength  float64 `yaml:"emit_strength"`
	CullExhausted bool    `yaml:"cull_exhausted"`
}

type ChartingSpec struct {
	MaxRadius float64 `yaml:"max_radius"` // 0 = unbounded
}

type NestSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Radius float64 `yaml:"radius"`
}

type ColonySpec struct {
	Archetype string  `yaml:"archetype"`
	Count     int     `yaml:"count"`
	Spread    float64 `yaml:"spread"`
}

type FoodSpec struct {
	Count  int     `yaml:"count"`
	Radius float64 `yaml:"radius"`
	Amount int     `yaml:"amount"`
}

type ObstacleSpec struct {
	Enabled          bool    `yaml:"enabled"`
	Spacing          float64 `yaml:"spacing"`
	Frequency        float64 `yaml:"frequency"`
	Octaves          int     `yaml:"octaves"`
	Persistence      float64 `yaml:"persistence"`
	RockThreshold    float64 `yaml:"rock_threshold"`
	OutcropThreshold float64 `yaml:"outcrop_threshold"`
	RockRadius       float64 `yaml:"rock_radius"`
}

type WallSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

type JournalSpec struct {
	Path    string `yaml:"path"`    // Empty disables the journal
	Archive string `yaml:"archive"` // zstd JSONL event archive; empty disables it
}

// Load reads a scenario file. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if strings.TrimSpace(path) == "" {
		cfg.Normalize()
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := Parse(b, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse overlays the YAML document in b onto cfg, then normalizes and
// validates the result.
func Parse(b []byte, cfg *Config) error {
	var doc any
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return err
	}
	if doc != nil {
		if err := validateSchema(doc); err != nil {
			return err
		}
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return err
	}
	cfg.Normalize()
	return cfg.Validate()
}

// validateSchema checks the raw document. It goes through JSON so the
// validator only ever sees JSON value types.
func validateSchema(doc any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := scenarioSchema.Validate(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Defaults returns a single forager colony on a 200×200 field.
func Defaults() Config {
	return Config{
		LogLevel: "info",
		World:    WorldSpec{HalfExtent: 100},
		Tick: TickSpec{
			IntervalMs:     100,
			Speed:          1,
			TicksPerReport: 100,
		},
		Pheromone: PheromoneSpec{
			Decay:         0.1,
			EmitStrength:  3,
			CullExhausted: true,
		},
		Charting: ChartingSpec{MaxRadius: 80},
		Nest:     NestSpec{Radius: 4},
		Colonies: []ColonySpec{
			{Archetype: agents.ArchForager, Count: 20, Spread: 3},
		},
		Food: FoodSpec{Count: 4, Radius: 3, Amount: 50},
		Obstacles: ObstacleSpec{
			Enabled:          true,
			Spacing:          8,
			Frequency:        0.03,
			Octaves:          3,
			Persistence:      0.5,
			RockThreshold:    0.68,
			OutcropThreshold: 0.8,
			RockRadius:       2.5,
		},
	}
}

// Normalize fills zero fields that have a sensible default.
func (c *Config) Normalize() {
	if c == nil {
		return
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Tick.TicksPerReport == 0 {
		c.Tick.TicksPerReport = 100
	}
	if c.Nest.Radius <= 0 {
		c.Nest.Radius = 4
	}
	for i := range c.Colonies {
		c.Colonies[i].Archetype = strings.TrimSpace(c.Colonies[i].Archetype)
		if c.Colonies[i].Spread <= 0 {
			c.Colonies[i].Spread = c.Nest.Radius
		}
	}
	c.Journal.Path = strings.TrimSpace(c.Journal.Path)
	c.Journal.Archive = strings.TrimSpace(c.Journal.Archive)
}

// Validate checks the rules the schema cannot express.
func (c Config) Validate() error {
	if c.World.HalfExtent <= 0 {
		return fmt.Errorf("%w: world.half_extent must be positive", ErrInvalid)
	}
	if c.Tick.Speed < 0 {
		return fmt.Errorf("%w: tick.speed must not be negative", ErrInvalid)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if !c.inWorld(c.Nest.X, c.Nest.Y) {
		return fmt.Errorf("%w: nest (%g, %g) lies outside the world", ErrInvalid, c.Nest.X, c.Nest.Y)
	}
	known := agents.Archetypes()
	for i, col := range c.Colonies {
		if !slices.Contains(known, col.Archetype) {
			return fmt.Errorf("%w: colonies[%d]: unknown archetype %q", ErrInvalid, i, col.Archetype)
		}
	}
	if c.Obstacles.Enabled && c.Obstacles.OutcropThreshold < c.Obstacles.RockThreshold {
		return fmt.Errorf("%w: obstacles.outcrop_threshold below rock_threshold", ErrInvalid)
	}
	return nil
}

func (c Config) inWorld(x, y float64) bool {
	h := c.World.HalfExtent
	return x >= -h && x <= h && y >= -h && y <= h
}

// Interval returns the base tick interval.
func (c Config) Interval() time.Duration {
	return time.Duration(c.Tick.IntervalMs) * time.Millisecond
}

// Level returns the configured log level.
func (c Config) Level() slog.Level {
	l, _ := parseLevel(c.LogLevel)
	return l
}

func parseLevel(s string) (slog.Level, error) {
	switch s {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}
