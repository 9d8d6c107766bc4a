// Terrain generation using layered simplex noise.
// A lattice over the world extent is sampled; high noise places rocks, the
// highest peaks become irregular outcrops.
package world

import (
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"
	"github.com/paulmach/orb"

	"github.com/talgya/ant-world/internal/geom"
	"github.com/talgya/ant-world/internal/shape"
)

// GenConfig holds obstacle generation parameters.
type GenConfig struct {
	Seed             int64     // Random seed (0 = random)
	Extent           orb.Bound // Area to populate
	Spacing          float64   // Lattice step between candidate sites
	Frequency        float64   // Base noise frequency
	Octaves          int
	Persistence      float64
	RockThreshold    float64 // Normalized noise above which a rock is placed
	OutcropThreshold float64 // Normalized noise above which an outcrop is placed instead
	RockRadius       float64
	KeepOut          []shape.Disc // Areas left clear (nests, food)
}

// DefaultGenConfig returns a sparse rock field over a 200×200 world.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		Extent:           orb.Bound{Min: orb.Point{-100, -100}, Max: orb.Point{100, 100}},
		Spacing:          8,
		Frequency:        0.03,
		Octaves:          3,
		Persistence:      0.5,
		RockThreshold:    0.68,
		OutcropThreshold: 0.8,
		RockRadius:       2.5,
	}
}

// GenerateObstacles places rocks and outcrops over the extent. Obstacles
// overlapping a keep-out area are dropped.
func GenerateObstacles(cfg GenConfig) []*Obstacle {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}
	if cfg.Spacing <= 0 {
		return nil
	}

	noise := opensimplex.NewNormalized(seed)
	rng := rand.New(rand.NewSource(seed + 100))

	var out []*Obstacle
	for x := cfg.Extent.Min[0]; x <= cfg.Extent.Max[0]; x += cfg.Spacing {
		for y := cfg.Extent.Min[1]; y <= cfg.Extent.Max[1]; y += cfg.Spacing {
			n := octaveNoise(noise, x, y, cfg.Octaves, cfg.Frequency, cfg.Persistence)
			if n < cfg.RockThreshold {
				continue
			}

			// Jitter inside the cell so the field doesn't look gridded.
			site := orb.Point{
				x + (rng.Float64()-0.5)*cfg.Spacing*0.5,
				y + (rng.Float64()-0.5)*cfg.Spacing*0.5,
			}

			var o *Obstacle
			if n >= cfg.OutcropThreshold {
				o = outcropAt(site, cfg.RockRadius*2, rng)
			} else {
				o = Rock(site, cfg.RockRadius*(0.6+0.8*rng.Float64()))
			}
			if keptOut(o, cfg.KeepOut) {
				continue
			}
			out = append(out, o)
		}
	}
	return out
}

// outcropAt builds a seven-sided polygon with jittered vertex radii.
func outcropAt(center orb.Point, radius float64, rng *rand.Rand) *Obstacle {
	const sides = 7
	pts := make([]orb.Point, sides)
	for i := range pts {
		r := radius * (0.7 + 0.6*rng.Float64())
		pts[i] = geom.Polar(center, r, float64(i)*360/sides)
	}
	return Outcrop(pts...)
}

func keptOut(o *Obstacle, zones []shape.Disc) bool {
	for _, z := range zones {
		if z.Overlaps(o.Body) {
			return true
		}
	}
	return false
}

// PlaceFood scatters count food sources over the extent, avoiding the
// given obstacles and keep-out areas.
func PlaceFood(cfg GenConfig, count int, radius float64, amount int, obstacles []*Obstacle) []*Food {
	rng := rand.New(rand.NewSource(cfg.Seed + 200))
	w := cfg.Extent.Max[0] - cfg.Extent.Min[0]
	h := cfg.Extent.Max[1] - cfg.Extent.Min[1]

	var out []*Food
	for attempts := 0; len(out) < count && attempts < count*50; attempts++ {
		f := &Food{
			Pos: orb.Point{
				cfg.Extent.Min[0] + rng.Float64()*w,
				cfg.Extent.Min[1] + rng.Float64()*h,
			},
			Radius: radius,
			Amount: amount,
		}
		body := f.Shape()
		blocked := false
		for _, z := range cfg.KeepOut {
			if z.Overlaps(body) {
				blocked = true
				break
			}
		}
		for _, o := range obstacles {
			if blocked {
				break
			}
			blocked = o.Body.Overlaps(body)
		}
		if !blocked {
			out = append(out, f)
		}
	}
	return out
}

// octaveNoise generates fractal noise by layering multiple frequencies.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	if maxVal == 0 {
		return 0
	}
	return total / maxVal
}
