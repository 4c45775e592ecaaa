package cinescroll

import (
	"math"
	"math/rand/v2"
)

// particle holds per-particle burst state. Unexported; managed by BurstField.
type particle struct {
	velocity Vec3 // unit-scaled explosion direction * speed
	rest     Vec3 // final resting position
	exploded Vec3 // position at the end of the explosion phase
	pos      Vec3
}

// FieldConfig controls how the burst field's particles are laid out.
type FieldConfig struct {
	// Count is the number of particles.
	Count int
	// Speed is the range of explosion distances reached at the end of the
	// explosion phase.
	Speed Range
	// RestRadius is the range of distances from the origin of each
	// particle's final resting position.
	RestRadius Range
	// Seed makes the precomputed layout reproducible.
	Seed uint64
}

// DefaultFieldConfig returns the reference burst layout.
func DefaultFieldConfig() FieldConfig {
	return FieldConfig{
		Count:      600,
		Speed:      Range{Min: 4, Max: 12},
		RestRadius: Range{Min: 3, Max: 9},
		Seed:       7,
	}
}

// BurstField is a pool of particles with precomputed explosion vectors and
// resting positions. Positions are a pure function of burst progress.
type BurstField struct {
	config    FieldConfig
	particles []particle
	positions []Vec3
}

// NewBurstField precomputes a field from cfg.
func NewBurstField(cfg FieldConfig) *BurstField {
	n := cfg.Count
	if n <= 0 {
		n = 128
	}
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	f := &BurstField{
		config:    cfg,
		particles: make([]particle, n),
		positions: make([]Vec3, n),
	}
	for i := range f.particles {
		p := &f.particles[i]
		p.velocity = randomDirection(rng).Mul(randomIn(rng, cfg.Speed))
		p.rest = randomDirection(rng).Mul(randomIn(rng, cfg.RestRadius))
		p.exploded = p.velocity
	}
	return f
}

// Len returns the particle count.
func (f *BurstField) Len() int {
	return len(f.particles)
}

// Positions returns the current particle positions. The slice is reused by
// the next update and MUST NOT be mutated.
func (f *BurstField) Positions() []Vec3 {
	return f.positions
}

// RestPosition returns particle i's final resting position.
func (f *BurstField) RestPosition(i int) Vec3 {
	return f.particles[i].rest
}

// ExplodedPosition returns particle i's position at the end of the explosion.
func (f *BurstField) ExplodedPosition(i int) Vec3 {
	return f.particles[i].exploded
}

// update lays particles out for the given burst state and progress. Armed
// particles sit collapsed at the origin; settled particles rest.
func (f *BurstField) update(state BurstState, progress float64) {
	for i := range f.particles {
		p := &f.particles[i]
		switch state {
		case BurstArmed:
			p.pos = Vec3{}
		case BurstSettled:
			p.pos = p.rest
		default:
			p.pos = burstPosition(p, progress)
		}
		f.positions[i] = p.pos
	}
}

// burstPosition is the two-phase path: cubic ease-out away from the center,
// then a smoothstep glide from the exploded point to the resting point.
func burstPosition(p *particle, progress float64) Vec3 {
	if progress < 0.5 {
		return p.velocity.Mul(easeOutCubic(progress / 0.5))
	}
	return lerpVec3(p.exploded, p.rest, smoothstep((progress-0.5)/0.5))
}

// randomDirection returns a uniformly distributed unit vector.
func randomDirection(rng *rand.Rand) Vec3 {
	z := rng.Float64()*2 - 1
	theta := rng.Float64() * 2 * math.Pi
	r := math.Sqrt(1 - z*z)
	return Vec3{r * math.Cos(theta), r * math.Sin(theta), z}
}

// randomIn returns a random value in [r.Min, r.Max].
func randomIn(rng *rand.Rand, r Range) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}
