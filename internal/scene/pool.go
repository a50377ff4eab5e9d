package scene

import (
	"math"

	"snowglobe/internal/core"
)

// wrapMargin is the off-screen band particles may occupy before being wrapped
// back to the opposite edge.
const wrapMargin = 20.0

// Particle is a single precipitation element. Density is a per-particle phase
// seed in [0, 200) that desynchronizes the sinusoidal drift across particles;
// it and the intrinsic velocity offsets are fixed at creation.
type Particle struct {
	X, Y    float64
	Radius  float64
	Density float64
	VX, VY  float64
}

// Pool owns the particle collection. Reconcile adjusts its structure when
// published parameters change; Advance mutates positions only. No other code
// inserts or removes particles except PopAt.
type Pool struct {
	particles []Particle
	rng       *core.RNG
}

// NewPool constructs an empty pool drawing randomness from rng.
func NewPool(rng *core.RNG) *Pool {
	return &Pool{rng: rng}
}

// Len returns the number of live particles.
func (p *Pool) Len() int { return len(p.particles) }

// Particles exposes the backing slice for rendering. Callers must not change
// its structure.
func (p *Pool) Particles() []Particle { return p.particles }

// Reconcile resizes the pool to target and clamps every radius into
// [minSize, maxSize]. Growth appends fresh randomized particles inside the
// viewport; shrinking drops the newest entries. Run on parameter changes, not
// per tick.
func (p *Pool) Reconcile(target int, minSize, maxSize, width, height float64) {
	if target < 0 {
		target = 0
	}
	if minSize > maxSize {
		minSize, maxSize = maxSize, minSize
	}

	for len(p.particles) < target {
		p.particles = append(p.particles, p.spawn(minSize, maxSize, width, height))
	}
	if len(p.particles) > target {
		p.particles = p.particles[:target]
	}

	for i := range p.particles {
		if p.particles[i].Radius < minSize {
			p.particles[i].Radius = minSize
		}
		if p.particles[i].Radius > maxSize {
			p.particles[i].Radius = maxSize
		}
	}
}

func (p *Pool) spawn(minSize, maxSize, width, height float64) Particle {
	return Particle{
		X:       p.rng.Float64() * width,
		Y:       p.rng.Float64() * height,
		Radius:  p.rng.Float64In(minSize, maxSize),
		Density: p.rng.Float64() * 200,
		VX:      p.rng.Float64In(-0.25, 0.25),
		VY:      p.rng.Float64In(0.5, 1.0),
	}
}

// Advance moves every particle by one tick under a single parameter snapshot
// and applies wrap-around inside the same tick. Respawning off the bottom
// re-randomizes the horizontal position but keeps radius, density, and
// intrinsic velocity.
func (p *Pool) Advance(params Params, width, height float64) {
	for i := range p.particles {
		pt := &p.particles[i]
		pt.X += math.Sin(pt.Density+float64(i))*0.3 + params.WindSpeed + pt.VX
		pt.Y += math.Cos(pt.Density+float64(i))*0.1 + params.FallSpeed + pt.VY

		if pt.X > width+wrapMargin {
			pt.X = -wrapMargin
		} else if pt.X < -wrapMargin {
			pt.X = width + wrapMargin
		}
		if pt.Y > height+wrapMargin {
			pt.Y = -wrapMargin
			pt.X = p.rng.Float64() * width
		}
	}
}

// PopAt removes the topmost (most recently inserted) particle whose hit
// radius covers the point. The hit radius is twice the particle radius with a
// 15-pixel floor. At most one particle is removed; the return value reports
// whether one was.
func (p *Pool) PopAt(x, y float64) bool {
	for i := len(p.particles) - 1; i >= 0; i-- {
		pt := p.particles[i]
		hit := math.Max(pt.Radius*2, 15)
		if math.Hypot(pt.X-x, pt.Y-y) < hit {
			p.particles = append(p.particles[:i], p.particles[i+1:]...)
			return true
		}
	}
	return false
}
