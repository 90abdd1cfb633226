package lander

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
)

// Particle is a single short-lived explosion fragment with independent
// ballistic motion. Position and velocity are both in the screen frame.
type Particle struct {
	Position        core.Vec2
	Velocity        core.Vec2
	Lifetime        float64 // seconds remaining, monotonically decreasing
	InitialLifetime float64
}

// FadeRatio returns Lifetime/InitialLifetime clamped to [0, 1].
// Size, color and alpha are pure functions of this ratio.
func (p Particle) FadeRatio() float64 {
	if p.InitialLifetime <= 0 {
		return 0
	}
	return core.ClampF(p.Lifetime/p.InitialLifetime, 0, 1)
}

// Size returns the particle's render radius, shrinking as it fades.
func (p Particle) Size() float64 {
	return 2.0 * p.FadeRatio()
}

// Color returns the particle's render color: a hot core early in its life,
// an orange fade afterwards.
func (p Particle) Color() core.Color {
	if p.Lifetime > p.InitialLifetime*0.6 {
		return core.ColorBrightYellow
	}
	return core.ColorOrange
}

// Explosion owns a burst of particles spawned at a single origin.
// It has no identity beyond its particle set.
type Explosion struct {
	particles []Particle
}

// SpawnExplosion creates a full particle burst at origin: uniform random
// direction, speed and lifetime per particle, drawn from the injected RNG.
func SpawnExplosion(origin core.Vec2, ec config.ExplosionConfig, rng *rand.Rand) *Explosion {
	particles := make([]Particle, ec.ParticleCount)
	for i := range particles {
		angle := rng.Float64() * core.TwoPi
		speed := ec.MinSpeed + rng.Float64()*(ec.MaxSpeed-ec.MinSpeed)
		lifetime := ec.MinLifetime + rng.Float64()*(ec.MaxLifetime-ec.MinLifetime)

		particles[i] = Particle{
			Position: origin,
			Velocity: core.Vec2{
				X: speed * math.Cos(angle),
				Y: speed * math.Sin(angle),
			},
			Lifetime:        lifetime,
			InitialLifetime: lifetime,
		}
	}
	return &Explosion{particles: particles}
}

// Tick advances every particle by DT and drops the dead ones.
// The per-tick velocity delta is intentionally unscaled by DT; it is a
// stylized drag, not the lander's gravity.
func (e *Explosion) Tick() {
	alive := e.particles[:0]
	for i := range e.particles {
		p := &e.particles[i]
		p.Position = p.Position.Add(p.Velocity.Scale(DT))
		p.Lifetime -= DT
		p.Velocity.Y -= 1.0

		if p.Lifetime > 0 {
			alive = append(alive, *p)
		}
	}
	e.particles = alive
}

// Particles returns the live particle set.
func (e *Explosion) Particles() []Particle {
	return e.particles
}

// Finished reports whether every particle has expired. The explosion
// object itself lives until the session discards it.
func (e *Explosion) Finished() bool {
	return len(e.particles) == 0
}
