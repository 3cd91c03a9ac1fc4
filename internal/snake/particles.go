package snake

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/snake-evolution/internal/config"
	"github.com/vovakirdan/snake-evolution/internal/core"
)

// Particle is a purely cosmetic entity. Positions and velocities are in
// fractional cell units; age is in seconds.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Age    float64
	MaxAge float64
	Color  core.Color
}

// ParticleSystem owns the ephemeral visual-effect entities. It never
// touches gameplay state.
type ParticleSystem struct {
	cfg       config.ParticleConfig
	rng       *rand.Rand
	particles []Particle
}

// NewParticleSystem creates a system with injected randomness.
func NewParticleSystem(cfg config.ParticleConfig, rng *rand.Rand) *ParticleSystem {
	return &ParticleSystem{
		cfg: cfg,
		rng: rng,
	}
}

// Particles returns the live particles. The slice is owned by the system;
// callers must not mutate it.
func (ps *ParticleSystem) Particles() []Particle {
	return ps.particles
}

// SpawnBurst emits count particles at the center of cell at, each with a
// random velocity direction and magnitude up to the configured max speed.
func (ps *ParticleSystem) SpawnBurst(at Cell, color core.Color, count int) {
	cx := float64(at.X) + 0.5
	cy := float64(at.Y) + 0.5
	for i := 0; i < count; i++ {
		angle := ps.rng.Float64() * 2 * math.Pi
		speed := ps.rng.Float64() * ps.cfg.MaxSpeed
		ps.particles = append(ps.particles, Particle{
			X:      cx,
			Y:      cy,
			VX:     math.Cos(angle) * speed,
			VY:     math.Sin(angle) * speed,
			MaxAge: ps.cfg.MaxAge,
			Color:  color,
		})
	}
}

// Tick advances every particle by velocity×dt, ages it, and removes those
// whose age reached max-age.
func (ps *ParticleSystem) Tick(dt float64) {
	kept := ps.particles[:0]
	for i := range ps.particles {
		p := &ps.particles[i]
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.Age += dt
		if p.Age < p.MaxAge {
			kept = append(kept, *p)
		}
	}
	ps.particles = kept
}

// Reset removes all particles.
func (ps *ParticleSystem) Reset() {
	ps.particles = ps.particles[:0]
}
