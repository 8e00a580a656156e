package object

import (
	"math"
	"sync"

	"github.com/tomz197/pastelshooter/internal/vec"
)

// Particle tuning.
const (
	ParticleCount       = 18 // Particles per explosion
	ParticleSpeed       = 180.0
	ParticleLifetime    = 0.6
	ParticleLifetimeMin = ParticleLifetime * 0.6
	ParticleDrag        = 0.98 // Velocity kept per 1/60 s
	ParticleSizeMin     = 2
	ParticleSizeMax     = 6
)

// particlePool is a sync.Pool for reusing Particle objects to reduce allocations.
var particlePool = sync.Pool{
	New: func() any {
		return &Particle{}
	},
}

// Particle is a short-lived explosion fragment.
type Particle struct {
	Pos      vec.Vec2
	Vel      vec.Vec2
	Age      float64 // Seconds since spawn
	Lifetime float64 // Seconds until removal
	Drag     float64 // Velocity decay (1.0 = no drag)
	Alpha    int     // Fade hint for rendering, 255 = opaque
	Size     int     // Rendered diameter in pixels

	destroyed bool
}

// NewParticle creates a single particle from the pool.
func NewParticle(pos, vel vec.Vec2, lifetime float64, size int) *Particle {
	p := particlePool.Get().(*Particle)
	*p = Particle{
		Pos:      pos,
		Vel:      vel,
		Lifetime: lifetime,
		Drag:     ParticleDrag,
		Alpha:    255,
		Size:     size,
	}
	return p
}

// Release returns the particle to the pool for reuse.
// Should be called when the particle is removed from the game.
func (p *Particle) Release() {
	particlePool.Put(p)
}

// Update ages the particle, moves it and recomputes its fade.
func (p *Particle) Update(dt float64) bool {
	p.Age += dt
	if p.Age >= p.Lifetime {
		p.Alpha = 0
		p.destroyed = true
		return true
	}

	p.Pos = p.Pos.Add(p.Vel.Scale(dt))
	p.Vel = p.Vel.Scale(math.Pow(p.Drag, dt*60)) // Normalize drag to ~60fps
	p.Alpha = int(255 * (1 - p.Age/p.Lifetime))
	return false
}

// Fade returns Alpha as a fraction in [0, 1].
func (p *Particle) Fade() float64 {
	return float64(p.Alpha) / 255
}

// MarkDestroyed marks the particle for removal.
func (p *Particle) MarkDestroyed() {
	p.destroyed = true
}

// IsDestroyed returns true if the particle is marked for removal.
func (p *Particle) IsDestroyed() bool {
	return p.destroyed
}

// Kind returns KindParticle.
func (p *Particle) Kind() Kind {
	return KindParticle
}
