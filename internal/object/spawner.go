package object

import (
	"math"

	"github.com/tomz197/pastelshooter/internal/vec"
)

// Star layer weights (near, mid, far) as cumulative thresholds.
const (
	starNearWeight = 0.2
	starMidWeight  = 0.4
)

// Spawner creates entities from a random source.
type Spawner struct {
	rng    Rand
	bounds Bounds
}

// NewSpawner creates a spawner for a playfield of the given bounds.
func NewSpawner(rng Rand, bounds Bounds) *Spawner {
	return &Spawner{rng: rng, bounds: bounds}
}

// Rand returns the spawner's random source.
func (s *Spawner) Rand() Rand {
	return s.rng
}

// SpawnEnemy creates an enemy above the top edge at a random column.
func (s *Spawner) SpawnEnemy() *Enemy {
	x := uniform(s.rng, EnemySpawnMargin, s.bounds.Width-EnemySpawnMargin)
	y := uniform(s.rng, EnemySpawnYMin, EnemySpawnYMax)
	speed := uniform(s.rng, EnemySpeedMin, EnemySpeedMax)
	phase := s.rng.Float64() * 2 * math.Pi
	amp := uniform(s.rng, EnemyAmpMin, EnemyAmpMax)
	return NewEnemy(vec.New(x, y), speed, phase, amp, s.bounds)
}

// SpawnExplosion appends count particles bursting from at to dst.
func (s *Spawner) SpawnExplosion(dst []*Particle, at vec.Vec2, count int) []*Particle {
	for i := 0; i < count; i++ {
		angle := s.rng.Float64() * 2 * math.Pi
		speed := s.rng.Float64() * ParticleSpeed
		lifetime := uniform(s.rng, ParticleLifetimeMin, ParticleLifetime)
		size := randInt(s.rng, ParticleSizeMin, ParticleSizeMax)
		dst = append(dst, NewParticle(at, vec.FromAngle(angle, speed), lifetime, size))
	}
	return dst
}

// SpawnStarfield scatters count stars over the playfield.
func (s *Spawner) SpawnStarfield(count int) []Star {
	stars := make([]Star, count)
	for i := range stars {
		x := uniform(s.rng, 0, s.bounds.Width)
		y := uniform(s.rng, 0, s.bounds.Height)
		layer := s.pickLayer()
		var size int
		if layer == LayerNear {
			size = randInt(s.rng, 2, 4)
		} else {
			size = randInt(s.rng, 1, 3)
		}
		stars[i] = Star{Pos: vec.New(x, y), Size: size, Layer: layer}
	}
	return stars
}

func (s *Spawner) pickLayer() Layer {
	r := s.rng.Float64()
	switch {
	case r < starNearWeight:
		return LayerNear
	case r < starNearWeight+starMidWeight:
		return LayerMid
	default:
		return LayerFar
	}
}
