// Package object defines the simulated entity kinds and their update rules.
//
// The set of kinds is closed: Player, Bullet, Enemy, Particle and Star.
// Entities never reach back into the session; the frame loop applies all
// cross-entity effects (collisions, scoring, spawning).
package object

// Playfield dimensions in logical pixels. Origin is top-left, y grows downward.
const (
	Width  = 900
	Height = 600
)

// Bounds is the size of the playfield entities move in.
type Bounds struct {
	Width  float64
	Height float64
}

// Playfield is the default playfield.
var Playfield = Bounds{Width: Width, Height: Height}

// Kind tags an entity's variant.
type Kind int

const (
	KindPlayer Kind = iota
	KindBullet
	KindEnemy
	KindParticle
	KindStar
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindBullet:
		return "bullet"
	case KindEnemy:
		return "enemy"
	case KindParticle:
		return "particle"
	case KindStar:
		return "star"
	default:
		return "unknown"
	}
}

// Rand is the random source used for spawning. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// uniform returns a value in [lo, hi).
func uniform(rng Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// randInt returns an integer in [lo, hi], inclusive on both ends.
func randInt(rng Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

// Destructible is implemented by entities that can be flagged for removal.
type Destructible interface {
	// MarkDestroyed flags the entity for removal at the end of the tick.
	// Marking an already destroyed entity is a no-op.
	MarkDestroyed()
	// IsDestroyed returns true if the entity is flagged for removal.
	IsDestroyed() bool
}

// Mover is an entity that advances on its own each tick.
type Mover interface {
	Destructible
	// Update advances the entity by dt seconds and reports whether it
	// flagged itself for removal.
	Update(dt float64) (remove bool)
}

// Releasable is implemented by pooled entities that can be returned to a pool.
type Releasable interface {
	// Release returns the entity to its pool for reuse.
	Release()
}

// ReleaseObject releases an entity back to its pool if it implements Releasable.
func ReleaseObject(obj any) {
	if r, ok := obj.(Releasable); ok {
		r.Release()
	}
}

// UpdateAll advances every live entity in items by dt.
func UpdateAll[T Mover](items []T, dt float64) {
	for _, it := range items {
		if it.IsDestroyed() {
			continue
		}
		it.Update(dt)
	}
}

// Compact removes destroyed entities in place and releases pooled ones.
// The backing array is reused.
func Compact[T Destructible](items []T) []T {
	kept := items[:0]
	for _, it := range items {
		if it.IsDestroyed() {
			ReleaseObject(it)
			continue
		}
		kept = append(kept, it)
	}
	clear(items[len(kept):])
	return kept
}
