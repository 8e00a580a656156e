package object

import (
	"math"

	"github.com/tomz197/pastelshooter/internal/physics"
	"github.com/tomz197/pastelshooter/internal/vec"
)

// Enemy tuning.
const (
	EnemySpeedMin    = 60.0
	EnemySpeedMax    = 140.0
	EnemyWidth       = 42.0
	EnemyHeight      = 30.0
	EnemyWobbleRate  = 4.0 // Phase advance in radians per second
	EnemyAmpMin      = 8.0
	EnemyAmpMax      = 26.0
	EnemySpawnMargin = 40.0 // Horizontal inset of spawn positions
	EnemySpawnYMin   = -110.0
	EnemySpawnYMax   = -30.0
	EnemyKillMargin  = 40.0 // Removed once this far below the field
)

// Enemy descends at a constant speed with a sinusoidal horizontal wobble.
type Enemy struct {
	Pos       vec.Vec2
	Speed     float64 // Downward pixels per second
	Phase     float64 // Oscillation phase in radians
	Amplitude float64 // Oscillation amplitude

	killY     float64
	destroyed bool
}

// NewEnemy creates an enemy at pos falling through a field of the given bounds.
func NewEnemy(pos vec.Vec2, speed, phase, amplitude float64, bounds Bounds) *Enemy {
	return &Enemy{
		Pos:       pos,
		Speed:     speed,
		Phase:     phase,
		Amplitude: amplitude,
		killY:     bounds.Height + EnemyKillMargin,
	}
}

// Update moves the enemy and flags it once it leaves the bottom of the field.
func (e *Enemy) Update(dt float64) bool {
	e.Phase += EnemyWobbleRate * dt
	wobble := math.Sin(e.Phase) * e.Amplitude
	e.Pos = e.Pos.Add(vec.New(wobble*dt, e.Speed*dt))
	if e.Pos.Y > e.killY {
		e.destroyed = true
	}
	return e.destroyed
}

// Rect returns the enemy's bounding box.
func (e *Enemy) Rect() physics.Rect {
	return physics.RectFromCenter(e.Pos, EnemyWidth, EnemyHeight)
}

// MarkDestroyed marks the enemy for removal.
func (e *Enemy) MarkDestroyed() {
	e.destroyed = true
}

// IsDestroyed returns true if the enemy is marked for removal.
func (e *Enemy) IsDestroyed() bool {
	return e.destroyed
}

// Kind returns KindEnemy.
func (e *Enemy) Kind() Kind {
	return KindEnemy
}
