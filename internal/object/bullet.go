package object

import (
	"github.com/tomz197/pastelshooter/internal/physics"
	"github.com/tomz197/pastelshooter/internal/vec"
)

// Bullet tuning.
const (
	BulletSpeed  = 700.0
	BulletWidth  = 6.0
	BulletHeight = 14.0
	BulletKillY  = -20.0 // Removed once above this line
)

// Bullet is a projectile fired upward by the player.
type Bullet struct {
	Pos       vec.Vec2
	Vel       vec.Vec2
	destroyed bool
}

// NewBullet creates a bullet at pos traveling straight up.
func NewBullet(pos vec.Vec2) *Bullet {
	return &Bullet{
		Pos: pos,
		Vel: vec.New(0, -BulletSpeed),
	}
}

// Update moves the bullet and flags it once it leaves the top of the field.
func (b *Bullet) Update(dt float64) bool {
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
	if b.Pos.Y < BulletKillY {
		b.destroyed = true
	}
	return b.destroyed
}

// Rect returns the bullet's bounding box.
func (b *Bullet) Rect() physics.Rect {
	return physics.RectFromCenter(b.Pos, BulletWidth, BulletHeight)
}

// MarkDestroyed marks the bullet for removal.
func (b *Bullet) MarkDestroyed() {
	b.destroyed = true
}

// IsDestroyed returns true if the bullet is marked for removal.
func (b *Bullet) IsDestroyed() bool {
	return b.destroyed
}

// Kind returns KindBullet.
func (b *Bullet) Kind() Kind {
	return KindBullet
}
