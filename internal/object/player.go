package object

import (
	"github.com/tomz197/pastelshooter/internal/input"
	"github.com/tomz197/pastelshooter/internal/physics"
	"github.com/tomz197/pastelshooter/internal/vec"
)

// Player tuning.
const (
	PlayerSpeed        = 340.0 // Pixels per second
	PlayerWidth        = 48.0
	PlayerHeight       = 36.0
	PlayerFireCooldown = 0.18 // Seconds between volleys
	PlayerMaxTilt      = 12.0 // Degrees at full horizontal speed
	MuzzleSpread       = 10.0 // Horizontal offset of each bullet from the muzzle
)

// Player is the ship controlled by the input snapshot.
type Player struct {
	Pos   vec.Vec2
	Vel   vec.Vec2
	Tilt  float64 // Visual tilt in degrees (cosmetic only)
	Score int
	Lives int

	fireCooldown float64
	min, max     vec.Vec2 // Clamp box for Pos
}

// NewPlayer creates a ship at pos that stays within bounds.
func NewPlayer(pos vec.Vec2, bounds Bounds, lives int) *Player {
	p := &Player{
		Lives: lives,
		min:   vec.New(PlayerWidth/2, PlayerHeight/2),
		max:   vec.New(bounds.Width-PlayerWidth/2, bounds.Height-PlayerHeight/2),
	}
	p.Pos = pos.Clamp(p.min, p.max)
	return p
}

// Update moves the ship from the held directions and ticks the fire cooldown.
func (p *Player) Update(dt float64, in input.Input) {
	move := vec.New(in.Horizontal(), in.Vertical())
	if move.LengthSquared() > 0 {
		move = move.Normalize()
	}
	p.Vel = move.Scale(PlayerSpeed)
	p.Pos = p.Pos.Add(p.Vel.Scale(dt)).Clamp(p.min, p.max)

	p.Tilt = -p.Vel.X / PlayerSpeed * PlayerMaxTilt

	p.fireCooldown -= dt
	if p.fireCooldown < 0 {
		p.fireCooldown = 0
	}
}

// CanShoot returns true once the fire cooldown has elapsed.
func (p *Player) CanShoot() bool {
	return p.fireCooldown <= 0
}

// Shoot restarts the fire cooldown.
func (p *Player) Shoot() {
	p.fireCooldown = PlayerFireCooldown
}

// FireCooldown returns the seconds left until the next volley.
func (p *Player) FireCooldown() float64 {
	return p.fireCooldown
}

// Rect returns the ship's bounding box.
func (p *Player) Rect() physics.Rect {
	return physics.RectFromCenter(p.Pos, PlayerWidth, PlayerHeight)
}

// Muzzle returns the point bullets leave from (middle of the top edge).
func (p *Player) Muzzle() vec.Vec2 {
	return p.Rect().MidTop()
}

// Volley returns the pair of bullets for one shot, left then right.
func (p *Player) Volley() [2]*Bullet {
	m := p.Muzzle()
	return [2]*Bullet{
		NewBullet(m.Sub(vec.New(MuzzleSpread, 0))),
		NewBullet(m.Add(vec.New(MuzzleSpread, 0))),
	}
}

// Bounds returns the clamp box for the ship's center.
func (p *Player) Bounds() (lo, hi vec.Vec2) {
	return p.min, p.max
}

// Kind returns KindPlayer.
func (p *Player) Kind() Kind {
	return KindPlayer
}
