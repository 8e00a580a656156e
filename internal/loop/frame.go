package loop

import (
	"github.com/tomz197/pastelshooter/internal/object"
)

// HUD is the session data shown over the playfield.
type HUD struct {
	Score  int
	Lives  int
	Paused bool
}

// Frame is the render snapshot handed to a frontend after each tick.
// It holds copies, so renderers never touch live session state. A Frame is
// reused between ticks and is only valid until the next call to Session.Frame.
type Frame struct {
	Bounds    object.Bounds
	Stars     []object.Star // Spawn order; draw by Layer far to near
	Player    object.Player
	Enemies   []object.Enemy
	Bullets   []object.Bullet
	Particles []object.Particle
	HUD       HUD
}

// Frame builds the render snapshot for the current session state.
func (s *Session) Frame() *Frame {
	f := &s.frame
	f.Bounds = s.bounds
	f.Player = *s.Player
	f.HUD = HUD{
		Score:  s.Player.Score,
		Lives:  s.Player.Lives,
		Paused: s.state == StatePaused,
	}

	f.Stars = append(f.Stars[:0], s.Stars...)

	f.Enemies = f.Enemies[:0]
	for _, e := range s.Enemies {
		f.Enemies = append(f.Enemies, *e)
	}
	f.Bullets = f.Bullets[:0]
	for _, b := range s.Bullets {
		f.Bullets = append(f.Bullets, *b)
	}
	f.Particles = f.Particles[:0]
	for _, p := range s.Particles {
		f.Particles = append(f.Particles, *p)
	}

	return f
}
