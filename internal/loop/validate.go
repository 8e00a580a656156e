package loop

import (
	"errors"
	"fmt"

	"github.com/tomz197/pastelshooter/internal/loop/config"
	"github.com/tomz197/pastelshooter/internal/object"
)

// ErrInvariant is wrapped by every error returned from Session.Validate.
var ErrInvariant = errors.New("session invariant violated")

// Validate checks the entity and counter invariants of the session.
// A non-nil result means a programming error, never a gameplay condition.
func (s *Session) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvariant}, args...)...))
	}

	p := s.Player
	lo, hi := p.Bounds()
	if !p.Pos.IsFinite() {
		fail("%s position %v not finite", p.Kind(), p.Pos)
	} else if p.Pos.X < lo.X || p.Pos.X > hi.X || p.Pos.Y < lo.Y || p.Pos.Y > hi.Y {
		fail("%s position %v outside %v..%v", p.Kind(), p.Pos, lo, hi)
	}
	if p.Lives < 0 || p.Lives > config.InitialLives {
		fail("lives %d outside [0,%d]", p.Lives, config.InitialLives)
	}
	if p.Score < 0 {
		fail("negative score %d", p.Score)
	}

	for _, b := range s.Bullets {
		if !b.Pos.IsFinite() {
			fail("%s position %v not finite", b.Kind(), b.Pos)
		}
	}
	for _, e := range s.Enemies {
		if !e.Pos.IsFinite() {
			fail("%s position %v not finite", e.Kind(), e.Pos)
		}
		if e.Speed < object.EnemySpeedMin || e.Speed > object.EnemySpeedMax {
			fail("%s speed %v out of range", e.Kind(), e.Speed)
		}
	}
	for _, pt := range s.Particles {
		if !pt.Pos.IsFinite() || !pt.Vel.IsFinite() {
			fail("%s state %v/%v not finite", pt.Kind(), pt.Pos, pt.Vel)
		}
		if pt.Lifetime <= 0 || pt.Age < 0 {
			fail("%s lifetime %v age %v invalid", pt.Kind(), pt.Lifetime, pt.Age)
		}
	}
	for i := range s.Stars {
		st := &s.Stars[i]
		if !st.Pos.IsFinite() {
			fail("%s position %v not finite", st.Kind(), st.Pos)
		}
		if st.Layer < object.LayerNear || st.Layer > object.LayerFar {
			fail("%s layer %d out of range", st.Kind(), st.Layer)
		}
	}

	if iv := SpawnInterval(p.Score); iv < config.SpawnIntervalFloor || iv > config.SpawnIntervalBase {
		fail("spawn interval %v out of range", iv)
	}

	return errors.Join(errs...)
}
