package object

import "github.com/tomz197/pastelshooter/internal/vec"

// Layer is a parallax depth tier.
type Layer int

const (
	LayerNear Layer = iota
	LayerMid
	LayerFar
)

// Layers lists the tiers in draw order, far to near.
var Layers = [...]Layer{LayerFar, LayerMid, LayerNear}

// Star tuning.
const (
	StarBaseSpeed  = 20.0 // Pixels per second for layer 0
	StarLayerSpeed = 40.0 // Added per layer index
	StarWrapMargin = 10.0
)

// Star is a background dot that drifts down and wraps to the top.
type Star struct {
	Pos   vec.Vec2
	Size  int
	Layer Layer
}

// Speed returns the star's fall rate before the speed factor is applied.
func (s *Star) Speed() float64 {
	return StarBaseSpeed + float64(s.Layer)*StarLayerSpeed
}

// Update drifts the star down; past the bottom it wraps to the top at a fresh x.
func (s *Star) Update(dt, speedFactor float64, bounds Bounds, rng Rand) {
	s.Pos.Y += s.Speed() * dt * speedFactor
	if s.Pos.Y > bounds.Height+StarWrapMargin {
		s.Pos.Y = -StarWrapMargin
		s.Pos.X = uniform(rng, 0, bounds.Width)
	}
}

// Kind returns KindStar.
func (s *Star) Kind() Kind {
	return KindStar
}
