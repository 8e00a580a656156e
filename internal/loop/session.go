package loop

import (
	"math"
	"math/rand"
	"time"

	"github.com/tomz197/pastelshooter/internal/input"
	"github.com/tomz197/pastelshooter/internal/loop/config"
	"github.com/tomz197/pastelshooter/internal/object"
	"github.com/tomz197/pastelshooter/internal/physics"
	"github.com/tomz197/pastelshooter/internal/vec"
)

// State is the session's run state.
type State int

const (
	StateRunning    State = iota // Simulation advances every tick
	StatePaused                  // Nothing updates; frames still render
	StateTerminated              // Loop exits
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Stats counts gameplay events over the lifetime of a session.
type Stats struct {
	Kills  int // Enemies destroyed by bullets
	Hits   int // Enemies that rammed the player
	Resets int // Soft resets after running out of lives
	Best   int // Highest score reached
}

// SessionOptions configures a new session.
type SessionOptions struct {
	Rand      object.Rand   // Defaults to a time-seeded source
	Bounds    object.Bounds // Defaults to object.Playfield
	StarCount int           // Defaults to config.StarCount
}

// Session owns the player, every entity collection and the counters of one game.
type Session struct {
	Player    *object.Player
	Bullets   []*object.Bullet
	Enemies   []*object.Enemy
	Particles []*object.Particle
	Stars     []object.Star

	state       State
	speedFactor float64 // Starfield speed multiplier
	spawnTimer  float64 // Seconds since the last enemy spawn
	stats       Stats

	bounds  object.Bounds
	spawner *object.Spawner
	grid    *physics.SpatialGrid
	frame   Frame // Reused render snapshot
}

// NewSession creates a running session with a fresh player and starfield.
func NewSession(opts SessionOptions) *Session {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	bounds := opts.Bounds
	if bounds.Width <= 0 || bounds.Height <= 0 {
		bounds = object.Playfield
	}
	starCount := opts.StarCount
	if starCount <= 0 {
		starCount = config.StarCount
	}

	spawner := object.NewSpawner(rng, bounds)
	start := vec.New(bounds.Width/2, bounds.Height-100)

	return &Session{
		Player:      object.NewPlayer(start, bounds, config.InitialLives),
		Stars:       spawner.SpawnStarfield(starCount),
		state:       StateRunning,
		speedFactor: 1,
		bounds:      bounds,
		spawner:     spawner,
		grid:        physics.NewSpatialGrid(bounds.Width, bounds.Height, config.CollisionCellSize),
	}
}

// SpawnInterval returns the seconds between enemy spawns at the given score.
// It is non-increasing in score and never below config.SpawnIntervalFloor.
func SpawnInterval(score int) float64 {
	cut := math.Min(float64(score)/config.SpawnScoreDivisor, config.SpawnIntervalMaxCut)
	return math.Max(config.SpawnIntervalFloor, config.SpawnIntervalBase-cut)
}

// State returns the current run state.
func (s *Session) State() State {
	return s.state
}

// Paused returns true while the simulation is paused.
func (s *Session) Paused() bool {
	return s.state == StatePaused
}

// TogglePause flips between running and paused. It has no effect once terminated.
func (s *Session) TogglePause() {
	switch s.state {
	case StateRunning:
		s.state = StatePaused
	case StatePaused:
		s.state = StateRunning
	}
}

// Terminate ends the session; the frame loop exits at the next boundary.
func (s *Session) Terminate() {
	s.state = StateTerminated
}

// Stats returns the session's event counters.
func (s *Session) Stats() Stats {
	return s.stats
}

// SpeedFactor returns the starfield speed multiplier.
func (s *Session) SpeedFactor() float64 {
	return s.speedFactor
}

// SpawnTimer returns the seconds accumulated toward the next enemy spawn.
func (s *Session) SpawnTimer() float64 {
	return s.spawnTimer
}

// Step applies the frame's input events and, unless paused, advances the
// simulation by dt seconds.
func (s *Session) Step(dt float64, in input.Input) {
	if s.state == StateTerminated {
		return
	}
	if in.QuitPressed {
		s.Terminate()
		return
	}
	if in.PausePressed {
		s.TogglePause()
	}
	if s.state != StateRunning {
		return
	}
	if dt < 0 {
		dt = 0
	}
	s.tick(dt, in)
}

// tick runs one unpaused simulation step.
func (s *Session) tick(dt float64, in input.Input) {
	s.updateStarfieldSpeed(dt, in)

	s.spawnTimer += dt
	if s.spawnTimer >= SpawnInterval(s.Player.Score) {
		s.spawnTimer = 0
		s.Enemies = append(s.Enemies, s.spawner.SpawnEnemy())
	}

	s.Player.Update(dt, in)

	if in.Fire && s.Player.CanShoot() {
		pair := s.Player.Volley()
		s.Bullets = append(s.Bullets, pair[:]...)
		s.Player.Shoot()
	}

	object.UpdateAll(s.Bullets, dt)
	object.UpdateAll(s.Enemies, dt)
	object.UpdateAll(s.Particles, dt)

	rng := s.spawner.Rand()
	for i := range s.Stars {
		s.Stars[i].Update(dt, s.speedFactor, s.bounds, rng)
	}

	s.resolveCollisions()

	s.Bullets = object.Compact(s.Bullets)
	s.Enemies = object.Compact(s.Enemies)
	s.Particles = object.Compact(s.Particles)
}

// updateStarfieldSpeed biases the starfield by horizontal steering and
// otherwise eases it back toward 1.0.
func (s *Session) updateStarfieldSpeed(dt float64, in input.Input) {
	switch {
	case in.Left:
		s.speedFactor = config.StarfieldSlowFactor
	case in.Right:
		s.speedFactor = config.StarfieldFastFactor
	default:
		s.speedFactor += (1 - s.speedFactor) * math.Min(1, dt*config.StarfieldEaseRate)
	}
}

// explode adds a standard particle burst at p.
func (s *Session) explode(p vec.Vec2) {
	s.Particles = s.spawner.SpawnExplosion(s.Particles, p, object.ParticleCount)
}
