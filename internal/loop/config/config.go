// Package config centralizes all tunable session and frame-loop parameters.
// Per-entity tuning lives next to each entity kind in package object.
package config

import "time"

// Frame cadence.
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
)

// Player
const (
	InitialLives  = 3
	ScorePerEnemy = 10
)

// Spawning. The enemy spawn interval shrinks from SpawnIntervalBase by
// score/SpawnScoreDivisor, capped at SpawnIntervalMaxCut, never below
// SpawnIntervalFloor.
const (
	SpawnIntervalBase   = 1.0 // Seconds
	SpawnIntervalMaxCut = 0.7
	SpawnIntervalFloor  = 0.35
	SpawnScoreDivisor   = 50.0
)

// Starfield
const (
	StarCount           = 140
	StarfieldSlowFactor = 0.75 // While steering left
	StarfieldFastFactor = 1.25 // While steering right
	StarfieldEaseRate   = 3.0  // Per second, back toward 1.0
)

// Collision broad phase. Must be >= the largest center distance at which a
// bullet and an enemy can overlap ((42+6)/2 horizontally).
const CollisionCellSize = 50.0

// Inactivity
const (
	InactivityDisconnect = 120 * time.Second // SSH sessions only
)
