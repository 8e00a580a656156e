package loop

import (
	"github.com/tomz197/pastelshooter/internal/loop/config"
)

// resolveCollisions runs the collision passes in order: bullets against
// enemies, then enemies against the player.
func (s *Session) resolveCollisions() {
	s.checkBulletEnemyCollisions()
	s.checkEnemyPlayerCollisions()
}

// checkBulletEnemyCollisions pairs each enemy with the first live bullet
// overlapping it. Both are destroyed, the player scores, and the enemy
// explodes. A bullet consumed here cannot hit another enemy this pass.
func (s *Session) checkBulletEnemyCollisions() {
	if len(s.Bullets) == 0 || len(s.Enemies) == 0 {
		return
	}

	s.grid.Clear()
	for i, b := range s.Bullets {
		if !b.IsDestroyed() {
			s.grid.Insert(b.Pos.X, b.Pos.Y, i)
		}
	}

	for _, e := range s.Enemies {
		if e.IsDestroyed() {
			continue
		}
		er := e.Rect()

		hit := -1
		s.grid.QueryAround(e.Pos.X, e.Pos.Y, func(i int) bool {
			b := s.Bullets[i]
			if b.IsDestroyed() || !er.Intersects(b.Rect()) {
				return false
			}
			hit = i
			return true
		})
		if hit < 0 {
			continue
		}

		s.Bullets[hit].MarkDestroyed()
		e.MarkDestroyed()
		s.Player.Score += config.ScorePerEnemy
		s.stats.Kills++
		s.stats.Best = max(s.stats.Best, s.Player.Score)
		s.explode(e.Pos)
	}
}

// checkEnemyPlayerCollisions destroys every enemy touching the ship, costing
// a life each. Running out of lives triggers a soft reset and ends the pass.
func (s *Session) checkEnemyPlayerCollisions() {
	pr := s.Player.Rect()
	for _, e := range s.Enemies {
		if e.IsDestroyed() || !pr.Intersects(e.Rect()) {
			continue
		}

		e.MarkDestroyed()
		s.Player.Lives--
		s.stats.Hits++
		s.explode(s.Player.Pos)

		if s.Player.Lives <= 0 {
			s.softReset()
			return
		}
	}
}

// softReset restores lives and score and clears enemies and bullets.
// Particles keep animating.
func (s *Session) softReset() {
	s.explode(s.Player.Pos)
	s.Player.Lives = config.InitialLives
	s.Player.Score = 0

	for _, e := range s.Enemies {
		if !e.IsDestroyed() {
			s.explode(e.Pos)
		}
	}

	clear(s.Enemies)
	s.Enemies = s.Enemies[:0]
	clear(s.Bullets)
	s.Bullets = s.Bullets[:0]

	s.stats.Resets++
}
