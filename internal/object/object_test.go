package object

import (
	"math"
	"math/rand"
	"testing"

	"github.com/tomz197/pastelshooter/internal/input"
	"github.com/tomz197/pastelshooter/internal/vec"
)

// fixedRand returns the same values on every draw.
type fixedRand struct {
	f float64
	i int
}

func (r fixedRand) Float64() float64 { return r.f }

func (r fixedRand) Intn(n int) int {
	if r.i >= n {
		return n - 1
	}
	return r.i
}

func TestPlayerStaysInBounds(t *testing.T) {
	p := NewPlayer(vec.New(Width/2, Height-100), Playfield, 3)
	moves := []input.Input{
		{Left: true, Up: true},
		{Right: true, Down: true},
		{Left: true},
		{Down: true},
	}
	for _, in := range moves {
		for _, dt := range []float64{0, 1.0 / 60, 0.5, 10} {
			p.Update(dt, in)
			if !p.Pos.IsFinite() {
				t.Fatalf("Expected finite position, got %v", p.Pos)
			}
			if p.Pos.X < PlayerWidth/2 || p.Pos.X > Width-PlayerWidth/2 ||
				p.Pos.Y < PlayerHeight/2 || p.Pos.Y > Height-PlayerHeight/2 {
				t.Fatalf("Player left the field: %v after %+v dt=%v", p.Pos, in, dt)
			}
		}
	}
}

func TestPlayerDiagonalIsNormalized(t *testing.T) {
	p := NewPlayer(vec.New(450, 300), Playfield, 3)
	p.Update(0.1, input.Input{Right: true, Down: true})

	if got := p.Vel.Length(); math.Abs(got-PlayerSpeed) > 1e-9 {
		t.Errorf("Expected speed %v, got %v", PlayerSpeed, got)
	}
	if math.Abs(p.Tilt+PlayerMaxTilt/math.Sqrt2) > 1e-9 {
		t.Errorf("Expected tilt %v, got %v", -PlayerMaxTilt/math.Sqrt2, p.Tilt)
	}

	p.Update(0.1, input.Input{})
	if p.Vel != vec.Zero || p.Tilt != 0 {
		t.Errorf("Expected ship to stop without input, vel=%v tilt=%v", p.Vel, p.Tilt)
	}
}

func TestPlayerCooldown(t *testing.T) {
	p := NewPlayer(vec.New(450, 300), Playfield, 3)
	if !p.CanShoot() {
		t.Fatal("Expected a fresh ship to be able to shoot")
	}
	p.Shoot()
	if p.CanShoot() {
		t.Fatal("Expected cooldown after Shoot")
	}
	p.Update(0.1, input.Input{})
	if p.CanShoot() {
		t.Error("Expected cooldown to remain after 0.1s")
	}
	p.Update(0.1, input.Input{})
	if !p.CanShoot() || p.FireCooldown() != 0 {
		t.Errorf("Expected cooldown floored at 0, got %v", p.FireCooldown())
	}
}

func TestVolleyIsSymmetric(t *testing.T) {
	p := NewPlayer(vec.New(450, 500), Playfield, 3)
	pair := p.Volley()
	m := p.Muzzle()

	if m != vec.New(450, 500-PlayerHeight/2) {
		t.Fatalf("Unexpected muzzle %v", m)
	}
	if pair[0].Pos != vec.New(m.X-MuzzleSpread, m.Y) || pair[1].Pos != vec.New(m.X+MuzzleSpread, m.Y) {
		t.Errorf("Expected bullets at muzzle ±%v, got %v and %v", MuzzleSpread, pair[0].Pos, pair[1].Pos)
	}
	if pair[0].Vel != pair[1].Vel || pair[0].Vel != vec.New(0, -BulletSpeed) {
		t.Errorf("Expected identical upward velocity, got %v and %v", pair[0].Vel, pair[1].Vel)
	}
}

func TestBulletLeavesTop(t *testing.T) {
	b := NewBullet(vec.New(100, -25))
	if !b.Update(0) || !b.IsDestroyed() {
		t.Error("Expected bullet at y=-25 to be removed on next update")
	}

	b = NewBullet(vec.New(100, 10))
	if b.Update(1.0 / 60) {
		t.Error("Expected on-screen bullet to survive")
	}
	if want := 10 - BulletSpeed/60; math.Abs(b.Pos.Y-want) > 1e-9 {
		t.Errorf("Expected y=%v, got %v", want, b.Pos.Y)
	}

	b.MarkDestroyed()
	b.MarkDestroyed()
	if !b.IsDestroyed() {
		t.Error("Expected repeated MarkDestroyed to keep the flag")
	}
}

func TestEnemyWobbleAndExit(t *testing.T) {
	e := NewEnemy(vec.New(200, 0), 100, 0, 10, Playfield)
	e.Update(0.5)

	wantX := 200 + math.Sin(2)*10*0.5
	if math.Abs(e.Phase-2) > 1e-12 || math.Abs(e.Pos.X-wantX) > 1e-9 || e.Pos.Y != 50 {
		t.Errorf("Unexpected enemy state phase=%v pos=%v", e.Phase, e.Pos)
	}
	if e.IsDestroyed() {
		t.Fatal("Expected enemy inside the field to survive")
	}

	e.Pos.Y = Height + EnemyKillMargin - 1
	if !e.Update(0.02) {
		t.Error("Expected enemy past the bottom margin to be flagged")
	}
}

func TestParticleFade(t *testing.T) {
	p := NewParticle(vec.Zero, vec.New(60, 0), 0.5, 3)
	defer p.Release()

	if p.Update(0.25) {
		t.Fatal("Expected particle to survive half its lifetime")
	}
	if p.Alpha < 127 || p.Alpha > 128 {
		t.Errorf("Expected alpha ≈128 at half life, got %d", p.Alpha)
	}
	if !p.Update(0.25) {
		t.Fatal("Expected particle to expire at its lifetime")
	}
	if p.Alpha != 0 || !p.IsDestroyed() {
		t.Errorf("Expected alpha 0 and destroyed, got %d %v", p.Alpha, p.IsDestroyed())
	}
}

func TestParticleDrag(t *testing.T) {
	p := NewParticle(vec.Zero, vec.New(100, 0), 1, 2)
	defer p.Release()

	p.Update(1.0 / 60)
	if math.Abs(p.Vel.X-98) > 1e-9 {
		t.Errorf("Expected one frame of drag to leave 98, got %v", p.Vel.X)
	}
	if math.Abs(p.Pos.X-100.0/60) > 1e-9 {
		t.Errorf("Expected position integrated before drag, got %v", p.Pos.X)
	}
}

func TestStarWraps(t *testing.T) {
	s := Star{Pos: vec.New(10, Height+5), Size: 2, Layer: LayerFar}
	s.Update(0.1, 1, Playfield, fixedRand{f: 0.5})
	if s.Pos.Y != -StarWrapMargin || s.Pos.X != Width/2 {
		t.Errorf("Expected wrap to (450,-10), got %v", s.Pos)
	}

	s = Star{Pos: vec.New(10, 100), Layer: LayerMid}
	s.Update(0.5, 1.25, Playfield, fixedRand{})
	if want := 100 + 60*0.5*1.25; s.Pos.Y != want {
		t.Errorf("Expected y=%v, got %v", want, s.Pos.Y)
	}
}

func TestSpawnEnemyRanges(t *testing.T) {
	sp := NewSpawner(rand.New(rand.NewSource(7)), Playfield)
	for i := 0; i < 1000; i++ {
		e := sp.SpawnEnemy()
		switch {
		case e.Pos.X < EnemySpawnMargin || e.Pos.X > Width-EnemySpawnMargin:
			t.Fatalf("x out of range: %v", e.Pos.X)
		case e.Pos.Y < EnemySpawnYMin || e.Pos.Y > EnemySpawnYMax:
			t.Fatalf("y out of range: %v", e.Pos.Y)
		case e.Speed < EnemySpeedMin || e.Speed > EnemySpeedMax:
			t.Fatalf("speed out of range: %v", e.Speed)
		case e.Phase < 0 || e.Phase >= 2*math.Pi:
			t.Fatalf("phase out of range: %v", e.Phase)
		case e.Amplitude < EnemyAmpMin || e.Amplitude > EnemyAmpMax:
			t.Fatalf("amplitude out of range: %v", e.Amplitude)
		}
	}
}

func TestSpawnExplosion(t *testing.T) {
	sp := NewSpawner(rand.New(rand.NewSource(3)), Playfield)
	at := vec.New(300, 200)
	ps := sp.SpawnExplosion(nil, at, ParticleCount)

	if len(ps) != ParticleCount {
		t.Fatalf("Expected %d particles, got %d", ParticleCount, len(ps))
	}
	for _, p := range ps {
		if p.Pos != at {
			t.Errorf("Expected particle at %v, got %v", at, p.Pos)
		}
		if p.Vel.Length() > ParticleSpeed+1e-9 {
			t.Errorf("Particle too fast: %v", p.Vel.Length())
		}
		if p.Lifetime < ParticleLifetimeMin || p.Lifetime > ParticleLifetime {
			t.Errorf("Lifetime out of range: %v", p.Lifetime)
		}
		if p.Size < ParticleSizeMin || p.Size > ParticleSizeMax {
			t.Errorf("Size out of range: %v", p.Size)
		}
	}
}

func TestSpawnStarfieldLayers(t *testing.T) {
	tests := []struct {
		f     float64
		layer Layer
		min   int
		max   int
	}{
		{0.1, LayerNear, 2, 4},
		{0.5, LayerMid, 1, 3},
		{0.9, LayerFar, 1, 3},
	}
	for _, tt := range tests {
		stars := NewSpawner(fixedRand{f: tt.f, i: 1}, Playfield).SpawnStarfield(3)
		for _, s := range stars {
			if s.Layer != tt.layer {
				t.Errorf("f=%v: expected layer %v, got %v", tt.f, tt.layer, s.Layer)
			}
			if s.Size < tt.min || s.Size > tt.max {
				t.Errorf("f=%v: size %d outside [%d,%d]", tt.f, s.Size, tt.min, tt.max)
			}
		}
	}
}

func TestCompact(t *testing.T) {
	bullets := []*Bullet{
		NewBullet(vec.New(1, 0)),
		NewBullet(vec.New(2, 0)),
		NewBullet(vec.New(3, 0)),
	}
	bullets[1].MarkDestroyed()

	kept := Compact(bullets)
	if len(kept) != 2 || kept[0].Pos.X != 1 || kept[1].Pos.X != 3 {
		t.Fatalf("Unexpected compaction result: %v", kept)
	}
	if bullets[2] != nil {
		t.Error("Expected the tail of the backing array to be cleared")
	}
}

func TestUpdateAllSkipsDestroyed(t *testing.T) {
	a := NewBullet(vec.New(0, 100))
	b := NewBullet(vec.New(0, 100))
	b.MarkDestroyed()

	UpdateAll([]*Bullet{a, b}, 0.5)
	if a.Pos.Y != -250 || b.Pos.Y != 100 {
		t.Errorf("Expected only live bullets to move, got %v and %v", a.Pos.Y, b.Pos.Y)
	}
}
