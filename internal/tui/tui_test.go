package tui

import (
	"math/rand"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/tomz197/pastelshooter/internal/draw"
	"github.com/tomz197/pastelshooter/internal/loop"
	"github.com/tomz197/pastelshooter/internal/object"
	"github.com/tomz197/pastelshooter/internal/vec"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init() = %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)
	return screen
}

func newTestScreen(t *testing.T, screen tcell.Screen, now *time.Time) *Screen {
	t.Helper()
	s := New(screen, Options{HoldDuration: 100 * time.Millisecond})
	s.now = func() time.Time { return *now }
	return s
}

func TestPollMapsKeys(t *testing.T) {
	screen := newSimScreen(t, 90, 30)
	now := time.Unix(1000, 0)
	s := newTestScreen(t, screen, &now)

	screen.InjectKey(tcell.KeyLeft, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'w', tcell.ModNone)

	in := s.Poll()
	if !in.Left || !in.Fire || !in.Up || !in.Active {
		t.Errorf("Poll() = %+v, want left, up and fire held", in)
	}
	if in.PausePressed || in.QuitPressed {
		t.Errorf("Poll() = %+v, want no edge events", in)
	}

	screen.InjectKey(tcell.KeyRune, 'p', tcell.ModNone)
	if in := s.Poll(); !in.PausePressed {
		t.Error("Expected 'p' to report a pause press")
	}
	if in := s.Poll(); in.PausePressed {
		t.Error("Expected pause press to be reported once")
	}

	screen.InjectKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)
	if in := s.Poll(); !in.QuitPressed {
		t.Error("Expected Ctrl-C to report quit")
	}
}

func TestPollHoldExpires(t *testing.T) {
	screen := newSimScreen(t, 90, 30)
	now := time.Unix(1000, 0)
	s := newTestScreen(t, screen, &now)

	screen.InjectKey(tcell.KeyRight, 0, tcell.ModNone)
	if in := s.Poll(); !in.Right {
		t.Fatal("Expected right to be held after press")
	}

	now = now.Add(50 * time.Millisecond)
	if in := s.Poll(); !in.Right || in.Active {
		t.Errorf("Poll() = %+v, want right still held without new activity", in)
	}

	now = now.Add(100 * time.Millisecond)
	if in := s.Poll(); in.Right {
		t.Error("Expected right to be released after the hold duration")
	}
}

func newTestFrame(t *testing.T) *loop.Frame {
	t.Helper()
	sess := loop.NewSession(loop.SessionOptions{
		Rand:      rand.New(rand.NewSource(3)),
		StarCount: 10,
	})
	sess.Bullets = append(sess.Bullets, object.NewBullet(vec.New(450, 300)))
	return sess.Frame()
}

func TestRender(t *testing.T) {
	screen := newSimScreen(t, 90, 30)
	now := time.Unix(1000, 0)
	s := newTestScreen(t, screen, &now)

	if err := s.Render(newTestFrame(t)); err != nil {
		t.Fatalf("Render() = %v", err)
	}

	cells, w, _ := screen.GetContents()
	text := func(col, row, n int) string {
		var rs []rune
		for i := 0; i < n; i++ {
			rs = append(rs, cells[row*w+col+i].Runes...)
		}
		return string(rs)
	}

	if got := text(1, 0, 8); got != "Score: 0" {
		t.Errorf("Score label = %q", got)
	}

	// The bullet covers the lower pixel of row 14 and the upper pixel of row 15.
	bullet := rgb(draw.Bullet)
	if _, bg, _ := cells[14*w+45].Style.Decompose(); bg != bullet {
		t.Errorf("Cell (45,14) background = %v, want bullet colour", bg)
	}
	if fg, _, _ := cells[15*w+45].Style.Decompose(); fg != bullet {
		t.Errorf("Cell (45,15) foreground = %v, want bullet colour", fg)
	}
	if r := cells[20*w+10].Runes; len(r) != 1 || r[0] != draw.BlockUpperHalf {
		t.Errorf("Expected half-block cell, got %q", string(r))
	}
}

func TestRenderCentersOnWideScreen(t *testing.T) {
	screen := newSimScreen(t, 120, 30)
	now := time.Unix(1000, 0)
	s := newTestScreen(t, screen, &now)

	if err := s.Render(newTestFrame(t)); err != nil {
		t.Fatalf("Render() = %v", err)
	}

	cells, w, _ := screen.GetContents()
	if r := cells[0*w+16].Runes; len(r) == 0 || r[0] != 'S' {
		t.Errorf("Expected score label to start at column 16, got %q", string(r))
	}
	if r := cells[0*w+5].Runes; len(r) == 1 && r[0] == draw.BlockUpperHalf {
		t.Error("Expected the left margin to stay empty")
	}
}
