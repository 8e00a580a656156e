// Package tui is a loop.Frontend built on a tcell screen.
package tui

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/tomz197/pastelshooter/internal/draw"
	"github.com/tomz197/pastelshooter/internal/input"
	"github.com/tomz197/pastelshooter/internal/loop"
	"github.com/tomz197/pastelshooter/internal/object"
)

// Options configures a Screen frontend.
type Options struct {
	HoldDuration time.Duration // Defaults to input.DefaultHoldDuration
	Bounds       object.Bounds // Logical field size, defaults to object.Playfield
}

// Screen draws frames onto a tcell.Screen and turns its key events into
// input snapshots. The tcell screen must already be initialised.
type Screen struct {
	screen  tcell.Screen
	tracker *input.Tracker
	scene   *draw.Scene
	bounds  object.Bounds
	now     func() time.Time

	cols, rows int // Last seen screen size
	offCol     int
	offRow     int
}

var _ loop.Frontend = (*Screen)(nil)

// New wraps an initialised tcell screen.
func New(screen tcell.Screen, opts Options) *Screen {
	if opts.HoldDuration <= 0 {
		opts.HoldDuration = input.DefaultHoldDuration
	}
	if opts.Bounds.Width <= 0 || opts.Bounds.Height <= 0 {
		opts.Bounds = object.Playfield
	}
	screen.HideCursor()

	return &Screen{
		screen:  screen,
		tracker: input.NewTracker(opts.HoldDuration),
		scene:   draw.NewScene(draw.NewScaledCanvas(1, 1, opts.Bounds.Width, opts.Bounds.Height)),
		bounds:  opts.Bounds,
		now:     time.Now,
	}
}

// Poll drains pending tcell events and returns the resulting snapshot.
func (s *Screen) Poll() input.Input {
	now := s.now()
	for s.screen.HasPendingEvent() {
		switch ev := s.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if k, ok := keyOf(ev); ok {
				s.tracker.Press(k, now)
			}
		case *tcell.EventResize:
			s.screen.Sync()
		case nil:
			// Screen finalised
			s.tracker.Press(input.KeyQuit, now)
			return s.tracker.Snapshot(now)
		}
	}
	return s.tracker.Snapshot(now)
}

// keyOf maps a tcell key event to a control.
func keyOf(ev *tcell.EventKey) (input.Key, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return input.KeyLeft, true
	case tcell.KeyRight:
		return input.KeyRight, true
	case tcell.KeyUp:
		return input.KeyUp, true
	case tcell.KeyDown:
		return input.KeyDown, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return input.KeyQuit, true
	case tcell.KeyRune:
		return input.RuneKey(ev.Rune())
	}
	return 0, false
}

// Render paints the frame as half-block cells and shows it.
func (s *Screen) Render(f *loop.Frame) error {
	s.fit()

	c := s.scene.Canvas()
	labels := s.scene.Draw(f)

	for row := 0; row < c.TerminalHeight(); row++ {
		for col := 0; col < c.TerminalWidth(); col++ {
			top, bottom := c.Cell(col, row)
			style := tcell.StyleDefault.Foreground(rgb(top)).Background(rgb(bottom))
			s.screen.SetContent(s.offCol+col, s.offRow+row, draw.BlockUpperHalf, nil, style)
		}
	}

	ui := rgb(draw.UI)
	for _, l := range labels {
		_, bg := c.Cell(l.Col, l.Row)
		style := tcell.StyleDefault.Foreground(ui).Background(rgb(bg))
		col := l.Col
		for _, r := range l.Text {
			s.screen.SetContent(s.offCol+col, s.offRow+l.Row, r, nil, style)
			col++
		}
	}

	s.screen.Show()
	return nil
}

// fit resizes the canvas to the screen, clearing the margins on change.
func (s *Screen) fit() {
	cols, rows := s.screen.Size()
	if cols == s.cols && rows == s.rows {
		return
	}
	s.cols, s.rows = cols, rows

	w, h, offCol, offRow := draw.Fit(cols, rows, s.bounds.Width, s.bounds.Height)
	s.scene.Canvas().Resize(w, h)
	s.offCol, s.offRow = offCol, offRow
	s.screen.Clear()
}

func rgb(c draw.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
