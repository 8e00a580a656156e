package draw

import (
	"bufio"
	"io"
	"time"

	"github.com/tomz197/pastelshooter/internal/input"
	"github.com/tomz197/pastelshooter/internal/loop"
	"github.com/tomz197/pastelshooter/internal/object"
)

// TerminalOptions configures a Terminal frontend.
type TerminalOptions struct {
	SizeFunc     TermSizeFunc  // Defaults to DefaultTermSizeFunc
	HoldDuration time.Duration // Defaults to input.DefaultHoldDuration
	Bounds       object.Bounds // Logical field size, defaults to object.Playfield
}

// Terminal is a loop.Frontend that reads raw key bytes and draws frames with
// ANSI escape sequences. It works on a local TTY or an SSH channel alike.
type Terminal struct {
	w        io.Writer
	cw       *ChunkWriter
	stream   *input.Stream
	sizeFunc TermSizeFunc
	scene    *Scene
	bounds   object.Bounds

	cols, rows int // Last seen terminal size
}

var _ loop.Frontend = (*Terminal)(nil)

// NewTerminal creates a frontend reading keys from r and drawing to w.
// The input goroutine runs until r returns an error.
func NewTerminal(r *bufio.Reader, w io.Writer, opts TerminalOptions) *Terminal {
	if opts.SizeFunc == nil {
		opts.SizeFunc = DefaultTermSizeFunc
	}
	if opts.HoldDuration <= 0 {
		opts.HoldDuration = input.DefaultHoldDuration
	}
	if opts.Bounds.Width <= 0 || opts.Bounds.Height <= 0 {
		opts.Bounds = object.Playfield
	}

	return &Terminal{
		w:        w,
		cw:       NewChunkWriter(w, 0, 0),
		stream:   input.StartStream(r, opts.HoldDuration),
		sizeFunc: opts.SizeFunc,
		scene:    NewScene(NewScaledCanvas(1, 1, opts.Bounds.Width, opts.Bounds.Height)),
		bounds:   opts.Bounds,
	}
}

// Start prepares the terminal for drawing.
func (t *Terminal) Start() {
	HideCursor(t.w)
	ClearScreen(t.w)
}

// Close restores the terminal.
func (t *Terminal) Close() {
	io.WriteString(t.w, resetColors)
	ClearScreen(t.w)
	ShowCursor(t.w)
}

// Poll returns the keys held and pressed since the last call.
func (t *Terminal) Poll() input.Input {
	return input.ReadInput(t.stream)
}

// Render draws the frame, refitting the canvas when the terminal was resized.
func (t *Terminal) Render(f *loop.Frame) error {
	if err := t.fit(); err != nil {
		return err
	}

	c := t.scene.Canvas()
	labels := t.scene.Draw(f)
	if err := c.Render(t.cw); err != nil {
		return err
	}

	for _, l := range labels {
		_, bg := c.Cell(l.Col, l.Row)
		t.cw.SetColors(UI, bg)
		t.cw.WriteAt(l.Col+1, l.Row+1, l.Text)
	}
	t.cw.ResetColors()

	return t.cw.Flush()
}

// fit resizes and recentres the canvas after a terminal size change.
func (t *Terminal) fit() error {
	cols, rows, err := t.sizeFunc()
	if err != nil {
		return err
	}
	if cols == t.cols && rows == t.rows {
		return nil
	}
	t.cols, t.rows = cols, rows

	w, h, offCol, offRow := Fit(cols, rows, t.bounds.Width, t.bounds.Height)
	c := t.scene.Canvas()
	c.Resize(w, h)
	c.SetOffset(offCol, offRow)
	t.cw.SetOffset(offCol, offRow)

	ClearScreen(t.w)
	return c.RenderBorder(t.w)
}
