// Package input turns raw key presses into per-frame input snapshots.
package input

import (
	"bufio"
	"bytes"
	"time"
)

// DefaultHoldDuration is how long a key is considered "held" after its last
// press. Terminals report no key-up, so held keys are inferred from the
// autorepeat stream.
const DefaultHoldDuration = 120 * time.Millisecond

// Input is the snapshot of controls for one frame.
type Input struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool
	Fire  bool

	// Edge events: true only on the frame the key was pressed.
	PausePressed bool
	QuitPressed  bool

	// Active is true if any key was pressed since the previous snapshot.
	Active bool
}

// Horizontal returns -1, 0 or +1 for the held horizontal direction.
func (in Input) Horizontal() float64 {
	var x float64
	if in.Left {
		x--
	}
	if in.Right {
		x++
	}
	return x
}

// Vertical returns -1, 0 or +1 for the held vertical direction (down is +1).
func (in Input) Vertical() float64 {
	var y float64
	if in.Up {
		y--
	}
	if in.Down {
		y++
	}
	return y
}

// Key identifies a game control.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
	KeyFire
	KeyPause
	KeyQuit
	numKeys
)

// Tracker records key presses and builds snapshots from them.
type Tracker struct {
	hold   time.Duration
	last   [numKeys]time.Time
	pause  bool
	quit   bool
	active bool
}

// NewTracker creates a tracker treating keys as held for hold after each press.
func NewTracker(hold time.Duration) *Tracker {
	if hold <= 0 {
		hold = DefaultHoldDuration
	}
	return &Tracker{hold: hold}
}

// Press registers a press of k at now.
func (t *Tracker) Press(k Key, now time.Time) {
	if k < 0 || k >= numKeys {
		return
	}
	t.last[k] = now
	t.active = true
	switch k {
	case KeyPause:
		t.pause = true
	case KeyQuit:
		t.quit = true
	}
}

// Snapshot builds the input for the frame at now and consumes pending edge events.
func (t *Tracker) Snapshot(now time.Time) Input {
	in := Input{
		Left:         t.held(KeyLeft, now),
		Right:        t.held(KeyRight, now),
		Up:           t.held(KeyUp, now),
		Down:         t.held(KeyDown, now),
		Fire:         t.held(KeyFire, now),
		PausePressed: t.pause,
		QuitPressed:  t.quit,
		Active:       t.active,
	}
	t.pause = false
	t.quit = false
	t.active = false
	return in
}

// Reset forgets all presses, so nothing is held on the next snapshot.
func (t *Tracker) Reset() {
	*t = Tracker{hold: t.hold}
}

func (t *Tracker) held(k Key, now time.Time) bool {
	last := t.last[k]
	return !last.IsZero() && now.Sub(last) < t.hold
}

// Stream delivers input bytes via a channel and feeds them to a Tracker.
type Stream struct {
	ch      chan byte
	tracker *Tracker
	closed  bool
	pending []byte // Unfinished escape sequence carried to the next frame
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader, hold time.Duration) *Stream {
	s := &Stream{
		ch:      make(chan byte, 128),
		tracker: NewTracker(hold),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream (non-blocking) and
// returns the snapshot for the current frame.
func ReadInput(s *Stream) Input {
	return s.readAt(time.Now())
}

func (s *Stream) readAt(now time.Time) Input {
	buf := s.pending
	s.pending = nil
	fresh := 0

drain:
	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				// Reader hit EOF or the connection dropped: treat as quit.
				s.closed = true
				s.tracker.Press(KeyQuit, now)
				break drain
			}
			buf = append(buf, b)
			fresh++
		default:
			break drain
		}
	}

	// Hold back a sequence cut off mid-read until a frame brings no new bytes.
	if fresh > 0 && !s.closed {
		if n := unfinishedEscape(buf); n > 0 {
			s.pending = append([]byte(nil), buf[len(buf)-n:]...)
			buf = buf[:len(buf)-n]
		}
	}

	ParseBytes(s.tracker, buf, now)
	return s.tracker.Snapshot(now)
}

// ParseBytes decodes terminal bytes into presses. CSI and SS3 sequences are
// consumed whole; only their arrow keys count. A bare ESC quits.
func ParseBytes(t *Tracker, buf []byte, now time.Time) {
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' {
			if i+1 == len(buf) || buf[i+1] == '\x1b' {
				t.Press(KeyQuit, now)
				continue
			}
			n, k, ok := escapeSequence(buf[i+1:])
			if ok {
				t.Press(k, now)
			}
			i += n
			continue
		}

		if k, ok := byteKey(b); ok {
			t.Press(k, now)
		}
	}
}

// escapeSequence reads what follows an ESC and returns how many bytes it
// spans. ESC followed by anything but '[' or 'O' is an Alt prefix and spans
// nothing, leaving the next byte to be read as a key.
func escapeSequence(rest []byte) (int, Key, bool) {
	if rest[0] != '[' && rest[0] != 'O' {
		return 0, 0, false
	}

	n := 1
	for n < len(rest) && rest[n] >= 0x30 && rest[n] <= 0x3f {
		n++ // parameters
	}
	params := n > 1
	for n < len(rest) && rest[n] >= 0x20 && rest[n] <= 0x2f {
		n++ // intermediates
	}
	if n == len(rest) {
		return n, 0, false
	}
	final := rest[n]
	if final < 0x40 || final > 0x7e {
		return n, 0, false
	}
	if params {
		return n + 1, 0, false
	}
	k, ok := arrowKey(final)
	return n + 1, k, ok
}

// unfinishedEscape returns the length of a trailing escape sequence in buf
// that still lacks its final byte, or 0.
func unfinishedEscape(buf []byte) int {
	start := bytes.LastIndexByte(buf, '\x1b')
	if start < 0 {
		return 0
	}
	tail := buf[start:]
	if len(tail) == 1 {
		return 1
	}
	if tail[1] != '[' && tail[1] != 'O' {
		return 0
	}
	for _, b := range tail[2:] {
		if b < 0x20 || b > 0x3f {
			return 0
		}
	}
	return len(tail)
}

func arrowKey(code byte) (Key, bool) {
	switch code {
	case 'A':
		return KeyUp, true
	case 'B':
		return KeyDown, true
	case 'C':
		return KeyRight, true
	case 'D':
		return KeyLeft, true
	}
	return 0, false
}

func byteKey(b byte) (Key, bool) {
	switch b {
	case 'a', 'A', 'j', 'J':
		return KeyLeft, true
	case 'd', 'D', 'l', 'L':
		return KeyRight, true
	case 'w', 'W', 'i', 'I':
		return KeyUp, true
	case 's', 'S', 'k', 'K':
		return KeyDown, true
	case ' ', 'z', 'Z':
		return KeyFire, true
	case 'p', 'P':
		return KeyPause, true
	case 'q', 'Q', '\x03':
		return KeyQuit, true
	}
	return 0, false
}

// RuneKey maps a printable key (as delivered by tcell) to a control.
func RuneKey(r rune) (Key, bool) {
	if r > 0x7f {
		return 0, false
	}
	return byteKey(byte(r))
}
