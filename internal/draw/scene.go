package draw

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/tomz197/pastelshooter/internal/loop"
	"github.com/tomz197/pastelshooter/internal/object"
)

// HUD text.
const (
	ControlsHint = "Move: Arrows / WASD    Shoot: Space"
	PausedText   = "PAUSED - Press P to resume"
	hudMargin    = 12.0 // Logical pixels from the field edge
	hintOffset   = 30.0 // Logical pixels above the bottom edge
)

// Label is a line of text placed on a terminal cell of the canvas (0-based).
type Label struct {
	Col, Row int
	Text     string
}

// shipOutline is the player hull as fractions of the ship's bounding box.
var shipOutline = [...]Point{
	{0.5, 0}, {1, 0.75}, {0.7, 0.75}, {0.5, 0.45}, {0.3, 0.75}, {0, 0.75},
}

// Scene paints frames onto a canvas and lays out the HUD text over it.
type Scene struct {
	canvas *Canvas
	labels []Label
}

// NewScene creates a scene drawing onto c.
func NewScene(c *Canvas) *Scene {
	return &Scene{canvas: c}
}

// Canvas returns the canvas the scene draws onto.
func (s *Scene) Canvas() *Canvas {
	return s.canvas
}

// Draw paints f onto the canvas and returns the text labels to overlay.
// The returned slice is reused by the next call.
func (s *Scene) Draw(f *loop.Frame) []Label {
	c := s.canvas
	c.FillGradient(BgDark, BgSoft)

	// Far to near so nearer stars cover farther ones.
	for _, layer := range object.Layers {
		for i := range f.Stars {
			st := &f.Stars[i]
			if st.Layer != layer {
				continue
			}
			col := StarWarm
			if st.Layer == object.LayerNear {
				col = StarCool
			}
			c.FillCircle(st.Pos.X, st.Pos.Y, float64(max(1, st.Size)), col)
		}
	}

	p := &f.Player
	c.BlendEllipse(p.Pos.X, p.Pos.Y+10, object.PlayerWidth, object.PlayerHeight, Player, GlowAlpha, true)

	for i := range f.Enemies {
		s.drawEnemy(&f.Enemies[i])
	}
	for i := range f.Bullets {
		r := f.Bullets[i].Rect()
		c.FillRect(r.X, r.Y, r.W, r.H, Bullet)
	}
	for i := range f.Particles {
		pt := &f.Particles[i]
		c.BlendCircle(pt.Pos.X, pt.Pos.Y, float64(pt.Size)/2, Particle, pt.Fade())
	}
	s.drawPlayer(p)

	s.labels = s.labels[:0]
	s.layoutHUD(f)

	if f.HUD.Paused {
		c.Tint(PauseShade, PauseAlpha)
		s.center(PausedText, f.Bounds.Width/2, f.Bounds.Height/2)
	}
	return s.labels
}

func (s *Scene) drawEnemy(e *object.Enemy) {
	c := s.canvas
	c.FillEllipse(e.Pos.X, e.Pos.Y, object.EnemyWidth/2, object.EnemyHeight/2, Enemy)

	// Stripe along the lower arc of an inner ellipse.
	r := e.Rect()
	cx, cy := r.X+r.W*0.5, r.Y+r.H*0.55
	rx, ry := r.W*0.38, r.H*0.3
	const from, to, steps = 200.0, 340.0, 8
	prev := Point{}
	for i := 0; i <= steps; i++ {
		a := (from + (to-from)*float64(i)/steps) * math.Pi / 180
		pt := Point{X: cx + rx*math.Cos(a), Y: cy - ry*math.Sin(a)}
		if i > 0 {
			c.DrawLine(prev, pt, EnemyShade)
		}
		prev = pt
	}
}

func (s *Scene) drawPlayer(p *object.Player) {
	c := s.canvas
	r := p.Rect()
	rad := p.Tilt * math.Pi / 180
	sin, cos := math.Sincos(-rad)

	pts := c.BorrowPoints(len(shipOutline))
	for i, o := range shipOutline {
		// Rotate around the ship centre; positive tilt leans left on screen.
		dx := r.X + o.X*r.W - p.Pos.X
		dy := r.Y + o.Y*r.H - p.Pos.Y
		pts[i] = Point{
			X: p.Pos.X + dx*cos - dy*sin,
			Y: p.Pos.Y + dx*sin + dy*cos,
		}
	}
	c.DrawPolygon(pts, Player, true)

	// Cockpit
	c.FillEllipse(r.X+r.W*0.5, r.Y+r.H*0.29, r.W*0.15, r.H*0.14, PlayerShade)
}

func (s *Scene) layoutHUD(f *loop.Frame) {
	c := s.canvas
	score := fmt.Sprintf("Score: %d", f.HUD.Score)
	lives := fmt.Sprintf("Lives: %d", f.HUD.Lives)

	col, row := c.LogicalToTerminal(hudMargin, hudMargin)
	s.place(col, row, score)

	col, _ = c.LogicalToTerminal(f.Bounds.Width-hudMargin, hudMargin)
	s.place(col-utf8.RuneCountInString(lives)+1, row, lives)

	s.center(ControlsHint, f.Bounds.Width/2, f.Bounds.Height-hintOffset)
}

// center places text horizontally centred on the logical point (x, y).
func (s *Scene) center(text string, x, y float64) {
	col, row := s.canvas.LogicalToTerminal(x, y)
	s.place(col-utf8.RuneCountInString(text)/2, row, text)
}

// place adds a label, shifting it to stay inside the canvas.
func (s *Scene) place(col, row int, text string) {
	w, h := s.canvas.TerminalWidth(), s.canvas.TerminalHeight()
	n := utf8.RuneCountInString(text)
	if n > w {
		text = string([]rune(text)[:w])
		n = w
	}
	col = max(0, min(col, w-n))
	row = max(0, min(row, h-1))
	s.labels = append(s.labels, Label{Col: col, Row: row, Text: text})
}

// Fit returns the largest canvas that keeps the logical aspect ratio inside a
// terminal of cols × rows, and the offsets that centre it.
// Half-block pixels are treated as square.
func Fit(cols, rows int, logicalWidth, logicalHeight float64) (width, height, offsetCol, offsetRow int) {
	cols, rows = max(cols, 1), max(rows, 1)
	aspect := logicalWidth / logicalHeight

	width, height = cols, rows
	if float64(cols) > float64(rows*2)*aspect {
		width = max(1, int(float64(rows*2)*aspect))
	} else {
		height = max(1, int(float64(cols)/aspect/2))
	}
	return width, height, (cols - width) / 2, (rows - height) / 2
}
