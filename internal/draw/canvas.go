// Package draw renders game frames as true-colour half-block terminal output.
package draw

import (
	"io"
	"math"
	"strconv"
	"strings"
)

// Block characters used by the renderers.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Canvas is a colour drawing buffer with 2x vertical resolution using
// half-block characters. Each terminal cell holds two pixels: the upper one
// is the foreground of '▀', the lower one its background.
// Supports scaling from logical coordinates to actual terminal pixels.
type Canvas struct {
	termWidth      int     // Actual terminal columns
	termHeight     int     // Actual terminal rows
	subPixelHeight int     // termHeight * 2
	pixels         []Color // Flat slice: [y * termWidth + x]

	// Scaling from logical to pixel coordinates
	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// Offset for centering the render area inside a larger terminal.
	// These are 0-based terminal offsets (columns/rows to skip).
	offsetCol int
	offsetRow int

	// Reusable buffers to reduce allocations
	renderBuf       strings.Builder
	numBuf          [20]byte
	scaledBuf       []Point
	intersectionBuf []float64
	polygonBuf      []Point
}

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
// logicalWidth/Height define the coordinate space used by the game.
// termWidth/Height are the terminal dimensions in cells.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	termWidth = max(termWidth, 1)
	termHeight = max(termHeight, 1)
	subPixelHeight := termHeight * 2

	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.pixels = make([]Color, subPixelHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
	}

	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight
}

// SetOffset sets the column and row offset for centering the canvas.
// Offsets are 0-based terminal positions: the canvas starts at (offsetCol+1, offsetRow+1).
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// Clear fills the canvas with col.
func (c *Canvas) Clear(col Color) {
	for i := range c.pixels {
		c.pixels[i] = col
	}
}

// FillGradient fills the canvas with a vertical gradient from top to bottom.
func (c *Canvas) FillGradient(top, bottom Color) {
	last := float64(max(c.subPixelHeight-1, 1))
	for y := 0; y < c.subPixelHeight; y++ {
		col := Lerp(top, bottom, float64(y)/last)
		row := c.pixels[y*c.termWidth : (y+1)*c.termWidth]
		for x := range row {
			row[x] = col
		}
	}
}

// Tint blends every pixel toward col by alpha.
func (c *Canvas) Tint(col Color, alpha float64) {
	for i, p := range c.pixels {
		c.pixels[i] = Lerp(p, col, alpha)
	}
}

// At returns the pixel at actual coordinates, or the zero colour outside the canvas.
func (c *Canvas) At(x, y int) Color {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return Color{}
	}
	return c.pixels[y*c.termWidth+x]
}

// Cell returns the upper and lower pixel colours of a terminal cell (0-based).
func (c *Canvas) Cell(col, row int) (top, bottom Color) {
	return c.At(col, row*2), c.At(col, row*2+1)
}

// setPixel sets a pixel at actual terminal coordinates (no scaling).
func (c *Canvas) setPixel(x, y int, col Color) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = col
	}
}

// blendPixel mixes col into a pixel by alpha. Additive blends brighten instead.
func (c *Canvas) blendPixel(x, y int, col Color, alpha float64, additive bool) {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return
	}
	i := y*c.termWidth + x
	if additive {
		c.pixels[i] = Add(c.pixels[i], col, alpha)
	} else {
		c.pixels[i] = Lerp(c.pixels[i], col, alpha)
	}
}

// Set sets a pixel at logical coordinates (applies scaling).
func (c *Canvas) Set(x, y float64, col Color) {
	c.setPixel(c.toPixelX(x), c.toPixelY(y), col)
}

func (c *Canvas) toPixelX(x float64) int {
	return int(math.Floor(x * c.scaleX))
}

func (c *Canvas) toPixelY(y float64) int {
	return int(math.Floor(y * c.scaleY))
}

// Render outputs the canvas to the writer as true-colour half-block cells.
// Colour escapes are only emitted when they change along a row.
func (c *Canvas) Render(w io.Writer) error {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.termWidth * c.termHeight * 8)

	for row := 0; row < c.termHeight; row++ {
		c.moveCursor(c.offsetCol+1, c.offsetRow+row+1)

		var fg, bg Color
		first := true
		for col := 0; col < c.termWidth; col++ {
			top, bottom := c.Cell(col, row)
			if first || top != fg {
				c.writeColor("38", top)
				fg = top
			}
			if first || bottom != bg {
				c.writeColor("48", bottom)
				bg = bottom
			}
			first = false
			c.renderBuf.WriteRune(BlockUpperHalf)
		}
		c.renderBuf.WriteString(resetColors)
	}

	return writeChunked(w, c.renderBuf.String())
}

func (c *Canvas) moveCursor(col, row int) {
	c.renderBuf.WriteString("\033[")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(row), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col), 10))
	c.renderBuf.WriteByte('H')
}

// writeColor appends an SGR true-colour sequence; layer is "38" (fg) or "48" (bg).
func (c *Canvas) writeColor(layer string, col Color) {
	c.renderBuf.WriteString("\033[")
	c.renderBuf.WriteString(layer)
	c.renderBuf.WriteString(";2;")
	c.renderBuf.Write(strconv.AppendUint(c.numBuf[:0], uint64(col.R), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendUint(c.numBuf[:0], uint64(col.G), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendUint(c.numBuf[:0], uint64(col.B), 10))
	c.renderBuf.WriteByte('m')
}

// RenderBorder draws a box border around the canvas area when the terminal
// exceeds the canvas on either axis.
// Draws horizontal borders when there is vertical offset, vertical borders
// when there is horizontal offset, and corners when both are present.
func (c *Canvas) RenderBorder(w io.Writer) error {
	hasH := c.offsetCol >= 1
	hasV := c.offsetRow >= 1

	// Border positions (1-based terminal coordinates)
	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1

	cw := &ChunkWriter{}
	cw.WriteString(colorPrefix(UI))

	if hasV {
		line := strings.Repeat("─", c.termWidth)
		if hasH {
			cw.WriteAt(left, top, "┌"+line+"┐")
			cw.WriteAt(left, bottom, "└"+line+"┘")
		} else {
			cw.WriteAt(c.offsetCol+1, top, line)
			cw.WriteAt(c.offsetCol+1, bottom, line)
		}
	}

	if hasH {
		startRow, endRow := top+1, bottom
		if !hasV {
			startRow = c.offsetRow + 1
			endRow = c.offsetRow + c.termHeight + 1
		}
		for row := startRow; row < endRow; row++ {
			cw.WriteAt(left, row, "│")
			cw.WriteAt(right, row, "│")
		}
	}

	cw.WriteString(resetColors)
	return writeChunked(w, cw.buf.String())
}

// LogicalWidth returns the logical width.
func (c *Canvas) LogicalWidth() float64 {
	return c.logicalWidth
}

// LogicalHeight returns the logical height.
func (c *Canvas) LogicalHeight() float64 {
	return c.logicalHeight
}

// TerminalWidth returns the canvas width in terminal columns.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the canvas height in terminal rows.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// LogicalToTerminal converts logical coordinates to a 0-based cell (col, row)
// inside the canvas, ignoring the centering offset.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	return c.toPixelX(x), c.toPixelY(y) / 2
}

// BorrowPoints returns a reusable slice of Points with the given length.
// The returned slice is only valid until the next call to BorrowPoints.
// Thread-safe as long as each goroutine uses its own Canvas instance.
func (c *Canvas) BorrowPoints(n int) []Point {
	if cap(c.polygonBuf) < n {
		c.polygonBuf = make([]Point, n)
	}
	return c.polygonBuf[:n]
}
