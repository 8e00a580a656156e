package draw

import (
	"math"
	"sort"
)

// DrawLine draws a line on the canvas using Bresenham's algorithm.
// Coordinates are in logical space and get scaled to pixels.
func (c *Canvas) DrawLine(p1, p2 Point, col Color) {
	x1, y1 := c.toPixelX(p1.X), c.toPixelY(p1.Y)
	x2, y2 := c.toPixelX(p2.X), c.toPixelY(p2.Y)

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		c.setPixel(x1, y1, col)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawPolygon draws a polygon on the canvas.
// If filled is true, the interior is filled using scanline algorithm.
func (c *Canvas) DrawPolygon(points []Point, col Color, filled bool) {
	if len(points) < 3 {
		return
	}

	if filled {
		c.fillPolygon(points, col)
	}

	n := len(points)
	for i := 0; i < n; i++ {
		c.DrawLine(points[i], points[(i+1)%n], col)
	}
}

// fillPolygon fills a polygon using scanline algorithm.
// Works in pixel space for proper scaling.
func (c *Canvas) fillPolygon(points []Point, col Color) {
	if cap(c.scaledBuf) < len(points) {
		c.scaledBuf = make([]Point, len(points))
	}
	scaled := c.scaledBuf[:len(points)]

	for i, p := range points {
		scaled[i] = Point{X: p.X * c.scaleX, Y: p.Y * c.scaleY}
	}

	minY, maxY := scaled[0].Y, scaled[0].Y
	for _, p := range scaled {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	yStart := int(math.Floor(minY))
	yEnd := int(math.Ceil(maxY))

	for y := yStart; y <= yEnd; y++ {
		scanY := float64(y) + 0.5

		intersections := c.intersectionBuf[:0]

		n := len(scaled)
		for i := 0; i < n; i++ {
			p1 := scaled[i]
			p2 := scaled[(i+1)%n]

			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				intersections = append(intersections, p1.X+t*(p2.X-p1.X))
			}
		}

		// Store back in case it grew
		c.intersectionBuf = intersections

		sort.Float64s(intersections)

		for i := 0; i+1 < len(intersections); i += 2 {
			xStart := int(math.Ceil(intersections[i]))
			xEnd := int(math.Floor(intersections[i+1]))
			for x := xStart; x <= xEnd; x++ {
				c.setPixel(x, y, col)
			}
		}
	}
}

// FillRect fills the logical rectangle with its top-left corner at (x, y).
// Shapes smaller than a pixel still cover the pixel under their centre.
func (c *Canvas) FillRect(x, y, w, h float64, col Color) {
	x0, y0, x1, y1 := c.pixelSpan(x, y, w, h)
	for py := y0; py <= y1; py++ {
		for px := x0; px <= x1; px++ {
			c.setPixel(px, py, col)
		}
	}
}

// FillEllipse fills the ellipse centred on (cx, cy) with radii rx, ry.
func (c *Canvas) FillEllipse(cx, cy, rx, ry float64, col Color) {
	c.ellipse(cx, cy, rx, ry, func(px, py int) {
		c.setPixel(px, py, col)
	})
}

// BlendEllipse mixes col into the ellipse by alpha. Additive blends brighten
// the existing pixels instead of replacing them.
func (c *Canvas) BlendEllipse(cx, cy, rx, ry float64, col Color, alpha float64, additive bool) {
	c.ellipse(cx, cy, rx, ry, func(px, py int) {
		c.blendPixel(px, py, col, alpha, additive)
	})
}

// FillCircle fills the circle centred on (cx, cy) with radius r.
func (c *Canvas) FillCircle(cx, cy, r float64, col Color) {
	c.FillEllipse(cx, cy, r, r, col)
}

// BlendCircle mixes col into the circle by alpha.
func (c *Canvas) BlendCircle(cx, cy, r float64, col Color, alpha float64) {
	c.BlendEllipse(cx, cy, r, r, col, alpha, false)
}

// ellipse calls plot for every pixel whose centre lies inside the ellipse.
func (c *Canvas) ellipse(cx, cy, rx, ry float64, plot func(px, py int)) {
	if rx <= 0 || ry <= 0 {
		return
	}
	x0, y0, x1, y1 := c.pixelSpan(cx-rx, cy-ry, 2*rx, 2*ry)
	if x0 == x1 && y0 == y1 {
		plot(x0, y0)
		return
	}

	// Test in logical space so the ellipse keeps its shape at any scale.
	// A single pixel column or row is always on the axis.
	for py := y0; py <= y1; py++ {
		ly := 0.0
		if y0 != y1 {
			ly = (float64(py)+0.5)/c.scaleY - cy
		}
		for px := x0; px <= x1; px++ {
			lx := 0.0
			if x0 != x1 {
				lx = (float64(px)+0.5)/c.scaleX - cx
			}
			if (lx*lx)/(rx*rx)+(ly*ly)/(ry*ry) <= 1 {
				plot(px, py)
			}
		}
	}
}

// pixelSpan returns the inclusive pixel range covered by a logical rectangle.
// A rectangle that covers no pixel centre collapses to the pixel under its centre.
func (c *Canvas) pixelSpan(x, y, w, h float64) (x0, y0, x1, y1 int) {
	x0 = int(math.Ceil(x*c.scaleX - 0.5))
	x1 = int(math.Floor((x+w)*c.scaleX - 0.5))
	y0 = int(math.Ceil(y*c.scaleY - 0.5))
	y1 = int(math.Floor((y+h)*c.scaleY - 0.5))
	if x1 < x0 {
		x0 = c.toPixelX(x + w/2)
		x1 = x0
	}
	if y1 < y0 {
		y0 = c.toPixelY(y + h/2)
		y1 = y0
	}
	return x0, y0, x1, y1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
