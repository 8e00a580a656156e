package draw

import "math"

// Color is a 24-bit RGB colour.
type Color struct {
	R, G, B uint8
}

// RGB returns the colour (r, g, b).
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Pastel palette.
var (
	BgDark      = RGB(12, 18, 33)
	BgSoft      = RGB(18, 28, 50)
	StarWarm    = RGB(255, 236, 219) // Mid and far layers
	StarCool    = RGB(230, 241, 255) // Near layer
	Player      = RGB(142, 215, 206)
	PlayerShade = RGB(69, 138, 128)
	Bullet      = RGB(255, 180, 178)
	Enemy       = RGB(255, 157, 168)
	EnemyShade  = RGB(225, 110, 123)
	UI          = RGB(200, 220, 255)
	Particle    = RGB(255, 205, 170)
	PauseShade  = RGB(8, 12, 22)
)

// Overlay strengths as fractions of full opacity.
const (
	GlowAlpha  = 40.0 / 255
	PauseAlpha = 180.0 / 255
)

// Lerp blends from a toward b by t in [0, 1].
func Lerp(a, b Color, t float64) Color {
	t = math.Max(0, math.Min(1, t))
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x)*(1-t) + float64(y)*t)
	}
	return Color{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B)}
}

// Add returns a + b*t per channel, saturating at 255.
func Add(a, b Color, t float64) Color {
	add := func(x, y uint8) uint8 {
		return uint8(math.Min(255, float64(x)+float64(y)*t))
	}
	return Color{R: add(a.R, b.R), G: add(a.G, b.G), B: add(a.B, b.B)}
}

// Gradient returns the background colour at fraction t from the top.
func Gradient(t float64) Color {
	return Lerp(BgDark, BgSoft, t)
}
