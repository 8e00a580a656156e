package physics

import (
	"testing"

	"github.com/tomz197/pastelshooter/internal/vec"
)

func TestRectFromCenter(t *testing.T) {
	r := RectFromCenter(vec.New(450, 500), 48, 36)
	if r.X != 426 || r.Y != 482 || r.W != 48 || r.H != 36 {
		t.Fatalf("RectFromCenter = %+v", r)
	}
	if r.MidTop() != vec.New(450, 482) {
		t.Errorf("MidTop = %v, want (450,482)", r.MidTop())
	}
}

func TestRectIntersects(t *testing.T) {
	base := Rect{X: 0, Y: 0, W: 10, H: 10}
	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlap", Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"contained", Rect{X: 2, Y: 2, W: 2, H: 2}, true},
		{"touching right edge", Rect{X: 10, Y: 0, W: 5, H: 5}, false},
		{"touching bottom edge", Rect{X: 0, Y: 10, W: 5, H: 5}, false},
		{"left of", Rect{X: -6, Y: 0, W: 5, H: 5}, false},
		{"above", Rect{X: 0, Y: -20, W: 5, H: 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects = %v, want %v", got, tt.want)
			}
			if got := tt.other.Intersects(base); got != tt.want {
				t.Errorf("Intersects is not symmetric: got %v", got)
			}
		})
	}
}
