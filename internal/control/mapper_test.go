package control

import (
	"math"
	"testing"

	"github.com/frudas24/deskrect/internal/geom"
)

// TestNormToAbs verifies normalized coordinates land on the pixels of the target area.
func TestNormToAbs(t *testing.T) {
	type tc struct {
		xn, yn float64
		area   geom.Rectangle
		want   geom.Point
	}

	area := geom.New(100, 200, 300, 400)
	tests := map[string]tc{
		"origin":          {xn: 0, yn: 0, area: area, want: geom.Point{X: 100, Y: 200}},
		"center":          {xn: 0.5, yn: 0.5, area: area, want: geom.Point{X: 250, Y: 400}},
		"last pixel":      {xn: 1, yn: 1, area: area, want: geom.Point{X: 399, Y: 599}},
		"clamped":         {xn: -1, yn: 2, area: area, want: geom.Point{X: 100, Y: 599}},
		"nan":             {xn: math.NaN(), yn: 0, area: area, want: geom.Point{X: 100, Y: 200}},
		"single pixel":    {xn: 0.7, yn: 0.7, area: geom.New(5, 6, 1, 0), want: geom.Point{X: 5, Y: 6}},
		"negative origin": {xn: 1, yn: 0, area: geom.New(-1024, -200, 1024, 768), want: geom.Point{X: -1, Y: -200}},
		"clamps at max":   {xn: 1, yn: 0, area: geom.New(geom.MaxValue-10, 0, 100, 10), want: geom.Point{X: geom.MaxValue, Y: 0}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := NormToAbs(tt.xn, tt.yn, tt.area); got != tt.want {
				t.Fatalf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}
