package control

import (
	"math"

	"github.com/frudas24/deskrect/internal/geom"
)

// NormToAbs maps normalized [0..1] coordinates onto the pixels of area.
// Values outside the unit range are clamped, so the result never leaves area
// unless area is empty.
func NormToAbs(xn, yn float64, area geom.Rectangle) geom.Point {
	return geom.Point{
		X: normToPixel(area.X, clamp01(xn), area.Width),
		Y: normToPixel(area.Y, clamp01(yn), area.Height),
	}
}

// normToPixel maps norm onto the pixels of one axis, ending on the last pixel.
func normToPixel(near int32, norm float64, span int32) int32 {
	if span <= 1 {
		return near
	}
	return geom.Narrow(geom.Widen(near) + int64(math.Round(norm*float64(span-1))))
}

// clamp01 bounds a float to the [0..1] range.
func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
