package wininput

import "github.com/frudas24/deskrect/internal/geom"

// absoluteSpan is the coordinate range SendInput uses for absolute moves.
const absoluteSpan = 65535

// mapAbsolute converts a virtual-desktop pixel into the 0..65535 range used
// by absolute SendInput moves. Points outside screen are clamped onto its
// edge first.
func mapAbsolute(screen geom.Rectangle, x, y int32) (int32, int32) {
	if screen.Width <= 1 {
		screen.Width = 2
	}
	if screen.Height <= 1 {
		screen.Height = 2
	}
	return scaleAxis(x, screen.X, screen.Width), scaleAxis(y, screen.Y, screen.Height)
}

// scaleAxis clamps v onto one axis and scales it to the absolute range.
func scaleAxis(v, near, size int32) int32 {
	off := geom.Widen(v) - geom.Widen(near)
	last := geom.Widen(size) - 1
	if off < 0 {
		off = 0
	}
	if off > last {
		off = last
	}
	return int32(off * absoluteSpan / last)
}
