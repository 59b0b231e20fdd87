package geom

// Translate moves r in place by (dx, dy).
//
// If the new position leaves the int32 range, it is clamped to the boundary
// in the direction of travel. A non-negative size is then adjusted so that
// the far edge lands where the unclamped move would have put it. Moving
// right, a size that no longer fits becomes MaxValue. Moving left, the size
// may turn negative when the far edge itself passed MinValue. A negative size
// is never adjusted.
func (r *Rectangle) Translate(dx, dy int32) {
	x, w := translateAxis(r.X, r.Width, dx)
	y, h := translateAxis(r.Y, r.Height, dy)
	r.SetBounds(x, y, w, h)
}

// Translated returns a copy of r moved by (dx, dy).
func (r Rectangle) Translated(dx, dy int32) Rectangle {
	r.Translate(dx, dy)
	return r
}

// TranslatedBy returns a copy of r moved by the offset p.
func (r Rectangle) TranslatedBy(p Point) Rectangle {
	return r.Translated(p.X, p.Y)
}

// translateAxis moves one axis by d, clamping the near edge.
func translateAxis(near, size, d int32) (int32, int32) {
	moved := Widen(near) + Widen(d)
	switch {
	case moved < MinValue:
		if size >= 0 {
			// far edge minus the clamped near edge; at least MinValue
			size = int32(moved + Widen(size) - MinValue)
		}
		return MinValue, size
	case moved > MaxValue:
		if size >= 0 {
			size = NarrowHigh(Widen(size) + moved - MaxValue)
		}
		return MaxValue, size
	}
	return int32(moved), size
}

// Grow expands r in place by h on the left and right and by v on the top and
// bottom. Negative amounts shrink it.
//
// Each axis clamps the near edge before deriving the size from the unclamped
// far edge, so clamping never swaps the two edges. An axis whose far edge
// ends up before its near edge keeps a negative size.
func (r *Rectangle) Grow(h, v int32) {
	x, w := growAxis(r.X, r.Width, h)
	y, ht := growAxis(r.Y, r.Height, v)
	r.SetBounds(x, y, w, ht)
}

// Grown returns a copy of r expanded by (h, v).
func (r Rectangle) Grown(h, v int32) Rectangle {
	r.Grow(h, v)
	return r
}

// growAxis grows one axis by d on both sides.
func growAxis(near, size, d int32) (int32, int32) {
	n := Widen(near)
	f := n + Widen(size)
	n -= Widen(d)
	f += Widen(d)
	if f < n {
		// non-existent: keep the size negative, clamp the near edge after
		return Narrow(n), NarrowLow(f - n)
	}
	cn := Narrow(n)
	return cn, Narrow(f - Widen(cn))
}
