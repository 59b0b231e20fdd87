package geom

// Inside reports whether the point (px, py) lies in [X, X+Width) x [Y, Y+Height).
// Non-existent rectangles contain nothing.
func (r Rectangle) Inside(px, py int32) bool {
	if r.Width < 0 || r.Height < 0 {
		return false
	}
	if px < r.X || py < r.Y {
		return false
	}
	return Widen(px) < r.Right() && Widen(py) < r.Bottom()
}

// Contains reports whether the point (px, py) lies inside r.
// Points on the right and bottom edges are outside.
func (r Rectangle) Contains(px, py int32) bool {
	return r.Inside(px, py)
}

// ContainsPoint reports whether p lies inside r.
func (r Rectangle) ContainsPoint(p Point) bool {
	return r.Inside(p.X, p.Y)
}

// ContainsRect reports whether o lies entirely inside r.
func (r Rectangle) ContainsRect(o Rectangle) bool {
	return r.ContainsBounds(o.X, o.Y, o.Width, o.Height)
}

// ContainsBounds reports whether the rectangle (x, y, w, h) lies entirely
// inside r. Far edges may coincide.
//
// Any negative size makes the answer false. A zero-size argument is never
// contained, and a zero-size receiver contains nothing.
func (r Rectangle) ContainsBounds(x, y, w, h int32) bool {
	rw, rh := r.Width, r.Height
	if (rw | rh | w | h) < 0 {
		return false
	}
	if x < r.X || y < r.Y {
		return false
	}
	return spanWithin(r.X, rw, x, w) && spanWithin(r.Y, rh, y, h)
}

// spanWithin checks one axis of ContainsBounds using wrapping int32 sums.
// A far edge that is not greater than its near edge either wrapped past
// MaxValue or belongs to a zero size.
func spanWithin(near, size, oNear, oSize int32) bool {
	far := near + size
	oFar := oNear + oSize
	if oFar <= oNear {
		// the argument's far edge wrapped, or its size was zero: only a
		// receiver whose far edge wrapped even further can hold it
		return far < near && oFar <= far
	}
	// the argument's far edge is in range; the receiver fails when its own
	// far edge is in range and ends first
	return far < near || oFar <= far
}

// Intersects reports whether r and o share at least one point.
// Rectangles with a zero or negative dimension intersect nothing.
func (r Rectangle) Intersects(o Rectangle) bool {
	tw, th := r.Width, r.Height
	ow, oh := o.Width, o.Height
	if ow <= 0 || oh <= 0 || tw <= 0 || th <= 0 {
		return false
	}
	tx, ty := r.X, r.Y
	ox, oy := o.X, o.Y
	// far edges in int32; a sum that wrapped reads as below its near edge
	ow += ox
	oh += oy
	tw += tx
	th += ty
	return (ow < ox || ow > tx) &&
		(oh < oy || oh > ty) &&
		(tw < tx || tw > ox) &&
		(th < ty || th > oy)
}
