package geom

// Intersection returns the overlap of r and o.
//
// When the rectangles do not overlap the result has a negative width or
// height. The size is clamped only at MinValue: it can never exceed the
// smaller input span, but two far-apart rectangles can push it below the
// int32 range.
func (r Rectangle) Intersection(o Rectangle) Rectangle {
	x1, y1 := r.X, r.Y
	x2, y2 := r.Right(), r.Bottom()
	if x1 < o.X {
		x1 = o.X
	}
	if y1 < o.Y {
		y1 = o.Y
	}
	if ox2 := o.Right(); x2 > ox2 {
		x2 = ox2
	}
	if oy2 := o.Bottom(); y2 > oy2 {
		y2 = oy2
	}
	return New(x1, y1, NarrowLow(x2-Widen(x1)), NarrowLow(y2-Widen(y1)))
}

// Union returns the smallest rectangle enclosing both r and o.
//
// A non-existent operand is ignored: if r has a negative dimension the result
// is o, even when o is non-existent too. The size is clamped only at MaxValue.
func (r Rectangle) Union(o Rectangle) Rectangle {
	if !r.Exists() {
		return o
	}
	if !o.Exists() {
		return r
	}
	return unionBounds(r, o)
}

// unionBounds encloses two existing rectangles.
func unionBounds(r, o Rectangle) Rectangle {
	x1, y1 := r.X, r.Y
	x2, y2 := r.Right(), r.Bottom()
	if x1 > o.X {
		x1 = o.X
	}
	if y1 > o.Y {
		y1 = o.Y
	}
	if ox2 := o.Right(); x2 < ox2 {
		x2 = ox2
	}
	if oy2 := o.Bottom(); y2 < oy2 {
		y2 = oy2
	}
	return New(x1, y1, NarrowHigh(x2-Widen(x1)), NarrowHigh(y2-Widen(y1)))
}

// AddRect grows r in place to enclose o. It follows Union: a non-existent r
// takes o's bounds, and a non-existent o leaves r untouched.
func (r *Rectangle) AddRect(o Rectangle) {
	if !r.Exists() {
		r.SetBoundsRect(o)
		return
	}
	if !o.Exists() {
		return
	}
	r.SetBoundsRect(unionBounds(*r, o))
}

// Add grows r in place to include the point (px, py).
//
// A non-existent r collapses to a zero-size rectangle at the point; its old
// bounds are discarded. Otherwise the point ends up on or inside the new
// edges. A point on the new right or bottom edge is still not reported by
// Contains.
func (r *Rectangle) Add(px, py int32) {
	if !r.Exists() {
		r.SetBounds(px, py, 0, 0)
		return
	}
	x1, y1 := r.X, r.Y
	x2, y2 := r.Right(), r.Bottom()
	if x1 > px {
		x1 = px
	}
	if y1 > py {
		y1 = py
	}
	if x2 < Widen(px) {
		x2 = Widen(px)
	}
	if y2 < Widen(py) {
		y2 = Widen(py)
	}
	r.SetBounds(x1, y1, NarrowHigh(x2-Widen(x1)), NarrowHigh(y2-Widen(y1)))
}

// AddPoint grows r in place to include p.
func (r *Rectangle) AddPoint(p Point) {
	r.Add(p.X, p.Y)
}

// Including returns a copy of r grown to include the point (px, py).
func (r Rectangle) Including(px, py int32) Rectangle {
	r.Add(px, py)
	return r
}
