// Package geom implements an integer rectangle whose operations stay exact
// and overflow-safe across the whole int32 range.
//
// A rectangle with a negative width or height is non-existent. Combining
// operations treat it as "no rectangle" instead of failing, and Intersection
// reports "no overlap" by returning one.
package geom

import "fmt"

// Point is an integer screen coordinate.
type Point struct {
	X int32 `json:"x" yaml:"x"`
	Y int32 `json:"y" yaml:"y"`
}

// Size is an integer extent. Either field may be negative.
type Size struct {
	Width  int32 `json:"width" yaml:"width"`
	Height int32 `json:"height" yaml:"height"`
}

// Rectangle is an axis-aligned rectangle with its upper-left corner at (X, Y).
// The zero value is an empty rectangle at the origin.
type Rectangle struct {
	X      int32 `json:"x" yaml:"x"`
	Y      int32 `json:"y" yaml:"y"`
	Width  int32 `json:"width" yaml:"width"`
	Height int32 `json:"height" yaml:"height"`
}

// New returns a rectangle with the given bounds.
func New(x, y, width, height int32) Rectangle {
	return Rectangle{X: x, Y: y, Width: width, Height: height}
}

// FromWidthHeight returns a rectangle of the given size at the origin.
func FromWidthHeight(width, height int32) Rectangle {
	return New(0, 0, width, height)
}

// FromSize returns a rectangle of size s at the origin.
func FromSize(s Size) Rectangle {
	return New(0, 0, s.Width, s.Height)
}

// FromPoint returns a zero-size rectangle located at p.
func FromPoint(p Point) Rectangle {
	return New(p.X, p.Y, 0, 0)
}

// FromPointSize returns a rectangle located at p with size s.
func FromPointSize(p Point, s Size) Rectangle {
	return New(p.X, p.Y, s.Width, s.Height)
}

// FromCorners returns the rectangle spanning [x1, x2) by [y1, y2).
// A size that does not fit in int32 is clamped; an inverted pair of edges
// yields a non-existent rectangle.
func FromCorners(x1, y1, x2, y2 int32) Rectangle {
	return New(x1, y1, Narrow(Widen(x2)-Widen(x1)), Narrow(Widen(y2)-Widen(y1)))
}

// Bounds returns a copy of r.
func (r Rectangle) Bounds() Rectangle {
	return r
}

// Location returns the upper-left corner.
func (r Rectangle) Location() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the width and height.
func (r Rectangle) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Right returns the far X edge without overflow.
func (r Rectangle) Right() int64 {
	return Widen(r.X) + Widen(r.Width)
}

// Bottom returns the far Y edge without overflow.
func (r Rectangle) Bottom() int64 {
	return Widen(r.Y) + Widen(r.Height)
}

// Exists reports whether both dimensions are non-negative.
func (r Rectangle) Exists() bool {
	return r.Width >= 0 && r.Height >= 0
}

// IsEmpty reports whether r encloses no points. Zero-size rectangles are
// empty as well as non-existent ones.
func (r Rectangle) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// String formats r as "x,y wxh".
func (r Rectangle) String() string {
	return fmt.Sprintf("%d,%d %dx%d", r.X, r.Y, r.Width, r.Height)
}

// SetBounds replaces all four fields. Every other setter goes through it.
func (r *Rectangle) SetBounds(x, y, width, height int32) {
	r.X = x
	r.Y = y
	r.Width = width
	r.Height = height
}

// SetBoundsRect copies the bounds of src into r.
func (r *Rectangle) SetBoundsRect(src Rectangle) {
	r.SetBounds(src.X, src.Y, src.Width, src.Height)
}

// SetLocation moves the upper-left corner without changing the size.
func (r *Rectangle) SetLocation(x, y int32) {
	r.SetBounds(x, y, r.Width, r.Height)
}

// SetLocationPoint moves the upper-left corner to p.
func (r *Rectangle) SetLocationPoint(p Point) {
	r.SetLocation(p.X, p.Y)
}

// SetSize changes the size without moving the upper-left corner.
func (r *Rectangle) SetSize(width, height int32) {
	r.SetBounds(r.X, r.Y, width, height)
}

// SetSizeOf changes the size to s.
func (r *Rectangle) SetSizeOf(s Size) {
	r.SetSize(s.Width, s.Height)
}

// SetRect sets the bounds from floating-point values.
//
// Positions are floored and sizes ceiled. Out-of-range values are clipped to
// the int32 bounds. When a position is clipped, a non-negative size absorbs
// the clipping delta so the far edge stays as close to its true place as
// possible. A position beyond 2*MaxValue cannot be approximated at all; that
// axis becomes non-existent at MaxValue.
func (r *Rectangle) SetRect(x, y, width, height float64) {
	nx, nw := clipAxis(x, width)
	ny, nh := clipAxis(y, height)
	r.SetBounds(nx, ny, nw, nh)
}

// clipAxis narrows one float axis, moving the size to keep the far edge.
func clipAxis(pos, size float64) (int32, int32) {
	if pos > 2.0*MaxValue {
		return MaxValue, -1
	}
	npos := clip(pos, false)
	if size >= 0 {
		size += pos - float64(npos)
	}
	return npos, clip(size, size >= 0)
}
