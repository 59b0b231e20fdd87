package control

import "github.com/frudas24/deskrect/internal/geom"

// ClampPoint clamps p to the last pixel inside r. An empty r leaves p as is.
func ClampPoint(r geom.Rectangle, p geom.Point) geom.Point {
	if r.IsEmpty() {
		return p
	}
	return geom.Point{
		X: clampAxis(p.X, r.X, geom.Narrow(r.Right()-1)),
		Y: clampAxis(p.Y, r.Y, geom.Narrow(r.Bottom()-1)),
	}
}

// clampAxis bounds v to [lo..hi].
func clampAxis(v, lo, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Center returns the center pixel of r.
func Center(r geom.Rectangle) geom.Point {
	return geom.Point{
		X: geom.Narrow(geom.Widen(r.X) + geom.Widen(r.Width)/2),
		Y: geom.Narrow(geom.Widen(r.Y) + geom.Widen(r.Height)/2),
	}
}

// enterCage returns the cursor to use inside cage, plus a move to the cage
// center when the cursor is unknown or outside it.
func enterCage(cage geom.Rectangle, cursor geom.Point, known bool) (geom.Point, []Action) {
	if known && cage.ContainsPoint(cursor) {
		return cursor, nil
	}
	c := Center(cage)
	return c, []Action{{Type: ActMove, X: c.X, Y: c.Y}}
}

// CagedMove moves the cursor by (dx, dy) without leaving cage.
func CagedMove(cage geom.Rectangle, cursor geom.Point, known bool, dx, dy int32) []Action {
	if cage.IsEmpty() {
		return nil
	}
	cursor, actions := enterCage(cage, cursor, known)
	if dx == 0 && dy == 0 {
		return actions
	}
	target := ClampPoint(cage, geom.FromPoint(cursor).Translated(dx, dy).Location())
	return append(actions, Action{Type: ActMove, X: target.X, Y: target.Y})
}

// CagedClick clicks at the cursor, first pulling it into cage when needed.
func CagedClick(cage geom.Rectangle, cursor geom.Point, known bool) []Action {
	if cage.IsEmpty() {
		return nil
	}
	_, actions := enterCage(cage, cursor, known)
	return append(actions, Action{Type: ActLeftDown}, Action{Type: ActLeftUp})
}
