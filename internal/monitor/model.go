// Package monitor describes display geometry and enumeration.
package monitor

import "github.com/frudas24/deskrect/internal/geom"

// Monitor describes a display and its bounds on the virtual desktop.
type Monitor struct {
	Index   int            `json:"index"`
	Bounds  geom.Rectangle `json:"bounds"`
	Primary bool           `json:"primary"`
}

// Origin returns the upper-left corner of the monitor.
func (m Monitor) Origin() geom.Point {
	return m.Bounds.Location()
}

// GetMonitorByIndex returns the monitor matching the 1-based index.
func GetMonitorByIndex(list []Monitor, idx int) (Monitor, bool) {
	for _, m := range list {
		if m.Index == idx {
			return m, true
		}
	}
	return Monitor{}, false
}

// VirtualDesktop returns the smallest rectangle enclosing every monitor.
// An empty list yields a non-existent rectangle.
func VirtualDesktop(list []Monitor) geom.Rectangle {
	desktop := geom.New(0, 0, -1, -1)
	for _, m := range list {
		desktop.AddRect(m.Bounds)
	}
	return desktop
}

// At returns the monitor that contains the point (x, y).
func At(list []Monitor, x, y int32) (Monitor, bool) {
	for _, m := range list {
		if m.Bounds.Contains(x, y) {
			return m, true
		}
	}
	return Monitor{}, false
}

// Overlapping returns the monitors that share any area with r.
func Overlapping(list []Monitor, r geom.Rectangle) []Monitor {
	var out []Monitor
	for _, m := range list {
		if m.Bounds.Intersects(r) {
			out = append(out, m)
		}
	}
	return out
}
