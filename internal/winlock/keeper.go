// Package winlock runs UI actions with window repaint suppressed and the
// scroll position of the target window preserved.
package winlock

import "github.com/frudas24/deskrect/internal/geom"

// Keeper runs an action against the window found under a screen point.
type Keeper interface {
	Run(at geom.Point, action func() error) error
}

// Passthrough runs actions directly, without locking anything.
type Passthrough struct{}

// Run calls action.
func (Passthrough) Run(_ geom.Point, action func() error) error {
	return action()
}
