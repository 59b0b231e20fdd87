// Package wininput defines Windows input injection interfaces.
package wininput

import (
	"errors"

	"github.com/frudas24/deskrect/internal/geom"
)

// ErrUnsupported indicates WinAPI input injection is not available.
var ErrUnsupported = errors.New("wininput is only supported on Windows")

// Injector defines the input operations used by the control layer.
// Coordinates are virtual-desktop pixels.
type Injector interface {
	MoveAbs(x, y int32) error
	LeftDown() error
	LeftUp() error
	ClickAt(x, y int32) error
	TypeUnicode(text string) error
	Enter() error
	SelectAll() error
	Delete() error
	// CursorPos reports the current OS cursor position; ok is false when it
	// cannot be read.
	CursorPos() (p geom.Point, ok bool)
}
