//go:build !windows

// Package wininput defines Windows input injection interfaces.
package wininput

import "github.com/frudas24/deskrect/internal/geom"

// NoopInjector is a placeholder injector for non-Windows builds.
type NoopInjector struct{}

// NewInjector returns a non-functional injector on non-Windows platforms.
func NewInjector() (Injector, error) {
	return &NoopInjector{}, ErrUnsupported
}

// MoveAbs returns ErrUnsupported.
func (n *NoopInjector) MoveAbs(int32, int32) error { return ErrUnsupported }

// LeftDown returns ErrUnsupported.
func (n *NoopInjector) LeftDown() error { return ErrUnsupported }

// LeftUp returns ErrUnsupported.
func (n *NoopInjector) LeftUp() error { return ErrUnsupported }

// ClickAt returns ErrUnsupported.
func (n *NoopInjector) ClickAt(int32, int32) error { return ErrUnsupported }

// TypeUnicode returns ErrUnsupported.
func (n *NoopInjector) TypeUnicode(string) error { return ErrUnsupported }

// Enter returns ErrUnsupported.
func (n *NoopInjector) Enter() error { return ErrUnsupported }

// SelectAll returns ErrUnsupported.
func (n *NoopInjector) SelectAll() error { return ErrUnsupported }

// Delete returns ErrUnsupported.
func (n *NoopInjector) Delete() error { return ErrUnsupported }

// CursorPos reports no cursor.
func (n *NoopInjector) CursorPos() (geom.Point, bool) { return geom.Point{}, false }
