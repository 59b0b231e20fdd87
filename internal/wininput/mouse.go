//go:build windows

// Package wininput defines Windows input injection interfaces.
package wininput

import (
	"github.com/frudas24/deskrect/internal/geom"
	"github.com/lxn/win"
)

// MoveAbs moves the cursor to an absolute virtual-desktop coordinate.
func (w *WinInjector) MoveAbs(x, y int32) error {
	dx, dy := mapAbsolute(virtualScreen(), x, y)
	flags := uint32(win.MOUSEEVENTF_MOVE | win.MOUSEEVENTF_ABSOLUTE | win.MOUSEEVENTF_VIRTUALDESK)
	if err := sendMouseInput(flags, dx, dy, 0); err != nil {
		if win.SetCursorPos(x, y) {
			return nil
		}
		return err
	}
	win.SetCursorPos(x, y)
	return nil
}

// LeftDown presses the left mouse button.
func (w *WinInjector) LeftDown() error {
	return sendMouseInput(win.MOUSEEVENTF_LEFTDOWN, 0, 0, 0)
}

// LeftUp releases the left mouse button.
func (w *WinInjector) LeftUp() error {
	return sendMouseInput(win.MOUSEEVENTF_LEFTUP, 0, 0, 0)
}

// ClickAt moves the cursor and performs a left click.
func (w *WinInjector) ClickAt(x, y int32) error {
	if err := w.MoveAbs(x, y); err != nil {
		return err
	}
	if err := w.LeftDown(); err != nil {
		return err
	}
	return w.LeftUp()
}

// virtualScreen returns the bounds of the whole virtual desktop.
func virtualScreen() geom.Rectangle {
	return geom.New(
		win.GetSystemMetrics(win.SM_XVIRTUALSCREEN),
		win.GetSystemMetrics(win.SM_YVIRTUALSCREEN),
		win.GetSystemMetrics(win.SM_CXVIRTUALSCREEN),
		win.GetSystemMetrics(win.SM_CYVIRTUALSCREEN),
	)
}
