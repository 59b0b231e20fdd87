//go:build windows

// Package wininput defines Windows input injection interfaces.
package wininput

import (
	"syscall"
	"unsafe"

	"github.com/frudas24/deskrect/internal/geom"
	"github.com/lxn/win"
)

// WinInjector injects mouse and keyboard input using WinAPI.
type WinInjector struct{}

// NewInjector returns a Windows input injector.
func NewInjector() (Injector, error) {
	return &WinInjector{}, nil
}

// CursorPos reads the OS cursor position.
func (w *WinInjector) CursorPos() (geom.Point, bool) {
	var pt win.POINT
	if !win.GetCursorPos(&pt) {
		return geom.Point{}, false
	}
	return geom.Point{X: pt.X, Y: pt.Y}, true
}

// sendMouseInput dispatches a single mouse input event.
func sendMouseInput(flags uint32, dx, dy int32, data uint32) error {
	input := win.MOUSE_INPUT{
		Type: win.INPUT_MOUSE,
		Mi: win.MOUSEINPUT{
			Dx:        dx,
			Dy:        dy,
			MouseData: data,
			DwFlags:   flags,
		},
	}
	if win.SendInput(1, unsafe.Pointer(&input), int32(unsafe.Sizeof(input))) != 1 {
		return syscall.Errno(win.GetLastError())
	}
	return nil
}

// sendKeyboardInput dispatches a single keyboard input event.
func sendKeyboardInput(key win.KEYBDINPUT) error {
	input := win.KEYBD_INPUT{
		Type: win.INPUT_KEYBOARD,
		Ki:   key,
	}
	if win.SendInput(1, unsafe.Pointer(&input), int32(unsafe.Sizeof(input))) != 1 {
		return syscall.Errno(win.GetLastError())
	}
	return nil
}
