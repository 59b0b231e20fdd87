//go:build windows

// Package monitor describes display geometry and enumeration.
package monitor

import (
	"fmt"
	"syscall"
	"unsafe"

	"github.com/frudas24/deskrect/internal/geom"
	"github.com/lxn/win"
	"golang.org/x/sys/windows"
)

var procEnumDisplayMonitors = windows.NewLazySystemDLL("user32.dll").NewProc("EnumDisplayMonitors")

// ListMonitors returns the list of available displays using WinAPI.
func ListMonitors() ([]Monitor, error) {
	state := &enumState{}
	callback := syscall.NewCallback(state.enumProc)

	ok, _, err := procEnumDisplayMonitors.Call(0, 0, callback, 0)
	if ok == 0 {
		return nil, fmt.Errorf("EnumDisplayMonitors failed: %w", err)
	}
	if len(state.list) == 0 {
		return nil, fmt.Errorf("no monitors detected")
	}
	return state.list, nil
}

type enumState struct {
	list  []Monitor
	index int
}

// enumProc records one monitor per EnumDisplayMonitors callback.
func (s *enumState) enumProc(hMonitor win.HMONITOR, hdc win.HDC, rect *win.RECT, lparam uintptr) uintptr {
	var info win.MONITORINFO
	info.CbSize = uint32(unsafe.Sizeof(info))
	if !win.GetMonitorInfo(hMonitor, &info) {
		return 1
	}

	s.index++
	s.list = append(s.list, Monitor{
		Index:   s.index,
		Bounds:  RectFromWin(info.RcMonitor),
		Primary: info.DwFlags&win.MONITORINFOF_PRIMARY != 0,
	})
	return 1
}

// RectFromWin converts an edge-based WinAPI RECT.
func RectFromWin(r win.RECT) geom.Rectangle {
	return geom.FromCorners(r.Left, r.Top, r.Right, r.Bottom)
}
