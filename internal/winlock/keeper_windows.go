//go:build windows

package winlock

import (
	"fmt"
	"unsafe"

	"github.com/frudas24/deskrect/internal/geom"
	"github.com/lxn/win"
	"golang.org/x/sys/windows"
)

var procLockWindowUpdate = windows.NewLazySystemDLL("user32.dll").NewProc("LockWindowUpdate")

// WinKeeper locks window updates with LockWindowUpdate and restores the
// rich-edit scroll position around each action.
type WinKeeper struct{}

// New returns a Windows keeper.
func New() Keeper {
	return &WinKeeper{}
}

// Run locks the window under at, runs action and unlocks again. If no window
// is found the action runs unlocked.
func (k *WinKeeper) Run(at geom.Point, action func() error) error {
	hwnd := win.WindowFromPoint(win.POINT{X: at.X, Y: at.Y})
	if hwnd == 0 {
		return action()
	}
	if err := lockWindowUpdate(hwnd); err != nil {
		return err
	}
	defer func() {
		_ = lockWindowUpdate(0)
		win.RedrawWindow(hwnd, nil, 0, win.RDW_INVALIDATE|win.RDW_ERASE|win.RDW_ALLCHILDREN)
	}()

	var scroll win.POINT
	win.SendMessage(hwnd, win.EM_GETSCROLLPOS, 0, uintptr(unsafe.Pointer(&scroll)))
	err := action()
	win.SendMessage(hwnd, win.EM_SETSCROLLPOS, 0, uintptr(unsafe.Pointer(&scroll)))
	return err
}

// lockWindowUpdate locks hwnd, or releases the current lock when hwnd is 0.
func lockWindowUpdate(hwnd win.HWND) error {
	ok, _, err := procLockWindowUpdate.Call(uintptr(hwnd))
	if ok == 0 && hwnd != 0 {
		return fmt.Errorf("LockWindowUpdate failed: %w", err)
	}
	return nil
}
