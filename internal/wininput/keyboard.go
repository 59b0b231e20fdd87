//go:build windows

// Package wininput defines Windows input injection interfaces.
package wininput

import (
	"unicode/utf16"

	"github.com/lxn/win"
)

// SelectAll sends Ctrl+A to select all text in the focused control.
func (w *WinInjector) SelectAll() error {
	if err := sendKeyboardInput(win.KEYBDINPUT{WVk: win.VK_CONTROL}); err != nil {
		return err
	}
	err := tapKey(uint16('A'))
	// release Ctrl even when the chord failed halfway
	if upErr := sendKeyboardInput(win.KEYBDINPUT{WVk: win.VK_CONTROL, DwFlags: win.KEYEVENTF_KEYUP}); err == nil {
		err = upErr
	}
	return err
}

// Delete sends a Delete key press.
func (w *WinInjector) Delete() error {
	return tapKey(win.VK_DELETE)
}

// Enter sends an Enter key press.
func (w *WinInjector) Enter() error {
	return tapKey(win.VK_RETURN)
}

// TypeUnicode types Unicode text into the focused window.
func (w *WinInjector) TypeUnicode(text string) error {
	for _, code := range utf16.Encode([]rune(text)) {
		if err := sendKeyboardInput(win.KEYBDINPUT{WScan: code, DwFlags: win.KEYEVENTF_UNICODE}); err != nil {
			return err
		}
		if err := sendKeyboardInput(win.KEYBDINPUT{WScan: code, DwFlags: win.KEYEVENTF_UNICODE | win.KEYEVENTF_KEYUP}); err != nil {
			return err
		}
	}
	return nil
}

// tapKey presses and releases a virtual key.
func tapKey(vk uint16) error {
	if err := sendKeyboardInput(win.KEYBDINPUT{WVk: vk}); err != nil {
		return err
	}
	return sendKeyboardInput(win.KEYBDINPUT{WVk: vk, DwFlags: win.KEYEVENTF_KEYUP})
}
