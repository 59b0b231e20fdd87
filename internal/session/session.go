// Package session holds runtime state for the active viewer.
package session

import (
	"fmt"
	"sync"

	"github.com/frudas24/deskrect/internal/calib"
)

// Mode selects how pointer input is mapped onto the desktop.
type Mode string

const (
	// ModePresetup maps input onto the whole selected monitor for calibration.
	ModePresetup Mode = "presetup"
	// ModeRun maps input onto the calibrated plugin region only.
	ModeRun Mode = "run"
)

// ParseMode validates a mode name received from a client.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModePresetup, ModeRun:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unknown mode %q", s)
	}
}

// Snapshot represents a read-only view of the current session state.
type Snapshot struct {
	Authenticated bool
	InputEnabled  bool
	Mode          Mode
	MonitorIndex  int
	Calib         calib.Calib
}

// Session holds runtime state for the active viewer.
type Session struct {
	mu            sync.RWMutex
	password      string
	authenticated bool
	inputEnabled  bool
	mode          Mode
	monitorIndex  int
	calib         calib.Calib
}

// New returns an initialized session with the given password.
func New(password string) *Session {
	return &Session{
		password:     password,
		inputEnabled: true,
		mode:         ModePresetup,
	}
}

// Authenticate validates the password and marks the session as authenticated.
func (s *Session) Authenticate(pass string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authenticated = pass != "" && pass == s.password
	return s.authenticated
}

// Logout clears authentication state.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authenticated = false
}

// IsAuthenticated reports whether the session is authenticated.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

// SetInputEnabled toggles whether inputs are forwarded to the host.
func (s *Session) SetInputEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inputEnabled = enabled
}

// InputEnabled reports whether inputs are forwarded to the host.
func (s *Session) InputEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inputEnabled
}

// SetMode sets the current session mode.
func (s *Session) SetMode(mode Mode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = mode
}

// Mode returns the current session mode.
func (s *Session) Mode() Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// SetMonitor sets the selected monitor index.
func (s *Session) SetMonitor(idx int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.monitorIndex = idx
}

// Monitor returns the selected monitor index.
func (s *Session) Monitor() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.monitorIndex
}

// SetCalib stores calibration data.
func (s *Session) SetCalib(c calib.Calib) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calib = c
}

// GetCalib returns the current calibration data.
func (s *Session) GetCalib() calib.Calib {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.calib
}

// Snapshot returns a copy of the current session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Authenticated: s.authenticated,
		InputEnabled:  s.inputEnabled,
		Mode:          s.mode,
		MonitorIndex:  s.monitorIndex,
		Calib:         s.calib,
	}
}
