// Package app wires HTTP, session, and control state together.
package app

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/frudas24/deskrect/internal/calib"
	"github.com/frudas24/deskrect/internal/config"
	"github.com/frudas24/deskrect/internal/control"
	"github.com/frudas24/deskrect/internal/monitor"
	"github.com/frudas24/deskrect/internal/session"
	"github.com/frudas24/deskrect/internal/wininput"
	"github.com/frudas24/deskrect/internal/winlock"
)

// App coordinates the HTTP API and the control websocket.
type App struct {
	mu        sync.Mutex
	cfg       config.Config
	session   *session.Session
	control   *control.Server
	enumerate control.MonitorProvider
	monitors  []monitor.Monitor
}

// New creates a new application with its dependencies wired. enumerate
// queries the OS for monitors; its result is cached until RefreshMonitors.
func New(cfg config.Config, sess *session.Session, injector wininput.Injector, keeper winlock.Keeper, enumerate control.MonitorProvider) (*App, error) {
	if sess == nil {
		return nil, errors.New("session is required")
	}
	if injector == nil {
		return nil, errors.New("injector is required")
	}
	if enumerate == nil {
		return nil, errors.New("monitor enumerator is required")
	}

	app := &App{
		cfg:       cfg,
		session:   sess,
		enumerate: enumerate,
	}
	app.control = control.NewServer(sess, injector, keeper, app.ListMonitors, app.saveCalib)
	return app, nil
}

// Start loads monitors and the stored calibration, then enters presetup.
func (a *App) Start() error {
	monitors, err := a.RefreshMonitors()
	if err != nil {
		return err
	}
	log.Printf("monitors: %d, virtual desktop %v", len(monitors), monitor.VirtualDesktop(monitors))

	c, err := calib.Load(a.cfg.CalibPath)
	if err != nil {
		return err
	}
	a.session.SetCalib(c)

	monitorIndex := a.cfg.MonitorIndex
	if c.MonitorIndex > 0 {
		monitorIndex = c.MonitorIndex
	}
	m, ok := monitor.GetMonitorByIndex(monitors, monitorIndex)
	if !ok {
		return fmt.Errorf("monitor %d not found", monitorIndex)
	}
	a.session.SetMonitor(monitorIndex)
	a.session.SetMode(session.ModePresetup)

	if err := calib.Validate(c, m.Bounds.Size()); err != nil && !errors.Is(err, calib.ErrNotCalibrated) {
		log.Printf("calib: stored regions no longer fit monitor %d: %v", monitorIndex, err)
	}
	return nil
}

// RefreshMonitors re-enumerates the displays and replaces the cache.
func (a *App) RefreshMonitors() ([]monitor.Monitor, error) {
	monitors, err := a.enumerate()
	if err != nil {
		return nil, err
	}
	if len(monitors) == 0 {
		return nil, errors.New("no monitors found")
	}
	a.mu.Lock()
	a.monitors = monitors
	a.mu.Unlock()
	return a.ListMonitors()
}

// ListMonitors returns the cached monitor list.
func (a *App) ListMonitors() ([]monitor.Monitor, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]monitor.Monitor, len(a.monitors))
	copy(out, a.monitors)
	return out, nil
}

// Control returns the control websocket handler.
func (a *App) Control() *control.Server {
	return a.control
}

// Stop persists the current calibration.
func (a *App) Stop() error {
	return a.saveCalib(a.session.GetCalib())
}

// saveCalib persists c to the configured calibration path, if any.
func (a *App) saveCalib(c calib.Calib) error {
	if a.cfg.CalibPath == "" {
		return nil
	}
	return calib.Save(a.cfg.CalibPath, c)
}

// regions resolves c against its monitor; ok is false when the monitor is gone.
func (a *App) regions(c calib.Calib) (calib.Regions, bool) {
	monitors, _ := a.ListMonitors()
	idx := c.MonitorIndex
	if idx <= 0 {
		idx = a.session.Monitor()
	}
	m, ok := monitor.GetMonitorByIndex(monitors, idx)
	if !ok {
		return calib.Regions{}, false
	}
	return calib.Resolve(c, m.Origin()), true
}
