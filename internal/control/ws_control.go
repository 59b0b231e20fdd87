package control

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/frudas24/deskrect/internal/calib"
	"github.com/frudas24/deskrect/internal/geom"
	"github.com/frudas24/deskrect/internal/monitor"
	"github.com/frudas24/deskrect/internal/session"
	"github.com/frudas24/deskrect/internal/wininput"
	"github.com/frudas24/deskrect/internal/winlock"
	"github.com/gorilla/websocket"
)

// ErrRejected marks a control message that was refused without breaking the connection.
var ErrRejected = errors.New("message rejected")

// MonitorProvider returns the current list of monitors.
type MonitorProvider func() ([]monitor.Monitor, error)

// Server handles websocket control input.
type Server struct {
	mu           sync.Mutex
	upgrader     websocket.Upgrader
	session      *session.Session
	injector     wininput.Injector
	keeper       winlock.Keeper
	gestures     *GestureState
	listMonitors MonitorProvider
	saveCalib    func(calib.Calib) error
	conn         *websocket.Conn
}

// NewServer creates a control websocket server. A nil keeper runs chat
// actions without locking the target window.
func NewServer(sess *session.Session, injector wininput.Injector, keeper winlock.Keeper, listMonitors MonitorProvider, saveCalib func(calib.Calib) error) *Server {
	if keeper == nil {
		keeper = winlock.Passthrough{}
	}
	return &Server{
		session:      sess,
		injector:     injector,
		keeper:       keeper,
		listMonitors: listMonitors,
		gestures:     NewGestureState(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		saveCalib: saveCalib,
	}
}

// ServeHTTP upgrades the connection and processes control messages.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !s.session.IsAuthenticated() {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	if err := s.acceptConn(conn); err != nil {
		log.Printf("control: %v", err)
		_ = conn.Close()
		return
	}
	defer s.cleanupConn(conn)

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}
		err := s.handleMessage(msg)
		if err == nil {
			continue
		}
		if !rejected(err) {
			log.Printf("control: %s: %v", msg.T, err)
			return
		}
		if err := conn.WriteJSON(Reply{T: "error", Error: err.Error()}); err != nil {
			return
		}
	}
}

// rejected reports whether err should be returned to the client instead of closing the connection.
func rejected(err error) bool {
	return errors.Is(err, ErrRejected) ||
		errors.Is(err, calib.ErrNotCalibrated) ||
		errors.Is(err, calib.ErrRegionOutside) ||
		errors.Is(err, wininput.ErrUnsupported)
}

// acceptConn ensures only one active control connection exists.
func (s *Server) acceptConn(conn *websocket.Conn) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn != nil {
		return fmt.Errorf("control connection already active")
	}
	s.conn = conn
	return nil
}

// cleanupConn clears the active connection when closed.
func (s *Server) cleanupConn(conn *websocket.Conn) {
	s.mu.Lock()
	if s.conn == conn {
		s.conn = nil
	}
	s.mu.Unlock()
	_ = conn.Close()
}

// handleMessage dispatches a single control message.
func (s *Server) handleMessage(msg Message) error {
	switch msg.T {
	case "down", "move", "up":
		return s.handlePointer(msg)
	case "relMove":
		return s.handleRelMove(msg.DX, msg.DY)
	case "click":
		return s.handleClick()
	case "type", "enter", "clearChat":
		return s.handleChat(msg)
	case "setMode":
		mode, err := session.ParseMode(msg.Mode)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrRejected, err)
		}
		return s.enterMode(mode)
	case "restartPresetup":
		return s.enterMode(session.ModePresetup)
	case "setMonitor":
		if _, err := s.monitorFor(msg.Idx); err != nil {
			return err
		}
		s.session.SetMonitor(msg.Idx)
		return nil
	case "calibRect":
		return s.handleCalibRect(msg)
	case "inputEnabled":
		if msg.Enabled != nil {
			s.session.SetInputEnabled(*msg.Enabled)
		}
		return nil
	default:
		return nil
	}
}

// enterMode switches the session mode and drops any drag started in the previous one.
func (s *Server) enterMode(mode session.Mode) error {
	s.session.SetMode(mode)
	return s.applyActions(s.gestures.Reset())
}

// handlePointer maps a touch event onto the plugin in run mode or onto the
// whole monitor during presetup.
func (s *Server) handlePointer(msg Message) error {
	if s.session.Mode() != session.ModeRun {
		m, err := s.monitorFor(s.session.Monitor())
		if err != nil {
			return err
		}
		p := NormToAbs(msg.X, msg.Y, m.Bounds)
		return s.applyActions(buildPresetupActions(msg.T, p))
	}

	regions, err := s.regions()
	if err != nil {
		return err
	}
	p := NormToAbs(msg.X, msg.Y, regions.Plugin)
	enabled := s.session.InputEnabled()
	var actions []Action
	switch msg.T {
	case "down":
		actions = s.gestures.HandleDown(enabled, msg.ID, p, regions.Scroll)
	case "move":
		actions = s.gestures.HandleMove(enabled, msg.ID, p)
	case "up":
		actions = s.gestures.HandleUp(enabled, msg.ID, p)
	}
	return s.applyActions(actions)
}

// handleRelMove moves the cursor by a trackpad delta inside the current cage.
func (s *Server) handleRelMove(dx, dy int32) error {
	if !s.session.InputEnabled() {
		return nil
	}
	cage, err := s.cage()
	if err != nil {
		return err
	}
	cursor, known := s.injector.CursorPos()
	return s.applyActions(CagedMove(cage, cursor, known, dx, dy))
}

// handleClick clicks at the cursor inside the current cage.
func (s *Server) handleClick() error {
	if !s.session.InputEnabled() {
		return nil
	}
	cage, err := s.cage()
	if err != nil {
		return err
	}
	cursor, known := s.injector.CursorPos()
	return s.applyActions(CagedClick(cage, cursor, known))
}

// handleChat focuses the chat input and runs the requested edit with the
// chat window locked, so its scroll position survives the click.
func (s *Server) handleChat(msg Message) error {
	if !s.session.InputEnabled() {
		return nil
	}
	regions, err := s.regions()
	if err != nil {
		return err
	}
	if regions.Chat.IsEmpty() {
		return fmt.Errorf("chat: %w", calib.ErrNotCalibrated)
	}

	var actions []Action
	switch msg.T {
	case "type":
		actions = ActionsForType(true, msg.Text, regions.Chat)
	case "enter":
		actions = ActionsForEnter(true, regions.Chat)
	case "clearChat":
		actions = ActionsForClear(true, regions.Chat)
	}
	if len(actions) == 0 {
		return nil
	}
	return s.keeper.Run(Center(regions.Chat), func() error {
		return s.applyActions(actions)
	})
}

// handleCalibRect validates and stores a calibration step.
func (s *Server) handleCalibRect(msg Message) error {
	if msg.Rect == nil {
		return fmt.Errorf("%w: calibration rect missing", ErrRejected)
	}
	c := s.session.GetCalib()
	rect := calib.Normalize(*msg.Rect)

	switch msg.Step {
	case "plugin":
		c.Plugin = rect
		c.MonitorIndex = s.session.Monitor()
		c.Chat = geom.Rectangle{}
		c.Scroll = geom.Rectangle{}
	case "chat":
		c.Chat = rect
	case "scroll":
		c.Scroll = rect
	default:
		return fmt.Errorf("%w: unknown calibration step %q", ErrRejected, msg.Step)
	}

	m, err := s.monitorFor(c.MonitorIndex)
	if err != nil {
		return err
	}
	if err := calib.Validate(c, m.Bounds.Size()); err != nil {
		return err
	}

	s.session.SetCalib(c)
	if s.saveCalib != nil {
		if err := s.saveCalib(c); err != nil {
			return err
		}
	}
	return nil
}

// monitorFor looks up a monitor by its 1-based index.
func (s *Server) monitorFor(idx int) (monitor.Monitor, error) {
	monitors, err := s.listMonitors()
	if err != nil {
		return monitor.Monitor{}, err
	}
	m, ok := monitor.GetMonitorByIndex(monitors, idx)
	if !ok {
		return monitor.Monitor{}, fmt.Errorf("%w: monitor %d not found", ErrRejected, idx)
	}
	return m, nil
}

// regions resolves the stored calibration against its monitor.
func (s *Server) regions() (calib.Regions, error) {
	c := s.session.GetCalib()
	if calib.Normalize(c.Plugin).IsEmpty() {
		return calib.Regions{}, calib.ErrNotCalibrated
	}
	idx := c.MonitorIndex
	if idx <= 0 {
		idx = s.session.Monitor()
	}
	m, err := s.monitorFor(idx)
	if err != nil {
		return calib.Regions{}, err
	}
	return calib.Resolve(c, m.Origin()), nil
}

// cage returns the area the pointer may not leave: the plugin in run mode,
// the selected monitor otherwise.
func (s *Server) cage() (geom.Rectangle, error) {
	if s.session.Mode() == session.ModeRun {
		regions, err := s.regions()
		if err != nil {
			return geom.Rectangle{}, err
		}
		return regions.Plugin, nil
	}
	m, err := s.monitorFor(s.session.Monitor())
	if err != nil {
		return geom.Rectangle{}, err
	}
	return m.Bounds, nil
}

// applyActions executes actions using the injector.
func (s *Server) applyActions(actions []Action) error {
	for _, action := range actions {
		if err := s.applyAction(action); err != nil {
			return err
		}
	}
	return nil
}

// applyAction executes a single action.
func (s *Server) applyAction(action Action) error {
	switch action.Type {
	case ActMove:
		return s.injector.MoveAbs(action.X, action.Y)
	case ActLeftDown:
		return s.injector.LeftDown()
	case ActLeftUp:
		return s.injector.LeftUp()
	case ActClick:
		return s.injector.ClickAt(action.X, action.Y)
	case ActType:
		return s.injector.TypeUnicode(action.Text)
	case ActEnter:
		return s.injector.Enter()
	case ActSelectAll:
		return s.injector.SelectAll()
	case ActDelete:
		return s.injector.Delete()
	default:
		return nil
	}
}

// buildPresetupActions returns basic actions for presetup mode.
func buildPresetupActions(kind string, p geom.Point) []Action {
	switch kind {
	case "down":
		return []Action{{Type: ActClick, X: p.X, Y: p.Y}}
	case "move":
		return []Action{{Type: ActMove, X: p.X, Y: p.Y}}
	default:
		return nil
	}
}
