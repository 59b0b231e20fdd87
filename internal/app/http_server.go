package app

import (
	"encoding/json"
	"net/http"

	"github.com/frudas24/deskrect/internal/calib"
	"github.com/frudas24/deskrect/internal/geom"
	"github.com/frudas24/deskrect/internal/monitor"
	"github.com/frudas24/deskrect/internal/session"
)

// RegisterRoutes wires API and websocket handlers onto the mux.
func (a *App) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/login", a.handleLogin)
	mux.HandleFunc("/logout", a.handleLogout)
	mux.HandleFunc("/api/monitors", a.handleMonitors)
	mux.HandleFunc("/api/state", a.handleState)
	mux.HandleFunc("/api/calib", a.handleCalib)
	mux.Handle("/ws/control", a.Control())
	mux.HandleFunc("/favicon.ico", handleFavicon)
}

type loginRequest struct {
	Password string `json:"password"`
}

type monitorsResponse struct {
	Monitors []monitor.Monitor `json:"monitors"`
	Virtual  geom.Rectangle    `json:"virtual"`
}

type stateResponse struct {
	Mode          session.Mode `json:"mode"`
	MonitorIndex  int          `json:"monitor"`
	InputEnabled  bool         `json:"inputEnabled"`
	Calib         calib.Status `json:"calib"`
	Authenticated bool         `json:"authenticated"`
}

type calibResponse struct {
	Calib   calib.Calib    `json:"calib"`
	Status  calib.Status   `json:"status"`
	Regions *calib.Regions `json:"regions,omitempty"`
}

// handleLogin authenticates the session.
func (a *App) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if !a.session.Authenticate(req.Password) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	writeJSON(w, map[string]bool{"ok": true})
}

// handleLogout clears authentication state.
func (a *App) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	a.session.Logout()
	writeJSON(w, map[string]bool{"ok": true})
}

// handleMonitors returns the monitors and the virtual desktop enclosing them.
// ?refresh=1 re-enumerates the displays first.
func (a *App) handleMonitors(w http.ResponseWriter, r *http.Request) {
	if !a.requireAuth(w) {
		return
	}
	list, err := a.ListMonitors()
	if r.URL.Query().Get("refresh") == "1" {
		list, err = a.RefreshMonitors()
	}
	if err != nil {
		http.Error(w, "failed to list monitors", http.StatusInternalServerError)
		return
	}
	writeJSON(w, monitorsResponse{Monitors: list, Virtual: monitor.VirtualDesktop(list)})
}

// handleState returns current session state and calibration status.
func (a *App) handleState(w http.ResponseWriter, _ *http.Request) {
	if !a.requireAuth(w) {
		return
	}
	snap := a.session.Snapshot()
	writeJSON(w, stateResponse{
		Mode:          snap.Mode,
		MonitorIndex:  snap.MonitorIndex,
		InputEnabled:  snap.InputEnabled,
		Calib:         calib.StatusOf(snap.Calib),
		Authenticated: snap.Authenticated,
	})
}

// handleCalib returns the stored calibration with its resolved regions, or
// clears it on DELETE.
func (a *App) handleCalib(w http.ResponseWriter, r *http.Request) {
	if !a.requireAuth(w) {
		return
	}
	switch r.Method {
	case http.MethodGet:
	case http.MethodDelete:
		c := calib.Calib{MonitorIndex: a.session.Monitor()}
		if err := a.saveCalib(c); err != nil {
			http.Error(w, "failed to save calibration", http.StatusInternalServerError)
			return
		}
		a.session.SetCalib(c)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	c := a.session.GetCalib()
	resp := calibResponse{Calib: c, Status: calib.StatusOf(c)}
	if regions, ok := a.regions(c); ok {
		resp.Regions = &regions
	}
	writeJSON(w, resp)
}

// requireAuth returns false and writes an error if the session is not authenticated.
func (a *App) requireAuth(w http.ResponseWriter) bool {
	if !a.session.IsAuthenticated() {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return false
	}
	return true
}

// writeJSON encodes v as the JSON response body.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// handleFavicon avoids noisy 404s for the default browser request.
func handleFavicon(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
