package control

import (
	"time"

	"github.com/frudas24/deskrect/internal/geom"
)

const (
	minMoveInterval = 16 * time.Millisecond
	minMoveDelta    = 2
)

// GestureState tracks drag state for touch interactions.
type GestureState struct {
	dragActive  bool
	dragPointer int
	lastMoveAt  time.Time
	last        geom.Point
	now         func() time.Time
}

// NewGestureState returns a ready-to-use gesture tracker.
func NewGestureState() *GestureState {
	return &GestureState{now: time.Now}
}

// SetNowFunc overrides the clock used for throttling.
func (g *GestureState) SetNowFunc(fn func() time.Time) {
	if fn != nil {
		g.now = fn
	}
}

// HandleDown starts a drag when p lies in scroll, otherwise it clicks at p.
// scroll is in virtual-desktop pixels.
func (g *GestureState) HandleDown(inputEnabled bool, pointerID int, p geom.Point, scroll geom.Rectangle) []Action {
	if !inputEnabled {
		return nil
	}

	if scroll.ContainsPoint(p) {
		g.dragActive = true
		g.dragPointer = pointerID
		g.lastMoveAt = g.now()
		g.last = p
		return []Action{
			{Type: ActMove, X: p.X, Y: p.Y},
			{Type: ActLeftDown, X: p.X, Y: p.Y},
		}
	}

	g.dragActive = false
	return []Action{{Type: ActClick, X: p.X, Y: p.Y}}
}

// HandleMove processes a pointer move event.
func (g *GestureState) HandleMove(inputEnabled bool, pointerID int, p geom.Point) []Action {
	if !inputEnabled {
		return nil
	}
	if !g.dragActive || g.dragPointer != pointerID {
		return nil
	}

	now := g.now()
	if !g.lastMoveAt.IsZero() && now.Sub(g.lastMoveAt) < minMoveInterval {
		return nil
	}
	if distance(p.X, g.last.X) < minMoveDelta && distance(p.Y, g.last.Y) < minMoveDelta {
		return nil
	}

	g.lastMoveAt = now
	g.last = p
	return []Action{{Type: ActMove, X: p.X, Y: p.Y}}
}

// HandleUp processes a pointer up event.
func (g *GestureState) HandleUp(inputEnabled bool, pointerID int, p geom.Point) []Action {
	if !inputEnabled {
		return nil
	}
	if !g.dragActive || g.dragPointer != pointerID {
		return nil
	}

	g.dragActive = false
	return []Action{{Type: ActLeftUp, X: p.X, Y: p.Y}}
}

// Reset abandons any drag in progress, releasing the button at the last
// dragged position.
func (g *GestureState) Reset() []Action {
	if !g.dragActive {
		return nil
	}
	g.dragActive = false
	return []Action{{Type: ActLeftUp, X: g.last.X, Y: g.last.Y}}
}

// Dragging reports whether a drag is in progress.
func (g *GestureState) Dragging() bool {
	return g.dragActive
}

// ActionsForType generates a click+type sequence targeting the chat input.
func ActionsForType(inputEnabled bool, text string, chat geom.Rectangle) []Action {
	if !inputEnabled || text == "" || chat.IsEmpty() {
		return nil
	}
	c := Center(chat)
	return []Action{
		{Type: ActClick, X: c.X, Y: c.Y},
		{Type: ActType, Text: text},
	}
}

// ActionsForEnter generates a click+enter sequence targeting the chat input.
func ActionsForEnter(inputEnabled bool, chat geom.Rectangle) []Action {
	if !inputEnabled || chat.IsEmpty() {
		return nil
	}
	c := Center(chat)
	return []Action{
		{Type: ActClick, X: c.X, Y: c.Y},
		{Type: ActEnter},
	}
}

// ActionsForClear focuses the chat input and wipes its contents.
func ActionsForClear(inputEnabled bool, chat geom.Rectangle) []Action {
	if !inputEnabled || chat.IsEmpty() {
		return nil
	}
	c := Center(chat)
	return []Action{
		{Type: ActClick, X: c.X, Y: c.Y},
		{Type: ActSelectAll},
		{Type: ActDelete},
	}
}

// distance returns |a-b| without overflowing.
func distance(a, b int32) int64 {
	d := geom.Widen(a) - geom.Widen(b)
	if d < 0 {
		return -d
	}
	return d
}
